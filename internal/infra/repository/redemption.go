package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"repairbook/internal/domain/referral"
	"repairbook/internal/infra/db"
)

var redemptionColumns = []string{
	"id", "partner_id", "appointment_id", "customer_phone",
	"discount_cents", "commission_cents",
	"status", "paid_at", "created_at",
}

type RedemptionRepository struct {
	db db.DBTX
}

func NewRedemptionRepository(dbtx db.DBTX) *RedemptionRepository {
	return &RedemptionRepository{db: dbtx}
}

func (r *RedemptionRepository) Create(ctx context.Context, red *referral.Redemption) error {
	query, args, err := qb.Insert("referral_redemptions").
		Columns(
			"id", "partner_id", "appointment_id", "customer_phone",
			"discount_cents", "commission_cents", "status", "paid_at",
		).
		Values(
			red.ID(), red.PartnerID(), red.AppointmentID(), red.CustomerPhone(),
			red.DiscountCents(), red.CommissionCents(), string(red.Status()), red.PaidAt(),
		).
		ToSql()
	if err != nil {
		return wrapDB("failed to build redemption insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return wrapDB("failed to create redemption", err)
	}
	return nil
}

func (r *RedemptionRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*referral.Redemption, error) {
	query, args, err := qb.Select(redemptionColumns...).
		From("referral_redemptions").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, wrapDB("failed to build redemption select", err)
	}

	var (
		rowID, partnerID, appointmentID uuid.UUID
		customerPhone                   string
		discount, commission            int64
		status                          string
		paidAt                          *time.Time
		createdAt                       time.Time
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&rowID, &partnerID, &appointmentID, &customerPhone,
		&discount, &commission,
		&status, &paidAt, &createdAt,
	)
	if err != nil {
		return nil, wrapDB("failed to get redemption", err)
	}

	return referral.ReconstructRedemption(
		rowID, partnerID, appointmentID, customerPhone,
		discount, commission,
		referral.RedemptionStatus(status), paidAt, createdAt,
	), nil
}

func (r *RedemptionRepository) ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*referral.Redemption, error) {
	query, args, err := qb.Select(redemptionColumns...).
		From("referral_redemptions").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, wrapDB("failed to build redemption list", err)
	}
	return r.queryRedemptions(ctx, query, args)
}

func (r *RedemptionRepository) ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*referral.Redemption, error) {
	query, args, err := qb.Select(redemptionColumns...).
		From("referral_redemptions").
		Where(squirrel.Eq{"partner_id": partnerID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, wrapDB("failed to build redemption list", err)
	}
	return r.queryRedemptions(ctx, query, args)
}

func (r *RedemptionRepository) Update(ctx context.Context, red *referral.Redemption) error {
	query, args, err := qb.Update("referral_redemptions").
		Set("status", string(red.Status())).
		Set("paid_at", red.PaidAt()).
		Where(squirrel.Eq{"id": red.ID()}).
		ToSql()
	if err != nil {
		return wrapDB("failed to build redemption update", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return wrapDB("failed to update redemption", err)
	}
	return nil
}

func (r *RedemptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := qb.Delete("referral_redemptions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return wrapDB("failed to build redemption delete", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return wrapDB("failed to delete redemption", err)
	}
	return nil
}

func (r *RedemptionRepository) HasConsumptionFor(ctx context.Context, partnerID, appointmentID uuid.UUID) (bool, error) {
	query, args, err := qb.Select("count(*)").
		From("referral_redemptions").
		Where(squirrel.Eq{"partner_id": partnerID, "appointment_id": appointmentID}).
		Where("commission_cents < 0").
		ToSql()
	if err != nil {
		return false, wrapDB("failed to build consumption check", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, wrapDB("failed to check consumption", err)
	}
	return count > 0, nil
}

func (r *RedemptionRepository) queryRedemptions(ctx context.Context, query string, args []any) ([]*referral.Redemption, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapDB("failed to query redemptions", err)
	}
	defer rows.Close()

	var out []*referral.Redemption
	for rows.Next() {
		var (
			id, partnerID, appointmentID uuid.UUID
			customerPhone                string
			discount, commission         int64
			status                       string
			paidAt                       *time.Time
			createdAt                    time.Time
		)
		if err := rows.Scan(
			&id, &partnerID, &appointmentID, &customerPhone,
			&discount, &commission,
			&status, &paidAt, &createdAt,
		); err != nil {
			return nil, wrapDB("failed to scan redemption", err)
		}
		out = append(out, referral.ReconstructRedemption(
			id, partnerID, appointmentID, customerPhone,
			discount, commission,
			referral.RedemptionStatus(status), paidAt, createdAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDB("failed to read redemptions", err)
	}
	return out, nil
}
