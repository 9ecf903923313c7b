package readstore

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"repairbook/internal/infra/db"
	"repairbook/internal/usecase/queries"
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

func (s *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	builder := appointmentViewSelect().Where(squirrel.Eq{"a.id": id})
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, wrapRead("failed to build appointment view select", err)
	}

	view, err := scanAppointmentView(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapRead("failed to get appointment view", err)
	}
	return view, nil
}

func (s *AppointmentReadStore) FindByDateRange(ctx context.Context, from, to time.Time) ([]*queries.AppointmentView, error) {
	builder := appointmentViewSelect().
		Where("a.start_at >= ?", from).
		Where("a.start_at < ?", to).
		OrderBy("a.start_at")
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, wrapRead("failed to build appointment list select", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapRead("failed to query appointments", err)
	}
	defer rows.Close()

	var out []*queries.AppointmentView
	for rows.Next() {
		view, err := scanAppointmentView(rows)
		if err != nil {
			return nil, wrapRead("failed to scan appointment view", err)
		}
		out = append(out, view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapRead("failed to read appointments", err)
	}
	return out, nil
}

func appointmentViewSelect() squirrel.SelectBuilder {
	return qb.Select(
		"a.id", "dm.slug", "rt.slug", "a.technician",
		"a.start_at", "a.end_at",
		"a.customer_name", "a.customer_phone", "a.referral_code",
		"a.price_original_cents", "a.discount_cents", "a.price_final_cents",
		"a.status", "a.created_at",
	).
		From("appointments a").
		Join("device_models dm ON dm.id = a.device_model_id").
		Join("repair_types rt ON rt.id = a.repair_type_id")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointmentView(row rowScanner) (*queries.AppointmentView, error) {
	var (
		v            queries.AppointmentView
		referralCode string
	)
	err := row.Scan(
		&v.ID, &v.DeviceModel, &v.RepairType, &v.Technician,
		&v.StartAt, &v.EndAt,
		&v.CustomerName, &v.CustomerPhone, &referralCode,
		&v.PriceOriginalCents, &v.DiscountCents, &v.PriceFinalCents,
		&v.Status, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if referralCode != "" {
		v.ReferralCode = &referralCode
	}
	return &v, nil
}
