package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"repairbook/internal/domain/booking"
	"repairbook/internal/infra/db"
)

type AppointmentRepository struct {
	db db.DBTX
}

func NewAppointmentRepository(dbtx db.DBTX) *AppointmentRepository {
	return &AppointmentRepository{db: dbtx}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *booking.Appointment) error {
	query, args, err := qb.Insert("appointments").
		Columns(
			"id", "device_model_id", "repair_type_id", "technician",
			"start_at", "end_at",
			"customer_name", "customer_phone", "referral_code",
			"price_original_cents", "discount_cents", "price_final_cents",
			"status",
		).
		Values(
			a.ID(), a.DeviceModelID(), a.RepairTypeID(), a.Technician(),
			a.Slot().Start(), a.Slot().End(),
			a.Customer().Name, a.Customer().Phone, a.ReferralCode(),
			a.PriceOriginalCents(), a.DiscountCents(), a.PriceFinalCents(),
			a.Status().String(),
		).
		ToSql()
	if err != nil {
		return wrapDB("failed to build appointment insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return wrapDB("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Appointment, error) {
	query, args, err := qb.Select(
		"id", "device_model_id", "repair_type_id", "technician",
		"start_at", "end_at",
		"customer_name", "customer_phone", "referral_code",
		"price_original_cents", "discount_cents",
		"status", "created_at", "updated_at",
	).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, wrapDB("failed to build appointment select", err)
	}

	var (
		rowID, modelID, repairID             uuid.UUID
		technician                           *string
		startAt, endAt, createdAt, updatedAt time.Time
		customerName, customerPhone, code    string
		priceOriginal, discount              int64
		status                               string
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&rowID, &modelID, &repairID, &technician,
		&startAt, &endAt,
		&customerName, &customerPhone, &code,
		&priceOriginal, &discount,
		&status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, wrapDB("failed to get appointment", err)
	}

	slot, err := booking.NewTimeSlot(startAt, endAt)
	if err != nil {
		return nil, wrapDB("stored appointment has invalid interval", err)
	}

	return booking.ReconstructAppointment(
		rowID, modelID, repairID,
		technician,
		slot,
		booking.Customer{Name: customerName, Phone: customerPhone},
		code,
		priceOriginal, discount,
		booking.Status(status),
		createdAt, updatedAt,
	), nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *booking.Appointment) error {
	query, args, err := qb.Update("appointments").
		Set("technician", a.Technician()).
		Set("discount_cents", a.DiscountCents()).
		Set("price_final_cents", a.PriceFinalCents()).
		Set("status", a.Status().String()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": a.ID()}).
		ToSql()
	if err != nil {
		return wrapDB("failed to build appointment update", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return wrapDB("failed to update appointment", err)
	}
	return nil
}

// CountActiveOverlapping counts non-cancelled appointments overlapping
// [start, end) under half-open semantics. Stored rows stay raw; callers
// pad the probe interval, so padding here would double the buffers.
// Capacity is global, so there is no device or repair filter.
func (r *AppointmentRepository) CountActiveOverlapping(ctx context.Context, start, end time.Time) (int, error) {
	query, args, err := qb.Select("count(*)").
		From("appointments").
		Where(squirrel.NotEq{"status": booking.StatusCancelled.String()}).
		Where("start_at < ?", end).
		Where("end_at > ?", start).
		ToSql()
	if err != nil {
		return 0, wrapDB("failed to build overlap count", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, wrapDB("failed to count overlapping appointments", err)
	}
	return count, nil
}
