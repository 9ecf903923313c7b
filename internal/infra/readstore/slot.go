package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"repairbook/internal/domain/booking"
	"repairbook/internal/domain/catalog"
	"repairbook/internal/domain/schedule"
	"repairbook/internal/infra/db"
	"repairbook/internal/usecase/queries"
)

// SlotReadStore feeds the availability query: calendar rules, busy
// intervals and the effective offer for a model/repair pair.
type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

func (s *SlotReadStore) ResolveOffer(ctx context.Context, deviceModelSlug, repairTypeSlug string) (*queries.OfferInfo, error) {
	model, repairType, offer, err := resolveOfferRow(ctx, s.db, deviceModelSlug, repairTypeSlug)
	if err != nil {
		return nil, err
	}
	return &queries.OfferInfo{
		DeviceModelSlug: model.Slug,
		RepairTypeSlug:  repairType.Slug,
		DurationMin:     catalog.EffectiveDurationMin(offer, repairType),
		PriceCents:      catalog.EffectivePriceCents(offer),
	}, nil
}

func (s *SlotReadStore) WorkingHours(ctx context.Context) ([]schedule.WorkingHour, error) {
	query, args, err := qb.Select("id", "weekday", "start_min", "end_min").
		From("working_hours").
		OrderBy("weekday", "start_min").
		ToSql()
	if err != nil {
		return nil, wrapRead("failed to build working hours select", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapRead("failed to query working hours", err)
	}
	defer rows.Close()

	var out []schedule.WorkingHour
	for rows.Next() {
		var wh schedule.WorkingHour
		if err := rows.Scan(&wh.ID, &wh.Weekday, &wh.StartMin, &wh.EndMin); err != nil {
			return nil, wrapRead("failed to scan working hour", err)
		}
		out = append(out, wh)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapRead("failed to read working hours", err)
	}
	return out, nil
}

// BusySlots returns raw intervals of non-cancelled appointments
// overlapping [from, to). The slot generator pads candidate intervals
// before probing these, so the rows themselves stay unpadded.
func (s *SlotReadStore) BusySlots(ctx context.Context, from, to time.Time) ([]booking.TimeSlot, error) {
	query, args, err := qb.Select("start_at", "end_at").
		From("appointments").
		Where("status <> ?", booking.StatusCancelled.String()).
		Where("start_at < ?", to).
		Where("end_at > ?", from).
		OrderBy("start_at").
		ToSql()
	if err != nil {
		return nil, wrapRead("failed to build busy slots select", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapRead("failed to query busy slots", err)
	}
	defer rows.Close()

	var out []booking.TimeSlot
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, wrapRead("failed to scan busy slot", err)
		}
		slot, err := booking.NewTimeSlot(start, end)
		if err != nil {
			return nil, wrapRead("stored appointment has invalid interval", err)
		}
		out = append(out, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapRead("failed to read busy slots", err)
	}
	return out, nil
}

// resolveOfferRow loads the catalog triple behind one booking target.
// offer is nil when the model has no explicit row for the repair type.
func resolveOfferRow(ctx context.Context, dbtx db.DBTX, deviceModelSlug, repairTypeSlug string) (*catalog.DeviceModel, *catalog.RepairType, *catalog.RepairOffer, error) {
	query, args, err := qb.Select(
		"dm.id", "dm.brand_id", "dm.name", "dm.slug", "dm.category",
		"rt.id", "rt.name", "rt.slug", "rt.default_duration_min",
		"ro.id", "ro.price_cents", "ro.duration_min", "ro.active",
	).
		From("device_models dm").
		CrossJoin("repair_types rt").
		LeftJoin("repair_offers ro ON ro.device_model_id = dm.id AND ro.repair_type_id = rt.id").
		Where("dm.slug = ?", deviceModelSlug).
		Where("rt.slug = ?", repairTypeSlug).
		ToSql()
	if err != nil {
		return nil, nil, nil, wrapRead("failed to build offer select", err)
	}

	var (
		model      catalog.DeviceModel
		category   string
		repairType catalog.RepairType
		offerID    *uuid.UUID
		priceCents *int64
		duration   *int32
		active     *bool
	)
	err = dbtx.QueryRow(ctx, query, args...).Scan(
		&model.ID, &model.BrandID, &model.Name, &model.Slug, &category,
		&repairType.ID, &repairType.Name, &repairType.Slug, &repairType.DefaultDurationMin,
		&offerID, &priceCents, &duration, &active,
	)
	if err != nil {
		return nil, nil, nil, wrapRead("device model or repair type not found", err)
	}
	model.Category = catalog.Category(category)

	var offer *catalog.RepairOffer
	if offerID != nil {
		offer = &catalog.RepairOffer{
			ID:            *offerID,
			DeviceModelID: model.ID,
			RepairTypeID:  repairType.ID,
			PriceCents:    *priceCents,
			DurationMin:   int(*duration),
			Active:        *active,
		}
	}
	return &model, &repairType, offer, nil
}
