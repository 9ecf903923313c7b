package queries

import (
	"context"
	"time"

	"repairbook/internal/domain/booking"
	"repairbook/internal/domain/schedule"
	"repairbook/internal/pkg/clock"
	"repairbook/internal/pkg/config"
	"repairbook/internal/pkg/errs"
)

var ErrSlotsFailed = errs.New("failed to compute available slots")

// OfferInfo is what the slot query needs from the catalog: identity for
// the response plus effective duration and price.
type OfferInfo struct {
	DeviceModelSlug string
	RepairTypeSlug  string
	DurationMin     int
	PriceCents      int64
}

type SlotReadStore interface {
	// ResolveOffer returns the effective offer for a model/repair pair,
	// with the repair-type default duration already applied.
	ResolveOffer(ctx context.Context, deviceModelSlug, repairTypeSlug string) (*OfferInfo, error)
	WorkingHours(ctx context.Context) ([]schedule.WorkingHour, error)
	// BusySlots returns the buffered intervals of active appointments
	// touching [from, to).
	BusySlots(ctx context.Context, from, to time.Time) ([]booking.TimeSlot, error)
}

type SlotQueries interface {
	ListAvailable(ctx context.Context, deviceModelSlug, repairTypeSlug string, days int) (*SlotsView, error)
}

type slotQueriesImpl struct {
	store    SlotReadStore
	clock    clock.Clock
	cfg      config.BookingConfig
	location *time.Location
}

func NewSlotQueries(store SlotReadStore, clk clock.Clock, cfg config.BookingConfig) (SlotQueries, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, errs.Wrap(err, "invalid booking timezone")
	}
	return &slotQueriesImpl{store: store, clock: clk, cfg: cfg, location: loc}, nil
}

// ListAvailable computes candidate start instants for the next `days`
// calendar days. The result is advisory: capacity may be gone by the
// time a booking for one of these instants arrives, and the booking
// transaction re-checks under a lock.
func (q *slotQueriesImpl) ListAvailable(
	ctx context.Context,
	deviceModelSlug, repairTypeSlug string,
	days int,
) (*SlotsView, error) {
	if days <= 0 || days > q.cfg.MaxDaysAhead {
		days = q.cfg.MaxDaysAhead
	}

	offer, err := q.store.ResolveOffer(ctx, deviceModelSlug, repairTypeSlug)
	if err != nil {
		return nil, err
	}

	rules, err := q.store.WorkingHours(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrSlotsFailed)
	}

	now := q.clock.Now().In(q.location)
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, q.location)

	// Busy intervals one day past both edges so buffered appointments
	// crossing midnight still count.
	busy, err := q.store.BusySlots(ctx,
		startDate.AddDate(0, 0, -1),
		startDate.AddDate(0, 0, days+1),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrSlotsFailed)
	}

	gen := schedule.Generator{
		GridStep:      time.Duration(q.cfg.GridStepMin) * time.Minute,
		PrepBuffer:    time.Duration(q.cfg.PrepBufferMin) * time.Minute,
		CleanupBuffer: time.Duration(q.cfg.CleanupBufferMin) * time.Minute,
		Ceiling:       q.cfg.ConcurrencyCeiling,
		Location:      q.location,
	}

	duration := time.Duration(offer.DurationMin) * time.Minute
	starts, err := gen.Generate(rules, busy, now, startDate, days, duration)
	if err != nil {
		return nil, errs.Mark(err, ErrSlotsFailed)
	}

	return &SlotsView{
		DeviceModel: offer.DeviceModelSlug,
		RepairType:  offer.RepairTypeSlug,
		DurationMin: offer.DurationMin,
		PriceCents:  offer.PriceCents,
		Days:        groupByDay(starts, q.location),
	}, nil
}

func groupByDay(starts []time.Time, loc *time.Location) []DaySlots {
	var out []DaySlots
	for _, s := range starts {
		date := s.In(loc).Format("2006-01-02")
		if len(out) == 0 || out[len(out)-1].Date != date {
			out = append(out, DaySlots{Date: date})
		}
		out[len(out)-1].Slots = append(out[len(out)-1].Slots, s)
	}
	return out
}
