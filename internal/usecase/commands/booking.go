package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"repairbook/internal/domain/booking"
	reqdto "repairbook/internal/handler/dto/request"
	"repairbook/internal/pkg/clock"
	"repairbook/internal/pkg/config"
	"repairbook/internal/pkg/errs"
	"repairbook/internal/pkg/metrics"
	"repairbook/internal/usecase/ledger"
	"repairbook/internal/usecase/shared"
)

var (
	ErrStaleSlot     = errs.New("requested slot is in the past")
	ErrOutOfWindow   = errs.New("requested slot outside the booking window")
	ErrSlotTaken     = errs.New("requested slot is no longer available")
	ErrBookingFailed = errs.New("failed to create appointment")
)

type BookingCommands interface {
	CreateAppointment(ctx context.Context, req reqdto.CreateAppointmentRequest) (uuid.UUID, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	catalog  CatalogReads
	schedule ScheduleReads
	ledger   *ledger.Ledger
	notifier Notifier
	clock    clock.Clock
	cfg      config.BookingConfig
	location *time.Location
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	catalog CatalogReads,
	scheduleReads ScheduleReads,
	ldg *ledger.Ledger,
	notifier Notifier,
	clk clock.Clock,
	cfg config.BookingConfig,
) (BookingCommands, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, errs.Wrap(err, "invalid booking timezone")
	}
	return &bookingCommandsImpl{
		uow:      uow,
		catalog:  catalog,
		schedule: scheduleReads,
		ledger:   ldg,
		notifier: notifier,
		clock:    clk,
		cfg:      cfg,
		location: loc,
	}, nil
}

// CreateAppointment books a repair slot. Validation runs twice: an
// optimistic capacity probe outside the transaction gives fast
// rejections, then the authoritative re-check runs under an interval
// lock so two requests racing for the last opening cannot both commit.
func (b *bookingCommandsImpl) CreateAppointment(
	ctx context.Context,
	req reqdto.CreateAppointmentRequest,
) (uuid.UUID, error) {
	offer, err := b.catalog.ResolveOffer(ctx, req.DeviceModelSlug, req.RepairTypeSlug)
	if err != nil {
		return uuid.Nil, err
	}

	now := b.clock.Now()
	start := req.StartAt.In(b.location)
	duration := time.Duration(offer.DurationMin) * time.Minute

	if err := b.validateSlot(ctx, start, duration, now); err != nil {
		return uuid.Nil, err
	}

	slot, err := booking.NewTimeSlotFromDuration(start, duration)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrOutOfWindow)
	}
	padded := slot.Padded(
		time.Duration(b.cfg.PrepBufferMin)*time.Minute,
		time.Duration(b.cfg.CleanupBufferMin)*time.Minute,
	)

	// Optimistic probe. Cheap rejection of slots that are obviously
	// gone; the locked recount below is what actually guarantees the
	// ceiling.
	count, err := b.schedule.CountActiveOverlapping(ctx, padded.Start(), padded.End())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrBookingFailed)
	}
	if count >= b.cfg.ConcurrencyCeiling {
		metrics.IncBookingRejected("slot_taken")
		return uuid.Nil, ErrSlotTaken
	}

	appt, err := booking.NewAppointment(
		offer.DeviceModelID, offer.RepairTypeID,
		slot,
		booking.Customer{Name: req.CustomerName, Phone: req.CustomerPhone},
		req.ReferralCode,
		offer.PriceCents,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrBookingFailed)
	}

	var events []ledger.Event
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.SlotLocks().AcquireInterval(ctx, padded.Start(), padded.End()); err != nil {
			return err
		}

		inTxCount, err := tx.Appointments().CountActiveOverlapping(ctx, padded.Start(), padded.End())
		if err != nil {
			return err
		}
		if inTxCount >= b.cfg.ConcurrencyCeiling {
			return ErrSlotTaken
		}

		rows, ledgerEvents, err := b.ledger.OnAppointmentCreated(ctx, tx, appt)
		if err != nil {
			return err
		}

		if err := tx.Appointments().Create(ctx, appt); err != nil {
			return err
		}
		for _, row := range rows {
			if err := tx.Redemptions().Create(ctx, row); err != nil {
				return err
			}
		}

		events = ledgerEvents
		return nil
	})
	if err != nil {
		if errs.Is(err, ErrSlotTaken) {
			metrics.IncBookingRejected("slot_taken")
			return uuid.Nil, ErrSlotTaken
		}
		return uuid.Nil, errs.Mark(err, ErrBookingFailed)
	}

	metrics.IncBookingCreated()
	b.notifier.AppointmentCreated(AppointmentNotice{
		ID:              appt.ID(),
		DeviceModelSlug: req.DeviceModelSlug,
		RepairTypeSlug:  req.RepairTypeSlug,
		StartAt:         appt.Slot().Start(),
		EndAt:           appt.Slot().End(),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		ReferralCode:    req.ReferralCode,
		PriceFinalCents: appt.PriceFinalCents(),
		DiscountCents:   appt.DiscountCents(),
	})
	b.notifier.LedgerEvents(events)

	return appt.ID(), nil
}

// validateSlot rejects past starts, starts beyond the booking horizon,
// and starts that do not land on the working-hours grid.
func (b *bookingCommandsImpl) validateSlot(
	ctx context.Context,
	start time.Time,
	duration time.Duration,
	now time.Time,
) error {
	if start.Before(now) {
		metrics.IncBookingRejected("stale_slot")
		return ErrStaleSlot
	}
	if start.After(now.AddDate(0, 0, b.cfg.MaxDaysAhead)) {
		metrics.IncBookingRejected("out_of_window")
		return ErrOutOfWindow
	}

	rules, err := b.schedule.WorkingHours(ctx)
	if err != nil {
		return errs.Mark(err, ErrBookingFailed)
	}

	gridStep := time.Duration(b.cfg.GridStepMin) * time.Minute
	date := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, b.location)

	for _, rule := range rules {
		if !rule.Matches(date) {
			continue
		}
		window := rule.WindowOn(date, b.location)
		if start.Before(window.Start()) || start.Add(duration).After(window.End()) {
			continue
		}
		if start.Sub(window.Start())%gridStep != 0 {
			continue
		}
		return nil
	}

	metrics.IncBookingRejected("out_of_window")
	return ErrOutOfWindow
}
