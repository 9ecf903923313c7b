// Package ledger holds the referral-credit reactions to booking
// lifecycle changes. The original system wired these as save hooks;
// here they are explicit calls made by the booking and status-change
// commands inside the same transaction, so ordering is visible and the
// whole reaction aborts with the transaction.
package ledger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"repairbook/internal/domain/booking"
	"repairbook/internal/domain/referral"
	"repairbook/internal/pkg/clock"
	"repairbook/internal/pkg/errs"
	"repairbook/internal/pkg/metrics"
	"repairbook/internal/usecase/shared"

	"repairbook/internal/infra"
)

type EventKind string

const (
	EventRedemptionCreated EventKind = "redemption_created"
	EventRedemptionAccrued EventKind = "redemption_accrued"
	EventRedemptionPaid    EventKind = "redemption_paid"
	EventCreditConsumed    EventKind = "credit_consumed"
)

// Event describes a ledger change for the notification sink. Events are
// collected during the transaction and delivered only after commit.
type Event struct {
	Kind       EventKind
	Partner    *referral.Partner
	Redemption *referral.Redemption
}

type Ledger struct {
	clock clock.Clock
}

func New(clk clock.Clock) *Ledger {
	return &Ledger{clock: clk}
}

// OnAppointmentCreated applies referral pricing and credit consumption
// to a not-yet-persisted appointment, and stages the redemption rows.
// Returned rows must be inserted after the appointment so the foreign
// key holds. Invalid or inactive codes degrade silently: the booking
// proceeds at full price.
func (l *Ledger) OnAppointmentCreated(
	ctx context.Context,
	tx shared.Tx,
	appt *booking.Appointment,
) ([]*referral.Redemption, []Event, error) {
	var rows []*referral.Redemption
	var events []Event

	earning, earnEvents, err := l.applyReferralCode(ctx, tx, appt)
	if err != nil {
		return nil, nil, err
	}
	if earning != nil {
		rows = append(rows, earning)
	}
	events = append(events, earnEvents...)

	consumption, consumeEvents, err := l.consumeCredit(ctx, tx, appt)
	if err != nil {
		return nil, nil, err
	}
	if consumption != nil {
		rows = append(rows, consumption)
	}
	events = append(events, consumeEvents...)

	return rows, events, nil
}

func (l *Ledger) applyReferralCode(
	ctx context.Context,
	tx shared.Tx,
	appt *booking.Appointment,
) (*referral.Redemption, []Event, error) {
	code := appt.ReferralCode()
	if code == "" {
		return nil, nil, nil
	}

	partner, err := tx.Partners().FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Debug("referral code not found, booking proceeds at full price", "code", code)
			return nil, nil, nil
		}
		return nil, nil, err
	}

	uses, err := tx.Partners().CountRedemptions(ctx, partner.ID())
	if err != nil {
		return nil, nil, err
	}
	if activeErr := partner.ValidateActiveAt(l.clock.Now(), uses); activeErr != nil {
		slog.Debug("referral code inactive, booking proceeds at full price",
			"code", code, "reason", activeErr.Error())
		return nil, nil, nil
	}

	discount, commission := referral.CalcDiscountAndCommission(
		appt.PriceOriginalCents(), partner.DiscountPct(), partner.CommissionPct())

	if err := appt.ApplyDiscount(discount); err != nil {
		return nil, nil, errs.Wrap(err, "failed to apply referral discount")
	}

	// Self-referral guard: the customer keeps the discount but the
	// partner earns nothing, and no ledger row is written at all.
	if partner.IsOwnPhone(appt.Customer().Phone) {
		slog.Info("self-referral detected, commission suppressed",
			"partner_id", partner.ID(), "appointment_id", appt.ID())
		return nil, nil, nil
	}

	row, err := referral.NewEarning(partner.ID(), appt.ID(), appt.Customer().Phone, discount, commission)
	if err != nil {
		return nil, nil, err
	}

	metrics.IncRedemptionCreated("earning")
	return row, []Event{{Kind: EventRedemptionCreated, Partner: partner, Redemption: row}}, nil
}

func (l *Ledger) consumeCredit(
	ctx context.Context,
	tx shared.Tx,
	appt *booking.Appointment,
) (*referral.Redemption, []Event, error) {
	digits := referral.NormalizePhone(appt.Customer().Phone)
	if digits == "" {
		return nil, nil, nil
	}

	partner, err := tx.Partners().FindByNormalizedPhone(ctx, digits)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	exists, err := tx.Redemptions().HasConsumptionFor(ctx, partner.ID(), appt.ID())
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, nil
	}

	// Balance read and spend decision happen under the partner row
	// lock; a concurrent booking by the same partner waits here and
	// sees the reduced balance.
	if err := tx.Partners().LockByID(ctx, partner.ID()); err != nil {
		return nil, nil, err
	}

	all, err := tx.Redemptions().ListByPartner(ctx, partner.ID())
	if err != nil {
		return nil, nil, err
	}

	available := referral.ComputeBalance(all).AvailableCents
	if available <= 0 {
		return nil, nil, nil
	}

	consume := min(available, appt.PriceFinalCents())
	if consume <= 0 {
		return nil, nil, nil
	}

	row, err := referral.NewConsumption(partner.ID(), appt.ID(), appt.Customer().Phone, consume, l.clock.Now())
	if err != nil {
		return nil, nil, err
	}
	if err := appt.ApplyDiscount(consume); err != nil {
		return nil, nil, errs.Wrap(err, "failed to apply consumed credit")
	}

	metrics.IncRedemptionCreated("consumption")
	metrics.AddCreditConsumed(consume)
	return row, []Event{{Kind: EventCreditConsumed, Partner: partner, Redemption: row}}, nil
}

// OnStatusChanged reacts to an administrative appointment transition.
// The appointment entity may be mutated (cancellation refunds consumed
// credit into its price fields); the caller persists it afterwards.
func (l *Ledger) OnStatusChanged(
	ctx context.Context,
	tx shared.Tx,
	appt *booking.Appointment,
	old, next booking.Status,
) ([]Event, error) {
	if old == next {
		return nil, nil
	}

	switch next {
	case booking.StatusDone:
		return l.accrueEarnings(ctx, tx, appt)
	case booking.StatusCancelled:
		return l.unwindOnCancel(ctx, tx, appt)
	default:
		return nil, nil
	}
}

func (l *Ledger) accrueEarnings(ctx context.Context, tx shared.Tx, appt *booking.Appointment) ([]Event, error) {
	rows, err := tx.Redemptions().ListByAppointment(ctx, appt.ID())
	if err != nil {
		return nil, err
	}

	var events []Event
	for _, r := range rows {
		if r.IsConsumption() {
			continue
		}
		if !r.Accrue() {
			continue
		}
		if err := tx.Redemptions().Update(ctx, r); err != nil {
			return nil, err
		}
		events = append(events, Event{Kind: EventRedemptionAccrued, Redemption: r})
	}
	return events, nil
}

func (l *Ledger) unwindOnCancel(ctx context.Context, tx shared.Tx, appt *booking.Appointment) ([]Event, error) {
	rows, err := tx.Redemptions().ListByAppointment(ctx, appt.ID())
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		// Mutating a partner's rows requires that partner's lock, same
		// as the spend path.
		if err := tx.Partners().LockByID(ctx, r.PartnerID()); err != nil {
			return nil, err
		}

		if r.IsConsumption() {
			refund := -r.CommissionCents()
			if err := appt.RefundDiscount(refund); err != nil {
				return nil, errs.Wrap(err, "failed to refund consumed credit")
			}
			if err := tx.Redemptions().Delete(ctx, r.ID()); err != nil {
				return nil, err
			}
			continue
		}

		if r.ResetToPending() {
			if err := tx.Redemptions().Update(ctx, r); err != nil {
				return nil, err
			}
		}
	}
	return nil, nil
}

// MarkPaid is the administrative payout entry point.
func (l *Ledger) MarkPaid(ctx context.Context, tx shared.Tx, redemptionID uuid.UUID) (*referral.Redemption, []Event, error) {
	r, err := tx.Redemptions().GetForUpdate(ctx, redemptionID)
	if err != nil {
		return nil, nil, err
	}
	if err := r.MarkPaid(l.clock.Now()); err != nil {
		return nil, nil, err
	}
	if err := tx.Redemptions().Update(ctx, r); err != nil {
		return nil, nil, err
	}
	return r, []Event{{Kind: EventRedemptionPaid, Redemption: r}}, nil
}
