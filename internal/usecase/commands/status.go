package commands

import (
	"context"

	"github.com/google/uuid"

	"repairbook/internal/domain/booking"
	"repairbook/internal/pkg/errs"
	"repairbook/internal/usecase/ledger"
	"repairbook/internal/usecase/shared"
)

var (
	ErrInvalidStatus     = errs.New("invalid appointment status")
	ErrInvalidTransition = errs.New("invalid status transition")
)

type StatusCommands interface {
	TransitionAppointment(ctx context.Context, id uuid.UUID, newStatus string) error
}

type statusCommandsImpl struct {
	uow      shared.UnitOfWork
	ledger   *ledger.Ledger
	notifier Notifier
}

func NewStatusCommands(uow shared.UnitOfWork, ldg *ledger.Ledger, notifier Notifier) StatusCommands {
	return &statusCommandsImpl{uow: uow, ledger: ldg, notifier: notifier}
}

// TransitionAppointment moves an appointment to a new status and runs
// the ledger reaction in the same transaction: done accrues pending
// earnings, cancelled rewinds them and refunds consumed credit.
func (s *statusCommandsImpl) TransitionAppointment(ctx context.Context, id uuid.UUID, newStatus string) error {
	target := booking.Status(newStatus)
	if !target.IsValid() {
		return ErrInvalidStatus
	}

	var (
		events    []ledger.Event
		notice    AppointmentNotice
		oldStatus booking.Status
	)
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, err := tx.Appointments().GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		oldStatus = appt.Status()
		if oldStatus == target {
			return nil
		}
		if err := appt.Transition(target); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		ledgerEvents, err := s.ledger.OnStatusChanged(ctx, tx, appt, oldStatus, target)
		if err != nil {
			return err
		}

		if err := tx.Appointments().Update(ctx, appt); err != nil {
			return err
		}

		events = ledgerEvents
		notice = AppointmentNotice{
			ID:              appt.ID(),
			StartAt:         appt.Slot().Start(),
			EndAt:           appt.Slot().End(),
			CustomerName:    appt.Customer().Name,
			CustomerPhone:   appt.Customer().Phone,
			ReferralCode:    appt.ReferralCode(),
			PriceFinalCents: appt.PriceFinalCents(),
			DiscountCents:   appt.DiscountCents(),
		}
		return nil
	})
	if err != nil {
		if errs.Is(err, ErrInvalidTransition) {
			return ErrInvalidTransition
		}
		return err
	}

	if oldStatus != target {
		s.notifier.AppointmentStatusChanged(notice, oldStatus.String(), target.String())
		s.notifier.LedgerEvents(events)
	}
	return nil
}
