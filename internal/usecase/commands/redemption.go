package commands

import (
	"context"

	"github.com/google/uuid"

	"repairbook/internal/usecase/ledger"
	"repairbook/internal/usecase/shared"
)

type RedemptionCommands interface {
	MarkRedemptionPaid(ctx context.Context, id uuid.UUID) error
}

type redemptionCommandsImpl struct {
	uow      shared.UnitOfWork
	ledger   *ledger.Ledger
	notifier Notifier
}

func NewRedemptionCommands(uow shared.UnitOfWork, ldg *ledger.Ledger, notifier Notifier) RedemptionCommands {
	return &redemptionCommandsImpl{uow: uow, ledger: ldg, notifier: notifier}
}

// MarkRedemptionPaid settles an accrued commission. Paid is terminal;
// paying twice fails rather than silently double-counting.
func (r *redemptionCommandsImpl) MarkRedemptionPaid(ctx context.Context, id uuid.UUID) error {
	var events []ledger.Event
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, ledgerEvents, err := r.ledger.MarkPaid(ctx, tx, id)
		if err != nil {
			return err
		}
		events = ledgerEvents
		return nil
	})
	if err != nil {
		return err
	}

	r.notifier.LedgerEvents(events)
	return nil
}
