package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"repairbook/internal/domain/referral"
)

// PartnerReadStore loads partner identity and raw redemption rows. The
// balance itself is never stored; it is folded from rows on every read.
type PartnerReadStore interface {
	FindByCode(ctx context.Context, code string) (*referral.Partner, error)
	ListRedemptions(ctx context.Context, partnerID uuid.UUID) ([]*referral.Redemption, error)
	ListRedemptionsInRange(ctx context.Context, partnerID uuid.UUID, from, to time.Time) ([]*referral.Redemption, error)
}

type PartnerQueries interface {
	Balance(ctx context.Context, code string) (*BalanceView, error)
	Operations(ctx context.Context, code string, from, to time.Time) ([]*OperationView, error)
}

type partnerQueriesImpl struct {
	store PartnerReadStore
}

func NewPartnerQueries(store PartnerReadStore) PartnerQueries {
	return &partnerQueriesImpl{store: store}
}

func (q *partnerQueriesImpl) Balance(ctx context.Context, code string) (*BalanceView, error) {
	partner, err := q.store.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	rows, err := q.store.ListRedemptions(ctx, partner.ID())
	if err != nil {
		return nil, err
	}

	b := referral.ComputeBalance(rows)
	return &BalanceView{
		PartnerName:        partner.Name(),
		Code:               partner.Code(),
		EarnedAccruedCents: b.EarnedAccruedCents,
		EarnedPendingCents: b.EarnedPendingCents,
		SpentCents:         b.SpentCents,
		AvailableCents:     b.AvailableCents,
		PotentialCents:     b.PotentialCents,
	}, nil
}

func (q *partnerQueriesImpl) Operations(ctx context.Context, code string, from, to time.Time) ([]*OperationView, error) {
	partner, err := q.store.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	rows, err := q.store.ListRedemptionsInRange(ctx, partner.ID(), from, to)
	if err != nil {
		return nil, err
	}

	out := make([]*OperationView, 0, len(rows))
	for _, r := range rows {
		kind := "earning"
		if r.IsConsumption() {
			kind = "consumption"
		}
		out = append(out, &OperationView{
			ID:              r.ID(),
			AppointmentID:   r.AppointmentID(),
			Kind:            kind,
			DiscountCents:   r.DiscountCents(),
			CommissionCents: r.CommissionCents(),
			Status:          string(r.Status()),
			PaidAt:          r.PaidAt(),
			CreatedAt:       r.CreatedAt(),
		})
	}
	return out, nil
}
