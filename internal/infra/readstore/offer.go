package readstore

import (
	"context"

	"repairbook/internal/domain/catalog"
	"repairbook/internal/infra/db"
	"repairbook/internal/usecase/commands"
)

// OfferReadStore is the write-side catalog lookup used by the booking
// command.
type OfferReadStore struct {
	db db.DBTX
}

func NewOfferReadStore(dbtx db.DBTX) *OfferReadStore {
	return &OfferReadStore{db: dbtx}
}

func (s *OfferReadStore) ResolveOffer(ctx context.Context, deviceModelSlug, repairTypeSlug string) (*commands.OfferSnapshot, error) {
	model, repairType, offer, err := resolveOfferRow(ctx, s.db, deviceModelSlug, repairTypeSlug)
	if err != nil {
		return nil, err
	}
	return &commands.OfferSnapshot{
		DeviceModelID: model.ID,
		RepairTypeID:  repairType.ID,
		PriceCents:    catalog.EffectivePriceCents(offer),
		DurationMin:   catalog.EffectiveDurationMin(offer, repairType),
	}, nil
}
