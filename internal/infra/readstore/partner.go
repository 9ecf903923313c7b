package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"repairbook/internal/domain/referral"
	"repairbook/internal/infra/db"
	"repairbook/internal/infra/repository"
)

// PartnerReadStore backs the partner balance and operations queries.
// Writes and reads share the repository row mapping so a partner always
// folds the same way on both sides.
type PartnerReadStore struct {
	db          db.DBTX
	partners    *repository.PartnerRepository
	redemptions *repository.RedemptionRepository
}

func NewPartnerReadStore(dbtx db.DBTX) *PartnerReadStore {
	return &PartnerReadStore{
		db:          dbtx,
		partners:    repository.NewPartnerRepository(dbtx),
		redemptions: repository.NewRedemptionRepository(dbtx),
	}
}

func (s *PartnerReadStore) FindByCode(ctx context.Context, code string) (*referral.Partner, error) {
	return s.partners.FindByCode(ctx, code)
}

func (s *PartnerReadStore) ListRedemptions(ctx context.Context, partnerID uuid.UUID) ([]*referral.Redemption, error) {
	return s.redemptions.ListByPartner(ctx, partnerID)
}

func (s *PartnerReadStore) ListRedemptionsInRange(ctx context.Context, partnerID uuid.UUID, from, to time.Time) ([]*referral.Redemption, error) {
	rows, err := s.redemptions.ListByPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	var out []*referral.Redemption
	for _, r := range rows {
		if r.CreatedAt().Before(from) || !r.CreatedAt().Before(to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
