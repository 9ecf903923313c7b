package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"repairbook/internal/domain/referral"
	"repairbook/internal/infra/db"
)

var partnerColumns = []string{
	"id", "name", "contact_phone", "code",
	"discount_pct_bp", "commission_pct_bp",
	"expires_at", "max_uses", "telegram_chat_id", "created_at",
}

type PartnerRepository struct {
	db db.DBTX
}

func NewPartnerRepository(dbtx db.DBTX) *PartnerRepository {
	return &PartnerRepository{db: dbtx}
}

func (r *PartnerRepository) FindByCode(ctx context.Context, code string) (*referral.Partner, error) {
	query, args, err := qb.Select(partnerColumns...).
		From("referral_partners").
		Where("lower(code) = lower(trim(?))", code).
		ToSql()
	if err != nil {
		return nil, wrapDB("failed to build partner select", err)
	}
	return r.scanPartner(ctx, query, args)
}

// FindByNormalizedPhone matches partner contact numbers on their last
// nine digits, same normalization the domain applies to customer phones.
func (r *PartnerRepository) FindByNormalizedPhone(ctx context.Context, digits string) (*referral.Partner, error) {
	query, args, err := qb.Select(partnerColumns...).
		From("referral_partners").
		Where(`RIGHT(regexp_replace(contact_phone, '\D', '', 'g'), 9) = ?`, digits).
		OrderBy("created_at").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, wrapDB("failed to build partner phone select", err)
	}
	return r.scanPartner(ctx, query, args)
}

// LockByID takes the partner row FOR UPDATE for the rest of the
// transaction. Serializes every balance-affecting path per partner.
func (r *PartnerRepository) LockByID(ctx context.Context, id uuid.UUID) error {
	query, args, err := qb.Select("id").
		From("referral_partners").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return wrapDB("failed to build partner lock", err)
	}

	var got uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&got); err != nil {
		return wrapDB("failed to lock partner", err)
	}
	return nil
}

// CountRedemptions counts earnings only; consumptions do not use up a
// partner code.
func (r *PartnerRepository) CountRedemptions(ctx context.Context, partnerID uuid.UUID) (int, error) {
	query, args, err := qb.Select("count(*)").
		From("referral_redemptions").
		Where(squirrel.Eq{"partner_id": partnerID}).
		Where("commission_cents >= 0").
		ToSql()
	if err != nil {
		return 0, wrapDB("failed to build redemption count", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, wrapDB("failed to count redemptions", err)
	}
	return count, nil
}

func (r *PartnerRepository) scanPartner(ctx context.Context, query string, args []any) (*referral.Partner, error) {
	var (
		id                       uuid.UUID
		name, contactPhone, code string
		discountBp, commissionBp int32
		expiresAt                *time.Time
		maxUses32                *int32
		telegramChatID           *int64
		createdAt                time.Time
	)
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&id, &name, &contactPhone, &code,
		&discountBp, &commissionBp,
		&expiresAt, &maxUses32, &telegramChatID, &createdAt,
	)
	if err != nil {
		return nil, wrapDB("failed to get partner", err)
	}

	var maxUses *int
	if maxUses32 != nil {
		v := int(*maxUses32)
		maxUses = &v
	}

	return referral.ReconstructPartner(
		id, name, contactPhone, code,
		referral.Percent(discountBp), referral.Percent(commissionBp),
		expiresAt, maxUses, telegramChatID, createdAt,
	), nil
}
