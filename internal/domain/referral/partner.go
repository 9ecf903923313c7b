package referral

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCode      = errors.New("partner code cannot be empty")
	ErrPartnerExpired = errors.New("partner code expired")
	ErrUsesExhausted  = errors.New("partner code uses exhausted")
)

// Partner is a referral seller. Codes are matched case-insensitively.
type Partner struct {
	id             uuid.UUID
	name           string
	contactPhone   string
	code           string
	discountPct    Percent
	commissionPct  Percent
	expiresAt      *time.Time
	maxUses        *int
	telegramChatID *int64
	createdAt      time.Time
}

func NewPartner(
	name, contactPhone, code string,
	discountPct, commissionPct Percent,
	expiresAt *time.Time,
	maxUses *int,
) (*Partner, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	return &Partner{
		id:            uuid.New(),
		name:          name,
		contactPhone:  contactPhone,
		code:          code,
		discountPct:   discountPct,
		commissionPct: commissionPct,
		expiresAt:     expiresAt,
		maxUses:       maxUses,
	}, nil
}

func ReconstructPartner(
	id uuid.UUID,
	name, contactPhone, code string,
	discountPct, commissionPct Percent,
	expiresAt *time.Time,
	maxUses *int,
	telegramChatID *int64,
	createdAt time.Time,
) *Partner {
	return &Partner{
		id:             id,
		name:           name,
		contactPhone:   contactPhone,
		code:           code,
		discountPct:    discountPct,
		commissionPct:  commissionPct,
		expiresAt:      expiresAt,
		maxUses:        maxUses,
		telegramChatID: telegramChatID,
		createdAt:      createdAt,
	}
}

// ValidateActiveAt checks expiry and the redemption-count cap. The
// caller supplies the current redemption count; the partner itself
// holds no derived state.
func (p *Partner) ValidateActiveAt(now time.Time, redemptionCount int) error {
	if p.expiresAt != nil && p.expiresAt.Before(now) {
		return ErrPartnerExpired
	}
	if p.maxUses != nil && redemptionCount >= *p.maxUses {
		return ErrUsesExhausted
	}
	return nil
}

func (p *Partner) MatchesCode(code string) bool {
	return strings.EqualFold(p.code, strings.TrimSpace(code))
}

// IsOwnPhone applies the self-referral guard to a customer phone.
func (p *Partner) IsOwnPhone(customerPhone string) bool {
	return SamePhone(p.contactPhone, customerPhone)
}

func (p *Partner) ID() uuid.UUID          { return p.id }
func (p *Partner) Name() string           { return p.name }
func (p *Partner) ContactPhone() string   { return p.contactPhone }
func (p *Partner) Code() string           { return p.code }
func (p *Partner) DiscountPct() Percent   { return p.discountPct }
func (p *Partner) CommissionPct() Percent { return p.commissionPct }
func (p *Partner) ExpiresAt() *time.Time  { return p.expiresAt }
func (p *Partner) MaxUses() *int          { return p.maxUses }
func (p *Partner) TelegramChatID() *int64 { return p.telegramChatID }
func (p *Partner) CreatedAt() time.Time   { return p.createdAt }
