//go:build unit

package referral_test

import (
	"testing"
	"time"

	"repairbook/internal/domain/referral"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPartner(t *testing.T, expiresAt *time.Time, maxUses *int) *referral.Partner {
	t.Helper()
	pct, err := referral.NewPercent(500)
	require.NoError(t, err)
	p, err := referral.NewPartner("Seller", "+375291234567", "SELL5", pct, pct, expiresAt, maxUses)
	require.NoError(t, err)
	return p
}

func TestNewPartnerRejectsEmptyCode(t *testing.T) {
	pct, err := referral.NewPercent(500)
	require.NoError(t, err)

	_, err = referral.NewPartner("Seller", "", "   ", pct, pct, nil, nil)
	assert.ErrorIs(t, err, referral.ErrEmptyCode)
}

func TestPartnerValidateActiveAt(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	maxTwo := 2

	testCases := []struct {
		name            string
		expiresAt       *time.Time
		maxUses         *int
		redemptionCount int
		wantErr         error
	}{
		{name: "no limits"},
		{name: "not yet expired", expiresAt: &future},
		{name: "expired", expiresAt: &past, wantErr: referral.ErrPartnerExpired},
		{name: "under max uses", maxUses: &maxTwo, redemptionCount: 1},
		{name: "max uses reached", maxUses: &maxTwo, redemptionCount: 2, wantErr: referral.ErrUsesExhausted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPartner(t, tc.expiresAt, tc.maxUses)
			err := p.ValidateActiveAt(now, tc.redemptionCount)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPartnerMatchesCode(t *testing.T) {
	p := newTestPartner(t, nil, nil)

	assert.True(t, p.MatchesCode("sell5"))
	assert.True(t, p.MatchesCode("  SELL5  "))
	assert.False(t, p.MatchesCode("OTHER"))
}

func TestPartnerIsOwnPhone(t *testing.T) {
	p := newTestPartner(t, nil, nil)

	assert.True(t, p.IsOwnPhone("8 (029) 123-45-67"))
	assert.False(t, p.IsOwnPhone("+375291111111"))
}
