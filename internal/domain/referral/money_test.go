//go:build unit

package referral_test

import (
	"testing"

	"repairbook/internal/domain/referral"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPercent(t *testing.T) {
	testCases := []struct {
		name    string
		bp      int32
		wantErr bool
	}{
		{name: "zero", bp: 0},
		{name: "five percent", bp: 500},
		{name: "hundred percent", bp: 10000},
		{name: "negative", bp: -1, wantErr: true},
		{name: "over hundred", bp: 10001, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := referral.NewPercent(tc.bp)
			if tc.wantErr {
				require.ErrorIs(t, err, referral.ErrInvalidPercent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.bp, p.BasisPoints())
		})
	}
}

func TestPercentApplyTo(t *testing.T) {
	testCases := []struct {
		name  string
		cents int64
		bp    int32
		want  int64
	}{
		{name: "5% of 100.00", cents: 10000, bp: 500, want: 500},
		{name: "5% of 99.99 is 4.9995, rounds up", cents: 9999, bp: 500, want: 500},
		{name: "5% of 99.89 is 4.9945, rounds down", cents: 9989, bp: 500, want: 499},
		{name: "exact half rounds up", cents: 1, bp: 5000, want: 1},
		{name: "2.5% of 10.10 is 25.25 cents", cents: 1010, bp: 250, want: 25},
		{name: "zero price", cents: 0, bp: 500, want: 0},
		{name: "zero percent", cents: 10000, bp: 0, want: 0},
		{name: "100% identity", cents: 12345, bp: 10000, want: 12345},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := referral.NewPercent(tc.bp)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.ApplyTo(tc.cents))
		})
	}
}

func TestCalcDiscountAndCommission(t *testing.T) {
	discountPct, err := referral.NewPercent(500)
	require.NoError(t, err)
	commissionPct, err := referral.NewPercent(500)
	require.NoError(t, err)

	discount, commission := referral.CalcDiscountAndCommission(10000, discountPct, commissionPct)

	assert.Equal(t, int64(500), discount)
	assert.Equal(t, int64(500), commission)
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "95.00", referral.FormatCents(9500))
	assert.Equal(t, "0.05", referral.FormatCents(5))
	assert.Equal(t, "-20.50", referral.FormatCents(-2050))
	assert.Equal(t, "0.00", referral.FormatCents(0))
}
