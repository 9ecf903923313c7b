package referral

import (
	"errors"
	"fmt"
)

var ErrInvalidPercent = errors.New("percent out of range")

// Percent is a percentage with two decimal places stored in basis
// points: 500 = 5.00%. Integer-only arithmetic keeps the two-decimal
// money math exact.
type Percent int32

func NewPercent(basisPoints int32) (Percent, error) {
	if basisPoints < 0 || basisPoints > 10000 {
		return 0, ErrInvalidPercent
	}
	return Percent(basisPoints), nil
}

func (p Percent) BasisPoints() int32 {
	return int32(p)
}

func (p Percent) String() string {
	return fmt.Sprintf("%d.%02d%%", p/100, p%100)
}

// ApplyTo computes round-half-up(cents * p / 100) at cent precision.
// cents must be non-negative, which booking pricing guarantees.
func (p Percent) ApplyTo(cents int64) int64 {
	return (cents*int64(p) + 5000) / 10000
}

// CalcDiscountAndCommission derives both ledger amounts for a booking
// priced at priceCents. Both round half-up to whole cents.
func CalcDiscountAndCommission(priceCents int64, discountPct, commissionPct Percent) (discount, commission int64) {
	return discountPct.ApplyTo(priceCents), commissionPct.ApplyTo(priceCents)
}

// FormatCents renders a cent amount as a decimal string, e.g. -2050 →
// "-20.50". Used by notifications and reports.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
