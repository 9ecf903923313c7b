package referral

import "strings"

// NormalizePhone strips everything but digits and keeps the last nine,
// enough to ignore country-code and formatting differences.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 9 {
		digits = digits[len(digits)-9:]
	}
	return digits
}

// SamePhone is the self-referral heuristic: two numbers are treated as
// the same person when their normalized forms match. It can false-match
// unrelated numbers sharing a nine-digit suffix; kept as-is on purpose.
func SamePhone(a, b string) bool {
	na, nb := NormalizePhone(a), NormalizePhone(b)
	return na != "" && na == nb
}
