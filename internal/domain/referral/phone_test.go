//go:build unit

package referral_test

import (
	"testing"

	"repairbook/internal/domain/referral"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "formatted international", raw: "+375 (29) 123-45-67", want: "291234567"},
		{name: "short local", raw: "123-45-67", want: "1234567"},
		{name: "digits only kept as-is", raw: "291234567", want: "291234567"},
		{name: "empty", raw: "", want: ""},
		{name: "no digits", raw: "call me", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, referral.NormalizePhone(tc.raw))
		})
	}
}

func TestSamePhone(t *testing.T) {
	assert.True(t, referral.SamePhone("+375291234567", "8 (029) 123-45-67"))
	assert.True(t, referral.SamePhone("291234567", "+375 29 123 45 67"))
	assert.False(t, referral.SamePhone("291234567", "291234568"))
	assert.False(t, referral.SamePhone("", ""))
	assert.False(t, referral.SamePhone("no digits", "no digits"))
}
