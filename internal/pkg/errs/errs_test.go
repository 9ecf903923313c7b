//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"repairbook/internal/pkg/errs"
)

func TestIs(t *testing.T) {
	sentinel := errs.New("invalid status transition")
	cause := errs.New("cancelled is terminal")

	t.Run("sees marks the standard library cannot", func(t *testing.T) {
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		assert.False(t, errors.Is(marked, sentinel),
			"if this starts matching, Is can collapse back onto the standard library")
	})

	t.Run("marking preserves the cause", func(t *testing.T) {
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(marked, cause))
	})

	t.Run("sees wrap chains", func(t *testing.T) {
		wrapped := errs.Wrap(sentinel, "changing status")

		assert.True(t, errs.Is(wrapped, sentinel))
		assert.False(t, errs.Is(wrapped, cause))
	})

	t.Run("mark on nil yields the sentinel itself", func(t *testing.T) {
		assert.True(t, errors.Is(errs.Mark(nil, sentinel), sentinel))
	})
}
