//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repairbook/internal/domain/booking"
	"repairbook/internal/domain/schedule"
	"repairbook/internal/pkg/clock"
	"repairbook/internal/pkg/config"
	"repairbook/internal/usecase/queries"
)

var testNow = time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)

type fakeSlotStore struct {
	offer *queries.OfferInfo
	rules []schedule.WorkingHour
	busy  []booking.TimeSlot

	offerErr error

	busyFrom, busyTo time.Time
}

func (f *fakeSlotStore) ResolveOffer(_ context.Context, _, _ string) (*queries.OfferInfo, error) {
	if f.offerErr != nil {
		return nil, f.offerErr
	}
	return f.offer, nil
}

func (f *fakeSlotStore) WorkingHours(_ context.Context) ([]schedule.WorkingHour, error) {
	return f.rules, nil
}

func (f *fakeSlotStore) BusySlots(_ context.Context, from, to time.Time) ([]booking.TimeSlot, error) {
	f.busyFrom, f.busyTo = from, to
	return f.busy, nil
}

func slotsConfig() config.BookingConfig {
	return config.BookingConfig{
		TimeZone:           "UTC",
		GridStepMin:        60,
		ConcurrencyCeiling: 1,
		MaxDaysAhead:       30,
	}
}

func newSlotStore(t *testing.T) *fakeSlotStore {
	t.Helper()
	var rules []schedule.WorkingHour
	for wd := 0; wd < 7; wd++ {
		rule, err := schedule.NewWorkingHour(wd, 10*60, 13*60) // 10:00-13:00
		require.NoError(t, err)
		rules = append(rules, rule)
	}
	return &fakeSlotStore{
		offer: &queries.OfferInfo{
			DeviceModelSlug: "iphone-14",
			RepairTypeSlug:  "screen",
			DurationMin:     60,
			PriceCents:      250000,
		},
		rules: rules,
	}
}

func TestListAvailable(t *testing.T) {
	t.Run("groups starts by day and carries the offer snapshot", func(t *testing.T) {
		store := newSlotStore(t)
		q, err := queries.NewSlotQueries(store, clock.NewFakeClock(testNow), slotsConfig())
		require.NoError(t, err)

		view, err := q.ListAvailable(context.Background(), "iphone-14", "screen", 2)

		require.NoError(t, err)
		assert.Equal(t, "iphone-14", view.DeviceModel)
		assert.Equal(t, "screen", view.RepairType)
		assert.Equal(t, 60, view.DurationMin)
		assert.Equal(t, int64(250000), view.PriceCents)

		// Today's 10:00-12:00 starts are already past noon, so only the
		// second day has openings: 10:00, 11:00, 12:00 (13:00 would run
		// past closing).
		require.Len(t, view.Days, 1)
		assert.Equal(t, "2026-09-02", view.Days[0].Date)
		require.Len(t, view.Days[0].Slots, 3)
		assert.True(t, view.Days[0].Slots[0].Equal(time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("busy intervals at the ceiling suppress their starts", func(t *testing.T) {
		store := newSlotStore(t)
		taken, err := booking.NewTimeSlotFromDuration(time.Date(2026, 9, 2, 11, 0, 0, 0, time.UTC), time.Hour)
		require.NoError(t, err)
		store.busy = []booking.TimeSlot{taken}

		q, err := queries.NewSlotQueries(store, clock.NewFakeClock(testNow), slotsConfig())
		require.NoError(t, err)

		view, err := q.ListAvailable(context.Background(), "iphone-14", "screen", 2)

		require.NoError(t, err)
		require.Len(t, view.Days, 1)
		require.Len(t, view.Days[0].Slots, 2)
		assert.True(t, view.Days[0].Slots[0].Equal(time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)))
		assert.True(t, view.Days[0].Slots[1].Equal(time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("buffers pad candidates against raw busy intervals", func(t *testing.T) {
		store := newSlotStore(t)
		// 12:00-13:00 probes [11:50, 13:10) with 10-minute buffers: a
		// raw appointment starting 13:05 intrudes into the cleanup gap
		// and suppresses it; one starting 13:10 does not.
		taken, err := booking.NewTimeSlotFromDuration(time.Date(2026, 9, 2, 13, 5, 0, 0, time.UTC), time.Hour)
		require.NoError(t, err)
		store.busy = []booking.TimeSlot{taken}

		cfg := slotsConfig()
		cfg.PrepBufferMin = 10
		cfg.CleanupBufferMin = 10
		q, err := queries.NewSlotQueries(store, clock.NewFakeClock(testNow), cfg)
		require.NoError(t, err)

		view, err := q.ListAvailable(context.Background(), "iphone-14", "screen", 2)

		require.NoError(t, err)
		require.Len(t, view.Days, 1)
		require.Len(t, view.Days[0].Slots, 2)
		assert.True(t, view.Days[0].Slots[1].Equal(time.Date(2026, 9, 2, 11, 0, 0, 0, time.UTC)))

		clear, err := booking.NewTimeSlotFromDuration(time.Date(2026, 9, 2, 13, 10, 0, 0, time.UTC), time.Hour)
		require.NoError(t, err)
		store.busy = []booking.TimeSlot{clear}

		view, err = q.ListAvailable(context.Background(), "iphone-14", "screen", 2)

		require.NoError(t, err)
		require.Len(t, view.Days, 1)
		assert.Len(t, view.Days[0].Slots, 3)
	})

	t.Run("days out of range falls back to the horizon", func(t *testing.T) {
		store := newSlotStore(t)
		q, err := queries.NewSlotQueries(store, clock.NewFakeClock(testNow), slotsConfig())
		require.NoError(t, err)

		_, err = q.ListAvailable(context.Background(), "iphone-14", "screen", 500)

		require.NoError(t, err)
		// Busy window spans the horizon plus a day on each edge.
		assert.True(t, store.busyFrom.Equal(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)))
		assert.True(t, store.busyTo.Equal(time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("offer errors propagate untouched", func(t *testing.T) {
		store := newSlotStore(t)
		store.offerErr = assert.AnError
		q, err := queries.NewSlotQueries(store, clock.NewFakeClock(testNow), slotsConfig())
		require.NoError(t, err)

		_, err = q.ListAvailable(context.Background(), "iphone-14", "screen", 2)

		assert.ErrorIs(t, err, assert.AnError)
	})
}
