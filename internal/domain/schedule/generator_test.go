//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"repairbook/internal/domain/booking"
	"repairbook/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-08-31 is a Monday.
var monday = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func newGenerator(ceiling int) schedule.Generator {
	return schedule.Generator{
		GridStep: time.Hour,
		Ceiling:  ceiling,
		Location: time.UTC,
	}
}

func workingHour(t *testing.T, weekday, startMin, endMin int) schedule.WorkingHour {
	t.Helper()
	wh, err := schedule.NewWorkingHour(weekday, startMin, endMin)
	require.NoError(t, err)
	return wh
}

func busySlot(t *testing.T, start time.Time, d time.Duration) booking.TimeSlot {
	t.Helper()
	s, err := booking.NewTimeSlotFromDuration(start, d)
	require.NoError(t, err)
	return s
}

func TestGenerateWalksGridWithinWindow(t *testing.T) {
	// Monday 10:00-13:00, 60-minute service: candidates 10:00, 11:00, 12:00.
	rules := []schedule.WorkingHour{workingHour(t, 0, 600, 780)}
	now := monday.Add(-24 * time.Hour)

	slots, err := newGenerator(1).Generate(rules, nil, now, monday, 1, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		monday.Add(10 * time.Hour),
		monday.Add(11 * time.Hour),
		monday.Add(12 * time.Hour),
	}, slots)
}

func TestGenerateRespectsDurationFit(t *testing.T) {
	// 90-minute service in a 10:00-13:00 window: 12:00 start would end 13:30.
	rules := []schedule.WorkingHour{workingHour(t, 0, 600, 780)}
	now := monday.Add(-24 * time.Hour)

	slots, err := newGenerator(1).Generate(rules, nil, now, monday, 1, 90*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		monday.Add(10 * time.Hour),
		monday.Add(11 * time.Hour),
	}, slots)
}

func TestGenerateDiscardsPastCandidates(t *testing.T) {
	rules := []schedule.WorkingHour{workingHour(t, 0, 600, 780)}
	now := monday.Add(10*time.Hour + 30*time.Minute)

	slots, err := newGenerator(1).Generate(rules, nil, now, monday, 1, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		monday.Add(11 * time.Hour),
		monday.Add(12 * time.Hour),
	}, slots)
}

func TestGenerateCollapsesDuplicatesAcrossRules(t *testing.T) {
	// Two overlapping Monday rules produce the 11:00 candidate twice.
	rules := []schedule.WorkingHour{
		workingHour(t, 0, 600, 720), // 10:00-12:00
		workingHour(t, 0, 660, 780), // 11:00-13:00
	}
	now := monday.Add(-24 * time.Hour)

	slots, err := newGenerator(1).Generate(rules, nil, now, monday, 1, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		monday.Add(10 * time.Hour),
		monday.Add(11 * time.Hour),
		monday.Add(12 * time.Hour),
	}, slots)
}

func TestGenerateFiltersFullSlots(t *testing.T) {
	rules := []schedule.WorkingHour{workingHour(t, 0, 600, 780)}
	now := monday.Add(-24 * time.Hour)
	busy := []booking.TimeSlot{
		busySlot(t, monday.Add(11*time.Hour), time.Hour),
	}

	slots, err := newGenerator(1).Generate(rules, busy, now, monday, 1, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		monday.Add(10 * time.Hour),
		monday.Add(12 * time.Hour),
	}, slots)
}

func TestGenerateCeilingAboveOne(t *testing.T) {
	rules := []schedule.WorkingHour{workingHour(t, 0, 600, 720)}
	now := monday.Add(-24 * time.Hour)
	busy := []booking.TimeSlot{
		busySlot(t, monday.Add(10*time.Hour), time.Hour),
	}

	slots, err := newGenerator(2).Generate(rules, busy, now, monday, 1, time.Hour)
	require.NoError(t, err)

	// one existing booking at 10:00 still leaves room under ceiling=2
	assert.Equal(t, []time.Time{
		monday.Add(10 * time.Hour),
		monday.Add(11 * time.Hour),
	}, slots)
}

func TestGenerateAppliesBuffers(t *testing.T) {
	gen := newGenerator(1)
	gen.PrepBuffer = 30 * time.Minute

	rules := []schedule.WorkingHour{workingHour(t, 0, 600, 780)}
	now := monday.Add(-24 * time.Hour)
	// booking ends 10:30; padded 11:00 candidate starts at 10:30 and touches it only
	busy := []booking.TimeSlot{
		busySlot(t, monday.Add(10*time.Hour), 31*time.Minute),
	}

	slots, err := gen.Generate(rules, busy, now, monday, 1, time.Hour)
	require.NoError(t, err)

	// 10:00 overlaps the booking outright; 11:00 collides through its prep buffer
	assert.Equal(t, []time.Time{
		monday.Add(12 * time.Hour),
	}, slots)
}

func TestGenerateSpansMultipleDays(t *testing.T) {
	rules := []schedule.WorkingHour{
		workingHour(t, 0, 600, 660), // Monday 10:00-11:00
		workingHour(t, 1, 540, 600), // Tuesday 9:00-10:00
	}
	now := monday.Add(-24 * time.Hour)

	slots, err := newGenerator(1).Generate(rules, nil, now, monday, 7, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		monday.Add(10 * time.Hour),
		monday.AddDate(0, 0, 1).Add(9 * time.Hour),
	}, slots)
}

func TestGenerateInputValidation(t *testing.T) {
	rules := []schedule.WorkingHour{workingHour(t, 0, 600, 780)}
	now := monday

	_, err := newGenerator(1).Generate(rules, nil, now, monday, 1, 0)
	assert.ErrorIs(t, err, schedule.ErrInvalidDuration)

	_, err = newGenerator(1).Generate(rules, nil, now, monday, 1, -time.Hour)
	assert.ErrorIs(t, err, schedule.ErrInvalidDuration)

	gen := newGenerator(1)
	gen.GridStep = 30 * time.Second
	_, err = gen.Generate(rules, nil, now, monday, 1, time.Hour)
	assert.ErrorIs(t, err, schedule.ErrInvalidGridStep)
}

func TestNewWorkingHourValidation(t *testing.T) {
	_, err := schedule.NewWorkingHour(7, 0, 60)
	assert.ErrorIs(t, err, schedule.ErrInvalidWindow)

	_, err = schedule.NewWorkingHour(0, 600, 600)
	assert.ErrorIs(t, err, schedule.ErrInvalidWindow)

	_, err = schedule.NewWorkingHour(0, 600, 25*60)
	assert.ErrorIs(t, err, schedule.ErrInvalidWindow)
}

func TestCountOverlapping(t *testing.T) {
	query := busySlot(t, monday.Add(10*time.Hour), time.Hour)

	busy := []booking.TimeSlot{
		busySlot(t, monday.Add(9*time.Hour), time.Hour),                // touches only
		busySlot(t, monday.Add(9*time.Hour+30*time.Minute), time.Hour), // overlaps
		busySlot(t, monday.Add(10*time.Hour), 30*time.Minute),          // inside
		busySlot(t, monday.Add(11*time.Hour), time.Hour),               // touches only
	}

	assert.Equal(t, 2, schedule.CountOverlapping(busy, query))
	assert.True(t, schedule.HasCapacity(busy, query, 3))
	assert.False(t, schedule.HasCapacity(busy, query, 2))
}
