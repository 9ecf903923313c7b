package schedule

import (
	"errors"
	"sort"
	"time"

	"repairbook/internal/domain/booking"
)

var (
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidGridStep = errors.New("grid step must be at least one minute")
)

// Generator produces candidate start instants for a date window. It is a
// pure function of its inputs plus the busy-interval snapshot, so the
// result is advisory only: the booking transaction re-validates capacity
// under a lock.
type Generator struct {
	GridStep      time.Duration
	PrepBuffer    time.Duration
	CleanupBuffer time.Duration
	Ceiling       int
	Location      *time.Location
}

// Generate walks every calendar rule matching each date in
// [startDate, startDate+days), stepping the grid from the rule's start.
// A candidate survives when the service fits inside the rule window,
// starts at or after now, and its buffered interval still has capacity.
// Duplicate instants from overlapping rules are collapsed; output is
// ascending.
func (g Generator) Generate(
	rules []WorkingHour,
	busy []booking.TimeSlot,
	now time.Time,
	startDate time.Time,
	days int,
	duration time.Duration,
) ([]time.Time, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if g.GridStep < time.Minute {
		return nil, ErrInvalidGridStep
	}

	loc := g.Location
	if loc == nil {
		loc = time.Local
	}

	seen := make(map[int64]struct{})
	var candidates []time.Time

	for offset := 0; offset < days; offset++ {
		date := startDate.AddDate(0, 0, offset)
		for _, rule := range rules {
			if !rule.Matches(date) {
				continue
			}
			window := rule.WindowOn(date, loc)

			for start := window.Start(); !start.Add(duration).After(window.End()); start = start.Add(g.GridStep) {
				if start.Before(now) {
					continue
				}
				if _, dup := seen[start.Unix()]; dup {
					continue
				}

				slot, err := booking.NewTimeSlotFromDuration(start, duration)
				if err != nil {
					return nil, err
				}
				if !HasCapacity(busy, slot.Padded(g.PrepBuffer, g.CleanupBuffer), g.Ceiling) {
					continue
				}

				seen[start.Unix()] = struct{}{}
				candidates = append(candidates, start)
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Before(candidates[j])
	})
	return candidates, nil
}
