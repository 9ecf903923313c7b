package booking

import (
	"errors"
	"time"
)

var ErrInvalidTimeSlot = errors.New("invalid time slot")

// TimeSlot is a half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func NewTimeSlotFromDuration(start time.Time, d time.Duration) (TimeSlot, error) {
	if d <= 0 {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: start.Add(d)}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps uses strict half-open semantics: back-to-back slots do not
// overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

// Padded widens the slot by prep/cleanup buffers for capacity checks.
func (ts TimeSlot) Padded(prep, cleanup time.Duration) TimeSlot {
	return TimeSlot{
		start: ts.start.Add(-prep),
		end:   ts.end.Add(cleanup),
	}
}
