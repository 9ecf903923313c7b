package schedule

import (
	"errors"
	"time"

	"repairbook/internal/domain/booking"

	"github.com/google/uuid"
)

var ErrInvalidWindow = errors.New("invalid working-hour window")

// WorkingHour is a weekly calendar rule: a window of minutes-from-midnight
// on one weekday (0 = Monday .. 6 = Sunday). Several rules may cover the
// same weekday (split shifts); overlapping rules are not reconciled here,
// the generator collapses duplicate candidates instead.
type WorkingHour struct {
	ID       uuid.UUID
	Weekday  int
	StartMin int
	EndMin   int
}

func NewWorkingHour(weekday, startMin, endMin int) (WorkingHour, error) {
	if weekday < 0 || weekday > 6 {
		return WorkingHour{}, ErrInvalidWindow
	}
	if startMin < 0 || endMin > 24*60 || startMin >= endMin {
		return WorkingHour{}, ErrInvalidWindow
	}
	return WorkingHour{ID: uuid.New(), Weekday: weekday, StartMin: startMin, EndMin: endMin}, nil
}

// Matches reports whether the rule applies to the given date.
// time.Weekday counts from Sunday; rules count from Monday.
func (wh WorkingHour) Matches(date time.Time) bool {
	return mondayWeekday(date) == wh.Weekday
}

// WindowOn materializes the rule as a concrete slot on a calendar date.
func (wh WorkingHour) WindowOn(date time.Time, loc *time.Location) booking.TimeSlot {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, wh.StartMin, 0, 0, loc)
	end := time.Date(y, m, d, 0, wh.EndMin, 0, 0, loc)
	slot, _ := booking.NewTimeSlot(start, end)
	return slot
}

func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
