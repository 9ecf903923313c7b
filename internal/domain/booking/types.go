package booking

type Status string

const (
	StatusNew       Status = "new"
	StatusConfirmed Status = "confirmed"
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusConfirmed, StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the appointment still occupies capacity.
// Cancelled appointments release their interval; done ones keep it so the
// historical record stays consistent with what was physically occupied.
func (s Status) IsActive() bool {
	return s == StatusNew || s == StatusConfirmed || s == StatusDone
}
