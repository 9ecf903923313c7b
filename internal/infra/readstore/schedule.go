package readstore

import (
	"context"
	"time"

	"repairbook/internal/domain/schedule"
	"repairbook/internal/infra/db"
	"repairbook/internal/infra/repository"
)

// ScheduleReadStore serves the booking command's out-of-transaction
// reads: calendar rules plus the optimistic capacity probe.
type ScheduleReadStore struct {
	slots *SlotReadStore
	appts *repository.AppointmentRepository
}

func NewScheduleReadStore(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{
		slots: NewSlotReadStore(dbtx),
		appts: repository.NewAppointmentRepository(dbtx),
	}
}

func (s *ScheduleReadStore) WorkingHours(ctx context.Context) ([]schedule.WorkingHour, error) {
	return s.slots.WorkingHours(ctx)
}

func (s *ScheduleReadStore) CountActiveOverlapping(ctx context.Context, start, end time.Time) (int, error) {
	return s.appts.CountActiveOverlapping(ctx, start, end)
}
