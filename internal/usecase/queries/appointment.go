package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AppointmentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*AppointmentView, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	repo AppointmentViewRepo
}

func NewAppointmentQueries(repo AppointmentViewRepo) AppointmentQueries {
	return &appointmentQueriesImpl{repo: repo}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *appointmentQueriesImpl) ListByDateRange(ctx context.Context, from, to time.Time) ([]*AppointmentView, error) {
	return q.repo.FindByDateRange(ctx, from, to)
}
