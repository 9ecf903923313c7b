package shared

import (
	"context"
	"time"

	"repairbook/internal/domain/booking"
	"repairbook/internal/domain/referral"

	"github.com/google/uuid"
)

// UnitOfWork runs a function inside one store transaction. Everything
// reached through Tx shares that transaction; an error aborts the whole
// unit, so a failed booking never leaves a partial appointment or
// redemption behind.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Appointments() AppointmentRepository
	Partners() PartnerRepository
	Redemptions() RedemptionRepository
	SlotLocks() SlotLocker
}

type AppointmentRepository interface {
	Create(ctx context.Context, a *booking.Appointment) error
	// GetForUpdate loads the row with SELECT ... FOR UPDATE so a status
	// transition and its ledger reaction are serialized per appointment.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Appointment, error)
	Update(ctx context.Context, a *booking.Appointment) error
	// CountActiveOverlapping counts new/confirmed/done appointments whose
	// [start,end) interval strictly overlaps the given one, across every
	// device/repair combination.
	CountActiveOverlapping(ctx context.Context, start, end time.Time) (int, error)
}

type PartnerRepository interface {
	FindByCode(ctx context.Context, code string) (*referral.Partner, error)
	// FindByNormalizedPhone matches the last nine digits of partner
	// contact numbers against the given digit string.
	FindByNormalizedPhone(ctx context.Context, digits string) (*referral.Partner, error)
	// LockByID takes the partner row FOR UPDATE. Every balance-affecting
	// mutation of that partner's redemptions happens under this lock,
	// which is what makes read-then-spend safe.
	LockByID(ctx context.Context, id uuid.UUID) error
	CountRedemptions(ctx context.Context, partnerID uuid.UUID) (int, error)
}

type RedemptionRepository interface {
	Create(ctx context.Context, r *referral.Redemption) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*referral.Redemption, error)
	ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*referral.Redemption, error)
	ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*referral.Redemption, error)
	Update(ctx context.Context, r *referral.Redemption) error
	Delete(ctx context.Context, id uuid.UUID) error
	HasConsumptionFor(ctx context.Context, partnerID, appointmentID uuid.UUID) (bool, error)
}

// SlotLocker serializes bookings that target the same time region. Row
// locks cannot serialize inserts into an empty interval, so the
// implementation takes advisory locks on the hour buckets the interval
// covers.
type SlotLocker interface {
	AcquireInterval(ctx context.Context, start, end time.Time) error
}
