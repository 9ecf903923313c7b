package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"repairbook/internal/domain/schedule"
	"repairbook/internal/usecase/ledger"
)

// Write-side snapshots keep commands off the read-side query types.
type OfferSnapshot struct {
	DeviceModelID uuid.UUID
	RepairTypeID  uuid.UUID
	PriceCents    int64
	DurationMin   int
}

// CatalogReads resolves the bookable pair for a booking request. The
// snapshot carries the effective price and duration, with the repair
// type default already applied when the model has no explicit offer.
type CatalogReads interface {
	ResolveOffer(ctx context.Context, deviceModelSlug, repairTypeSlug string) (*OfferSnapshot, error)
}

// ScheduleReads supplies the calendar rules and the out-of-transaction
// capacity probe used for the optimistic pre-check before the booking
// transaction begins.
type ScheduleReads interface {
	WorkingHours(ctx context.Context) ([]schedule.WorkingHour, error)
	CountActiveOverlapping(ctx context.Context, start, end time.Time) (int, error)
}

// Notifier delivers fire-and-forget messages after commit. Failures are
// the notifier's problem; commands never observe them.
type Notifier interface {
	AppointmentCreated(info AppointmentNotice)
	AppointmentStatusChanged(info AppointmentNotice, oldStatus, newStatus string)
	LedgerEvents(events []ledger.Event)
}

// AppointmentNotice is the flattened appointment summary sent to chat
// notifications.
type AppointmentNotice struct {
	ID              uuid.UUID
	DeviceModelSlug string
	RepairTypeSlug  string
	StartAt         time.Time
	EndAt           time.Time
	CustomerName    string
	CustomerPhone   string
	ReferralCode    string
	PriceFinalCents int64
	DiscountCents   int64
}
