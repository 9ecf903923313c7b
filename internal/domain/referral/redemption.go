package referral

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyPaid       = errors.New("redemption already paid")
	ErrInvalidRedemption = errors.New("invalid redemption")
)

type RedemptionStatus string

const (
	RedemptionPending RedemptionStatus = "pending"
	RedemptionAccrued RedemptionStatus = "accrued"
	RedemptionPaid    RedemptionStatus = "paid"
)

func (s RedemptionStatus) IsValid() bool {
	switch s {
	case RedemptionPending, RedemptionAccrued, RedemptionPaid:
		return true
	default:
		return false
	}
}

// Redemption is one ledger row tying a partner to an appointment.
// A positive commission is an earning; a negative one records credit
// consumed against the booking. At most one row exists per
// (partner, appointment) pair.
type Redemption struct {
	id              uuid.UUID
	partnerID       uuid.UUID
	appointmentID   uuid.UUID
	customerPhone   string
	discountCents   int64
	commissionCents int64
	status          RedemptionStatus
	paidAt          *time.Time
	createdAt       time.Time
}

// NewEarning records a pending commission for a referred booking.
func NewEarning(partnerID, appointmentID uuid.UUID, customerPhone string, discountCents, commissionCents int64) (*Redemption, error) {
	if discountCents < 0 || commissionCents < 0 {
		return nil, ErrInvalidRedemption
	}
	return &Redemption{
		id:              uuid.New(),
		partnerID:       partnerID,
		appointmentID:   appointmentID,
		customerPhone:   customerPhone,
		discountCents:   discountCents,
		commissionCents: commissionCents,
		status:          RedemptionPending,
	}, nil
}

// NewConsumption records spent credit: born paid, with a negative
// commission amount.
func NewConsumption(partnerID, appointmentID uuid.UUID, customerPhone string, consumedCents int64, now time.Time) (*Redemption, error) {
	if consumedCents <= 0 {
		return nil, ErrInvalidRedemption
	}
	paidAt := now
	return &Redemption{
		id:              uuid.New(),
		partnerID:       partnerID,
		appointmentID:   appointmentID,
		customerPhone:   customerPhone,
		discountCents:   consumedCents,
		commissionCents: -consumedCents,
		status:          RedemptionPaid,
		paidAt:          &paidAt,
	}, nil
}

func ReconstructRedemption(
	id, partnerID, appointmentID uuid.UUID,
	customerPhone string,
	discountCents, commissionCents int64,
	status RedemptionStatus,
	paidAt *time.Time,
	createdAt time.Time,
) *Redemption {
	return &Redemption{
		id:              id,
		partnerID:       partnerID,
		appointmentID:   appointmentID,
		customerPhone:   customerPhone,
		discountCents:   discountCents,
		commissionCents: commissionCents,
		status:          status,
		paidAt:          paidAt,
		createdAt:       createdAt,
	}
}

func (r *Redemption) IsConsumption() bool {
	return r.commissionCents < 0
}

// Accrue confirms the earning once the appointment is done. No-op when
// the row already accrued or was paid out.
func (r *Redemption) Accrue() bool {
	if r.status != RedemptionPending {
		return false
	}
	r.status = RedemptionAccrued
	return true
}

// ResetToPending rewinds a non-paid earning when its appointment is
// cancelled. Paid rows stay paid.
func (r *Redemption) ResetToPending() bool {
	if r.status == RedemptionPaid || r.status == RedemptionPending {
		return false
	}
	r.status = RedemptionPending
	r.paidAt = nil
	return true
}

// MarkPaid is the administrative payout; terminal for automatic
// transitions.
func (r *Redemption) MarkPaid(now time.Time) error {
	if r.status == RedemptionPaid {
		return ErrAlreadyPaid
	}
	r.status = RedemptionPaid
	r.paidAt = &now
	return nil
}

func (r *Redemption) ID() uuid.UUID            { return r.id }
func (r *Redemption) PartnerID() uuid.UUID     { return r.partnerID }
func (r *Redemption) AppointmentID() uuid.UUID { return r.appointmentID }
func (r *Redemption) CustomerPhone() string    { return r.customerPhone }
func (r *Redemption) DiscountCents() int64     { return r.discountCents }
func (r *Redemption) CommissionCents() int64   { return r.commissionCents }
func (r *Redemption) Status() RedemptionStatus { return r.status }
func (r *Redemption) PaidAt() *time.Time       { return r.paidAt }
func (r *Redemption) CreatedAt() time.Time     { return r.createdAt }

// Balance is the recomputed-on-read view over a partner's redemption
// rows. It is never stored; see the ledger for the locking story.
type Balance struct {
	EarnedAccruedCents int64
	EarnedPendingCents int64
	SpentCents         int64
	AvailableCents     int64
	PotentialCents     int64
}

// ComputeBalance folds redemption rows into the aggregate view.
func ComputeBalance(rows []*Redemption) Balance {
	var b Balance
	for _, r := range rows {
		switch {
		case r.commissionCents < 0:
			b.SpentCents += -r.commissionCents
		case r.status == RedemptionAccrued:
			b.EarnedAccruedCents += r.commissionCents
		case r.status == RedemptionPending:
			b.EarnedPendingCents += r.commissionCents
		}
	}
	b.AvailableCents = b.EarnedAccruedCents - b.SpentCents
	b.PotentialCents = b.EarnedAccruedCents + b.EarnedPendingCents - b.SpentCents
	return b
}
