package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidDiscount   = errors.New("discount out of range")
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Customer struct {
	Name  string
	Phone string
}

// Appointment is the reservation aggregate. Price and duration are
// snapshots taken from the repair offer at creation; price_final always
// equals price_original minus discount.
type Appointment struct {
	id                 uuid.UUID
	deviceModelID      uuid.UUID
	repairTypeID       uuid.UUID
	technician         *string
	slot               TimeSlot
	customer           Customer
	referralCode       string
	priceOriginalCents int64
	discountCents      int64
	status             Status
	createdAt          time.Time
	updatedAt          time.Time
}

func NewAppointment(
	deviceModelID, repairTypeID uuid.UUID,
	slot TimeSlot,
	customer Customer,
	referralCode string,
	priceOriginalCents int64,
) (*Appointment, error) {
	if priceOriginalCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Appointment{
		id:                 uuid.New(),
		deviceModelID:      deviceModelID,
		repairTypeID:       repairTypeID,
		slot:               slot,
		customer:           customer,
		referralCode:       referralCode,
		priceOriginalCents: priceOriginalCents,
		discountCents:      0,
		status:             StatusNew,
	}, nil
}

func ReconstructAppointment(
	id, deviceModelID, repairTypeID uuid.UUID,
	technician *string,
	slot TimeSlot,
	customer Customer,
	referralCode string,
	priceOriginalCents, discountCents int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:                 id,
		deviceModelID:      deviceModelID,
		repairTypeID:       repairTypeID,
		technician:         technician,
		slot:               slot,
		customer:           customer,
		referralCode:       referralCode,
		priceOriginalCents: priceOriginalCents,
		discountCents:      discountCents,
		status:             status,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ApplyDiscount deducts an additional amount from the final price.
// The total discount can never exceed the original price.
func (a *Appointment) ApplyDiscount(cents int64) error {
	if cents < 0 || a.discountCents+cents > a.priceOriginalCents {
		return ErrInvalidDiscount
	}
	a.discountCents += cents
	return nil
}

// RefundDiscount gives back a previously applied discount amount,
// raising the final price. Used when a consumption redemption is
// reversed on cancellation.
func (a *Appointment) RefundDiscount(cents int64) error {
	if cents < 0 || cents > a.discountCents {
		return ErrInvalidDiscount
	}
	a.discountCents -= cents
	return nil
}

// Transition moves the appointment to a new status. Cancelled is
// terminal; everything else is an administrative decision.
func (a *Appointment) Transition(to Status) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if a.status == StatusCancelled && to != StatusCancelled {
		return ErrInvalidTransition
	}
	a.status = to
	return nil
}

func (a *Appointment) IsActive() bool {
	return a.status.IsActive()
}

func (a *Appointment) ID() uuid.UUID             { return a.id }
func (a *Appointment) DeviceModelID() uuid.UUID  { return a.deviceModelID }
func (a *Appointment) RepairTypeID() uuid.UUID   { return a.repairTypeID }
func (a *Appointment) Technician() *string       { return a.technician }
func (a *Appointment) Slot() TimeSlot            { return a.slot }
func (a *Appointment) Customer() Customer        { return a.customer }
func (a *Appointment) ReferralCode() string      { return a.referralCode }
func (a *Appointment) PriceOriginalCents() int64 { return a.priceOriginalCents }
func (a *Appointment) DiscountCents() int64      { return a.discountCents }
func (a *Appointment) Status() Status            { return a.status }
func (a *Appointment) CreatedAt() time.Time      { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time      { return a.updatedAt }

// PriceFinalCents is derived, never stored independently, so the
// pricing invariant holds after every mutation.
func (a *Appointment) PriceFinalCents() int64 {
	return a.priceOriginalCents - a.discountCents
}
