package catalog

import (
	"github.com/google/uuid"
)

type Category string

const (
	CategoryPhone  Category = "phone"
	CategoryTablet Category = "tablet"
	CategoryWatch  Category = "watch"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryPhone, CategoryTablet, CategoryWatch:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

type Brand struct {
	ID   uuid.UUID
	Name string
	Slug string
}

type DeviceModel struct {
	ID       uuid.UUID
	BrandID  uuid.UUID
	Name     string
	Slug     string
	Category Category
}

type RepairType struct {
	ID                 uuid.UUID
	Name               string
	Slug               string
	DefaultDurationMin int
}

// RepairOffer is the bookable (device model, repair type) pair. Price and
// duration are copied onto the appointment at booking time and never
// re-derived from the offer afterwards.
type RepairOffer struct {
	ID            uuid.UUID
	DeviceModelID uuid.UUID
	RepairTypeID  uuid.UUID
	PriceCents    int64
	DurationMin   int
	Active        bool
}

// EffectiveDurationMin resolves the appointment duration for an offer,
// falling back to the repair type default when the offer carries none.
func EffectiveDurationMin(offer *RepairOffer, repairType *RepairType) int {
	if offer != nil && offer.Active && offer.DurationMin > 0 {
		return offer.DurationMin
	}
	return repairType.DefaultDurationMin
}

// EffectivePriceCents resolves the booking price. A model without an
// active offer books at zero, matching the catalog's behavior of still
// accepting the appointment.
func EffectivePriceCents(offer *RepairOffer) int64 {
	if offer != nil && offer.Active {
		return offer.PriceCents
	}
	return 0
}
