package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AppointmentView struct {
	ID                 uuid.UUID `json:"id"`
	DeviceModel        string    `json:"device_model"`
	RepairType         string    `json:"repair_type"`
	Technician         *string   `json:"technician,omitempty"`
	StartAt            time.Time `json:"start_at"`
	EndAt              time.Time `json:"end_at"`
	CustomerName       string    `json:"customer_name"`
	CustomerPhone      string    `json:"customer_phone"`
	ReferralCode       *string   `json:"referral_code,omitempty"`
	PriceOriginalCents int64     `json:"price_original_cents"`
	DiscountCents      int64     `json:"discount_cents"`
	PriceFinalCents    int64     `json:"price_final_cents"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

type SlotsView struct {
	DeviceModel string     `json:"device_model"`
	RepairType  string     `json:"repair_type"`
	DurationMin int        `json:"duration_min"`
	PriceCents  int64      `json:"price_cents"`
	Days        []DaySlots `json:"days"`
}

type DaySlots struct {
	Date  string      `json:"date"`
	Slots []time.Time `json:"slots"`
}

type BalanceView struct {
	PartnerName        string `json:"partner_name"`
	Code               string `json:"code"`
	EarnedAccruedCents int64  `json:"earned_accrued_cents"`
	EarnedPendingCents int64  `json:"earned_pending_cents"`
	SpentCents         int64  `json:"spent_cents"`
	AvailableCents     int64  `json:"available_cents"`
	PotentialCents     int64  `json:"potential_cents"`
}

type OperationView struct {
	ID              uuid.UUID  `json:"id"`
	AppointmentID   uuid.UUID  `json:"appointment_id"`
	Kind            string     `json:"kind"`
	DiscountCents   int64      `json:"discount_cents"`
	CommissionCents int64      `json:"commission_cents"`
	Status          string     `json:"status"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type BrandView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type DeviceModelView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Category string    `json:"category"`
}

type RepairView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	PriceCents  int64     `json:"price_cents"`
	DurationMin int       `json:"duration_min"`
}
