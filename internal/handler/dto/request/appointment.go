package request

import "time"

type CreateAppointmentRequest struct {
	DeviceModelSlug string    `json:"device_model" binding:"required"`
	RepairTypeSlug  string    `json:"repair_type" binding:"required"`
	StartAt         time.Time `json:"start_at" binding:"required"`
	CustomerName    string    `json:"customer_name" binding:"required"`
	CustomerPhone   string    `json:"customer_phone" binding:"required"`
	ReferralCode    string    `json:"referral_code"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new confirmed done cancelled"`
}
