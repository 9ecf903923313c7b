package response

import (
	"github.com/google/uuid"
)

type CreateAppointmentResponse struct {
	ID uuid.UUID `json:"id"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
