package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "repairbook/internal/handler/dto/request"
	resdto "repairbook/internal/handler/dto/response"
	"repairbook/internal/handler/httperr"
	"repairbook/internal/infra"
	"repairbook/internal/pkg/errs"
	"repairbook/internal/usecase/commands"
	"repairbook/internal/usecase/queries"
)

type AppointmentHandler struct {
	bookingCommands    commands.BookingCommands
	appointmentQueries queries.AppointmentQueries
}

func NewAppointmentHandler(
	bookingCommands commands.BookingCommands,
	appointmentQueries queries.AppointmentQueries,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookingCommands:    bookingCommands,
		appointmentQueries: appointmentQueries,
	}
}

// @Summary Create appointment
// @Description Book a repair slot; referral code is optional and never blocks the booking
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.CreateAppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.bookingCommands.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrStaleSlot):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Requested slot is in the past")
		case errs.Is(err, commands.ErrOutOfWindow):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Requested slot is outside the booking window")
		case errs.Is(err, commands.ErrSlotTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Requested slot is no longer available")
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Device model or repair type not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create appointment")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateAppointmentResponse{ID: id})
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} queries.AppointmentView
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load appointment")
		return
	}

	c.JSON(http.StatusOK, view)
}
