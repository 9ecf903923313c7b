package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"repairbook/internal/domain/referral"
	reqdto "repairbook/internal/handler/dto/request"
	"repairbook/internal/handler/httperr"
	"repairbook/internal/infra"
	"repairbook/internal/pkg/errs"
	"repairbook/internal/usecase/commands"
	"repairbook/internal/usecase/queries"
)

type AdminHandler struct {
	statusCommands     commands.StatusCommands
	redemptionCommands commands.RedemptionCommands
	appointmentQueries queries.AppointmentQueries
}

func NewAdminHandler(
	statusCommands commands.StatusCommands,
	redemptionCommands commands.RedemptionCommands,
	appointmentQueries queries.AppointmentQueries,
) *AdminHandler {
	return &AdminHandler{
		statusCommands:     statusCommands,
		redemptionCommands: redemptionCommands,
		appointmentQueries: appointmentQueries,
	}
}

// @Summary List appointments
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD, exclusive)"
// @Success 200 {array} queries.AppointmentView
// @Router /admin/appointments [get]
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be YYYY-MM-DD"})
		return
	}

	rows, err := h.appointmentQueries.ListByDateRange(c.Request.Context(), from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list appointments")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Change appointment status
// @Description Done accrues pending commissions; cancelled rewinds them and refunds consumed credit
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentStatusRequest true "New status"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/appointments/{id}/status [patch]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	var req reqdto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.statusCommands.TransitionAppointment(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Transition not allowed")
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to change status")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark redemption paid
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Redemption ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/redemptions/{id}/pay [post]
func (h *AdminHandler) PayRedemption(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid redemption ID"})
		return
	}

	if err := h.redemptionCommands.MarkRedemptionPaid(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, referral.ErrAlreadyPaid):
			httperr.AbortWithError(c, http.StatusConflict, err, "Redemption already paid")
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Redemption not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to mark redemption paid")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
