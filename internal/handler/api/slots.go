package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"repairbook/internal/handler/httperr"
	"repairbook/internal/infra"
	"repairbook/internal/usecase/queries"
)

type SlotHandler struct {
	slotQueries queries.SlotQueries
}

func NewSlotHandler(slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{slotQueries: slotQueries}
}

// @Summary List available slots
// @Description Bookable start times for a device model and repair type over the coming days
// @Tags slots
// @Produce json
// @Param device_model query string true "Device model slug"
// @Param repair_type query string true "Repair type slug"
// @Param days query int false "Days ahead to scan (defaults to the booking horizon)"
// @Success 200 {object} queries.SlotsView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /slots [get]
func (h *SlotHandler) ListSlots(c *gin.Context) {
	model := c.Query("device_model")
	repair := c.Query("repair_type")
	if model == "" || repair == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "device_model and repair_type are required"})
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
			return
		}
		days = parsed
	}

	view, err := h.slotQueries.ListAvailable(c.Request.Context(), model, repair, days)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Device model or repair type not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute slots")
		return
	}

	c.JSON(http.StatusOK, view)
}
