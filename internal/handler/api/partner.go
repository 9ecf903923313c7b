package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"repairbook/internal/handler/httperr"
	"repairbook/internal/infra"
	"repairbook/internal/usecase/queries"
)

type PartnerHandler struct {
	partnerQueries queries.PartnerQueries
}

func NewPartnerHandler(partnerQueries queries.PartnerQueries) *PartnerHandler {
	return &PartnerHandler{partnerQueries: partnerQueries}
}

// @Summary Partner balance
// @Description Credit balance derived from the partner's redemption history
// @Tags partners
// @Produce json
// @Param code path string true "Partner code"
// @Success 200 {object} queries.BalanceView
// @Failure 404 {object} httperr.Response
// @Router /partners/{code}/balance [get]
func (h *PartnerHandler) GetBalance(c *gin.Context) {
	view, err := h.partnerQueries.Balance(c.Request.Context(), c.Param("code"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Partner not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load balance")
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Partner operations
// @Description Redemption rows for a partner in a date range
// @Tags partners
// @Produce json
// @Param code path string true "Partner code"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD, exclusive)"
// @Success 200 {array} queries.OperationView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /partners/{code}/operations [get]
func (h *PartnerHandler) ListOperations(c *gin.Context) {
	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be YYYY-MM-DD"})
		return
	}

	rows, err := h.partnerQueries.Operations(c.Request.Context(), c.Param("code"), from, to)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Partner not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load operations")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func parseDateRange(fromRaw, toRaw string) (time.Time, time.Time, error) {
	from := time.Time{}
	to := time.Now().AddDate(100, 0, 0)

	if fromRaw != "" {
		parsed, err := time.Parse("2006-01-02", fromRaw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if toRaw != "" {
		parsed, err := time.Parse("2006-01-02", toRaw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}
