package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repairbook/internal/handler/httperr"
	"repairbook/internal/usecase/queries"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary List brands
// @Tags catalog
// @Produce json
// @Param category query string false "Device category (phone, tablet, watch)"
// @Success 200 {array} queries.BrandView
// @Router /brands [get]
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	rows, err := h.catalogQueries.Brands(c.Request.Context(), c.Query("category"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load brands")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary List device models for a brand
// @Tags catalog
// @Produce json
// @Param brand path string true "Brand slug"
// @Success 200 {array} queries.DeviceModelView
// @Router /brands/{brand}/models [get]
func (h *CatalogHandler) ListModels(c *gin.Context) {
	rows, err := h.catalogQueries.Models(c.Request.Context(), c.Param("brand"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load models")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary List repairs for a device model
// @Tags catalog
// @Produce json
// @Param model path string true "Device model slug"
// @Success 200 {array} queries.RepairView
// @Router /models/{model}/repairs [get]
func (h *CatalogHandler) ListRepairs(c *gin.Context) {
	rows, err := h.catalogQueries.Repairs(c.Request.Context(), c.Param("model"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load repairs")
		return
	}
	c.JSON(http.StatusOK, rows)
}
