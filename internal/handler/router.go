package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"repairbook/internal/handler/api"
	"repairbook/internal/handler/middleware"
	"repairbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	catalogHandler *api.CatalogHandler,
	slotHandler *api.SlotHandler,
	appointmentHandler *api.AppointmentHandler,
	partnerHandler *api.PartnerHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, slotHandler, appointmentHandler, partnerHandler, authHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	catalogHandler *api.CatalogHandler,
	slotHandler *api.SlotHandler,
	appointmentHandler *api.AppointmentHandler,
	partnerHandler *api.PartnerHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/brands", Handler: catalogHandler.ListBrands},
			{Method: http.MethodGet, Path: "/brands/:brand/models", Handler: catalogHandler.ListModels},
			{Method: http.MethodGet, Path: "/models/:model/repairs", Handler: catalogHandler.ListRepairs},
			{Method: http.MethodGet, Path: "/slots", Handler: slotHandler.ListSlots},
			{Method: http.MethodPost, Path: "/appointments", Handler: appointmentHandler.CreateAppointment},
			{Method: http.MethodGet, Path: "/appointments/:id", Handler: appointmentHandler.GetAppointment},
			{Method: http.MethodGet, Path: "/partners/:code/balance", Handler: partnerHandler.GetBalance},
			{Method: http.MethodGet, Path: "/partners/:code/operations", Handler: partnerHandler.ListOperations},
			{Method: http.MethodPost, Path: "/auth/login", Handler: authHandler.Login},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/appointments", Handler: adminHandler.ListAppointments},
			{Method: http.MethodPatch, Path: "/appointments/:id/status", Handler: adminHandler.UpdateStatus},
			{Method: http.MethodPost, Path: "/redemptions/:id/pay", Handler: adminHandler.PayRedemption},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
