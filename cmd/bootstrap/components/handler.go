package components

import (
	"go.uber.org/fx"

	"repairbook/internal/handler"
	"repairbook/internal/handler/api"
	"repairbook/internal/handler/middleware"
	"repairbook/internal/notify"
	"repairbook/internal/pkg/config"
	"repairbook/internal/usecase/commands"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewSlotHandler,
		api.NewAppointmentHandler,
		api.NewPartnerHandler,
		api.NewAuthHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewNotifier,
	),
	fx.Invoke(handler.NewRouter),
)

func NewNotifier(cfg config.Config) (commands.Notifier, error) {
	return notify.New(cfg.Telegram)
}
