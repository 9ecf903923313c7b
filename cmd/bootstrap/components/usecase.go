package components

import (
	"go.uber.org/fx"

	"repairbook/internal/pkg/clock"
	"repairbook/internal/pkg/config"
	"repairbook/internal/pkg/jwt"
	"repairbook/internal/usecase/commands"
	"repairbook/internal/usecase/ledger"
	"repairbook/internal/usecase/queries"
	"repairbook/internal/usecase/shared"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	ledger.New,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewBookingCommands,
		commands.NewStatusCommands,
		commands.NewRedemptionCommands,
		NewAuthCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewSlotQueries,
		queries.NewAppointmentQueries,
		queries.NewPartnerQueries,
		queries.NewCatalogQueries,
	),
)

func NewBookingCommands(
	uow shared.UnitOfWork,
	catalog commands.CatalogReads,
	scheduleReads commands.ScheduleReads,
	ldg *ledger.Ledger,
	notifier commands.Notifier,
	clk clock.Clock,
	cfg config.Config,
) (commands.BookingCommands, error) {
	return commands.NewBookingCommands(uow, catalog, scheduleReads, ldg, notifier, clk, cfg.Booking)
}

func NewAuthCommands(cfg config.Config, jwtService *jwt.Service) commands.AuthCommands {
	return commands.NewAuthCommands(cfg.Admin, jwtService)
}

func NewSlotQueries(store queries.SlotReadStore, clk clock.Clock, cfg config.Config) (queries.SlotQueries, error) {
	return queries.NewSlotQueries(store, clk, cfg.Booking)
}
