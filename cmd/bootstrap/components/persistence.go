package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"repairbook/internal/infra/db"
	"repairbook/internal/infra/readstore"
	"repairbook/internal/infra/uow"
	"repairbook/internal/usecase/commands"
	"repairbook/internal/usecase/queries"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		// Write-side reads
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(commands.CatalogReads)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(commands.ScheduleReads)),
		),
		// Read-side stores
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentViewRepo)),
		),
		fx.Annotate(
			readstore.NewPartnerReadStore,
			fx.As(new(queries.PartnerReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
