package components

import (
	"servicebook/internal/infra/db"
	"servicebook/internal/infra/readstore"
	"servicebook/internal/infra/repository"
	"servicebook/internal/usecase/commands"
	"servicebook/internal/usecase/queries"
	"servicebook/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	fx.Annotate(
		shared.NewPgxTxRunner,
		fx.As(new(shared.TxRunner)),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Concrete repositories, used by readstores and the scheduler
		repository.NewServiceRepository,
		repository.NewOptionRepository,
		repository.NewAreaRepository,
		repository.NewDiscountRepository,
		repository.NewBookingRepository,
		repository.NewIdempotencyRepository,
		repository.NewNotificationRepository,
		// Write-side ports for commands
		fx.Annotate(
			repository.NewServiceRepository,
			fx.As(new(commands.ServiceRepository)),
		),
		fx.Annotate(
			repository.NewOptionRepository,
			fx.As(new(commands.OptionRepository)),
		),
		fx.Annotate(
			repository.NewAreaRepository,
			fx.As(new(commands.AreaRepository)),
		),
		fx.Annotate(
			repository.NewDiscountRepository,
			fx.As(new(commands.DiscountRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		readstore.NewBookingReadStore,
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewAreaReadStore,
			fx.As(new(queries.AreaReadStore)),
		),
		fx.Annotate(
			readstore.NewDiscountReadStore,
			fx.As(new(queries.DiscountReadStore)),
		),
		fx.Annotate(
			readstore.NewAnalyticsReadStore,
			fx.As(new(queries.AnalyticsReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
