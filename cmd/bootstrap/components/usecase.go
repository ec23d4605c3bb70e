package components

import (
	"servicebook/internal/pkg/clock"
	"servicebook/internal/usecase"
	"servicebook/internal/usecase/commands"
	"servicebook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewTokenValidator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewBookingQueries,
		queries.NewAreaQueries,
		queries.NewDiscountQueries,
		queries.NewAnalyticsQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCatalogUseCase,
		commands.NewAreaUseCase,
		commands.NewDiscountUseCase,
		commands.NewBookingUseCase,
	),
)
