package components

import (
	"servicebook/internal/handler"
	"servicebook/internal/handler/api"
	"servicebook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewServiceHandler,
		api.NewAreaHandler,
		api.NewDiscountHandler,
		api.NewBookingHandler,
		api.NewDashboardHandler,
		api.NewPublicHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
