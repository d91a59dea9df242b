package components

import (
	"salon-site/internal/handler"
	"salon-site/internal/handler/api"
	"salon-site/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewSiteHandler,
		api.NewConfigHandler,
		middleware.NewSetupKeyMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
