package components

import (
	"therapist-management-saas/internal/handler"
	"therapist-management-saas/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewDesignationHandler,
		api.NewAvailabilityHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
