package controllers_fx

import (
	"go.uber.org/fx"

	"anuncia/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPostController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewSiteController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewAssistantController),
	fx.Provide(controllers.NewRefreshController))
