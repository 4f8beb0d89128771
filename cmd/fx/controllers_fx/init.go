package controllers_fx

import (
	"go.uber.org/fx"
	"planmyday/internal/api"
	"planmyday/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewVenueController),
	fx.Provide(api.NewRouter))
