package day_plan_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"planmyday/internal/config"
	"planmyday/internal/repositories"
	"planmyday/internal/services"
)

var Module = fx.Provide(
	provideDayPlanService)

func provideDayPlanService(
	cfg *config.Config,
	weatherService services.WeatherServiceInterface,
	plannerService services.PlannerServiceInterface,
	venueRepo repositories.VenueRepository,
	dayPlanRepo repositories.DayPlanRepository,
	logger *zap.Logger,
) services.DayPlanServiceInterface {
	return services.NewDayPlanService(weatherService, plannerService, venueRepo, dayPlanRepo, cfg.DBTimeout, logger)
}
