package venues_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"planmyday/internal/config"
	"planmyday/internal/repositories"
	"planmyday/internal/services"
)

var Module = fx.Provide(
	provideVenueService)

func provideVenueService(cfg *config.Config, venueRepo repositories.VenueRepository, logger *zap.Logger) services.VenueServiceInterface {
	return services.NewVenueService(venueRepo, cfg.DBTimeout, logger)
}
