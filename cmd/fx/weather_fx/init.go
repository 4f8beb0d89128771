package weather_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"planmyday/internal/config"
	"planmyday/internal/services"
)

var Module = fx.Provide(
	provideWeatherService)

func provideWeatherService(cfg *config.Config, logger *zap.Logger) services.WeatherServiceInterface {
	if cfg.WeatherAPIKey == "" {
		logger.Warn("WEATHER_API_KEY is not set; weather lookups will use fallback data")
	}
	return services.NewWeatherService(cfg.WeatherBaseURL, cfg.WeatherAPIKey, cfg.WeatherTimeout, logger)
}
