package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"planmyday/cmd/fx/config_fx"
	"planmyday/cmd/fx/controllers_fx"
	"planmyday/cmd/fx/day_plan_fx"
	"planmyday/cmd/fx/db_fx"
	"planmyday/cmd/fx/logger_fx"
	"planmyday/cmd/fx/planner_fx"
	"planmyday/cmd/fx/venues_fx"
	"planmyday/cmd/fx/weather_fx"
	"planmyday/internal/config"
	"planmyday/internal/services"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		venues_fx.Module,
		weather_fx.Module,
		planner_fx.Module,
		day_plan_fx.Module,
		controllers_fx.Module,

		fx.Invoke(SetGinMode),
		fx.Invoke(InitSampleData),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func SetGinMode(cfg *config.Config) {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
}

// InitSampleData fills an empty catalog on start. A datastore that is not
// reachable yet only produces a warning.
func InitSampleData(lc fx.Lifecycle, venueService services.VenueServiceInterface, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := venueService.EnsureSampleVenues(ctx); err != nil {
				logger.Warn("Could not initialize sample venues", zap.Error(err))
			}
			return nil
		},
	})
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
