package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"planmyday/cmd/fx/config_fx"
	"planmyday/cmd/fx/db_fx"
	"planmyday/cmd/fx/logger_fx"
	"planmyday/cmd/fx/venues_fx"
	"planmyday/internal/services"
)

// Replaces the venue catalog with the fixed list and rebuilds the geo index.
func main() {
	var (
		venueService services.VenueServiceInterface
		logger       *zap.Logger
	)

	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		venues_fx.Module,
		fx.Populate(&venueService, &logger),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}

	venues := services.SeedVenues()
	logger.Info("Seeding venue catalog", zap.Int("venues", len(venues)))
	count, seedErr := venueService.SeedCatalog(ctx, venues)

	if err := app.Stop(ctx); err != nil {
		logger.Warn("Error during shutdown", zap.Error(err))
	}

	if seedErr != nil {
		logger.Error("Seeding failed", zap.Error(seedErr))
		os.Exit(1)
	}
	logger.Info("Database population complete", zap.Int64("total_venues", count))
}
