package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"planmyday/internal/config"
	"planmyday/internal/infra"
	"planmyday/internal/repositories"
)

var Module = fx.Provide(
	provideStore,
	provideVenueRepo,
	provideDayPlanRepo)

func provideStore(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*infra.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
	defer cancel()

	store, err := infra.NewStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			store.Close(ctx)
			return nil
		},
	})
	return store, nil
}

func provideVenueRepo(store *infra.Store) repositories.VenueRepository {
	return store.VenueRepository()
}

func provideDayPlanRepo(store *infra.Store) repositories.DayPlanRepository {
	return store.DayPlanRepository()
}
