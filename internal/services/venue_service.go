package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"planmyday/internal/models/db_models"
	"planmyday/internal/models/response_models"
	"planmyday/internal/repositories"
	"planmyday/pkg/utils"
)

const (
	defaultNearbyRadiusMeters = 5000
	defaultNearbyLimit        = 20
	maxPageSize               = 100
)

type VenueServiceInterface interface {
	ListVenues(ctx context.Context, page, pageSize int) ([]db_models.Venue, error)
	GetVenue(ctx context.Context, id string) (*db_models.Venue, error)
	ListNearby(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]response_models.NearbyVenue, error)
	EnsureSampleVenues(ctx context.Context) error
	SeedCatalog(ctx context.Context, venues []db_models.Venue) (int64, error)
}

type VenueService struct {
	venueRepo repositories.VenueRepository
	dbTimeout time.Duration
	logger    *zap.Logger
}

func NewVenueService(venueRepo repositories.VenueRepository, dbTimeout time.Duration, logger *zap.Logger) VenueServiceInterface {
	return &VenueService{
		venueRepo: venueRepo,
		dbTimeout: dbTimeout,
		logger:    logger,
	}
}

func (v *VenueService) ListVenues(ctx context.Context, page, pageSize int) ([]db_models.Venue, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return nil, utils.ErrInvalidPageSize
	}

	ctx, cancel := context.WithTimeout(ctx, v.dbTimeout)
	defer cancel()

	venues, err := v.venueRepo.List(ctx, page, pageSize)
	if err != nil {
		v.logger.Error("Error listing venues", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return venues, nil
}

func (v *VenueService) GetVenue(ctx context.Context, id string) (*db_models.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, v.dbTimeout)
	defer cancel()

	venue, err := v.venueRepo.GetByID(ctx, id)
	if err != nil {
		v.logger.Error("Error fetching venue", zap.String("venue_id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if venue == nil {
		return nil, utils.ErrVenueNotFound
	}
	return venue, nil
}

// ListNearby returns venues within radiusMeters, closest first.
func (v *VenueService) ListNearby(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]response_models.NearbyVenue, error) {
	if radiusMeters <= 0 {
		radiusMeters = defaultNearbyRadiusMeters
	}
	if limit <= 0 {
		limit = defaultNearbyLimit
	}

	ctx, cancel := context.WithTimeout(ctx, v.dbTimeout)
	defer cancel()

	venues, err := v.venueRepo.ListNear(ctx, lat, lng, radiusMeters, limit)
	if err != nil {
		v.logger.Error("Error listing nearby venues", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.NearbyVenue, 0, len(venues))
	for _, venue := range venues {
		out = append(out, response_models.NearbyVenue{
			Venue:          venue,
			DistanceMeters: utils.HaversineMeters(lat, lng, venue.Location.Lat, venue.Location.Lng),
		})
	}
	return out, nil
}

// EnsureSampleVenues seeds two demo venues into an empty catalog and makes
// sure the geo index exists so nearby lookups work without a seed run.
func (v *VenueService) EnsureSampleVenues(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, v.dbTimeout)
	defer cancel()

	count, err := v.venueRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count venues: %w", err)
	}
	if count == 0 {
		samples := SampleVenues()
		if err := v.venueRepo.InsertMany(ctx, samples); err != nil {
			return fmt.Errorf("insert sample venues: %w", err)
		}
		v.logger.Info("Sample venues initialized", zap.Int("count", len(samples)))
	}

	if err := v.venueRepo.EnsureGeoIndex(ctx); err != nil {
		return fmt.Errorf("create geospatial index: %w", err)
	}
	return nil
}

// SeedCatalog replaces the whole catalog with venues and rebuilds the geo
// index. It returns the resulting document count.
func (v *VenueService) SeedCatalog(ctx context.Context, venues []db_models.Venue) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, v.dbTimeout)
	defer cancel()

	deleted, err := v.venueRepo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete existing venues: %w", err)
	}
	v.logger.Info("Deleted existing venues", zap.Int64("count", deleted))

	if err := v.venueRepo.InsertMany(ctx, venues); err != nil {
		return 0, fmt.Errorf("insert venues: %w", err)
	}

	if err := v.venueRepo.EnsureGeoIndex(ctx); err != nil {
		return 0, fmt.Errorf("create geospatial index: %w", err)
	}

	count, err := v.venueRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count venues: %w", err)
	}
	v.logger.Info("Venue catalog seeded",
		zap.Int64("total", count),
		zap.String("geo_index_field", v.venueRepo.GeoIndexField()))
	return count, nil
}
