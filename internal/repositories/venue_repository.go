package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"planmyday/internal/models/db_models"
)

// VenueRepository is the venue catalog. Read helpers return a nil value and
// nil error when nothing matches.
type VenueRepository interface {
	List(ctx context.Context, page, pageSize int) ([]db_models.Venue, error)
	ListCandidates(ctx context.Context, limit int) ([]db_models.Venue, error)
	ListNear(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]db_models.Venue, error)
	GetByID(ctx context.Context, id string) (*db_models.Venue, error)
	Count(ctx context.Context) (int64, error)

	InsertMany(ctx context.Context, venues []db_models.Venue) error
	DeleteAll(ctx context.Context) (int64, error)
	EnsureGeoIndex(ctx context.Context) error
	// GeoIndexField names what EnsureGeoIndex indexes, for operators.
	GeoIndexField() string
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

const postgresGeoExpr = "point(location_lng, location_lat)"

const distanceSQL = `6371000 * acos(least(1.0,
	cos(radians(?)) * cos(radians(location_lat)) * cos(radians(location_lng) - radians(?)) +
	sin(radians(?)) * sin(radians(location_lat))))`

func (r *venueRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Order("name").
		Offset(offset).
		Limit(pageSize).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// ListCandidates returns venues in insertion order, which the fallback
// planner uses to break rating ties.
func (r *venueRepository) ListCandidates(ctx context.Context, limit int) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	if err := candidatesQuery(r.db.WithContext(ctx), limit).Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func candidatesQuery(tx *gorm.DB, limit int) *gorm.DB {
	return tx.Order("seq").Limit(limit)
}

func (r *venueRepository) ListNear(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]db_models.Venue, error) {
	var venues []db_models.Venue

	err := r.db.WithContext(ctx).
		Where(distanceSQL+" <= ?", lat, lng, lat, radiusMeters).
		Order(clause.OrderBy{Expression: clause.Expr{SQL: distanceSQL, Vars: []interface{}{lat, lng, lat}}}).
		Limit(limit).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) GetByID(ctx context.Context, id string) (*db_models.Venue, error) {
	var venue db_models.Venue
	err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Venue{}).Count(&n).Error
	return n, err
}

func (r *venueRepository) InsertMany(ctx context.Context, venues []db_models.Venue) error {
	if len(venues) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&venues).Error; err != nil {
		return fmt.Errorf("failed to insert venues: %w", err)
	}
	return nil
}

func (r *venueRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&db_models.Venue{})
	return res.RowsAffected, res.Error
}

// EnsureGeoIndex builds a GiST index over the venue point, the Postgres
// counterpart of the Mongo 2dsphere index.
func (r *venueRepository) EnsureGeoIndex(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Exec("CREATE INDEX IF NOT EXISTS idx_venues_location ON venues USING gist (" + postgresGeoExpr + ")").
		Error
}

func (r *venueRepository) GeoIndexField() string { return postgresGeoExpr }
