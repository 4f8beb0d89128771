package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"planmyday/internal/models/db_models"
)

const (
	VenuesCollection   = "venues"
	DayPlansCollection = "day_plans"
	geoIndexName       = "geo_2dsphere"

	// GeoField holds the GeoJSON copy of location; the 2dsphere index lives here.
	GeoField = "geo"
)

type venueMongoRepository struct {
	coll *mongo.Collection
}

func NewMongoVenueRepository(db *mongo.Database) VenueRepository {
	return &venueMongoRepository{coll: db.Collection(VenuesCollection)}
}

func (r *venueMongoRepository) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]db_models.Venue, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	venues := []db_models.Venue{}
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueMongoRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Venue, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	return r.find(ctx, bson.M{}, opts)
}

// ListCandidates returns venues in natural order, which the fallback planner
// relies on for tie-breaking.
func (r *venueMongoRepository) ListCandidates(ctx context.Context, limit int) ([]db_models.Venue, error) {
	return r.find(ctx, bson.M{}, options.Find().SetLimit(int64(limit)))
}

func (r *venueMongoRepository) ListNear(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]db_models.Venue, error) {
	filter := bson.M{
		GeoField: bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        db_models.GeoJSONPoint,
					"coordinates": bson.A{lng, lat},
				},
				"$maxDistance": radiusMeters,
			},
		},
	}
	return r.find(ctx, filter, options.Find().SetLimit(int64(limit)))
}

func (r *venueMongoRepository) GetByID(ctx context.Context, id string) (*db_models.Venue, error) {
	var venue db_models.Venue
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&venue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueMongoRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *venueMongoRepository) InsertMany(ctx context.Context, venues []db_models.Venue) error {
	if len(venues) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(venues))
	for _, v := range venues {
		if v.ID == "" {
			v.ID = uuid.NewString()
		}
		if v.PopularItems == nil {
			v.PopularItems = []string{}
		}
		docs = append(docs, v.WithGeoPoint())
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert venues: %w", err)
	}
	return nil
}

func (r *venueMongoRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *venueMongoRepository) EnsureGeoIndex(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: GeoField, Value: "2dsphere"}},
		Options: options.Index().SetName(geoIndexName),
	})
	return err
}

func (r *venueMongoRepository) GeoIndexField() string { return GeoField }
