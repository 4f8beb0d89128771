package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"planmyday/internal/models/db_models"
)

type dayPlanMongoRepository struct {
	coll *mongo.Collection
}

func NewMongoDayPlanRepository(db *mongo.Database) DayPlanRepository {
	return &dayPlanMongoRepository{coll: db.Collection(DayPlansCollection)}
}

func (r *dayPlanMongoRepository) Create(ctx context.Context, plan *db_models.DayPlan) error {
	_, err := r.coll.InsertOne(ctx, plan)
	return err
}

func (r *dayPlanMongoRepository) GetByID(ctx context.Context, id string) (*db_models.DayPlan, error) {
	var plan db_models.DayPlan
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}
