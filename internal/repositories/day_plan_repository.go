package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"planmyday/internal/models/db_models"
)

// DayPlanRepository is append-only: plans are created and read, never changed.
type DayPlanRepository interface {
	Create(ctx context.Context, plan *db_models.DayPlan) error
	GetByID(ctx context.Context, id string) (*db_models.DayPlan, error)
}

type DayPlanRepositoryImpl struct {
	db *gorm.DB
}

func NewDayPlanRepository(db *gorm.DB) DayPlanRepository {
	return &DayPlanRepositoryImpl{db: db}
}

func (p DayPlanRepositoryImpl) Create(ctx context.Context, plan *db_models.DayPlan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

func (p DayPlanRepositoryImpl) GetByID(ctx context.Context, id string) (*db_models.DayPlan, error) {
	var plan db_models.DayPlan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}
