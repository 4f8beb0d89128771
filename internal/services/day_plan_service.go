package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"planmyday/internal/models/db_models"
	"planmyday/internal/models/request_models"
	"planmyday/internal/repositories"
	"planmyday/pkg/utils"
)

const candidateLimit = 100

type DayPlanServiceInterface interface {
	CreateDayPlan(ctx context.Context, req request_models.PlanRequest) (*db_models.DayPlan, error)
	GetDayPlan(ctx context.Context, id string) (*db_models.DayPlan, error)
}

type DayPlanService struct {
	weatherService WeatherServiceInterface
	plannerService PlannerServiceInterface
	venueRepo      repositories.VenueRepository
	dayPlanRepo    repositories.DayPlanRepository
	dbTimeout      time.Duration
	now            func() time.Time
	logger         *zap.Logger
}

func NewDayPlanService(
	weatherService WeatherServiceInterface,
	plannerService PlannerServiceInterface,
	venueRepo repositories.VenueRepository,
	dayPlanRepo repositories.DayPlanRepository,
	dbTimeout time.Duration,
	logger *zap.Logger,
) *DayPlanService {
	return &DayPlanService{
		weatherService: weatherService,
		plannerService: plannerService,
		venueRepo:      venueRepo,
		dayPlanRepo:    dayPlanRepo,
		dbTimeout:      dbTimeout,
		now:            time.Now,
		logger:         logger,
	}
}

// WithClock replaces the time source used for plan dates.
func (s *DayPlanService) WithClock(now func() time.Time) *DayPlanService {
	s.now = now
	return s
}

func (s *DayPlanService) CreateDayPlan(ctx context.Context, req request_models.PlanRequest) (*db_models.DayPlan, error) {
	req.Normalize()
	location := req.TargetLocation()

	weather := s.weatherService.GetCurrentWeather(ctx, location.Lat, location.Lng)

	candidates, err := s.listCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load venues: %w", err)
	}

	result, err := s.plannerService.Plan(ctx, req, weather, candidates)
	if err != nil {
		return nil, err
	}

	createdAt := s.now()
	plan := &db_models.DayPlan{
		ID:            uuid.NewString(),
		Location:      location,
		Date:          utils.FormatDate(createdAt),
		Weather:       weather,
		TotalBudget:   req.TotalBudget(),
		EstimatedCost: EstimateCost(result.Items),
		Itinerary:     result.Items,
		Strategy:      result.Strategy,
		CreatedAt:     createdAt,
	}

	dbCtx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()
	if err := s.dayPlanRepo.Create(dbCtx, plan); err != nil {
		return nil, fmt.Errorf("failed to save day plan: %w", err)
	}

	s.logger.Info("Day plan created",
		zap.String("plan_id", plan.ID),
		zap.String("strategy", plan.Strategy),
		zap.Int("stops", len(plan.Itinerary)),
		zap.Int("estimated_cost", plan.EstimatedCost))

	return plan, nil
}

func (s *DayPlanService) GetDayPlan(ctx context.Context, id string) (*db_models.DayPlan, error) {
	dbCtx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	plan, err := s.dayPlanRepo.GetByID(dbCtx, id)
	if err != nil {
		s.logger.Error("Error fetching day plan", zap.String("plan_id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

func (s *DayPlanService) listCandidates(ctx context.Context) ([]db_models.Venue, error) {
	dbCtx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()
	return s.venueRepo.ListCandidates(dbCtx, candidateLimit)
}
