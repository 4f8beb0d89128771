package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"planmyday/internal/models/db_models"
	"planmyday/internal/repositories"
	"planmyday/pkg/utils"
)

type fixedWeather struct {
	snapshot db_models.WeatherSnapshot
	calls    int
}

func (f *fixedWeather) GetCurrentWeather(context.Context, float64, float64) db_models.WeatherSnapshot {
	f.calls++
	return f.snapshot
}

type brokenVenueRepo struct {
	repositories.VenueRepository
}

func (brokenVenueRepo) ListCandidates(context.Context, int) ([]db_models.Venue, error) {
	return nil, errors.New("connection refused")
}

type brokenDayPlanRepo struct{}

func (brokenDayPlanRepo) Create(context.Context, *db_models.DayPlan) error {
	return errors.New("write concern failed")
}

func (brokenDayPlanRepo) GetByID(context.Context, string) (*db_models.DayPlan, error) {
	return nil, errors.New("read failed")
}

var fixedNow = time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

func newDayPlanService(t *testing.T, store *repositories.MemoryStore, gen utils.GenerationClientInterface) (*DayPlanService, *fixedWeather) {
	t.Helper()
	weather := &fixedWeather{snapshot: FallbackWeather}
	planner := NewPlannerService(gen, time.Second, zap.NewNop())
	svc := NewDayPlanService(weather, planner, store.Venues(), store.DayPlans(), time.Second, zap.NewNop()).
		WithClock(func() time.Time { return fixedNow })
	return svc, weather
}

func TestCreateDayPlanWithFallback(t *testing.T) {
	store := repositories.NewMemoryStore()
	require.NoError(t, store.Venues().InsertMany(context.Background(), SampleVenues()))
	svc, weather := newDayPlanService(t, store, utils.DisabledGenerationClient{Provider: "openai"})

	req := planRequest()
	req.GroupSize = 0

	plan, err := svc.CreateDayPlan(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, "2026-03-14", plan.Date)
	assert.Equal(t, fixedNow, plan.CreatedAt)
	assert.Equal(t, FallbackWeather, plan.Weather)
	assert.Equal(t, 100, plan.TotalBudget)
	assert.Equal(t, 75, plan.EstimatedCost)
	assert.Equal(t, db_models.StrategyFallback, plan.Strategy)
	assert.Equal(t, db_models.Location{Lat: 40.7589, Lng: -73.9851, Address: "123 Broadway, NYC"}, plan.Location)
	require.Len(t, plan.Itinerary, 2)
	assert.Equal(t, "Central Park", plan.Itinerary[0].Venue.Name)
	assert.Equal(t, 1, weather.calls)

	stored, err := svc.GetDayPlan(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.Itinerary, stored.Itinerary)
}

func TestCreateDayPlanWithGeneratedItinerary(t *testing.T) {
	store := repositories.NewMemoryStore()
	require.NoError(t, store.Venues().InsertMany(context.Background(), SampleVenues()))
	gen := &fakeGenerator{raw: `{"itinerary":[{"venue_name":"The Coffee Corner","start_time":"08:00","end_time":"08:45","notes":"Espresso"}]}`}
	svc, _ := newDayPlanService(t, store, gen)

	plan, err := svc.CreateDayPlan(context.Background(), planRequest())
	require.NoError(t, err)

	assert.Equal(t, db_models.StrategyAI, plan.Strategy)
	assert.Equal(t, 50, plan.EstimatedCost)
	require.Len(t, plan.Itinerary, 1)
	assert.Equal(t, "Espresso", plan.Itinerary[0].Notes)
}

func TestCreateDayPlanProducesDistinctPlansForIdenticalRequests(t *testing.T) {
	store := repositories.NewMemoryStore()
	require.NoError(t, store.Venues().InsertMany(context.Background(), SampleVenues()))
	svc, _ := newDayPlanService(t, store, utils.DisabledGenerationClient{})

	first, err := svc.CreateDayPlan(context.Background(), planRequest())
	require.NoError(t, err)
	second, err := svc.CreateDayPlan(context.Background(), planRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateDayPlanEmptyCatalog(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc, _ := newDayPlanService(t, store, utils.DisabledGenerationClient{})

	plan, err := svc.CreateDayPlan(context.Background(), planRequest())

	assert.Nil(t, plan)
	assert.ErrorIs(t, err, utils.ErrNoItinerary)
}

func TestCreateDayPlanSurfacesStoreErrors(t *testing.T) {
	weather := &fixedWeather{snapshot: FallbackWeather}
	planner := NewPlannerService(utils.DisabledGenerationClient{}, time.Second, zap.NewNop())
	store := repositories.NewMemoryStore()
	require.NoError(t, store.Venues().InsertMany(context.Background(), SampleVenues()))

	svc := NewDayPlanService(weather, planner, brokenVenueRepo{}, store.DayPlans(), time.Second, zap.NewNop())
	_, err := svc.CreateDayPlan(context.Background(), planRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	svc = NewDayPlanService(weather, planner, store.Venues(), brokenDayPlanRepo{}, time.Second, zap.NewNop())
	_, err = svc.CreateDayPlan(context.Background(), planRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write concern failed")
}

func TestGetDayPlanErrors(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc, _ := newDayPlanService(t, store, utils.DisabledGenerationClient{})

	_, err := svc.GetDayPlan(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)

	broken := NewDayPlanService(&fixedWeather{}, nil, store.Venues(), brokenDayPlanRepo{}, time.Second, zap.NewNop())
	_, err = broken.GetDayPlan(context.Background(), "any")
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
