package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"planmyday/internal/models/db_models"
	"planmyday/internal/models/request_models"
	"planmyday/pkg/utils"
)

// GenerationFailure names why the generative strategy produced nothing usable.
type GenerationFailure string

const (
	FailureUnavailable GenerationFailure = "unavailable"
	FailureTransport   GenerationFailure = "transport"
	FailureMalformed   GenerationFailure = "malformed"
	FailureNoMatches   GenerationFailure = "no_matches"
)

type PlanResult struct {
	Items    []db_models.ItineraryItem
	Strategy string
}

// generationOutcome holds either matched items or a failure kind, never both.
type generationOutcome struct {
	items   []db_models.ItineraryItem
	failure GenerationFailure
	err     error
}

func (o generationOutcome) ok() bool { return o.failure == "" }

type PlannerServiceInterface interface {
	Plan(ctx context.Context, req request_models.PlanRequest, weather db_models.WeatherSnapshot, candidates []db_models.Venue) (PlanResult, error)
}

type PlannerService struct {
	generator utils.GenerationClientInterface
	timeout   time.Duration
	logger    *zap.Logger
}

func NewPlannerService(generator utils.GenerationClientInterface, timeout time.Duration, logger *zap.Logger) PlannerServiceInterface {
	return &PlannerService{
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

func (p *PlannerService) Plan(ctx context.Context, req request_models.PlanRequest, weather db_models.WeatherSnapshot, candidates []db_models.Venue) (PlanResult, error) {
	if len(candidates) == 0 {
		return PlanResult{}, utils.ErrNoItinerary
	}

	outcome := p.generate(ctx, req, weather, candidates)
	if outcome.ok() {
		return PlanResult{Items: outcome.items, Strategy: db_models.StrategyAI}, nil
	}

	p.logger.Warn("Generated itinerary rejected, using fallback",
		zap.String("failure", string(outcome.failure)),
		zap.Error(outcome.err))

	items := FallbackItinerary(candidates)
	if len(items) == 0 {
		return PlanResult{}, utils.ErrNoItinerary
	}
	return PlanResult{Items: items, Strategy: db_models.StrategyFallback}, nil
}

func (p *PlannerService) generate(ctx context.Context, req request_models.PlanRequest, weather db_models.WeatherSnapshot, candidates []db_models.Venue) generationOutcome {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	systemPrompt, userPrompt := BuildPlannerPrompts(req, weather, candidates)
	raw, err := p.generator.GenerateJSON(ctx, systemPrompt, userPrompt)
	if err != nil {
		if errors.Is(err, utils.ErrGenerationUnavailable) {
			return generationOutcome{failure: FailureUnavailable, err: err}
		}
		return generationOutcome{failure: FailureTransport, err: err}
	}

	stops, err := ParseProposedStops(raw)
	if err != nil {
		return generationOutcome{failure: FailureMalformed, err: err}
	}

	items := MatchStops(stops, candidates)
	if len(items) == 0 {
		return generationOutcome{failure: FailureNoMatches, err: errors.New("no proposed stop matched a candidate venue")}
	}

	return generationOutcome{items: items}
}
