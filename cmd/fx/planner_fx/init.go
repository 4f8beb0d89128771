package planner_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"planmyday/internal/config"
	"planmyday/internal/services"
	"planmyday/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerationClient,
	ProvidePlannerService)

// ProvideGenerationClient creates the client for LLM_PROVIDER. A missing key
// is logged and every plan then takes the fallback strategy.
func ProvideGenerationClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.GenerationClientInterface, error) {
	var apiKey, model, baseURL string
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		apiKey, model, baseURL = cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL
	case config.ProviderGemini:
		apiKey, model = cfg.GeminiAPIKey, cfg.GeminiModel
	}

	if apiKey == "" {
		logger.Warn("No API key for generation provider; itineraries will use the fallback planner",
			zap.String("provider", cfg.LLMProvider))
	} else {
		logger.Info("Initializing generation client",
			zap.String("provider", cfg.LLMProvider),
			zap.String("model", model))
	}

	client, err := utils.NewGenerationClient(cfg.LLMProvider, apiKey, model, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func ProvidePlannerService(
	cfg *config.Config,
	generator utils.GenerationClientInterface,
	logger *zap.Logger,
) services.PlannerServiceInterface {
	return services.NewPlannerService(generator, cfg.GenerationTimeout, logger)
}
