package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config is built once at process start and handed to every collaborator.
// Nothing below the cmd layer reads the environment directly.
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	StoreDriver   string
	MongoURL      string
	MongoDatabase string
	PostgresURL   string
	DBTimeout     time.Duration

	LLMProvider       string
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIBaseURL     string
	GeminiAPIKey      string
	GeminiModel       string
	GenerationTimeout time.Duration

	WeatherAPIKey  string
	WeatherBaseURL string
	WeatherTimeout time.Duration

	CORSAllowedOrigins []string
}

// Load reads .env when present and then the process environment.
// Missing API keys are not an error: the matching collaborator degrades at call time.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary lookup function.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		Port:     get("PORT", "8001"),
		AppEnv:   get("APP_ENV", "production"),
		LogLevel: get("LOG_LEVEL", "info"),

		StoreDriver:   strings.ToLower(get("STORE_DRIVER", StoreMongo)),
		MongoURL:      get("MONGO_URL", "mongodb://localhost:27017"),
		MongoDatabase: get("MONGO_DATABASE", "planmyday"),
		PostgresURL:   get("POSTGRES_URL", ""),

		LLMProvider:   strings.ToLower(get("LLM_PROVIDER", ProviderOpenAI)),
		OpenAIAPIKey:  get("OPENAI_API_KEY", ""),
		OpenAIModel:   get("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL: get("OPENAI_BASE_URL", ""),
		GeminiAPIKey:  get("GEMINI_API_KEY", ""),
		GeminiModel:   get("GEMINI_MODEL", "gemini-1.5-flash"),

		WeatherAPIKey:  get("WEATHER_API_KEY", ""),
		WeatherBaseURL: strings.TrimRight(get("WEATHER_BASE_URL", "http://api.openweathermap.org"), "/"),

		CORSAllowedOrigins: splitList(get("CORS_ALLOWED_ORIGINS", "*")),
	}

	var err error
	if cfg.DBTimeout, err = parseDuration("DB_TIMEOUT", get("DB_TIMEOUT", "10s")); err != nil {
		return nil, err
	}
	if cfg.GenerationTimeout, err = parseDuration("GENERATION_TIMEOUT", get("GENERATION_TIMEOUT", "60s")); err != nil {
		return nil, err
	}
	if cfg.WeatherTimeout, err = parseDuration("WEATHER_TIMEOUT", get("WEATHER_TIMEOUT", "10s")); err != nil {
		return nil, err
	}

	switch cfg.StoreDriver {
	case StoreMongo, StorePostgres, StoreMemory:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q (use mongo, postgres or memory)", cfg.StoreDriver)
	}
	if cfg.StoreDriver == StorePostgres && cfg.PostgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_URL is required when STORE_DRIVER=postgres")
	}

	switch cfg.LLMProvider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q (use openai or gemini)", cfg.LLMProvider)
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func parseDuration(key, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
