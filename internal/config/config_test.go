package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8001", cfg.Addr())
	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "planmyday", cfg.MongoDatabase)
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, 10*time.Second, cfg.WeatherTimeout)
	assert.Equal(t, 60*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.Empty(t, cfg.WeatherAPIKey)
}

func TestFromLookupOverrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"PORT":                 ":9000",
		"STORE_DRIVER":         "Memory",
		"LLM_PROVIDER":         "gemini",
		"WEATHER_TIMEOUT":      "250ms",
		"WEATHER_BASE_URL":     "http://localhost:1234/",
		"CORS_ALLOWED_ORIGINS": "http://a.test, http://b.test ,",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, 250*time.Millisecond, cfg.WeatherTimeout)
	assert.Equal(t, "http://localhost:1234", cfg.WeatherBaseURL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestFromLookupRejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"driver":          {"STORE_DRIVER": "cassandra"},
		"postgres no url": {"STORE_DRIVER": "postgres"},
		"provider":        {"LLM_PROVIDER": "llama"},
		"duration":        {"DB_TIMEOUT": "soon"},
		"negative":        {"WEATHER_TIMEOUT": "-1s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(env))
			assert.Error(t, err)
		})
	}
}
