package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetCurrentWeatherParsesProviderResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "40.7589", r.URL.Query().Get("lat"))
		assert.Equal(t, "-73.9851", r.URL.Query().Get("lon"))
		assert.Equal(t, "secret", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"main":{"temp":18.4,"feels_like":17.9,"humidity":72},"weather":[{"main":"Rain","description":"light rain"}]}`))
	}))
	defer server.Close()

	svc := NewWeatherService(server.URL, "secret", time.Second, zap.NewNop())
	got := svc.GetCurrentWeather(context.Background(), 40.7589, -73.9851)

	assert.Equal(t, 18.4, got.Temperature)
	assert.Equal(t, 17.9, got.FeelsLike)
	assert.Equal(t, 72, got.Humidity)
	assert.Equal(t, "light rain", got.Description)
	assert.Equal(t, "Rain", got.WeatherMain)
}

func TestGetCurrentWeatherFallsBack(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"unauthorized": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
		},
		"malformed body": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>nope</html>`))
		},
		"no conditions": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"main":{"temp":18.4,"feels_like":17.9,"humidity":72},"weather":[]}`))
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(handler)
			defer server.Close()

			svc := NewWeatherService(server.URL, "key", time.Second, zap.NewNop())
			assert.Equal(t, FallbackWeather, svc.GetCurrentWeather(context.Background(), 1, 2))
		})
	}
}

func TestGetCurrentWeatherFallsBackWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	svc := NewWeatherService(url, "key", time.Second, zap.NewNop())
	got := svc.GetCurrentWeather(context.Background(), 1, 2)

	assert.Equal(t, 22.0, got.Temperature)
	assert.Equal(t, "partly cloudy", got.Description)
	assert.Equal(t, 24.0, got.FeelsLike)
	assert.Equal(t, 65, got.Humidity)
	assert.Equal(t, "Clouds", got.WeatherMain)
}

func TestGetCurrentWeatherFallsBackOnTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	svc := NewWeatherService(server.URL, "key", 50*time.Millisecond, zap.NewNop())

	start := time.Now()
	got := svc.GetCurrentWeather(context.Background(), 1, 2)

	assert.Equal(t, FallbackWeather, got)
	assert.Less(t, time.Since(start), time.Second)
}
