package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"planmyday/internal/models/db_models"
)

// FallbackWeather is returned whenever the provider cannot be reached or
// answers with something unusable.
var FallbackWeather = db_models.WeatherSnapshot{
	Temperature: 22.0,
	Description: "partly cloudy",
	FeelsLike:   24.0,
	Humidity:    65,
	WeatherMain: "Clouds",
}

type WeatherServiceInterface interface {
	GetCurrentWeather(ctx context.Context, lat, lng float64) db_models.WeatherSnapshot
}

type WeatherService struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

func NewWeatherService(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) WeatherServiceInterface {
	return &WeatherService{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

type openWeatherResponse struct {
	Main struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

func (w *WeatherService) GetCurrentWeather(ctx context.Context, lat, lng float64) db_models.WeatherSnapshot {
	snapshot, err := w.fetch(ctx, lat, lng)
	if err != nil {
		w.logger.Warn("Weather lookup failed, using fallback",
			zap.Float64("lat", lat),
			zap.Float64("lng", lng),
			zap.Error(err))
		return FallbackWeather
	}
	return snapshot
}

func (w *WeatherService) fetch(ctx context.Context, lat, lng float64) (db_models.WeatherSnapshot, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("appid", w.apiKey)
	params.Set("units", "metric")

	endpoint := w.baseURL + "/data/2.5/weather?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return db_models.WeatherSnapshot{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return db_models.WeatherSnapshot{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return db_models.WeatherSnapshot{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return db_models.WeatherSnapshot{}, fmt.Errorf("decode response: %w", err)
	}
	if body.Main.Temp == nil || body.Main.FeelsLike == nil || body.Main.Humidity == nil || len(body.Weather) == 0 {
		return db_models.WeatherSnapshot{}, fmt.Errorf("incomplete response")
	}

	return db_models.WeatherSnapshot{
		Temperature: *body.Main.Temp,
		Description: body.Weather[0].Description,
		FeelsLike:   *body.Main.FeelsLike,
		Humidity:    int(*body.Main.Humidity),
		WeatherMain: body.Weather[0].Main,
	}, nil
}
