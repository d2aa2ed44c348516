package repositories

import (
	"context"

	"weather-search/config"
	"weather-search/internal/models"
	"weather-search/pkg/logger"
	"weather-search/pkg/observe"
)

type WeatherRepository interface {
	Name() string
	FetchCurrent(ctx context.Context, city string) (models.CurrentPayload, error)
	FetchForecast(ctx context.Context, city string) (models.ForecastPayload, error)
}

func InitWeatherRepository(cfg *config.Config, l *logger.Logger, m *observe.Metrics) (WeatherRepository, error) {
	return NewOpenWeatherRepository(OpenWeatherOptions{
		BaseURL: cfg.OpenWeather.BaseURL,
		APIKey:  cfg.OpenWeather.APIKey,
		Timeout: cfg.UpstreamTimeout,
	}, l, m)
}
