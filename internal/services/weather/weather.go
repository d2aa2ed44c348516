package weather

import (
	"context"
	"errors"
	"fmt"

	"weather-search/internal/models"
	"weather-search/internal/repositories"
	"weather-search/internal/transform"
	"weather-search/pkg/logger"
)

var ErrCityNotFound = errors.New("city not found")

// Messages shown in the forecast area.
const (
	MsgInsufficientData = "Not enough forecast data available."
	MsgUnexpectedFormat = "Unexpected data format from API."
	MsgNetworkError     = "Network error or server is not responding."
)

// ForecastResult is the outcome of one forecast fetch: entries on success,
// otherwise a message for the forecast area.
type ForecastResult struct {
	Entries []models.ForecastEntry
	Message string
}

// WeatherService turns provider payloads into display models.
type WeatherService struct {
	repo     repositories.WeatherRepository
	iconBase string
	l        *logger.Logger
}

func NewWeatherService(repo repositories.WeatherRepository, iconBase string, l *logger.Logger) *WeatherService {
	return &WeatherService{
		repo:     repo,
		iconBase: iconBase,
		l:        l,
	}
}

// FetchCurrent fetches current conditions for city. Every failure, whether
// transport, HTTP status or payload shape, is reported as ErrCityNotFound.
func (s *WeatherService) FetchCurrent(ctx context.Context, city string) (models.WeatherView, error) {
	raw, err := s.repo.FetchCurrent(ctx, city)
	if err != nil {
		s.l.Warning("current weather fetch failed", map[string]any{
			"repo": s.repo.Name(),
			"city": city,
			"err":  err,
		})
		return models.WeatherView{}, fmt.Errorf("%w: %q", ErrCityNotFound, city)
	}

	view := transform.Current(raw, s.iconBase)

	s.l.Info("fetched current weather", map[string]any{
		"city":    view.City,
		"country": view.Country,
	})

	return view, nil
}

// FetchForecast fetches the 5-day forecast for city and samples one entry per
// day. It never fails; problems end up in ForecastResult.Message.
func (s *WeatherService) FetchForecast(ctx context.Context, city string) ForecastResult {
	raw, err := s.repo.FetchForecast(ctx, city)
	if err != nil {
		s.l.Warning("forecast fetch failed", map[string]any{
			"repo": s.repo.Name(),
			"city": city,
			"err":  err,
		})
		return ForecastResult{Entries: []models.ForecastEntry{}, Message: forecastErrorMessage(err)}
	}

	entries, err := transform.Forecast(raw.List, s.iconBase)
	switch {
	case errors.Is(err, transform.ErrInsufficientData):
		s.l.Warning("not enough forecast data", map[string]any{
			"city":  city,
			"items": len(raw.List),
		})
		return ForecastResult{Entries: entries, Message: MsgInsufficientData}
	case err != nil:
		s.l.Warning("unexpected forecast item", map[string]any{
			"city": city,
			"err":  err,
		})
		return ForecastResult{Entries: entries, Message: forecastErrorMessage(err)}
	}

	s.l.Info("fetched forecast", map[string]any{
		"city": city,
		"days": len(entries),
	})

	return ForecastResult{Entries: entries}
}

func forecastErrorMessage(err error) string {
	var apiErr *repositories.APIError
	switch {
	case errors.As(err, &apiErr):
		msg := apiErr.Message
		if msg == "" {
			msg = "Unauthorized"
		}
		return fmt.Sprintf("Error %d: %s", apiErr.Status, msg)
	case errors.Is(err, models.ErrMalformedPayload):
		return MsgUnexpectedFormat
	default:
		return MsgNetworkError
	}
}
