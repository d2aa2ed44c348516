package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"weather-search/internal/models"
	"weather-search/pkg/logger"
	"weather-search/pkg/observe"
)

const (
	OpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

	currentEndpoint  = "/weather"
	forecastEndpoint = "/forecast"
)

// APIError is a non-200 answer from the provider. Message carries the
// provider's own explanation when the body had one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP error (status %d)", e.Status)
	}
	return fmt.Sprintf("HTTP error (status %d): %s", e.Status, e.Message)
}

type OpenWeatherOptions struct {
	BaseURL string
	APIKey  string
	// Timeout of zero leaves the transport default in place.
	Timeout time.Duration
}

type OpenWeatherRepository struct {
	client  *resty.Client
	l       *logger.Logger
	metrics *observe.Metrics
}

func NewOpenWeatherRepository(opts OpenWeatherOptions, l *logger.Logger, m *observe.Metrics) (*OpenWeatherRepository, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = OpenWeatherBaseURL
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetQueryParam("appid", opts.APIKey).
		SetQueryParam("units", "metric").
		SetLogger(restyLogger{l: l})
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	return &OpenWeatherRepository{
		client:  client,
		l:       l,
		metrics: m,
	}, nil
}

func (o *OpenWeatherRepository) Name() string {
	return "openweathermap"
}

// FetchCurrent queries the current-weather endpoint for city.
func (o *OpenWeatherRepository) FetchCurrent(ctx context.Context, city string) (models.CurrentPayload, error) {
	var payload models.CurrentPayload

	if err := o.get(ctx, currentEndpoint, city, &payload); err != nil {
		return payload, err
	}
	if err := payload.Validate(); err != nil {
		o.metrics.ObserveUpstream(currentEndpoint, "malformed")
		return payload, fmt.Errorf("%w: %v", models.ErrMalformedPayload, err)
	}

	o.metrics.ObserveUpstream(currentEndpoint, "ok")

	return payload, nil
}

// FetchForecast queries the 5-day/3-hour forecast endpoint for city.
func (o *OpenWeatherRepository) FetchForecast(ctx context.Context, city string) (models.ForecastPayload, error) {
	var payload models.ForecastPayload

	if err := o.get(ctx, forecastEndpoint, city, &payload); err != nil {
		return payload, err
	}
	if err := payload.Validate(); err != nil {
		o.metrics.ObserveUpstream(forecastEndpoint, "malformed")
		return payload, fmt.Errorf("%w: %v", models.ErrMalformedPayload, err)
	}

	o.l.Info("parsed forecast response", map[string]any{
		"city":  city,
		"items": len(payload.List),
	})

	o.metrics.ObserveUpstream(forecastEndpoint, "ok")

	return payload, nil
}

func (o *OpenWeatherRepository) get(ctx context.Context, endpoint, city string, out any) error {
	o.l.Info("making openweathermap API request", map[string]any{
		"endpoint": endpoint,
		"city":     city,
	})

	resp, err := o.client.R().
		SetContext(ctx).
		SetQueryParam("q", city).
		Get(endpoint)
	if err != nil {
		o.metrics.ObserveUpstream(endpoint, "transport_error")
		// url.Error carries the full URL, appid included
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return fmt.Errorf("failed to do request: %s %s: %w", uerr.Op, endpoint, uerr.Err)
		}
		return fmt.Errorf("failed to do request: %w", err)
	}

	o.l.Info("received openweathermap API response", map[string]any{
		"endpoint":   endpoint,
		"status":     resp.StatusCode(),
		"statusText": resp.Status(),
	})

	if resp.StatusCode() != http.StatusOK {
		o.metrics.ObserveUpstream(endpoint, "http_error")
		return &APIError{
			Status:  resp.StatusCode(),
			Message: providerMessage(resp.Body()),
		}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		o.metrics.ObserveUpstream(endpoint, "malformed")
		return fmt.Errorf("%w: failed to parse JSON response: %v", models.ErrMalformedPayload, err)
	}

	return nil
}

func providerMessage(body []byte) string {
	var perr models.ProviderError
	if err := json.Unmarshal(body, &perr); err != nil {
		return ""
	}
	return perr.Message
}

// restyLogger routes resty's own diagnostics into the service logger.
type restyLogger struct {
	l *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...any) {
	r.l.Error(fmt.Errorf(format, v...))
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.l.Warning(fmt.Sprintf(format, v...))
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.l.Debug(fmt.Sprintf(format, v...))
}
