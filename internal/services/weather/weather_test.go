package weather_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-search/internal/models"
	"weather-search/internal/repositories"
	"weather-search/internal/services/weather"
	"weather-search/pkg/logger"
)

const iconBase = "https://openweathermap.org/img/wn"

// MockRepository implements WeatherRepository for testing. FetchCurrent
// blocks on gates[city] when one is set.
type MockRepository struct {
	mu          sync.Mutex
	currentErr  map[string]error
	forecastErr error
	forecastLen int
	// forecastHoles lists item indices returned without weather conditions.
	forecastHoles []int
	gates         map[string]chan struct{}
	currentCalls  []string
	forecastCalls []string
}

func newMockRepository() *MockRepository {
	return &MockRepository{
		currentErr:  map[string]error{},
		gates:       map[string]chan struct{}{},
		forecastLen: 40,
	}
}

func (m *MockRepository) Name() string {
	return "mock"
}

func (m *MockRepository) FetchCurrent(ctx context.Context, city string) (models.CurrentPayload, error) {
	m.mu.Lock()
	m.currentCalls = append(m.currentCalls, city)
	gate := m.gates[city]
	err := m.currentErr[city]
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return models.CurrentPayload{}, ctx.Err()
		}
	}
	if err != nil {
		return models.CurrentPayload{}, err
	}

	var p models.CurrentPayload
	p.Name = city
	p.Sys.Country = "XX"
	p.Main.Temp = 20.4
	p.Main.Humidity = 81
	p.Wind.Speed = 3.6
	p.Weather = []models.WeatherCondition{{Description: "clear sky", Icon: "01d"}}
	return p, nil
}

func (m *MockRepository) FetchForecast(ctx context.Context, city string) (models.ForecastPayload, error) {
	m.mu.Lock()
	m.forecastCalls = append(m.forecastCalls, city)
	err := m.forecastErr
	n := m.forecastLen
	holes := m.forecastHoles
	m.mu.Unlock()

	if err != nil {
		return models.ForecastPayload{}, err
	}

	list := make([]models.ForecastItem, n)
	for i := range list {
		list[i].Dt = int64(1753455600 + i*3*3600)
		list[i].Main.TempMin = float64(i)
		list[i].Main.TempMax = float64(i + 1)
		list[i].Weather = []models.WeatherCondition{{Description: fmt.Sprintf("%s %d", city, i), Icon: "02d"}}
	}
	for _, i := range holes {
		list[i].Weather = []models.WeatherCondition{}
	}
	return models.ForecastPayload{List: list}, nil
}

func (m *MockRepository) calls() (current, forecast []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.currentCalls...), append([]string(nil), m.forecastCalls...)
}

func newService(repo repositories.WeatherRepository) *weather.WeatherService {
	return weather.NewWeatherService(repo, iconBase, logger.Nop())
}

func TestWeatherService_FetchCurrent_Success(t *testing.T) {
	service := newService(newMockRepository())

	view, err := service.FetchCurrent(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, "Paris", view.City)
	assert.Equal(t, "XX", view.Country)
	assert.Equal(t, 20.4, view.Temperature.Current)
	assert.Equal(t, "https://openweathermap.org/img/wn/01d@2x.png", view.Condition.IconURL)
}

func TestWeatherService_FetchCurrent_CollapsesErrors(t *testing.T) {
	failures := map[string]error{
		"not found": &repositories.APIError{Status: 404, Message: "city not found"},
		"transport": errors.New("dial tcp: connection refused"),
		"malformed": fmt.Errorf("%w: missing weather conditions", models.ErrMalformedPayload),
	}

	for name, failure := range failures {
		t.Run(name, func(t *testing.T) {
			repo := newMockRepository()
			repo.currentErr["Nowhere"] = failure

			_, err := newService(repo).FetchCurrent(context.Background(), "Nowhere")
			assert.ErrorIs(t, err, weather.ErrCityNotFound)
		})
	}
}

func TestWeatherService_FetchForecast(t *testing.T) {
	tests := []struct {
		name        string
		forecastLen int
		holes       []int
		forecastErr error
		wantEntries int
		wantMessage string
	}{
		{"full list", 40, nil, nil, 5, ""},
		{"short list", 16, nil, nil, 0, "Not enough forecast data available."},
		{"unsampled item without weather", 40, []int{0}, nil, 5, ""},
		{"short list with item without weather", 16, []int{3}, nil, 0, "Not enough forecast data available."},
		{"sampled item without weather", 40, []int{15}, nil, 0, "Unexpected data format from API."},
		{"unauthorized", 0, nil, &repositories.APIError{Status: 401, Message: "Invalid API key."}, 0, "Error 401: Invalid API key."},
		{"status without message", 0, nil, &repositories.APIError{Status: 500}, 0, "Error 500: Unauthorized"},
		{"malformed", 0, nil, fmt.Errorf("%w: missing list", models.ErrMalformedPayload), 0, "Unexpected data format from API."},
		{"transport", 0, nil, errors.New("connection reset"), 0, "Network error or server is not responding."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepository()
			repo.forecastLen = tt.forecastLen
			repo.forecastHoles = tt.holes
			repo.forecastErr = tt.forecastErr

			result := newService(repo).FetchForecast(context.Background(), "Paris")

			assert.Len(t, result.Entries, tt.wantEntries)
			assert.NotNil(t, result.Entries)
			assert.Equal(t, tt.wantMessage, result.Message)
		})
	}
}

func TestWeatherService_FetchForecast_SampledIndices(t *testing.T) {
	result := newService(newMockRepository()).FetchForecast(context.Background(), "Paris")

	require.Len(t, result.Entries, 5)
	for day, idx := range []int{7, 15, 23, 31, 39} {
		assert.Equal(t, float64(idx), result.Entries[day].Temperature.Minimum)
		assert.Equal(t, fmt.Sprintf("Paris %d", idx), result.Entries[day].Condition.Description)
	}
}
