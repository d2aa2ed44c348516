package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-search/internal/models"
	"weather-search/pkg/logger"
	"weather-search/pkg/observe"
)

const parisCurrent = `{
	"coord": {"lon": 2.3488, "lat": 48.8534},
	"weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
	"main": {"temp": 20.4, "humidity": 81},
	"wind": {"speed": 3.6},
	"sys": {"country": "FR"},
	"name": "Paris",
	"cod": 200
}`

func forecastBody(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"dt": %d, "main": {"temp_min": 14.2, "temp_max": 21.9}, "weather": [{"description": "few clouds", "icon": "02d"}]}`,
			1753455600+i*3*3600)
	}
	return fmt.Sprintf(`{"cod": "200", "cnt": %d, "list": [%s]}`, n, strings.Join(items, ","))
}

func newTestRepository(t *testing.T, baseURL string) (*OpenWeatherRepository, *observe.Metrics) {
	t.Helper()
	m := observe.NewMetrics(prometheus.NewRegistry())
	repo, err := NewOpenWeatherRepository(OpenWeatherOptions{BaseURL: baseURL, APIKey: "test-key"}, logger.Nop(), m)
	require.NoError(t, err)
	return repo, m
}

func TestNewOpenWeatherRepository_EmptyKey(t *testing.T) {
	_, err := NewOpenWeatherRepository(OpenWeatherOptions{APIKey: "  "}, logger.Nop(), nil)
	assert.Error(t, err)
}

func TestOpenWeatherRepository_Name(t *testing.T) {
	repo := &OpenWeatherRepository{}
	assert.Equal(t, "openweathermap", repo.Name())
}

func TestOpenWeatherRepository_FetchCurrent_Success(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(parisCurrent))
	}))
	defer server.Close()

	repo, m := newTestRepository(t, server.URL+"/data/2.5")

	payload, err := repo.FetchCurrent(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, "/data/2.5/weather", gotPath)
	assert.Equal(t, map[string]string{"q": "Paris", "appid": "test-key", "units": "metric"}, gotQuery)

	assert.Equal(t, "Paris", payload.Name)
	assert.Equal(t, "FR", payload.Sys.Country)
	assert.Equal(t, 20.4, payload.Main.Temp)
	assert.Equal(t, 81, payload.Main.Humidity)
	require.Len(t, payload.Weather, 1)
	assert.Equal(t, "10d", payload.Weather[0].Icon)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Upstream.WithLabelValues("/weather", "ok")))
}

func TestOpenWeatherRepository_FetchCurrent_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer server.Close()

	repo, m := newTestRepository(t, server.URL)

	_, err := repo.FetchCurrent(context.Background(), "Nowhere")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "city not found", apiErr.Message)
	assert.Equal(t, "HTTP error (status 404): city not found", apiErr.Error())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Upstream.WithLabelValues("/weather", "http_error")))
}

func TestOpenWeatherRepository_FetchCurrent_Malformed(t *testing.T) {
	tests := map[string]string{
		"invalid json":    "invalid json",
		"missing weather": `{"name": "Paris", "weather": []}`,
		"null weather":    `{"name": "Paris", "weather": null}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			repo, _ := newTestRepository(t, server.URL)

			_, err := repo.FetchCurrent(context.Background(), "Paris")
			assert.ErrorIs(t, err, models.ErrMalformedPayload)
		})
	}
}

func TestOpenWeatherRepository_FetchCurrent_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	repo, m := newTestRepository(t, baseURL)

	_, err := repo.FetchCurrent(context.Background(), "Paris")
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.NotContains(t, err.Error(), "test-key")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Upstream.WithLabelValues("/weather", "transport_error")))
}

func TestOpenWeatherRepository_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(parisCurrent))
	}))
	defer server.Close()

	repo, _ := newTestRepository(t, server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FetchCurrent(ctx, "Paris")
	assert.Error(t, err)
}

func TestOpenWeatherRepository_FetchForecast_Success(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastBody(40)))
	}))
	defer server.Close()

	repo, _ := newTestRepository(t, server.URL)

	payload, err := repo.FetchForecast(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, "/forecast", gotPath)
	require.Len(t, payload.List, 40)
	assert.Equal(t, int64(1753455600), payload.List[0].Dt)
	assert.Equal(t, 14.2, payload.List[0].Main.TempMin)
	assert.Equal(t, 21.9, payload.List[0].Main.TempMax)
}

func TestOpenWeatherRepository_FetchForecast_MissingList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cod": "200", "cnt": 0}`))
	}))
	defer server.Close()

	repo, _ := newTestRepository(t, server.URL)

	_, err := repo.FetchForecast(context.Background(), "Paris")
	assert.ErrorIs(t, err, models.ErrMalformedPayload)
}

func TestOpenWeatherRepository_FetchForecast_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod": 401, "message": "Invalid API key. Please see https://openweathermap.org/faq#error401 for more info."}`))
	}))
	defer server.Close()

	repo, _ := newTestRepository(t, server.URL)

	_, err := repo.FetchForecast(context.Background(), "Paris")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.True(t, strings.HasPrefix(apiErr.Message, "Invalid API key"))
}

func TestOpenWeatherRepository_ErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	repo, _ := newTestRepository(t, server.URL)

	_, err := repo.FetchForecast(context.Background(), "Paris")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "HTTP error (status 502)", apiErr.Error())
}

func TestOpenWeatherRepository_FetchCurrent_WithoutName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"weather": [{"description": "clear sky", "icon": "01d"}], "main": {"temp": 3.2}}`))
	}))
	defer server.Close()

	repo, _ := newTestRepository(t, server.URL)

	payload, err := repo.FetchCurrent(context.Background(), "Somewhere")
	require.NoError(t, err)
	assert.Empty(t, payload.Name)
	assert.Equal(t, 3.2, payload.Main.Temp)
}

func TestOpenWeatherRepository_FetchForecast_ItemWithoutWeather(t *testing.T) {
	tests := map[string]struct {
		items int
		want  int
	}{
		"full list": {40, 40},
		"one item":  {1, 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			body := strings.Replace(forecastBody(tt.items),
				`"weather": [{"description": "few clouds", "icon": "02d"}]`, `"weather": []`, 1)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			repo, m := newTestRepository(t, server.URL)

			payload, err := repo.FetchForecast(context.Background(), "Paris")
			require.NoError(t, err)
			require.Len(t, payload.List, tt.want)
			assert.Empty(t, payload.List[0].Weather)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.Upstream.WithLabelValues("/forecast", "ok")))
		})
	}
}
