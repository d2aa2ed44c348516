// Package transform maps provider payloads onto display models.
package transform

import (
	"errors"
	"fmt"
	"strings"

	"weather-search/internal/models"
)

const (
	// MinForecastSamples is five days of three-hourly samples.
	MinForecastSamples = 40
	// ForecastOffset and ForecastStride pick one sample per day at the same
	// time of day.
	ForecastOffset  = 7
	ForecastStride  = 8
	MaxForecastDays = 5
)

var ErrInsufficientData = errors.New("not enough forecast data")

// IconURL builds the 2x icon asset URL for a provider icon code.
func IconURL(base, code string) string {
	return fmt.Sprintf("%s/%s@2x.png", strings.TrimRight(base, "/"), code)
}

// Current projects a validated current-weather payload onto a WeatherView.
func Current(raw models.CurrentPayload, iconBase string) models.WeatherView {
	return models.WeatherView{
		City:    raw.Name,
		Country: raw.Sys.Country,
		Coordinates: models.Coordinates{
			Lat: raw.Coord.Lat,
			Lon: raw.Coord.Lon,
		},
		Condition: condition(raw.Weather, iconBase),
		Temperature: models.Temperature{
			Current:  raw.Main.Temp,
			Humidity: raw.Main.Humidity,
		},
		Wind: models.Wind{
			Speed: raw.Wind.Speed,
		},
	}
}

// Forecast reduces a three-hourly sample list to one entry per day, taking
// indices 7, 15, 23, 31 and 39. Lists shorter than MinForecastSamples yield
// ErrInsufficientData and no entries. A sampled item without weather
// conditions yields models.ErrMalformedPayload; other items are never read.
func Forecast(list []models.ForecastItem, iconBase string) ([]models.ForecastEntry, error) {
	if len(list) < MinForecastSamples {
		return []models.ForecastEntry{}, fmt.Errorf("%w: got %d samples, need %d", ErrInsufficientData, len(list), MinForecastSamples)
	}

	daily := make([]models.ForecastEntry, 0, MaxForecastDays)
	for i := ForecastOffset; i < len(list) && len(daily) < MaxForecastDays; i += ForecastStride {
		item := list[i]
		if len(item.Weather) == 0 {
			return []models.ForecastEntry{}, fmt.Errorf("%w: item %d: missing weather conditions", models.ErrMalformedPayload, i)
		}
		daily = append(daily, models.ForecastEntry{
			Time: item.Dt,
			Temperature: models.TemperatureRange{
				Minimum: item.Main.TempMin,
				Maximum: item.Main.TempMax,
			},
			Condition: condition(item.Weather, iconBase),
		})
	}

	return daily, nil
}

func condition(weather []models.WeatherCondition, iconBase string) models.Condition {
	if len(weather) == 0 {
		return models.Condition{}
	}
	return models.Condition{
		Description: weather[0].Description,
		IconURL:     IconURL(iconBase, weather[0].Icon),
	}
}
