package models

import "errors"

// ErrMalformedPayload marks a provider response that decoded but does not
// carry the fields the display needs.
var ErrMalformedPayload = errors.New("malformed payload")

// CurrentPayload mirrors the provider's current-weather response.
type CurrentPayload struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []WeatherCondition `json:"weather"`
	Main    struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type WeatherCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (p CurrentPayload) Validate() error {
	if len(p.Weather) == 0 {
		return errors.New("missing weather conditions")
	}
	return nil
}

// ForecastPayload mirrors the provider's 5-day/3-hour response. A nil List
// means the field was absent.
type ForecastPayload struct {
	List []ForecastItem `json:"list"`
}

type ForecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		TempMin float64 `json:"temp_min"`
		TempMax float64 `json:"temp_max"`
	} `json:"main"`
	Weather []WeatherCondition `json:"weather"`
}

// Validate only checks the list itself. Items are checked where they are
// sampled, see transform.Forecast.
func (p ForecastPayload) Validate() error {
	if p.List == nil {
		return errors.New("missing list")
	}
	return nil
}

// ProviderError is the body the provider sends with non-2xx responses. Cod is
// a number on some endpoints and a string on others.
type ProviderError struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
