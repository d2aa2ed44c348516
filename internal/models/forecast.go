package models

// ForecastEntry is one sampled day of the 5-day forecast.
type ForecastEntry struct {
	Time        int64            `json:"time" example:"1753531200"`
	Temperature TemperatureRange `json:"temperature"`
	Condition   Condition        `json:"condition"`
}

type TemperatureRange struct {
	Minimum float64 `json:"minimum" example:"14.2"`
	Maximum float64 `json:"maximum" example:"21.9"`
}

// ForecastState is what the forecast area shows. Entries and Message are
// mutually exclusive once Loading is false.
type ForecastState struct {
	Loading bool            `json:"loading"`
	Entries []ForecastEntry `json:"entries"`
	Message string          `json:"message,omitempty"`
}
