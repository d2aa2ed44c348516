package http

import (
	"fmt"
	"strconv"
	"time"

	"weather-search/internal/models"
	"weather-search/internal/services/weather"
	"weather-search/internal/units"
)

const msgCityNotFound = "Sorry, city not found. Please try again."

// Page is everything index.html renders, already formatted.
type Page struct {
	Title        string
	Query        string
	Refresh      bool
	Loading      bool
	Failed       bool
	ErrorMessage string
	Current      *CurrentView
	Forecast     *ForecastView
	History      []string
}

type CurrentView struct {
	City        string
	Country     string
	Date        string
	IconURL     string
	Description string
	Temperature int
	UnitSymbol  string
	OtherSymbol string
	WindSpeed   string
	Humidity    string
}

type ForecastView struct {
	Message string
	Days    []DayView
}

type DayView struct {
	Day         string
	IconURL     string
	Description string
	Minimum     int
	Maximum     int
}

// BuildPage turns a session snapshot into the page model. now and loc fix the
// date line and the weekday labels.
func BuildPage(title string, snap weather.Snapshot, now time.Time, loc *time.Location) Page {
	page := Page{
		Title:   title,
		Query:   snap.Query,
		History: snap.History,
	}

	switch snap.State.Kind {
	case models.StateIdle, models.StateLoading:
		page.Loading = true
		page.Refresh = true
	case models.StateFailed:
		page.Failed = true
		page.ErrorMessage = msgCityNotFound
	case models.StateLoaded:
		page.Current = currentView(*snap.State.Data, snap.Unit, now.In(loc))
		page.Forecast = forecastView(snap.Forecast, snap.Unit, loc)
		page.Refresh = snap.Forecast.Loading
	}

	return page
}

func currentView(v models.WeatherView, unit units.Unit, now time.Time) *CurrentView {
	return &CurrentView{
		City:        v.City,
		Country:     v.Country,
		Date:        units.FormatFullDate(now),
		IconURL:     v.Condition.IconURL,
		Description: v.Condition.Description,
		Temperature: unit.Display(v.Temperature.Current),
		UnitSymbol:  unit.Symbol(),
		OtherSymbol: unit.Other().Symbol(),
		WindSpeed:   strconv.FormatFloat(v.Wind.Speed, 'f', -1, 64) + " m/s",
		Humidity:    fmt.Sprintf("%d%%", v.Temperature.Humidity),
	}
}

func forecastView(f models.ForecastState, unit units.Unit, loc *time.Location) *ForecastView {
	view := &ForecastView{Message: f.Message}
	for _, e := range f.Entries {
		view.Days = append(view.Days, DayView{
			Day:         units.FormatDay(e.Time, loc),
			IconURL:     e.Condition.IconURL,
			Description: e.Condition.Description,
			Minimum:     unit.Display(e.Temperature.Minimum),
			Maximum:     unit.Display(e.Temperature.Maximum),
		})
	}
	return view
}
