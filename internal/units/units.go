// Package units converts temperatures and formats timestamps for display.
// Formatting uses the en-US conventions only.
package units

import (
	"math"
	"time"
)

type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
)

func (u Unit) Toggle() Unit {
	if u == Celsius {
		return Fahrenheit
	}
	return Celsius
}

func (u Unit) Other() Unit {
	return u.Toggle()
}

func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

func (u Unit) String() string {
	if u == Fahrenheit {
		return "fahrenheit"
	}
	return "celsius"
}

func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// Display converts a Celsius reading into u and rounds it.
func (u Unit) Display(celsius float64) int {
	if u == Fahrenheit {
		return Round(CelsiusToFahrenheit(celsius))
	}
	return Round(celsius)
}

func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// Round rounds half up (-2.5 becomes -2), unlike math.Round.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// FormatDay returns the short weekday name ("Mon") of a unix timestamp in loc.
func FormatDay(unix int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(unix, 0).In(loc).Format("Mon")
}

// FormatFullDate renders t as "Monday, October 19, 2026".
func FormatFullDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
