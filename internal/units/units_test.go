package units

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnit_Display(t *testing.T) {
	assert.Equal(t, 20, Celsius.Display(20.4))
	assert.Equal(t, 69, Fahrenheit.Display(20.4))
	assert.Equal(t, 69, Celsius.Toggle().Display(20.4))
}

func TestUnit_Toggle(t *testing.T) {
	assert.Equal(t, Fahrenheit, Celsius.Toggle())
	assert.Equal(t, Celsius, Fahrenheit.Toggle())
	assert.Equal(t, Celsius, Celsius.Toggle().Toggle())

	assert.Equal(t, "°C", Celsius.Symbol())
	assert.Equal(t, "°F", Celsius.Other().Symbol())
}

func TestCelsiusToFahrenheit(t *testing.T) {
	assert.InDelta(t, 32.0, CelsiusToFahrenheit(0), 1e-9)
	assert.InDelta(t, 212.0, CelsiusToFahrenheit(100), 1e-9)
	assert.InDelta(t, -40.0, CelsiusToFahrenheit(-40), 1e-9)
}

func TestRound(t *testing.T) {
	tests := map[float64]int{
		20.4:  20,
		20.5:  21,
		-2.5:  -2,
		-2.51: -3,
		0:     0,
	}
	for in, want := range tests {
		assert.Equal(t, want, Round(in), "Round(%v)", in)
	}
}

func TestFormatDay(t *testing.T) {
	// 2025-07-26 12:00:00 UTC was a Saturday
	assert.Equal(t, "Sat", FormatDay(1753531200, time.UTC))
	assert.Equal(t, "Sat", FormatDay(1753531200, nil))

	tokyo := time.FixedZone("JST", 9*3600)
	// 2025-07-26 18:00 UTC is already Sunday in Tokyo
	assert.Equal(t, "Sun", FormatDay(1753552800, tokyo))
}

func TestFormatFullDate(t *testing.T) {
	d := time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "Monday, October 19, 2026", FormatFullDate(d))
}
