package models

// WeatherView is the display model derived from one current-weather payload.
type WeatherView struct {
	City        string      `json:"city" example:"Paris"`
	Country     string      `json:"country" example:"FR"`
	Coordinates Coordinates `json:"coordinates"`
	Condition   Condition   `json:"condition"`
	Temperature Temperature `json:"temperature"`
	Wind        Wind        `json:"wind"`
}

type Coordinates struct {
	Lat float64 `json:"lat" example:"48.8534"`
	Lon float64 `json:"lon" example:"2.3488"`
}

type Condition struct {
	Description string `json:"description" example:"light rain"`
	IconURL     string `json:"icon_url" example:"https://openweathermap.org/img/wn/10d@2x.png"`
}

type Temperature struct {
	Current  float64 `json:"current" example:"20.4"`
	Humidity int     `json:"humidity" example:"81"`
}

type Wind struct {
	Speed float64 `json:"speed" example:"3.6"`
}
