package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ForecastResponse is the body of the provider's 5 day / 3 hour forecast endpoint.
type ForecastResponse struct {
	Cod     StatusCode      `json:"cod" example:"200"`
	Message int             `json:"message" example:"0"`
	Cnt     int             `json:"cnt" example:"40"`
	List    []ForecastEntry `json:"list"`
	City    CityInfo        `json:"city"`
}

// ForecastEntry is a single forecast point.
type ForecastEntry struct {
	Dt         int64              `json:"dt" example:"1731747600"`
	Main       MainMetrics        `json:"main"`
	Weather    []WeatherCondition `json:"weather"`
	Clouds     CloudCover         `json:"clouds"`
	Wind       WindInfo           `json:"wind"`
	Visibility int                `json:"visibility" example:"10000"`
	DtTxt      string             `json:"dt_txt" example:"2024-11-16 09:00:00"`
}

type MainMetrics struct {
	Temp      float64 `json:"temp" example:"18.5"`
	FeelsLike float64 `json:"feels_like" example:"18.0"`
	TempMin   float64 `json:"temp_min" example:"18.0"`
	TempMax   float64 `json:"temp_max" example:"19.0"`
	Pressure  int     `json:"pressure" example:"1015"`
	Humidity  int     `json:"humidity" example:"72"`
}

type WeatherCondition struct {
	ID          int    `json:"id" example:"800"`
	Main        string `json:"main" example:"Clear"`
	Description string `json:"description" example:"clear sky"`
	Icon        string `json:"icon" example:"01d"`
}

type CloudCover struct {
	All int `json:"all" example:"10"`
}

// WindInfo carries Gust only when the provider reports one.
type WindInfo struct {
	Speed float64  `json:"speed" example:"3.5"`
	Deg   int      `json:"deg" example:"200"`
	Gust  *float64 `json:"gust,omitempty" example:"6.0"`
}

type Coordinates struct {
	Lat float64 `json:"lat" example:"51.5085"`
	Lon float64 `json:"lon" example:"-0.1257"`
}

type CityInfo struct {
	ID       int         `json:"id" example:"2643743"`
	Name     string      `json:"name" example:"London"`
	Coord    Coordinates `json:"coord"`
	Country  string      `json:"country" example:"GB"`
	Timezone int         `json:"timezone" example:"0"`
	Sunrise  int64       `json:"sunrise" example:"1731741600"`
	Sunset   int64       `json:"sunset" example:"1731773700"`
}

// IsEmpty reports whether the response carries no usable forecast: neither
// an entry list nor a city. An empty but present list is not empty.
func (r *ForecastResponse) IsEmpty() bool {
	if r == nil {
		return true
	}
	return r.List == nil && r.City.ID == 0 && r.City.Name == ""
}

// Primary returns the first weather condition of the entry, which the provider
// always lists first as the dominant one.
func (e ForecastEntry) Primary() (WeatherCondition, bool) {
	if len(e.Weather) == 0 {
		return WeatherCondition{}, false
	}
	return e.Weather[0], true
}

// Clone returns a copy of the entry that shares no memory with e.
func (e ForecastEntry) Clone() ForecastEntry {
	if e.Weather != nil {
		weather := make([]WeatherCondition, len(e.Weather))
		copy(weather, e.Weather)
		e.Weather = weather
	}
	if e.Wind.Gust != nil {
		gust := *e.Wind.Gust
		e.Wind.Gust = &gust
	}
	return e
}

func (r *ForecastResponse) Summary() string {
	return fmt.Sprintf("city: %s country: %s entries: %d", r.City.Name, r.City.Country, len(r.List))
}

// StatusCode is the provider's "cod" field. The forecast endpoint sends it as
// a string but other endpoints send a number, so both are accepted.
type StatusCode string

func (c *StatusCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = StatusCode(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("cod must be a string or number: %w", err)
	}
	*c = StatusCode(n.String())
	return nil
}

// Int returns the numeric value of the code, or 0 when it is not a number.
func (c StatusCode) Int() int {
	n, err := strconv.Atoi(string(c))
	if err != nil {
		return 0
	}
	return n
}
