package models

import "fmt"

// Units is the measurement system requested from the provider.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
	UnitsStandard Units = "standard"
)

const iconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"

func ParseUnits(s string) (Units, error) {
	switch u := Units(s); u {
	case "":
		return UnitsMetric, nil
	case UnitsMetric, UnitsImperial, UnitsStandard:
		return u, nil
	default:
		return "", fmt.Errorf("unknown units %q", s)
	}
}

// TemperatureSymbol returns the suffix the provider's temperatures are expressed in.
func (u Units) TemperatureSymbol() string {
	switch u {
	case UnitsImperial:
		return "°F"
	case UnitsStandard:
		return "K"
	default:
		return "°C"
	}
}

// IconURL returns the provider-hosted image for an icon code.
func (w WeatherCondition) IconURL() string {
	if w.Icon == "" {
		return ""
	}
	return fmt.Sprintf(iconURLFormat, w.Icon)
}
