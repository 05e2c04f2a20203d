package repositories

import (
	"myweather/config"
	"myweather/internal/models"
	"myweather/pkg/logger"
)

// InitForecastRepository wires the OpenWeatherMap client and the repository
// from configuration. The config is expected to have been validated.
func InitForecastRepository(cfg *config.Config, l *logger.Logger) *ForecastRepository {
	client := NewOpenWeatherMapClient(
		cfg.Weather.BaseURL,
		l,
		WithTimeout(cfg.Weather.RequestTimeout()),
		WithRateLimit(cfg.Weather.RateLimit, cfg.Weather.Burst),
	)

	units, err := models.ParseUnits(cfg.Weather.Units)
	if err != nil {
		units = models.UnitsMetric
	}

	return NewForecastRepository(
		client,
		l,
		WithUnits(units),
		WithCount(cfg.Weather.Count),
	)
}
