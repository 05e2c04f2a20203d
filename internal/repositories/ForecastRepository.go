package repositories

import (
	"context"
	"errors"
	"fmt"

	"myweather/internal/models"
	"myweather/pkg/logger"
)

const noForecastMessage = "No forecast data found"

type ForecastFetcher interface {
	Name() string
	Fetch(ctx context.Context, req ForecastRequest) (*models.ForecastResponse, error)
}

// ForecastRepository flattens every client failure into a single message
// suitable for showing to the user.
type ForecastRepository struct {
	fetcher ForecastFetcher
	units   models.Units
	count   *int
	l       *logger.Logger
}

type RepositoryOption func(*ForecastRepository)

func WithUnits(units models.Units) RepositoryOption {
	return func(r *ForecastRepository) {
		if units != "" {
			r.units = units
		}
	}
}

// WithCount limits the number of entries requested; zero or less leaves it to the provider.
func WithCount(count int) RepositoryOption {
	return func(r *ForecastRepository) {
		if count > 0 {
			r.count = &count
		}
	}
}

func NewForecastRepository(fetcher ForecastFetcher, l *logger.Logger, opts ...RepositoryOption) *ForecastRepository {
	r := &ForecastRepository{
		fetcher: fetcher,
		units:   models.UnitsMetric,
		l:       l,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ForecastRepository) Units() models.Units {
	return r.units
}

// GetForecast never returns an error or panics: every failure resolves to a
// failed Outcome carrying the message to display.
func (r *ForecastRepository) GetForecast(ctx context.Context, city, apiKey string) (outcome models.Outcome[*models.ForecastResponse]) {
	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("forecast fetch panicked: %v", rec)
			r.l.Error(err, map[string]any{"city": city, "repository": r.fetcher.Name()})
			outcome = models.Failure[*models.ForecastResponse](FailureMessage(err))
		}
	}()

	forecast, err := r.fetcher.Fetch(ctx, ForecastRequest{
		City:   city,
		APIKey: apiKey,
		Units:  r.units,
		Count:  r.count,
	})
	if err == nil && forecast.IsEmpty() {
		err = &EmptyResultError{City: city}
	}

	if err != nil {
		r.l.Warning("failed to fetch forecast", map[string]any{
			"city":       city,
			"repository": r.fetcher.Name(),
			"err":        err.Error(),
		})
		return models.Failure[*models.ForecastResponse](FailureMessage(err))
	}

	r.l.Info("successfully fetched forecast", map[string]any{
		"city":       forecast.City.Name,
		"entries":    len(forecast.List),
		"repository": r.fetcher.Name(),
		"summary":    forecast.Summary(),
	})

	return models.Success(forecast)
}

// FailureMessage maps a client error to the text shown in place of the city name.
func FailureMessage(err error) string {
	var transportErr *TransportError
	var emptyErr *EmptyResultError

	switch {
	case errors.As(err, &transportErr):
		return fmt.Sprintf("Error: %d %s", transportErr.StatusCode, transportErr.StatusMessage)
	case errors.As(err, &emptyErr):
		return noForecastMessage
	default:
		return fmt.Sprintf("An error occurred: %v", err)
	}
}
