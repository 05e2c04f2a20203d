package presentation

import (
	"github.com/pkg/errors"

	"myweather/config"
	"myweather/internal/models"
)

// InitPresenter builds the presenter for the configured locale and timezone.
func InitPresenter(cfg *config.Config, units models.Units) (*Presenter, error) {
	formatter, err := NewMondayFormatter(cfg.Presentation.Locale)
	if err != nil {
		return nil, errors.Wrap(err, "presentation locale")
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, errors.Wrap(err, "presentation timezone")
	}

	grouper := NewForecastGrouper(
		WithFormatter(formatter),
		WithLocation(loc),
	)

	return NewPresenter(grouper, units), nil
}
