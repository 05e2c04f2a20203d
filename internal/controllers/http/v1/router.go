package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "myweather/docs"
	"myweather/internal/models"
	"myweather/internal/presentation"
	"myweather/pkg/logger"
)

// ForecastStore is the part of the store the routes drive.
type ForecastStore interface {
	Fetch(city string) (string, error)
	Snapshot() models.ForecastViewState
	Subscribe() (<-chan models.ForecastViewState, func())
}

type routes struct {
	store     ForecastStore
	presenter *presentation.Presenter
	l         *logger.Logger
}

func NewRouter(
	app *fiber.App,
	store ForecastStore,
	presenter *presentation.Presenter,
	l *logger.Logger,
) {
	r := &routes{
		store:     store,
		presenter: presenter,
		l:         l,
	}

	// Swagger documentation, served from the registered docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))

	// API routes
	app.Post("/forecast", r.handleFetchForecast)
	app.Get("/forecast", r.handleGetForecast)
	app.Get("/forecast/events", r.handleForecastEvents)
}
