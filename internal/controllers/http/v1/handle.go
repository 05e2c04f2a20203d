package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"myweather/internal/presentation"
	"myweather/internal/services/forecast"
)

// FetchRequest is the body of a forecast request.
type FetchRequest struct {
	City string `json:"city" example:"London"`
}

// FetchAccepted acknowledges a forecast request.
type FetchAccepted struct {
	FetchID string `json:"fetch_id" example:"3f2c8a9e-5d1b-4c7e-9a0f-2b6d8e4c1a7f"`
	City    string `json:"city" example:"London"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: city"`
}

// handleFetchForecast godoc
// @Summary Request a forecast
// @Description Starts fetching the 5 day / 3 hour forecast for a city. The result is observed through GET /forecast or the event stream.
// @Tags Forecast
// @Accept json
// @Produce json
// @Param request body FetchRequest false "City to fetch"
// @Param city query string false "City to fetch, used when there is no body" example(London)
// @Success 202 {object} FetchAccepted "Fetch started"
// @Failure 400 {object} ErrorResponse "Bad request - missing city"
// @Failure 503 {object} ErrorResponse "Shutting down"
// @Router /forecast [post]
// @Example {curl} Example usage:
//
//	curl -X POST "http://localhost:8080/forecast" -H "Content-Type: application/json" -d '{"city":"London"}'
func (r *routes) handleFetchForecast(c *fiber.Ctx) error {
	var req FetchRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Invalid request body",
			})
		}
	}
	if strings.TrimSpace(req.City) == "" {
		req.City = c.Query("city")
	}

	fetchID, err := r.store.Fetch(req.City)
	switch {
	case errors.Is(err, forecast.ErrEmptyCity):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: city",
		})
	case errors.Is(err, forecast.ErrStoreClosed):
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error: "Service is shutting down",
		})
	case err != nil:
		r.l.Error(err, map[string]any{"city": req.City})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to start forecast fetch",
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(FetchAccepted{
		FetchID: fetchID,
		City:    strings.TrimSpace(req.City),
	})
}

// handleGetForecast godoc
// @Summary Get the current forecast view
// @Description Returns the state of the latest forecast request, grouped by day relative to the current date.
// @Tags Forecast
// @Produce json
// @Success 200 {object} presentation.ForecastView "Current view"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /forecast [get]
func (r *routes) handleGetForecast(c *fiber.Ctx) error {
	view, err := r.present()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to render forecast",
		})
	}

	return c.JSON(view)
}

func (r *routes) present() (presentation.ForecastView, error) {
	snap := r.store.Snapshot()

	view, err := r.presenter.Present(snap)
	if err != nil {
		r.l.Error(err, map[string]any{
			"city":       snap.City,
			"generation": snap.Generation,
		})
		return presentation.ForecastView{}, err
	}

	return view, nil
}
