package http

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"myweather/internal/presentation"
)

const keepAliveInterval = 15 * time.Second

// handleForecastEvents godoc
// @Summary Stream forecast views
// @Description Server-sent events: the current view first, then one view per state change. Slow clients only receive the latest state.
// @Tags Forecast
// @Produce text/event-stream
// @Success 200 {object} presentation.ForecastView "One data event per view"
// @Router /forecast/events [get]
func (r *routes) handleForecastEvents(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	updates, unsubscribe := r.store.Subscribe()

	current, err := r.present()
	if err != nil {
		unsubscribe()
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to render forecast",
		})
	}

	requestID := c.GetRespHeader(fiber.HeaderXRequestID)

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer unsubscribe()

		r.l.Debug("event stream opened", map[string]any{"request_id": requestID})
		defer r.l.Debug("event stream closed", map[string]any{"request_id": requestID})

		if err := writeEvent(w, current); err != nil {
			return
		}

		keepAlive := time.NewTicker(keepAliveInterval)
		defer keepAlive.Stop()

		for {
			select {
			case snap, ok := <-updates:
				if !ok {
					return
				}
				view, err := r.presenter.Present(snap)
				if err != nil {
					r.l.Error(err, map[string]any{"request_id": requestID})
					continue
				}
				if err := writeEvent(w, view); err != nil {
					return
				}
			case <-keepAlive.C:
				// a failed flush means the client went away
				if _, err := w.WriteString(": keep-alive\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))

	return nil
}

func writeEvent(w *bufio.Writer, view presentation.ForecastView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return err
	}
	return w.Flush()
}
