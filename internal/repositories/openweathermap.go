package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"myweather/internal/models"
	"myweather/pkg/logger"
)

const (
	OpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"

	forecastPath   = "/forecast"
	defaultTimeout = 10 * time.Second
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ForecastRequest describes one call to the forecast endpoint. Units defaults
// to metric and Count is only sent when set.
type ForecastRequest struct {
	City   string
	APIKey string
	Units  models.Units
	Count  *int
}

func (r ForecastRequest) params() map[string]any {
	p := map[string]any{
		"city":  r.City,
		"units": r.Units,
	}
	if r.Count != nil {
		p["count"] = *r.Count
	}
	return p
}

// OpenWeatherMapClient issues forecast requests. It never retries and never
// caches: one call to Fetch is one outbound request.
type OpenWeatherMapClient struct {
	baseURL    string
	httpClient HTTPClient
	limiter    *rate.Limiter
	l          *logger.Logger
}

type ClientOption func(*OpenWeatherMapClient)

func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *OpenWeatherMapClient) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout replaces the HTTP client with one using the given timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *OpenWeatherMapClient) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// WithRateLimit spaces outbound requests to rps with the given burst.
// Requests wait for a token; none are dropped.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *OpenWeatherMapClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func NewOpenWeatherMapClient(baseURL string, l *logger.Logger, opts ...ClientOption) *OpenWeatherMapClient {
	if baseURL == "" {
		baseURL = OpenWeatherMapBaseURL
	}

	c := &OpenWeatherMapClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		l:          l,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *OpenWeatherMapClient) Name() string {
	return "openweathermap"
}

// Fetch returns the decoded forecast. A 2xx response with an empty or null
// body yields a nil response and a nil error.
func (c *OpenWeatherMapClient) Fetch(ctx context.Context, fr ForecastRequest) (*models.ForecastResponse, error) {
	if fr.Units == "" {
		fr.Units = models.UnitsMetric
	}

	endpoint, err := c.forecastURL(fr)
	if err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &NetworkError{Op: "rate limit wait", Cause: err}
		}
	}

	c.l.Info("making openweathermap API request", map[string]any{
		"params": fr.params(),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &NetworkError{Op: "create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "do request", Cause: unwrapURLError(err)}
	}
	defer resp.Body.Close()

	c.l.Info("received openweathermap API response", map[string]any{
		"city":       fr.City,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{
			StatusCode:    resp.StatusCode,
			StatusMessage: statusMessage(resp),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: "read response body", Cause: err}
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		c.l.Warning("openweathermap returned no body", map[string]any{"city": fr.City})
		return nil, nil
	}

	var forecast models.ForecastResponse
	if err := json.Unmarshal(body, &forecast); err != nil {
		return nil, &DecodeError{Cause: err}
	}

	c.l.Debug("parsed API response", map[string]any{
		"city":    forecast.City.Name,
		"entries": len(forecast.List),
	})

	return &forecast, nil
}

func (c *OpenWeatherMapClient) forecastURL(fr ForecastRequest) (string, error) {
	u, err := url.Parse(c.baseURL + forecastPath)
	if err != nil {
		return "", &NetworkError{Op: "build url", Cause: unwrapURLError(err)}
	}

	q := u.Query()
	q.Set("q", fr.City)
	q.Set("appid", fr.APIKey)
	q.Set("units", string(fr.Units))
	if fr.Count != nil {
		q.Set("cnt", strconv.Itoa(*fr.Count))
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// statusMessage returns the reason phrase of the status line, e.g. "Not Found".
func statusMessage(resp *http.Response) string {
	msg := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return msg
}

// unwrapURLError drops the *url.Error wrapper, whose message embeds the full
// request URL including the appid parameter.
func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}
