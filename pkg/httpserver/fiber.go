package httpserver

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"myweather/pkg/logger"
)

const (
	LivenessEndpoint  = "/manage/health"
	ReadinessEndpoint = "/manage/ready"

	bodyLimit = 64 * 1024
)

type options struct {
	readTimeout  time.Duration
	writeTimeout time.Duration
	idleTimeout  time.Duration
	ready        func() bool
	l            *logger.Logger
}

type Option func(*options)

// WithTimeouts sets the server timeouts. fasthttp applies the write timeout to
// the whole response, so a non-zero value cuts event streams short.
func WithTimeouts(read, write, idle time.Duration) Option {
	return func(o *options) {
		o.readTimeout = read
		o.writeTimeout = write
		o.idleTimeout = idle
	}
}

func WithReadiness(ready func() bool) Option {
	return func(o *options) {
		o.ready = ready
	}
}

// WithRequestLogging logs one line per request.
func WithRequestLogging(l *logger.Logger) Option {
	return func(o *options) {
		o.l = l
	}
}

func InitFiberServer(appName string, opts ...Option) *fiber.App {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	s := fiber.New(fiber.Config{
		AppName:               appName,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		BodyLimit:             bodyLimit,
		ReadTimeout:           o.readTimeout,
		WriteTimeout:          o.writeTimeout,
		IdleTimeout:           o.idleTimeout,
		DisableStartupMessage: true,
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	s.Use(requestid.New())
	if o.l != nil {
		s.Use(requestLogger(o.l))
	}
	s.Use(cors.New())

	health := healthcheck.Config{
		LivenessEndpoint:  LivenessEndpoint,
		ReadinessEndpoint: ReadinessEndpoint,
	}
	if o.ready != nil {
		ready := o.ready
		health.ReadinessProbe = func(*fiber.Ctx) bool { return ready() }
	}
	s.Use(healthcheck.New(health))

	return s
}

func requestLogger(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		fields := map[string]any{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"duration":   time.Since(start).String(),
			"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
		}
		if err != nil {
			fields["err"] = err.Error()
		}
		l.Debug("handled request", fields)

		return err
	}
}
