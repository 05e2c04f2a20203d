package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"myweather/config"
	v1 "myweather/internal/controllers/http/v1"
	"myweather/internal/presentation"
	"myweather/internal/repositories"
	"myweather/internal/services/forecast"
	"myweather/pkg/httpserver"
	"myweather/pkg/logger"
	"myweather/pkg/observe"
)

const shutdownTimeout = 30 * time.Second

// @title MyWeather API
// @version 1.0.0
// @description Fetches the 5 day / 3 hour forecast for a city and serves it grouped by day.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Forecast
// @tag.description Forecast requests and views
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}

	provider := config.NewFileConfigProvider(configPath)
	cnf, err := config.NewConfigWithProvider(provider)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if err := provider.Validate(cnf); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	writers := []io.Writer{os.Stdout}

	// the hook reads JSON lines, so it only runs with the json encoder
	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" && cnf.Log.Format == "json" {
		hook, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.DSN, cnf.Sentry.Debug)
		if err != nil {
			return err
		}
		writers = append(writers, hook)
	}

	loc, err := cnf.Location()
	if err != nil {
		return errors.Wrap(err, "log timezone")
	}

	l := logger.NewZapLogger(
		cnf.App.Name,
		writers,
		logger.WithLevel(cnf.Log.Level),
		logger.WithEnv(cnf.App.Env),
		logger.WithConsole(cnf.Log.Format == "console"),
		logger.WithLocation(loc),
	)
	defer func() { _ = l.Stop() }()

	if hook != nil {
		hook.SetLogger(l)
		defer hook.Flush()
	} else if cnf.Sentry.DSN != "" {
		l.Warning("sentry reporting disabled for console log format")
	}

	repo := repositories.InitForecastRepository(cnf, l)

	presenter, err := presentation.InitPresenter(cnf, repo.Units())
	if err != nil {
		return err
	}

	store := forecast.NewForecastStore(
		repo,
		cnf.Weather.APIKey,
		l,
		forecast.WithDiscardStale(cnf.Store.DiscardStale),
	)

	var stopping atomic.Bool
	read, write, idle := cnf.Server.Timeouts()
	app := httpserver.InitFiberServer(
		cnf.App.Name,
		httpserver.WithTimeouts(read, write, idle),
		httpserver.WithRequestLogging(l),
		httpserver.WithReadiness(func() bool { return !stopping.Load() }),
	)

	v1.NewRouter(
		app,
		store,
		presenter,
		l,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l.Info("application started successfully", map[string]any{
			"port":          cnf.Server.Port,
			"units":         repo.Units(),
			"discard_stale": cnf.Store.DiscardStale,
		})
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			return errors.Wrap(err, "cannot run the server")
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		l.Warning("stopping application services")
		stopping.Store(true)

		// closing the store ends every event stream, so the server can drain
		store.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		l.Error(err)
		return err
	}

	l.Info("application stopped")
	return nil
}
