package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"weather-dashboard/config"
	v1 "weather-dashboard/internal/controllers/http/v1"
	"weather-dashboard/internal/database"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/forecast"
	"weather-dashboard/internal/services/weather"
	"weather-dashboard/pkg/httpserver"
	"weather-dashboard/pkg/logger"
	"weather-dashboard/pkg/observe"
)

// @title Weather Dashboard API
// @version 1.0
// @description Geocodes places, projects the OpenWeatherMap 5 day / 3 hour forecast into daily records and keeps a search history.

// @host localhost:8080
// @BasePath /

// @tag.name Weather
// @tag.description Search and forecast operations
// @tag.name History
// @tag.description Past searches
// @tag.name Geolocation
// @tag.description Browser geolocation
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load configuration:", err)
		os.Exit(1)
	}

	hook := observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.Debug, cnf.Sentry.DSN)

	l := logger.NewZapLoggerWithOptions(cnf.App.Name, logger.Options{
		AppEnv: cnf.App.Env,
		Level:  cnf.Log.Level,
	}, os.Stdout, hook)

	db, err := database.Connect(ctx, cnf.Storage)
	if err != nil {
		l.Fatal("cannot connect to the database", map[string]any{"err": err, "driver": cnf.Storage.Driver})
	}

	if err := database.Migrate(ctx, db, cnf.Storage.Driver); err != nil {
		l.Fatal("cannot migrate the database", map[string]any{"err": err})
	}

	state := weather.NewState(repositories.NewSQLHistoryRepository(db))
	if err := state.Load(ctx); err != nil {
		l.Fatal("cannot load history", map[string]any{"err": err})
	}

	owm, err := repositories.NewOpenWeatherRepository(
		cnf.Weather.APIKey,
		repositories.GeocodingEndpoint(cnf.Weather.GeocodingURL),
		repositories.ForecastEndpoint(cnf.Weather.ForecastURL),
		&http.Client{Timeout: cnf.Weather.RequestTimeout},
		l,
	)
	if err != nil {
		l.Fatal("cannot create the openweathermap client", map[string]any{"err": err})
	}

	projector, err := forecast.NewProjector(
		cnf.Weather.DaysPerForecast,
		cnf.Weather.HoursPerSample,
		forecast.Policy(cnf.Weather.ShortSeriesPolicy),
	)
	if err != nil {
		l.Fatal("invalid forecast projection", map[string]any{"err": err})
	}

	service := weather.NewService(owm, owm, projector, state, weather.Options{
		Defaults: repositories.ForecastOptions{
			Units: cnf.Weather.Units,
			Lang:  cnf.Weather.Lang,
		},
		GeolocationTimeout:  cnf.Weather.GeolocationTimeout,
		DisableGeodiscovery: !cnf.Weather.Geodiscovery,
	}, l)

	app := httpserver.InitFiberServer(cnf.App.Name, httpserver.Options{
		ReadTimeout:  cnf.Server.ReadTimeout,
		WriteTimeout: cnf.Server.WriteTimeout,
		IdleTimeout:  cnf.Server.IdleTimeout,
		Ready: func(c *fiber.Ctx) bool {
			return db.PingContext(c.UserContext()) == nil
		},
	})

	v1.NewRouter(
		app,
		service,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":    cnf.Server.Port,
		"env":     cnf.App.Env,
		"version": cnf.App.Version,
		"storage": cnf.Storage.Driver,
		"history": len(state.Locations()),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		_ = db.Close()
		hook.Flush()
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
