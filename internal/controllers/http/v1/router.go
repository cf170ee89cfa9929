package http

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "weather-dashboard/docs"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/forecast"
	"weather-dashboard/internal/services/weather"
	"weather-dashboard/pkg/logger"
)

// DashboardService is the part of weather.Service the handlers use.
type DashboardService interface {
	Search(ctx context.Context, input string, opts repositories.ForecastOptions) (weather.SearchResult, error)
	Replay(ctx context.Context, coords models.Coordinates, opts repositories.ForecastOptions) (forecast.Projection, error)
	Locate(ctx context.Context, coords models.Coordinates, opts repositories.ForecastOptions) (forecast.Projection, error)
	ForgetGeolocation(ctx context.Context) error
	Reset(ctx context.Context) error
	History() []models.Location
	Geolocation() (models.Coordinates, error)
}

type routes struct {
	service  DashboardService
	validate *validator.Validate
	l        *logger.Logger
}

func NewRouter(
	app *fiber.App,
	service DashboardService,
	l *logger.Logger,
) {
	r := &routes{
		service:  service,
		validate: validator.New(),
		l:        l,
	}

	app.Get("/swagger/*", swagger.HandlerDefault)

	v1 := app.Group("/api/v1")

	v1.Get("/weather/search", r.handleSearch)
	v1.Get("/weather", r.handleReplay)
	v1.Get("/history", r.handleHistory)
	v1.Delete("/history", r.handleReset)
	v1.Get("/geolocation", r.handleGetGeolocation)
	v1.Put("/geolocation", r.handleLocate)
	v1.Delete("/geolocation", r.handleForgetGeolocation)
}
