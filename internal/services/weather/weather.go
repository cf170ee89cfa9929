package weather

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/forecast"
	"weather-dashboard/pkg/logger"
)

const defaultGeolocationTimeout = 5 * time.Second

var (
	ErrEmptyQuery           = errors.New("search query is empty")
	ErrInvalidInput         = errors.New("invalid input")
	ErrGeodiscoveryDisabled = errors.New("geolocation is disabled")
)

// Options configures a Service.
type Options struct {
	Defaults           repositories.ForecastOptions
	GeolocationTimeout time.Duration

	// DisableGeodiscovery makes Locate refuse browser coordinates.
	DisableGeodiscovery bool
}

// SearchResult is the outcome of a successful search: the history entry it created
// and the projected forecast.
type SearchResult struct {
	Location models.Location `json:"location"`
	forecast.Projection
}

// Service runs the dashboard's user actions: search, history replay and browser
// geolocation.
type Service struct {
	geocoder           repositories.GeocodingRepository
	forecasts          repositories.ForecastRepository
	projector          *forecast.Projector
	state              *State
	defaults           repositories.ForecastOptions
	geolocationTimeout time.Duration
	geodiscovery       bool
	validate           *validator.Validate
	l                  *logger.Logger
}

func NewService(
	geocoder repositories.GeocodingRepository,
	forecasts repositories.ForecastRepository,
	projector *forecast.Projector,
	state *State,
	opts Options,
	l *logger.Logger,
) *Service {
	if opts.GeolocationTimeout <= 0 {
		opts.GeolocationTimeout = defaultGeolocationTimeout
	}

	return &Service{
		geocoder:           geocoder,
		forecasts:          forecasts,
		projector:          projector,
		state:              state,
		defaults:           opts.Defaults,
		geolocationTimeout: opts.GeolocationTimeout,
		geodiscovery:       !opts.DisableGeodiscovery,
		validate:           validator.New(),
		l:                  l,
	}
}

// Search geocodes input, fetches and projects its forecast, then saves the
// coordinates and appends input to the history. Nothing is saved on failure.
func (s *Service) Search(ctx context.Context, input string, opts repositories.ForecastOptions) (SearchResult, error) {
	query := strings.TrimSpace(input)
	if query == "" {
		return SearchResult{}, ErrEmptyQuery
	}

	opts, err := s.resolveOptions(opts)
	if err != nil {
		return SearchResult{}, err
	}

	s.l.Info("starting search", map[string]any{
		"query": query,
		"units": opts.Units,
		"lang":  opts.Lang,
	})

	candidate, err := s.geocoder.Geocode(ctx, query)
	if err != nil {
		s.l.Warning("failed to geocode", map[string]any{"query": query, "err": err})
		return SearchResult{}, errors.Wrap(err, "geocode")
	}

	coords := models.Coordinates{Lat: candidate.Lat, Lon: candidate.Lon}

	projection, err := s.project(ctx, coords, opts)
	if err != nil {
		return SearchResult{}, err
	}

	loc, err := s.state.RecordSearch(ctx, query, coords)
	if err != nil {
		s.l.Error(err, map[string]any{"query": query})
		return SearchResult{}, errors.Wrap(err, "record search")
	}

	s.l.Info("completed search", map[string]any{
		"query": query,
		"city":  projection.Today.City.Name,
		"days":  len(projection.Daily),
	})

	return SearchResult{Location: loc, Projection: projection}, nil
}

// Replay shows the forecast for a history entry. History and geolocation are left alone.
func (s *Service) Replay(ctx context.Context, coords models.Coordinates, opts repositories.ForecastOptions) (forecast.Projection, error) {
	if err := s.validateCoordinates(coords); err != nil {
		return forecast.Projection{}, err
	}

	opts, err := s.resolveOptions(opts)
	if err != nil {
		return forecast.Projection{}, err
	}

	return s.project(ctx, coords, opts)
}

// Locate saves coordinates reported by the browser and loads their forecast within
// the geolocation timeout. The coordinates stay saved even if the fetch fails.
func (s *Service) Locate(ctx context.Context, coords models.Coordinates, opts repositories.ForecastOptions) (forecast.Projection, error) {
	if !s.geodiscovery {
		return forecast.Projection{}, ErrGeodiscoveryDisabled
	}

	if err := s.validateCoordinates(coords); err != nil {
		return forecast.Projection{}, err
	}

	opts, err := s.resolveOptions(opts)
	if err != nil {
		return forecast.Projection{}, err
	}

	if err := s.state.SetGeolocation(ctx, coords); err != nil {
		s.l.Error(err, map[string]any{"coords": coords.String()})
		return forecast.Projection{}, errors.Wrap(err, "save geolocation")
	}

	ctx, cancel := context.WithTimeout(ctx, s.geolocationTimeout)
	defer cancel()

	return s.project(ctx, coords, opts)
}

// ForgetGeolocation drops the saved coordinates.
func (s *Service) ForgetGeolocation(ctx context.Context) error {
	if err := s.state.ClearGeolocation(ctx); err != nil {
		return errors.Wrap(err, "clear geolocation")
	}

	s.l.Info("geolocation cleared")
	return nil
}

// Reset empties the search history and forgets the saved coordinates.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.state.Reset(ctx); err != nil {
		return errors.Wrap(err, "reset")
	}

	s.l.Info("history and geolocation cleared")
	return nil
}

func (s *Service) History() []models.Location {
	return s.state.Locations()
}

func (s *Service) Geolocation() (models.Coordinates, error) {
	coords, ok := s.state.Geolocation()
	if !ok {
		return coords, repositories.ErrNoGeolocation
	}
	return coords, nil
}

func (s *Service) project(ctx context.Context, coords models.Coordinates, opts repositories.ForecastOptions) (forecast.Projection, error) {
	s.l.Debug("fetching forecast", map[string]any{"coords": coords.String()})

	response, err := s.forecasts.FetchForecast(ctx, coords, opts)
	if err != nil {
		s.l.Warning("failed to fetch forecast", map[string]any{"coords": coords.String(), "err": err})
		return forecast.Projection{}, errors.Wrap(err, "fetch forecast")
	}

	projection, err := s.projector.Project(response)
	if err != nil {
		s.l.Warning("failed to project forecast", map[string]any{
			"coords":  coords.String(),
			"samples": len(response.List),
			"err":     err,
		})
		return forecast.Projection{}, errors.Wrap(err, "project forecast")
	}

	return projection, nil
}

func (s *Service) resolveOptions(opts repositories.ForecastOptions) (repositories.ForecastOptions, error) {
	if opts.Units == "" {
		opts.Units = s.defaults.Units
	}
	if opts.Lang == "" {
		opts.Lang = s.defaults.Lang
	}

	if err := s.validate.Struct(opts); err != nil {
		return opts, errors.Wrapf(ErrInvalidInput, "forecast options: %v", err)
	}

	return opts, nil
}

func (s *Service) validateCoordinates(coords models.Coordinates) error {
	if err := s.validate.Struct(coords); err != nil {
		return errors.Wrapf(ErrInvalidInput, "coordinates: %v", err)
	}
	return nil
}
