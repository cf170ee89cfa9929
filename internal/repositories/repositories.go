package repositories

import (
	"context"
	"errors"
	"net/http"

	"weather-dashboard/internal/models"
)

var (
	// ErrUpstream is a transport failure or non-success status from OpenWeatherMap.
	ErrUpstream = errors.New("upstream request failed")
	// ErrLocationNotFound means geocoding returned no candidates.
	ErrLocationNotFound = errors.New("location not found")
	// ErrMalformedResponse means the upstream body could not be decoded or failed validation.
	ErrMalformedResponse = errors.New("malformed upstream response")
	// ErrNoGeolocation means no coordinates have been saved yet.
	ErrNoGeolocation = errors.New("no saved geolocation")
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ForecastOptions are passed through to the forecast endpoint untouched.
type ForecastOptions struct {
	Units string `validate:"omitempty,oneof=standard metric imperial"`
	Lang  string `validate:"omitempty,max=8"`
}

type GeocodingRepository interface {
	Geocode(ctx context.Context, query string) (models.GeoCandidate, error)
}

type ForecastRepository interface {
	FetchForecast(ctx context.Context, coords models.Coordinates, opts ForecastOptions) (models.ForecastResponse, error)
}

// HistoryRepository persists the search history and the last known coordinates.
type HistoryRepository interface {
	// SaveSearch appends a history entry and saves coords as the geolocation.
	// Either both writes happen or neither does.
	SaveSearch(ctx context.Context, name string, coords models.Coordinates) (models.Location, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	ClearLocations(ctx context.Context) error
	SaveGeolocation(ctx context.Context, coords models.Coordinates) error
	Geolocation(ctx context.Context) (models.Coordinates, error)
	ClearGeolocation(ctx context.Context) error
}
