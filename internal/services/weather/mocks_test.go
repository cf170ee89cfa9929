package weather_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
)

// MockGeocoder implements repositories.GeocodingRepository
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, query string) (models.GeoCandidate, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(models.GeoCandidate), args.Error(1)
}

// MockForecasts implements repositories.ForecastRepository
type MockForecasts struct {
	mock.Mock
}

func (m *MockForecasts) FetchForecast(ctx context.Context, coords models.Coordinates, opts repositories.ForecastOptions) (models.ForecastResponse, error) {
	args := m.Called(ctx, coords, opts)
	return args.Get(0).(models.ForecastResponse), args.Error(1)
}

// memoryHistory is an in-memory repositories.HistoryRepository with switchable failures.
type memoryHistory struct {
	mu          sync.Mutex
	locations   []models.Location
	geolocation *models.Coordinates
	failAppend  error
	failSave    error
	failClear   error
}

// SaveSearch fails without writing anything when either failAppend or failSave is set.
func (h *memoryHistory) SaveSearch(_ context.Context, name string, coords models.Coordinates) (models.Location, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.failAppend != nil {
		return models.Location{}, h.failAppend
	}
	if h.failSave != nil {
		return models.Location{}, h.failSave
	}

	loc := models.Location{
		ID:        time.Now().Format(time.RFC3339Nano),
		Name:      name,
		Lat:       coords.Lat,
		Lon:       coords.Lon,
		CreatedAt: time.Now(),
	}
	h.locations = append(h.locations, loc)
	h.geolocation = &coords
	return loc, nil
}

func (h *memoryHistory) ListLocations(context.Context) ([]models.Location, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]models.Location, len(h.locations))
	copy(out, h.locations)
	return out, nil
}

func (h *memoryHistory) ClearLocations(context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.failClear != nil {
		return h.failClear
	}
	h.locations = nil
	return nil
}

func (h *memoryHistory) SaveGeolocation(_ context.Context, coords models.Coordinates) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.failSave != nil {
		return h.failSave
	}
	h.geolocation = &coords
	return nil
}

func (h *memoryHistory) Geolocation(context.Context) (models.Coordinates, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.geolocation == nil {
		return models.Coordinates{}, repositories.ErrNoGeolocation
	}
	return *h.geolocation, nil
}

func (h *memoryHistory) ClearGeolocation(context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.geolocation = nil
	return nil
}
