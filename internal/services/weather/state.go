package weather

import (
	"context"
	"errors"
	"sync"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
)

// State is the dashboard's search history and last known coordinates. The store is
// written first; memory only changes once the write succeeded.
type State struct {
	mu          sync.RWMutex
	locations   []models.Location
	geolocation *models.Coordinates
	store       repositories.HistoryRepository
}

func NewState(store repositories.HistoryRepository) *State {
	return &State{
		locations: make([]models.Location, 0, 16),
		store:     store,
	}
}

// Load replaces the in-memory view with what the store holds.
func (s *State) Load(ctx context.Context) error {
	locations, err := s.store.ListLocations(ctx)
	if err != nil {
		return err
	}

	var geolocation *models.Coordinates
	coords, err := s.store.Geolocation(ctx)
	switch {
	case err == nil:
		geolocation = &coords
	case !errors.Is(err, repositories.ErrNoGeolocation):
		return err
	}

	s.mu.Lock()
	s.locations = locations
	s.geolocation = geolocation
	s.mu.Unlock()

	return nil
}

// RecordSearch appends a history entry and makes coords the geolocation. On error
// neither changes.
func (s *State) RecordSearch(ctx context.Context, name string, coords models.Coordinates) (models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc, err := s.store.SaveSearch(ctx, name, coords)
	if err != nil {
		return models.Location{}, err
	}

	s.locations = append(s.locations, loc)
	s.geolocation = &coords
	return loc, nil
}

func (s *State) SetGeolocation(ctx context.Context, coords models.Coordinates) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveGeolocation(ctx, coords); err != nil {
		return err
	}

	s.geolocation = &coords
	return nil
}

func (s *State) ClearGeolocation(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ClearGeolocation(ctx); err != nil {
		return err
	}

	s.geolocation = nil
	return nil
}

// Reset empties the history and forgets the geolocation. The history is cleared
// first, so a failure part way leaves the geolocation in place.
func (s *State) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ClearLocations(ctx); err != nil {
		return err
	}
	s.locations = make([]models.Location, 0, 16)

	if err := s.store.ClearGeolocation(ctx); err != nil {
		return err
	}
	s.geolocation = nil

	return nil
}

// Locations returns a copy of the history in insertion order.
func (s *State) Locations() []models.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Location, len(s.locations))
	copy(out, s.locations)
	return out
}

func (s *State) Geolocation() (models.Coordinates, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.geolocation == nil {
		return models.Coordinates{}, false
	}
	return *s.geolocation, true
}
