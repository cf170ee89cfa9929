package weather_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/weather"
)

func TestState_LoadFromStore(t *testing.T) {
	history := &memoryHistory{}
	ctx := context.Background()
	_, err := history.SaveSearch(ctx, "Rome", models.Coordinates{Lat: 41.89, Lon: 12.48})
	require.NoError(t, err)
	require.NoError(t, history.SaveGeolocation(ctx, models.Coordinates{Lat: 41.89, Lon: 12.48}))

	state := weather.NewState(history)
	_, ok := state.Geolocation()
	assert.False(t, ok)

	require.NoError(t, state.Load(ctx))

	locations := state.Locations()
	require.Len(t, locations, 1)
	assert.Equal(t, "Rome", locations[0].Name)

	coords, ok := state.Geolocation()
	assert.True(t, ok)
	assert.Equal(t, 12.48, coords.Lon)
}

func TestState_WriteFailureKeepsMemory(t *testing.T) {
	history := &memoryHistory{failSave: errors.New("read-only")}
	state := weather.NewState(history)

	err := state.SetGeolocation(context.Background(), models.Coordinates{Lat: 1, Lon: 1})
	require.Error(t, err)

	_, ok := state.Geolocation()
	assert.False(t, ok)
}

func TestState_LocationsReturnsCopy(t *testing.T) {
	state := weather.NewState(&memoryHistory{})
	_, err := state.RecordSearch(context.Background(), "Oslo", models.Coordinates{Lat: 59.91, Lon: 10.75})
	require.NoError(t, err)

	locations := state.Locations()
	locations[0].Name = "changed"

	assert.Equal(t, "Oslo", state.Locations()[0].Name)
}

func TestState_RecordSearchFailureKeepsMemory(t *testing.T) {
	history := &memoryHistory{}
	state := weather.NewState(history)
	ctx := context.Background()

	oslo := models.Coordinates{Lat: 59.91, Lon: 10.75}
	_, err := state.RecordSearch(ctx, "Oslo", oslo)
	require.NoError(t, err)

	history.failSave = errors.New("read-only")
	_, err = state.RecordSearch(ctx, "Rome", models.Coordinates{Lat: 41.89, Lon: 12.48})
	require.Error(t, err)

	require.Len(t, state.Locations(), 1)
	coords, ok := state.Geolocation()
	assert.True(t, ok)
	assert.Equal(t, oslo, coords)
}

func TestState_Reset(t *testing.T) {
	history := &memoryHistory{}
	state := weather.NewState(history)
	ctx := context.Background()

	_, err := state.RecordSearch(ctx, "Oslo", models.Coordinates{Lat: 59.91, Lon: 10.75})
	require.NoError(t, err)

	require.NoError(t, state.Reset(ctx))

	assert.Empty(t, state.Locations())
	_, ok := state.Geolocation()
	assert.False(t, ok)

	stored, err := history.ListLocations(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestState_ResetFailureKeepsMemory(t *testing.T) {
	history := &memoryHistory{}
	state := weather.NewState(history)
	ctx := context.Background()

	_, err := state.RecordSearch(ctx, "Oslo", models.Coordinates{Lat: 59.91, Lon: 10.75})
	require.NoError(t, err)

	history.failClear = errors.New("locked")
	require.Error(t, state.Reset(ctx))

	assert.Len(t, state.Locations(), 1)
	_, ok := state.Geolocation()
	assert.True(t, ok)
}
