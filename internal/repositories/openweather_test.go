package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

const testAPIKey = "test-key-5f3a"

func newTestRepository(t *testing.T, serverURL string, buf *bytes.Buffer) *OpenWeatherRepository {
	t.Helper()

	l := logger.NewZapLogger("test-app")
	if buf != nil {
		l = logger.NewZapLogger("test-app", buf)
	}

	repo, err := NewOpenWeatherRepository(
		testAPIKey,
		GeocodingEndpoint(serverURL+"/geo/1.0/direct"),
		ForecastEndpoint(serverURL+"/data/2.5/forecast"),
		&http.Client{Timeout: 2 * time.Second},
		l,
	)
	require.NoError(t, err)

	return repo
}

func forecastBody(samples int) string {
	list := make([]map[string]any, 0, samples)
	start := int64(1753455600)
	for i := 0; i < samples; i++ {
		dt := start + int64(i)*3*3600
		list = append(list, map[string]any{
			"dt":     dt,
			"dt_txt": time.Unix(dt, 0).UTC().Format("2006-01-02 15:04:05"),
			"main": map[string]any{
				"temp": 20.5, "feels_like": 20.1, "temp_min": 19.0, "temp_max": 22.0,
				"pressure": 1013, "sea_level": 1013, "humidity": 60,
			},
			"weather":    []map[string]any{{"id": 803, "main": "Clouds", "description": "broken clouds", "icon": "04d"}},
			"wind":       map[string]any{"speed": 3.2, "deg": 240, "gust": 5.1},
			"visibility": 10000,
		})
	}

	body, _ := json.Marshal(map[string]any{
		"city": map[string]any{
			"id": 2988507, "name": "Paris", "country": "FR",
			"coord":      map[string]any{"lat": 48.8534, "lon": 2.3488},
			"population": 2138551, "timezone": 7200,
			"sunrise": 1753416000, "sunset": 1753471800,
		},
		"list": list,
	})
	return string(body)
}

func TestNewOpenWeatherRepository_EmptyKey(t *testing.T) {
	_, err := NewOpenWeatherRepository("  ", GeocodingEndpoint(OpenWeatherGeocodingURL),
		ForecastEndpoint(OpenWeatherForecastURL), http.DefaultClient, logger.NewNop())
	assert.Error(t, err)
}

func TestOpenWeatherRepository_Name(t *testing.T) {
	repo := &OpenWeatherRepository{}
	assert.Equal(t, "openweathermap", repo.Name())
}

func TestOpenWeatherRepository_Geocode_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geo/1.0/direct", r.URL.Path)
		assert.Equal(t, testAPIKey, r.URL.Query().Get("appid"))
		assert.Equal(t, "Paris", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"Paris","lat":48.8588897,"lon":2.3200410,"country":"FR","state":"Ile-de-France"}]`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL, nil)

	candidate, err := repo.Geocode(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, "Paris", candidate.Name)
	assert.Equal(t, "FR", candidate.Country)
	assert.InDelta(t, 48.8588897, candidate.Lat, 1e-9)
	assert.InDelta(t, 2.3200410, candidate.Lon, 1e-9)
}

func TestOpenWeatherRepository_Geocode_NotFound(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL, nil)

	_, err := repo.Geocode(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLocationNotFound))
	assert.False(t, errors.Is(err, ErrUpstream))
}

func TestOpenWeatherRepository_Geocode_HTTPError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL, nil)

	_, err := repo.Geocode(context.Background(), "Paris")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.Contains(t, err.Error(), "401")
}

func TestOpenWeatherRepository_FetchForecast_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/data/2.5/forecast", r.URL.Path)
		assert.Equal(t, "48.8589", query.Get("lat"))
		assert.Equal(t, "2.32", query.Get("lon"))
		assert.Equal(t, "imperial", query.Get("units"))
		assert.Equal(t, "de", query.Get("lang"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(forecastBody(40)))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL, nil)

	response, err := repo.FetchForecast(context.Background(),
		models.Coordinates{Lat: 48.8589, Lon: 2.32},
		ForecastOptions{Units: "imperial", Lang: "de"},
	)
	require.NoError(t, err)
	assert.Len(t, response.List, 40)
	assert.Equal(t, "Paris", response.City.Name)
	assert.Equal(t, int64(2138551), response.City.Population)
	assert.Equal(t, "Clouds", response.List[0].Weather[0].Main)
}

func TestOpenWeatherRepository_FetchForecast_ZeroCoordinates(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0", r.URL.Query().Get("lat"))
		assert.Equal(t, "0", r.URL.Query().Get("lon"))
		w.Write([]byte(forecastBody(1)))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL, nil)

	_, err := repo.FetchForecast(context.Background(), models.Coordinates{}, ForecastOptions{Units: "metric"})
	require.NoError(t, err)
}

func TestOpenWeatherRepository_FetchForecast_InvalidJSON(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("invalid json"))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL, nil)

	_, err := repo.FetchForecast(context.Background(), models.Coordinates{Lat: 1, Lon: 1}, ForecastOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestOpenWeatherRepository_FetchForecast_FailsValidation(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// second sample has no weather conditions
		w.Write([]byte(`{"city":{"name":"Paris"},"list":[
			{"dt":1753455600,"weather":[{"main":"Clear","icon":"01d"}]},
			{"dt":1753466400,"weather":[]}
		]}`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL, nil)

	_, err := repo.FetchForecast(context.Background(), models.Coordinates{Lat: 1, Lon: 1}, ForecastOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestOpenWeatherRepository_FetchForecast_ServerError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL, nil)

	_, err := repo.FetchForecast(context.Background(), models.Coordinates{Lat: 1, Lon: 1}, ForecastOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestOpenWeatherRepository_FetchForecast_ContextCancellation(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(forecastBody(40)))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FetchForecast(ctx, models.Coordinates{Lat: 1, Lon: 1}, ForecastOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestOpenWeatherRepository_NetworkError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := mockServer.URL
	mockServer.Close()

	var buf bytes.Buffer
	repo := newTestRepository(t, serverURL, &buf)

	_, err := repo.Geocode(context.Background(), "Paris")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.NotContains(t, err.Error(), testAPIKey)
}

func TestOpenWeatherRepository_APIKeyNotLogged(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/geo/1.0/direct" {
			fmt.Fprint(w, `[{"name":"Paris","lat":48.85,"lon":2.35,"country":"FR"}]`)
			return
		}
		fmt.Fprint(w, forecastBody(8))
	}))
	defer mockServer.Close()

	var buf bytes.Buffer
	repo := newTestRepository(t, mockServer.URL, &buf)

	candidate, err := repo.Geocode(context.Background(), "Paris")
	require.NoError(t, err)
	_, err = repo.FetchForecast(context.Background(),
		models.Coordinates{Lat: candidate.Lat, Lon: candidate.Lon}, ForecastOptions{Units: "metric"})
	require.NoError(t, err)

	assert.NotEmpty(t, buf.String())
	assert.NotContains(t, buf.String(), testAPIKey)
	assert.Contains(t, buf.String(), "making openweathermap request")
}
