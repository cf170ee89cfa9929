package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

const geocodingLimit = 1

// OpenWeatherRepository talks to the OpenWeatherMap geocoding and forecast APIs.
type OpenWeatherRepository struct {
	apiKey     string
	geocoding  Endpoint
	forecast   Endpoint
	httpClient HTTPClient
	validate   *validator.Validate
	l          *logger.Logger
}

func NewOpenWeatherRepository(
	apiKey string,
	geocoding, forecast Endpoint,
	httpClient HTTPClient,
	l *logger.Logger,
) (*OpenWeatherRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}

	return &OpenWeatherRepository{
		apiKey:     apiKey,
		geocoding:  geocoding,
		forecast:   forecast,
		httpClient: httpClient,
		validate:   validator.New(),
		l:          l,
	}, nil
}

func (o *OpenWeatherRepository) Name() string {
	return "openweathermap"
}

// Geocode resolves free text to the single best matching place.
func (o *OpenWeatherRepository) Geocode(ctx context.Context, query string) (models.GeoCandidate, error) {
	var candidates []models.GeoCandidate

	params := Params{"q": query, "limit": geocodingLimit}
	if err := o.fetchJSON(ctx, o.geocoding, params, &candidates); err != nil {
		return models.GeoCandidate{}, err
	}

	if len(candidates) == 0 {
		return models.GeoCandidate{}, fmt.Errorf("%w: %q", ErrLocationNotFound, query)
	}

	best := candidates[0]
	if err := o.validate.Struct(best); err != nil {
		return models.GeoCandidate{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	o.l.Debug("geocoded location", map[string]any{
		"query":   query,
		"name":    best.Name,
		"country": best.Country,
		"lat":     best.Lat,
		"lon":     best.Lon,
	})

	return best, nil
}

// FetchForecast returns the raw 5 day / 3 hour series for coords.
func (o *OpenWeatherRepository) FetchForecast(
	ctx context.Context,
	coords models.Coordinates,
	opts ForecastOptions,
) (models.ForecastResponse, error) {
	var response models.ForecastResponse

	params := Params{
		"lat":   coords.Lat,
		"lon":   coords.Lon,
		"units": opts.Units,
		"lang":  opts.Lang,
	}
	if err := o.fetchJSON(ctx, o.forecast, params, &response); err != nil {
		return response, err
	}

	if err := o.validate.Struct(response); err != nil {
		return response, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	o.l.Info("parsed forecast response", map[string]any{
		"city":  response.City.Name,
		"items": len(response.List),
	})

	return response, nil
}

func (o *OpenWeatherRepository) fetchJSON(ctx context.Context, endpoint Endpoint, params Params, dst any) error {
	o.l.Info("making openweathermap request", map[string]any{
		"endpoint": endpoint.Name(),
		"params":   loggableParams(params),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, BuildQuery(endpoint, o.apiKey, params), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %s: %w", ErrUpstream, endpoint.Name(), ctxErr)
		}
		// The error text carries the request URL, which carries the key.
		return fmt.Errorf("%w: %s: request failed", ErrUpstream, endpoint.Name())
	}
	defer resp.Body.Close()

	o.l.Info("received openweathermap response", map[string]any{
		"endpoint":   endpoint.Name(),
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", ErrUpstream, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s: HTTP status %d", ErrUpstream, endpoint.Name(), resp.StatusCode)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: failed to parse JSON response: %v", ErrMalformedResponse, err)
	}

	return nil
}

func loggableParams(params Params) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		if k == credentialParam {
			continue
		}
		out[k] = v
	}
	return out
}
