package repositories

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const credentialParam = "appid"

const (
	OpenWeatherGeocodingURL = "https://api.openweathermap.org/geo/1.0/direct"
	OpenWeatherForecastURL  = "https://api.openweathermap.org/data/2.5/forecast"
)

// Endpoint pairs a request base URI with the parameter names it accepts.
// It is immutable once built.
type Endpoint struct {
	name    string
	baseURL string
	params  []string
}

func NewEndpoint(name, baseURL string, params ...string) Endpoint {
	allowed := make([]string, len(params))
	copy(allowed, params)

	return Endpoint{
		name:    name,
		baseURL: strings.TrimSuffix(baseURL, "?"),
		params:  allowed,
	}
}

// GeocodingEndpoint is the direct geocoding endpoint descriptor.
func GeocodingEndpoint(baseURL string) Endpoint {
	return NewEndpoint("geocoding", baseURL, "q", "limit")
}

// ForecastEndpoint is the 5 day / 3 hour forecast endpoint descriptor.
func ForecastEndpoint(baseURL string) Endpoint {
	return NewEndpoint("forecast", baseURL, "lat", "lon", "units", "lang")
}

func (e Endpoint) Name() string {
	return e.name
}

func (e Endpoint) BaseURL() string {
	return e.baseURL
}

// Params returns a copy of the allowed parameter names in declared order.
func (e Endpoint) Params() []string {
	out := make([]string, len(e.params))
	copy(out, e.params)
	return out
}

// Params maps parameter names to values for a single request.
type Params map[string]any

// BuildQuery assembles the request URI for endpoint. The credential is always the
// first parameter, followed by every allowed parameter that has a defined value in
// params, in the endpoint's declared order. Unknown names are dropped.
func BuildQuery(endpoint Endpoint, apiKey string, params Params) string {
	var b strings.Builder

	b.WriteString(endpoint.baseURL)
	b.WriteString("?")
	b.WriteString(credentialParam)
	b.WriteString("=")
	b.WriteString(url.QueryEscape(apiKey))

	for _, name := range endpoint.params {
		if name == credentialParam {
			continue
		}

		value, ok := formatValue(params[name])
		if !ok {
			continue
		}

		b.WriteString("&")
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(url.QueryEscape(value))
	}

	return b.String()
}

// formatValue renders a parameter value. nil and empty strings are treated as absent;
// zero numbers are kept so that the equator and prime meridian survive.
func formatValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, val != ""
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case bool:
		return strconv.FormatBool(val), true
	case fmt.Stringer:
		s := val.String()
		return s, s != ""
	default:
		s := fmt.Sprint(val)
		return s, s != ""
	}
}
