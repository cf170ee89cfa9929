package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/forecast"
	"weather-dashboard/internal/services/weather"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: lat"`
}

// GeolocationRequest is the body of PUT /geolocation.
type GeolocationRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90" example:"48.8589"`
	Lon *float64 `json:"lon" validate:"required,gte=-180,lte=180" example:"2.32"`
}

// handleSearch godoc
// @Summary Search a place
// @Description Geocodes the query, returns today's conditions and one record per future day, and appends the query to the history
// @Tags Weather
// @Produce json
// @Param q query string true "Free text place name" example(Paris)
// @Param units query string false "standard, metric or imperial" Enums(standard, metric, imperial)
// @Param lang query string false "Language of condition descriptions" example(en)
// @Success 200 {object} weather.SearchResult "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Failure 502 {object} ErrorResponse "Upstream weather service failed"
// @Failure 504 {object} ErrorResponse "Upstream weather service timed out"
// @Router /api/v1/weather/search [get]
func (r *routes) handleSearch(c *fiber.Ctx) error {
	result, err := r.service.Search(c.UserContext(), c.Query("q"), forecastOptions(c))
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(result)
}

// handleReplay godoc
// @Summary Get weather forecast
// @Description Returns the forecast for coordinates, typically a history entry. Nothing is saved.
// @Tags Weather
// @Produce json
// @Param lat query number true "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(48.8589)
// @Param lon query number true "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(2.32)
// @Param units query string false "standard, metric or imperial" Enums(standard, metric, imperial)
// @Param lang query string false "Language of condition descriptions" example(en)
// @Success 200 {object} forecast.Projection "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 502 {object} ErrorResponse "Upstream weather service failed"
// @Router /api/v1/weather [get]
//
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/api/v1/weather?lat=48.8589&lon=2.32"
func (r *routes) handleReplay(c *fiber.Ctx) error {
	coords, msg := parseCoordinates(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msg})
	}

	projection, err := r.service.Replay(c.UserContext(), coords, forecastOptions(c))
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(projection)
}

// handleHistory godoc
// @Summary List search history
// @Description Every successful search in the order it was made
// @Tags History
// @Produce json
// @Success 200 {array} models.Location
// @Router /api/v1/history [get]
func (r *routes) handleHistory(c *fiber.Ctx) error {
	return c.JSON(r.service.History())
}

// handleReset godoc
// @Summary Reset history
// @Description Clears the search history and the saved coordinates
// @Tags History
// @Success 204
// @Router /api/v1/history [delete]
func (r *routes) handleReset(c *fiber.Ctx) error {
	if err := r.service.Reset(c.UserContext()); err != nil {
		return r.fail(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// handleGetGeolocation godoc
// @Summary Get saved coordinates
// @Tags Geolocation
// @Produce json
// @Success 200 {object} models.Coordinates
// @Failure 404 {object} ErrorResponse "No coordinates saved"
// @Router /api/v1/geolocation [get]
func (r *routes) handleGetGeolocation(c *fiber.Ctx) error {
	coords, err := r.service.Geolocation()
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(coords)
}

// handleLocate godoc
// @Summary Use browser geolocation
// @Description Saves the coordinates reported by the browser and returns their forecast
// @Tags Geolocation
// @Accept json
// @Produce json
// @Param coordinates body GeolocationRequest true "Browser coordinates"
// @Param units query string false "standard, metric or imperial" Enums(standard, metric, imperial)
// @Param lang query string false "Language of condition descriptions" example(en)
// @Success 200 {object} forecast.Projection "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid body"
// @Failure 404 {object} ErrorResponse "Geolocation is disabled"
// @Failure 502 {object} ErrorResponse "Upstream weather service failed"
// @Failure 504 {object} ErrorResponse "Upstream weather service timed out"
// @Router /api/v1/geolocation [put]
func (r *routes) handleLocate(c *fiber.Ctx) error {
	var req GeolocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid request body"})
	}

	if err := r.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "lat (-90 to 90) and lon (-180 to 180) are required",
		})
	}

	coords := models.Coordinates{Lat: *req.Lat, Lon: *req.Lon}

	projection, err := r.service.Locate(c.UserContext(), coords, forecastOptions(c))
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(projection)
}

// handleForgetGeolocation godoc
// @Summary Forget saved coordinates
// @Description Called when the user declines location access
// @Tags Geolocation
// @Success 204
// @Router /api/v1/geolocation [delete]
func (r *routes) handleForgetGeolocation(c *fiber.Ctx) error {
	if err := r.service.ForgetGeolocation(c.UserContext()); err != nil {
		return r.fail(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func forecastOptions(c *fiber.Ctx) repositories.ForecastOptions {
	return repositories.ForecastOptions{
		Units: c.Query("units"),
		Lang:  c.Query("lang"),
	}
}

func parseCoordinates(c *fiber.Ctx) (models.Coordinates, string) {
	lat := c.Query("lat")
	lon := c.Query("lon")

	if lat == "" {
		return models.Coordinates{}, "Missing required parameter: lat"
	}
	if lon == "" {
		return models.Coordinates{}, "Missing required parameter: lon"
	}

	latFloat, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return models.Coordinates{}, "Invalid latitude format"
	}
	if latFloat < -90 || latFloat > 90 {
		return models.Coordinates{}, "Latitude must be between -90 and 90"
	}

	lonFloat, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return models.Coordinates{}, "Invalid longitude format"
	}
	if lonFloat < -180 || lonFloat > 180 {
		return models.Coordinates{}, "Longitude must be between -180 and 180"
	}

	return models.Coordinates{Lat: latFloat, Lon: lonFloat}, ""
}

// fail maps service errors to a status code and a message safe to show to the user.
func (r *routes) fail(c *fiber.Ctx, err error) error {
	status, msg := statusFor(err)

	fields := map[string]any{
		"path":   c.Path(),
		"status": status,
	}
	if status >= fiber.StatusInternalServerError {
		r.l.Error(err, fields)
	} else {
		fields["err"] = err
		r.l.Warning("request failed", fields)
	}

	return c.Status(status).JSON(ErrorResponse{Error: msg})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, weather.ErrEmptyQuery):
		return fiber.StatusBadRequest, "Missing required parameter: q"
	case errors.Is(err, weather.ErrInvalidInput):
		return fiber.StatusBadRequest, "Invalid request parameters"
	case errors.Is(err, repositories.ErrLocationNotFound):
		return fiber.StatusNotFound, "Location not found"
	case errors.Is(err, repositories.ErrNoGeolocation):
		return fiber.StatusNotFound, "No saved geolocation"
	case errors.Is(err, weather.ErrGeodiscoveryDisabled):
		return fiber.StatusNotFound, "Geolocation is disabled"
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, "Weather service timed out"
	case errors.Is(err, forecast.ErrInsufficientData), errors.Is(err, forecast.ErrMalformedSample):
		return fiber.StatusBadGateway, "Weather service returned incomplete data"
	case errors.Is(err, repositories.ErrUpstream), errors.Is(err, repositories.ErrMalformedResponse):
		return fiber.StatusBadGateway, "Failed to fetch weather data"
	}

	return fiber.StatusInternalServerError, "Internal server error"
}
