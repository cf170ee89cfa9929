package forecast

import (
	"errors"
	"fmt"

	"weather-dashboard/internal/models"
)

const hoursPerDay = 24

var (
	// ErrInsufficientData means the series is too short for the configured number of days.
	ErrInsufficientData = errors.New("insufficient forecast data")
	// ErrMalformedSample means a selected sample cannot be mapped to a record.
	ErrMalformedSample = errors.New("malformed forecast sample")
)

// Policy decides what happens when the series ends before the last selected day.
type Policy string

const (
	// PolicyStrict fails the whole projection.
	PolicyStrict Policy = "strict"
	// PolicyClamp keeps the days that are present and drops the rest.
	PolicyClamp Policy = "clamp"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyStrict, PolicyClamp:
		return Policy(s), nil
	case "":
		return PolicyStrict, nil
	}
	return "", fmt.Errorf("unknown short series policy %q", s)
}

// Projection is one "today" record plus one record per future day.
type Projection struct {
	Today models.WeatherRecord   `json:"today"`
	Daily []models.WeatherRecord `json:"forecast"`
}

// DailyIndices returns the sample index picked for each future day: the last
// sample of day d, i.e. d*(24/hoursPerSample)-1.
func DailyIndices(days, hoursPerSample int) []int {
	if days < 1 || hoursPerSample < 1 || hoursPerSample > hoursPerDay {
		return nil
	}

	perDay := hoursPerDay / hoursPerSample
	indices := make([]int, 0, days)
	for d := 1; d <= days; d++ {
		indices = append(indices, d*perDay-1)
	}
	return indices
}

// Project selects samples[0] as today and one sample per future day, and maps each
// to a WeatherRecord carrying city. Samples must be ordered ascending at a fixed
// hoursPerSample cadence.
func Project(
	samples []models.RawSample,
	city models.CityMetadata,
	days, hoursPerSample int,
	policy Policy,
) (Projection, error) {
	if len(samples) == 0 {
		return Projection{}, fmt.Errorf("%w: empty series", ErrInsufficientData)
	}

	indices := DailyIndices(days, hoursPerSample)
	if len(indices) == 0 {
		return Projection{}, fmt.Errorf("invalid projection window: %d days, %d hours per sample", days, hoursPerSample)
	}
	if last := indices[len(indices)-1]; last >= len(samples) && policy != PolicyClamp {
		return Projection{}, fmt.Errorf("%w: need %d samples for %d days, got %d",
			ErrInsufficientData, last+1, days, len(samples))
	}

	if err := checkConditions(samples[0], 0); err != nil {
		return Projection{}, err
	}

	projection := Projection{
		Today: models.NewWeatherRecord(samples[0], city),
		Daily: make([]models.WeatherRecord, 0, len(indices)),
	}

	for _, idx := range indices {
		if idx >= len(samples) {
			break
		}
		if err := checkConditions(samples[idx], idx); err != nil {
			return Projection{}, err
		}
		projection.Daily = append(projection.Daily, models.NewWeatherRecord(samples[idx], city))
	}

	return projection, nil
}

func checkConditions(sample models.RawSample, idx int) error {
	if len(sample.Weather) == 0 {
		return fmt.Errorf("%w: sample %d has no weather conditions", ErrMalformedSample, idx)
	}
	return nil
}

// Projector holds a validated days/interval configuration.
type Projector struct {
	days           int
	hoursPerSample int
	policy         Policy
}

func NewProjector(days, hoursPerSample int, policy Policy) (*Projector, error) {
	if days < 1 {
		return nil, fmt.Errorf("days per forecast must be at least 1, got %d", days)
	}
	if hoursPerSample < 1 || hoursPerSample > hoursPerDay {
		return nil, fmt.Errorf("hours per sample must be between 1 and %d, got %d", hoursPerDay, hoursPerSample)
	}
	policy, err := ParsePolicy(string(policy))
	if err != nil {
		return nil, err
	}

	return &Projector{
		days:           days,
		hoursPerSample: hoursPerSample,
		policy:         policy,
	}, nil
}

func (p *Projector) Project(response models.ForecastResponse) (Projection, error) {
	return Project(response.List, response.City, p.days, p.hoursPerSample, p.policy)
}

func (p *Projector) Days() int {
	return p.days
}
