package models

import "fmt"

const iconURLTemplate = "https://openweathermap.org/img/wn/%s@2x.png"

// WeatherRecord is the flat, renderer-ready view of one forecast sample.
type WeatherRecord struct {
	City        CityInfo    `json:"city"`
	Date        int64       `json:"date" example:"1753455600"`
	DateText    string      `json:"date_text" example:"2025-07-25 15:00:00"`
	Weather     Conditions  `json:"weather"`
	Temperature Temperature `json:"temperature"`
	Wind        Wind        `json:"wind"`
	Humidity    int         `json:"humidity" example:"64"`
	Pressure    int         `json:"pressure" example:"1013"`
	SeaLevel    int         `json:"sea_level" example:"1013"`
	Visibility  int         `json:"visibility" example:"10000"`
}

type CityInfo struct {
	Name       string  `json:"name" example:"Paris"`
	Country    string  `json:"country" example:"FR"`
	Latitude   float64 `json:"latitude" example:"48.8534"`
	Longitude  float64 `json:"longitude" example:"2.3488"`
	Population int64   `json:"population" example:"2138551"`
	Timezone   int     `json:"timezone" example:"7200"`
	Sunrise    int64   `json:"sunrise"`
	Sunset     int64   `json:"sunset"`
}

type Conditions struct {
	Icon        string `json:"icon"`
	Condition   string `json:"condition" example:"Clouds"`
	Description string `json:"description" example:"broken clouds"`
}

type Temperature struct {
	FeelsLike float64 `json:"feels_like"`
	Avg       float64 `json:"avg"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
}

type Wind struct {
	Speed     float64 `json:"speed"`
	Direction int     `json:"direction"`
	Gust      float64 `json:"gust"`
}

// NewWeatherRecord copies one sample and the shared city metadata into a record.
// The sample must carry at least one weather condition.
func NewWeatherRecord(sample RawSample, city CityMetadata) WeatherRecord {
	cond := sample.Weather[0]

	return WeatherRecord{
		City: CityInfo{
			Name:       city.Name,
			Country:    city.Country,
			Latitude:   city.Coord.Lat,
			Longitude:  city.Coord.Lon,
			Population: city.Population,
			Timezone:   city.Timezone,
			Sunrise:    city.Sunrise,
			Sunset:     city.Sunset,
		},
		Date:     sample.Dt,
		DateText: sample.DtTxt,
		Weather: Conditions{
			Icon:        fmt.Sprintf(iconURLTemplate, cond.Icon),
			Condition:   cond.Main,
			Description: cond.Description,
		},
		Temperature: Temperature{
			FeelsLike: sample.Main.FeelsLike,
			Avg:       sample.Main.Temp,
			Min:       sample.Main.TempMin,
			Max:       sample.Main.TempMax,
		},
		Wind: Wind{
			Speed:     sample.Wind.Speed,
			Direction: sample.Wind.Deg,
			Gust:      sample.Wind.Gust,
		},
		Humidity:   sample.Main.Humidity,
		Pressure:   sample.Main.Pressure,
		SeaLevel:   sample.Main.SeaLevel,
		Visibility: sample.Visibility,
	}
}
