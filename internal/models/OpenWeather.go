package models

// GeoCandidate is one match returned by the OpenWeatherMap direct geocoding API.
type GeoCandidate struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names,omitempty"`
	Lat        float64           `json:"lat" validate:"gte=-90,lte=90"`
	Lon        float64           `json:"lon" validate:"gte=-180,lte=180"`
	Country    string            `json:"country"`
	State      string            `json:"state,omitempty"`
}

// ForecastResponse is the body of the 5 day / 3 hour forecast endpoint.
type ForecastResponse struct {
	City CityMetadata `json:"city"`
	List []RawSample  `json:"list" validate:"dive"`
}

// CityMetadata is shared by every sample of one forecast response.
type CityMetadata struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Country    string     `json:"country"`
	Coord      Coordinate `json:"coord"`
	Population int64      `json:"population"`
	Timezone   int        `json:"timezone"`
	Sunrise    int64      `json:"sunrise"`
	Sunset     int64      `json:"sunset"`
}

// Coordinate is the upstream lat/lon pair.
type Coordinate struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// RawSample is one element of the forecast time series.
type RawSample struct {
	Dt         int64              `json:"dt" validate:"required"`
	DtTxt      string             `json:"dt_txt"`
	Main       SampleMain         `json:"main"`
	Weather    []SampleConditions `json:"weather" validate:"required,min=1"`
	Wind       SampleWind         `json:"wind"`
	Visibility int                `json:"visibility"`
}

type SampleMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	SeaLevel  int     `json:"sea_level"`
	Humidity  int     `json:"humidity"`
}

type SampleConditions struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type SampleWind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
	Gust  float64 `json:"gust"`
}
