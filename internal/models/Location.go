package models

import (
	"fmt"
	"time"
)

// Location is one entry of the search history.
type Location struct {
	ID        string    `json:"id" db:"id" example:"6f1c2a4e-8d0b-4c1e-9d55-0e1c7f3a9b21"`
	Name      string    `json:"name" db:"name" example:"Paris"`
	Lat       float64   `json:"lat" db:"lat" example:"48.8589"`
	Lon       float64   `json:"lon" db:"lon" example:"2.32"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Coordinates is the single saved geolocation.
type Coordinates struct {
	Lat float64 `json:"lat" db:"lat" validate:"gte=-90,lte=90" example:"48.8589"`
	Lon float64 `json:"lon" db:"lon" validate:"gte=-180,lte=180" example:"2.32"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f", c.Lat, c.Lon)
}
