package domain

import "errors"

// ErrPlanetNotFound is returned by planet lookups when no record matches a name.
var ErrPlanetNotFound = errors.New("planet not found")

// Distance of a planet's orbit from the sun as stored in the reference data.
// Values are display strings; KM uses comma thousands separators (e.g. "149,598,262").
type DistanceFromSun struct {
	KM string `json:"km"`
	AU string `json:"au"`
}

// Represents a single planet reference record.
// Planet records are read-only: they are seeded once and served as-is.
// Only Name and DistanceFromSun.KM take part in travel calculations.
type Planet struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	ImageURL        string          `json:"image_url"`
	DistanceFromSun DistanceFromSun `json:"distance_from_sun"`
	Diameter        string          `json:"diameter"`
	DayLength       string          `json:"day_length"`
	YearLength      string          `json:"year_length"`
	Gravity         string          `json:"gravity"`
	Moons           int             `json:"moons"`
}
