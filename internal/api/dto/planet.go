package dto

import "planet-travel-service/internal/domain"

type DistanceFromSunResponse struct {
	KM string `json:"km"`
	AU string `json:"au"`
}

type PlanetResponse struct {
	Name            string                  `json:"name"`
	Description     string                  `json:"description,omitempty"`
	ImageURL        string                  `json:"image_url,omitempty"`
	DistanceFromSun DistanceFromSunResponse `json:"distance_from_sun"`
	Diameter        string                  `json:"diameter,omitempty"`
	DayLength       string                  `json:"day_length,omitempty"`
	YearLength      string                  `json:"year_length,omitempty"`
	Gravity         string                  `json:"gravity,omitempty"`
	Moons           int                     `json:"moons"`
}

type PlanetImageResponse struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

func NewPlanetResponse(p *domain.Planet) PlanetResponse {
	return PlanetResponse{
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		DistanceFromSun: DistanceFromSunResponse{
			KM: p.DistanceFromSun.KM,
			AU: p.DistanceFromSun.AU,
		},
		Diameter:   p.Diameter,
		DayLength:  p.DayLength,
		YearLength: p.YearLength,
		Gravity:    p.Gravity,
		Moons:      p.Moons,
	}
}
