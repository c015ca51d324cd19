package dto

import "planet-travel-service/internal/domain"

const (
	radialDescription        = "Direct radial distance between orbital radious (not accounting for orbital mechanics)"
	hohmannDescription       = "Most fuel-efficient trajectory using elliptical transfer orbit"
	transferTimeDescription  = "Actual transfer time following orbital mechanics"
	hohmannLightDescription  = "Hypothetical time at light speed following the arc distance"
	hohmannRocketDescription = "Hypothetical time at constant rocket speed following the arc distance"
)

// DurationResponse is the wire form of a duration, optionally labelled with
// the speed it was computed for.
type DurationResponse struct {
	Description  string  `json:"description,omitempty"`
	Speed        string  `json:"speed,omitempty"`
	TotalSeconds float64 `json:"total_seconds"`
	Days         int     `json:"days"`
	Hours        int     `json:"hours"`
	Minutes      int     `json:"minutes"`
	Seconds      int     `json:"seconds"`
	Formatted    string  `json:"formatted"`
}

type RadialLineResponse struct {
	DistanceKm          string           `json:"distance_km"`
	Description         string           `json:"description"`
	TravelAtLightSpeed  DurationResponse `json:"travel_at_light_speed"`
	TravelAtRocketSpeed DurationResponse `json:"travel_at_rocket_speed"`
}

type HohmannTransferResponse struct {
	Description         string           `json:"description"`
	SemiMajorAxisKm     string           `json:"semi_major_axis_km"`
	ArcDistanceKm       string           `json:"arc_distance_km"`
	TransferTime        DurationResponse `json:"transfer_time"`
	TravelAtLightSpeed  DurationResponse `json:"travel_at_light_speed"`
	TravelAtRocketSpeed DurationResponse `json:"travel_at_rocket_speed"`
}

type TravelResponse struct {
	Origin               string                  `json:"origin"`
	Destination          string                  `json:"destination"`
	StraightRadialLine   RadialLineResponse      `json:"straight_radial_line"`
	HohmannTransferOrbit HohmannTransferResponse `json:"hohmann_transfer_orbit"`
}

func newDurationResponse(description string, d domain.Duration) DurationResponse {
	return DurationResponse{
		Description:  description,
		TotalSeconds: d.TotalSeconds,
		Days:         d.Days,
		Hours:        d.Hours,
		Minutes:      d.Minutes,
		Seconds:      d.Seconds,
		Formatted:    d.Formatted,
	}
}

func newSpeedResponse(description string, e domain.SpeedEstimate) DurationResponse {
	res := newDurationResponse(description, e.Duration)
	res.Speed = FormatSpeed(e.Speed)
	return res
}

// NewTravelResponse renders a report for the wire. Distances become
// thousands-grouped strings; durations stay numeric.
func NewTravelResponse(r *domain.TravelReport) TravelResponse {
	radial := r.StraightRadialLine
	h := r.HohmannTransferOrbit

	return TravelResponse{
		Origin:      r.Origin,
		Destination: r.Destination,
		StraightRadialLine: RadialLineResponse{
			DistanceKm:          FormatNumber(radial.DistanceKm),
			Description:         radialDescription,
			TravelAtLightSpeed:  newSpeedResponse("", radial.LightSpeed),
			TravelAtRocketSpeed: newSpeedResponse("", radial.RocketSpeed),
		},
		HohmannTransferOrbit: HohmannTransferResponse{
			Description:         hohmannDescription,
			SemiMajorAxisKm:     FormatNumber(h.SemiMajorAxisKm),
			ArcDistanceKm:       FormatNumber(h.ArcDistanceKm),
			TransferTime:        newDurationResponse(transferTimeDescription, h.TransferTime),
			TravelAtLightSpeed:  newSpeedResponse(hohmannLightDescription, h.LightSpeed),
			TravelAtRocketSpeed: newSpeedResponse(hohmannRocketDescription, h.RocketSpeed),
		},
	}
}
