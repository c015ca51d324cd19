package dto

import (
	"encoding/json"
	"planet-travel-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{78341104, "78,341,104"},
		{188768814, "188,768,814"},
		{4390798179, "4,390,798,179"},
		{1234.5, "1,234.5"},
		{343661223.8350482, "343,661,223.835"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

func TestFormatSpeed(t *testing.T) {
	assert.Equal(t, "299,792 km/s", FormatSpeed(domain.Speed{Value: 299792, Unit: "km/s"}))
	assert.Equal(t, "39,400 km/h", FormatSpeed(domain.Speed{Value: 39400, Unit: "km/h"}))
}

func TestNewTravelResponseWireFormat(t *testing.T) {
	report := &domain.TravelReport{
		Origin:      "Earth",
		Destination: "Mars",
		StraightRadialLine: domain.RadialLine{
			DistanceKm: 78341104,
			LightSpeed: domain.SpeedEstimate{
				Speed:    domain.Speed{Value: 299792, Unit: "km/s"},
				Duration: domain.Duration{TotalSeconds: 261.5, Minutes: 4, Seconds: 21, Formatted: "0 days, 0 hours, 4 minutes, 21 seconds"},
			},
			RocketSpeed: domain.SpeedEstimate{Speed: domain.Speed{Value: 39400, Unit: "km/h"}},
		},
		HohmannTransferOrbit: domain.HohmannTransfer{
			SemiMajorAxisKm: 188768814,
			ArcDistanceKm:   343661223.8350482,
			TransferTime:    domain.Duration{TotalSeconds: 100, Minutes: 1, Seconds: 40},
			LightSpeed:      domain.SpeedEstimate{Speed: domain.Speed{Value: 299792, Unit: "km/s"}},
			RocketSpeed:     domain.SpeedEstimate{Speed: domain.Speed{Value: 39400, Unit: "km/h"}},
		},
	}

	raw, err := json.Marshal(NewTravelResponse(report))
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))

	assert.Equal(t, "Earth", wire["origin"])
	assert.Equal(t, "Mars", wire["destination"])

	radial := wire["straight_radial_line"].(map[string]any)
	assert.Equal(t, "78,341,104", radial["distance_km"])
	assert.Equal(t, "Direct radial distance between orbital radious (not accounting for orbital mechanics)", radial["description"])

	light := radial["travel_at_light_speed"].(map[string]any)
	assert.Equal(t, "299,792 km/s", light["speed"])
	assert.Equal(t, 261.5, light["total_seconds"])
	assert.Equal(t, 4.0, light["minutes"])
	assert.Equal(t, 21.0, light["seconds"])
	assert.Equal(t, "0 days, 0 hours, 4 minutes, 21 seconds", light["formatted"])
	assert.NotContains(t, light, "description")

	rocket := radial["travel_at_rocket_speed"].(map[string]any)
	assert.Equal(t, "39,400 km/h", rocket["speed"])

	hohmann := wire["hohmann_transfer_orbit"].(map[string]any)
	assert.Equal(t, "188,768,814", hohmann["semi_major_axis_km"])
	assert.Equal(t, "343,661,223.835", hohmann["arc_distance_km"])
	assert.Equal(t, "Most fuel-efficient trajectory using elliptical transfer orbit", hohmann["description"])

	transfer := hohmann["transfer_time"].(map[string]any)
	assert.Equal(t, "Actual transfer time following orbital mechanics", transfer["description"])
	assert.Equal(t, 100.0, transfer["total_seconds"])
	assert.NotContains(t, transfer, "speed")

	hLight := hohmann["travel_at_light_speed"].(map[string]any)
	assert.Equal(t, hohmannLightDescription, hLight["description"])
	assert.Equal(t, "299,792 km/s", hLight["speed"])

	hRocket := hohmann["travel_at_rocket_speed"].(map[string]any)
	assert.Equal(t, hohmannRocketDescription, hRocket["description"])
	for _, key := range []string{"days", "hours", "minutes", "seconds", "total_seconds", "formatted"} {
		assert.Contains(t, hRocket, key)
	}
}
