package services

import (
	"errors"
	"fmt"
	"math"
	"planet-travel-service/internal/domain"
	"regexp"
	"strconv"
	"strings"
)

const (
	SpeedOfLightKmS = 299792.0
	RocketSpeedKmH  = 39400.0
	RocketSpeedKmS  = RocketSpeedKmH / 3600

	// Standard gravitational parameter of the sun (km³/s²).
	SunGravitationalParameter = 1.327e11
)

var (
	lightSpeed  = domain.Speed{Value: SpeedOfLightKmS, Unit: "km/s"}
	rocketSpeed = domain.Speed{Value: RocketSpeedKmH, Unit: "km/h"}
)

// DistanceParseError reports a distance string that is not a finite,
// non-negative decimal number once thousands separators are removed.
type DistanceParseError struct {
	Value string
	Err   error
}

func (e *DistanceParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse distance %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("parse distance %q: not a finite non-negative decimal number", e.Value)
}

func (e *DistanceParseError) Unwrap() error { return e.Err }

// Digits with an optional fraction, once thousands separators are removed.
var decimalPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// ParseDistance converts a comma-grouped kilometre string such as
// "149,598,262" into a float64. Signs, exponents and hex forms are rejected.
func ParseDistance(s string) (float64, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if !decimalPattern.MatchString(raw) {
		return 0, &DistanceParseError{Value: s}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &DistanceParseError{Value: s, Err: err}
	}
	if math.IsInf(v, 0) {
		return 0, &DistanceParseError{Value: s}
	}

	return v, nil
}

// FormatDuration splits seconds into floored days, hours, minutes and seconds.
// Negative or NaN input yields zero components. Days saturates at math.MaxInt;
// Formatted always carries the full day count.
func FormatDuration(seconds float64) domain.Duration {
	var whole float64
	if seconds > 0 && !math.IsInf(seconds, 1) {
		whole = math.Floor(seconds)
	}

	days := math.Floor(whole / 86400)
	rem := math.Mod(whole, 86400)
	hours := math.Floor(rem / 3600)
	minutes := math.Floor(math.Mod(rem, 3600) / 60)
	secs := math.Mod(rem, 60)

	d := math.MaxInt
	if days < float64(math.MaxInt) {
		d = int(days)
	}

	return domain.Duration{
		TotalSeconds: seconds,
		Days:         d,
		Hours:        int(hours),
		Minutes:      int(minutes),
		Seconds:      int(secs),
		Formatted: fmt.Sprintf("%s days, %d hours, %d minutes, %d seconds",
			strconv.FormatFloat(days, 'f', 0, 64), int(hours), int(minutes), int(secs)),
	}
}

// Hohmann holds the raw geometry of a transfer ellipse.
type Hohmann struct {
	SemiMajorAxisKm     float64
	SemiMinorAxisKm     float64
	ArcDistanceKm       float64
	TransferTimeSeconds float64
}

// HohmannTransfer computes the transfer ellipse between circular orbits of
// radius r1 and r2 (km from the sun).
//
// The transfer time is half the ellipse period (Kepler's third law). The arc
// distance is half the ellipse perimeter using Ramanujan's approximation with
// the semi-minor axis b = sqrt(r1*r2).
func HohmannTransfer(r1, r2 float64) Hohmann {
	a := (r1 + r2) / 2
	b := math.Sqrt(r1 * r2)

	return Hohmann{
		SemiMajorAxisKm:     a,
		SemiMinorAxisKm:     b,
		ArcDistanceKm:       math.Pi*(a+b) - math.Pi*math.Sqrt(2*a*b),
		TransferTimeSeconds: math.Pi * math.Sqrt(math.Pow(a, 3)/SunGravitationalParameter),
	}
}

// CalculateTravelTime computes travel distances and durations between two
// planets under the straight radial line and Hohmann transfer models.
//
// The function is pure and safe for concurrent use. A malformed distance
// returns a *DistanceParseError and no report.
func CalculateTravelTime(origin, destination *domain.Planet) (*domain.TravelReport, error) {
	if origin == nil || destination == nil {
		return nil, errors.New("calculate travel time: origin and destination must be non-nil")
	}

	r1, err := ParseDistance(origin.DistanceFromSun.KM)
	if err != nil {
		return nil, fmt.Errorf("calculate travel time: origin %q: %w", origin.Name, err)
	}
	r2, err := ParseDistance(destination.DistanceFromSun.KM)
	if err != nil {
		return nil, fmt.Errorf("calculate travel time: destination %q: %w", destination.Name, err)
	}

	radial := math.Abs(r2 - r1)
	h := HohmannTransfer(r1, r2)

	return &domain.TravelReport{
		Origin:      origin.Name,
		Destination: destination.Name,
		StraightRadialLine: domain.RadialLine{
			DistanceKm:  radial,
			LightSpeed:  estimate(lightSpeed, radial/SpeedOfLightKmS),
			RocketSpeed: estimate(rocketSpeed, radial/RocketSpeedKmS),
		},
		HohmannTransferOrbit: domain.HohmannTransfer{
			SemiMajorAxisKm: h.SemiMajorAxisKm,
			SemiMinorAxisKm: h.SemiMinorAxisKm,
			ArcDistanceKm:   h.ArcDistanceKm,
			TransferTime:    FormatDuration(h.TransferTimeSeconds),
			// Constant-speed times over the arc are illustrative only.
			LightSpeed:  estimate(lightSpeed, h.ArcDistanceKm/SpeedOfLightKmS),
			RocketSpeed: estimate(rocketSpeed, h.ArcDistanceKm/RocketSpeedKmS),
		},
	}, nil
}

func estimate(speed domain.Speed, seconds float64) domain.SpeedEstimate {
	return domain.SpeedEstimate{Speed: speed, Duration: FormatDuration(seconds)}
}
