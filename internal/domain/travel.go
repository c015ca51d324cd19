package domain

// A duration in seconds split into whole days, hours, minutes and seconds.
// Components are floored, so Days*86400 + Hours*3600 + Minutes*60 + Seconds
// equals floor(TotalSeconds).
type Duration struct {
	TotalSeconds float64
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Formatted    string
}

// A constant travel speed. Value is expressed in Unit (e.g. 299792 "km/s").
type Speed struct {
	Value float64
	Unit  string
}

// Travel time for a distance covered at a constant speed.
type SpeedEstimate struct {
	Speed Speed
	Duration
}

// Straight-line model: the absolute difference of the two orbital radii.
// Real planet positions are ignored.
type RadialLine struct {
	DistanceKm  float64
	LightSpeed  SpeedEstimate
	RocketSpeed SpeedEstimate
}

// Hohmann transfer model between two circular orbits.
//
// TransferTime is half the period of the transfer ellipse. LightSpeed and
// RocketSpeed cover ArcDistanceKm at constant speed and are illustrative only:
// a spacecraft on a transfer orbit does not move at a constant speed.
type HohmannTransfer struct {
	SemiMajorAxisKm float64
	SemiMinorAxisKm float64
	ArcDistanceKm   float64
	TransferTime    Duration
	LightSpeed      SpeedEstimate
	RocketSpeed     SpeedEstimate
}

// Represents the outcome of a travel-time calculation between two planets.
// It is immutable value data; numeric fields are raw and unformatted.
type TravelReport struct {
	Origin               string
	Destination          string
	StraightRadialLine   RadialLine
	HohmannTransferOrbit HohmannTransfer
}
