package sim

import "github.com/wildfunctions/genetic_strategy/pkg/race"

const (
	BaseLapTime       = 90.0
	PitStopTime       = 25.0
	SafetyCarPitBonus = 10.0 // saved when pitting under the safety car
	SafetyCarLapTime  = 10.0
	AggressiveGain    = 0.3
	DryOnWetPenalty   = 5.0
	WetOnDryPenalty   = 3.0
	NoStopPenalty     = 100.0
	ExtraStopPenalty  = 50.0
	MaxPenaltyFree    = 3 // stops allowed before ExtraStopPenalty applies
	dampThreshold     = 0.3
	soakedThreshold   = 0.5
	dryingThreshold   = 0.2
)

// TyreDegradation is the time lost to tyre age on the current compound.
func TyreDegradation(s *race.State) float64 {
	return float64(s.TyreAge) * s.TyreCompound.DegradationRate()
}

// CompoundSpeed is the dry-track pace offset of the current compound.
// Once the track is damp every compound is treated as neutral.
func CompoundSpeed(s *race.State) float64 {
	if s.TrackWetness > dampThreshold {
		return 0
	}
	return s.TyreCompound.SpeedModifier()
}

// WrongTyrePenalty charges slicks on a soaked track and wets on a dry one.
func WrongTyrePenalty(s *race.State) float64 {
	switch {
	case s.TrackWetness > soakedThreshold && s.OnDryTyres():
		return DryOnWetPenalty
	case s.TrackWetness < dryingThreshold && s.OnWetTyres():
		return WetOnDryPenalty
	}
	return 0
}

// LapTime is the time for one lap in state s.
func LapTime(s *race.State, aggressive bool) float64 {
	t := BaseLapTime + TyreDegradation(s) + CompoundSpeed(s)
	if aggressive {
		t -= AggressiveGain
	}
	if s.SafetyCar {
		t += SafetyCarLapTime
	}
	return t + WrongTyrePenalty(s)
}

// PitTime is the stationary plus pit lane loss for a stop this lap.
func PitTime(safetyCar bool) float64 {
	if safetyCar {
		return PitStopTime - SafetyCarPitBonus
	}
	return PitStopTime
}

// Penalty is the end-of-race charge for the number of stops made.
func Penalty(pitStops int) float64 {
	switch {
	case pitStops < 1:
		return NoStopPenalty
	case pitStops > MaxPenaltyFree:
		return ExtraStopPenalty * float64(pitStops-MaxPenaltyFree)
	}
	return 0
}
