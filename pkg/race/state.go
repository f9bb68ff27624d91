package race

// State is the mutable race state owned by a single simulation run.
type State struct {
	CurrentLap      int      `json:"current_lap"`
	TyreAge         int      `json:"tyre_age"`
	TyreCompound    Compound `json:"tyre_compound"`
	Position        int      `json:"position"`
	GapToLeader     float64  `json:"gap_to_leader"`
	GapToRival      float64  `json:"gap_to_rival"` // positive: rival ahead
	SafetyCar       bool     `json:"safety_car"`
	RainProbability float64  `json:"rain_probability"`
	PitStopsMade    int      `json:"pit_stops_made"`
	TrackWetness    float64  `json:"track_wetness"` // 0 dry, 1 soaking
}

// OnDryTyres reports whether the car is on slicks.
func (s *State) OnDryTyres() bool {
	return s.TyreCompound.IsDry()
}

// OnWetTyres reports whether the car is on intermediates or full wets.
func (s *State) OnWetTyres() bool {
	return s.TyreCompound.IsWet()
}
