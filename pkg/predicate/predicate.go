package predicate

import (
	"fmt"

	"github.com/wildfunctions/genetic_strategy/pkg/race"
)

// Predicate identifies one boolean test from the closed catalog.
type Predicate int

const (
	TyreAgeOver25 Predicate = iota
	TyreAgeOver20
	TyreAgeOver15
	TyreAgeOver10
	TyreAgeUnder5

	LapOver35
	LapOver25
	LapOver15
	LapUnder10

	PositionTop3
	PositionTop5
	PositionOutsideTop10
	PositionOutsideTop15

	RivalGapUnder1
	RivalGapUnder2
	RivalGapOver5
	LeaderGapUnder10

	SafetyCar
	RainOver50
	RainOver70
	WetnessOver30
	WetnessOver60

	NoStopsYet
	OneStopMade
	TwoPlusStopsMade

	SoftOlderThan12
	MediumOlderThan20
	HardOlderThan25
	DryTyresOnDampTrack
	WetTyresOnDryingTrack

	numPredicates
)

type entry struct {
	name string
	test func(s *race.State) bool
}

var catalog = [numPredicates]entry{
	TyreAgeOver25: {"tyre_age > 25", func(s *race.State) bool { return s.TyreAge > 25 }},
	TyreAgeOver20: {"tyre_age > 20", func(s *race.State) bool { return s.TyreAge > 20 }},
	TyreAgeOver15: {"tyre_age > 15", func(s *race.State) bool { return s.TyreAge > 15 }},
	TyreAgeOver10: {"tyre_age > 10", func(s *race.State) bool { return s.TyreAge > 10 }},
	TyreAgeUnder5: {"tyre_age < 5", func(s *race.State) bool { return s.TyreAge < 5 }},

	LapOver35:  {"current_lap > 35", func(s *race.State) bool { return s.CurrentLap > 35 }},
	LapOver25:  {"current_lap > 25", func(s *race.State) bool { return s.CurrentLap > 25 }},
	LapOver15:  {"current_lap > 15", func(s *race.State) bool { return s.CurrentLap > 15 }},
	LapUnder10: {"current_lap < 10", func(s *race.State) bool { return s.CurrentLap < 10 }},

	PositionTop3:         {"position <= 3", func(s *race.State) bool { return s.Position <= 3 }},
	PositionTop5:         {"position <= 5", func(s *race.State) bool { return s.Position <= 5 }},
	PositionOutsideTop10: {"position > 10", func(s *race.State) bool { return s.Position > 10 }},
	PositionOutsideTop15: {"position > 15", func(s *race.State) bool { return s.Position > 15 }},

	RivalGapUnder1:   {"gap_to_rival < 1.0", func(s *race.State) bool { return s.GapToRival < 1.0 }},
	RivalGapUnder2:   {"gap_to_rival < 2.0", func(s *race.State) bool { return s.GapToRival < 2.0 }},
	RivalGapOver5:    {"gap_to_rival > 5.0", func(s *race.State) bool { return s.GapToRival > 5.0 }},
	LeaderGapUnder10: {"gap_to_leader < 10.0", func(s *race.State) bool { return s.GapToLeader < 10.0 }},

	SafetyCar:     {"safety_car", func(s *race.State) bool { return s.SafetyCar }},
	RainOver50:    {"rain_probability > 0.5", func(s *race.State) bool { return s.RainProbability > 0.5 }},
	RainOver70:    {"rain_probability > 0.7", func(s *race.State) bool { return s.RainProbability > 0.7 }},
	WetnessOver30: {"track_wetness > 0.3", func(s *race.State) bool { return s.TrackWetness > 0.3 }},
	WetnessOver60: {"track_wetness > 0.6", func(s *race.State) bool { return s.TrackWetness > 0.6 }},

	NoStopsYet:       {"pit_stops_made == 0", func(s *race.State) bool { return s.PitStopsMade == 0 }},
	OneStopMade:      {"pit_stops_made == 1", func(s *race.State) bool { return s.PitStopsMade == 1 }},
	TwoPlusStopsMade: {"pit_stops_made >= 2", func(s *race.State) bool { return s.PitStopsMade >= 2 }},

	SoftOlderThan12: {"is_soft and tyre_age > 12", func(s *race.State) bool {
		return s.TyreCompound == race.Soft && s.TyreAge > 12
	}},
	MediumOlderThan20: {"is_medium and tyre_age > 20", func(s *race.State) bool {
		return s.TyreCompound == race.Medium && s.TyreAge > 20
	}},
	HardOlderThan25: {"is_hard and tyre_age > 25", func(s *race.State) bool {
		return s.TyreCompound == race.Hard && s.TyreAge > 25
	}},
	DryTyresOnDampTrack: {"on_dry_tyres and track_wetness > 0.3", func(s *race.State) bool {
		return s.OnDryTyres() && s.TrackWetness > 0.3
	}},
	WetTyresOnDryingTrack: {"on_wet_tyres and track_wetness < 0.2", func(s *race.State) bool {
		return s.OnWetTyres() && s.TrackWetness < 0.2
	}},
}

// Count is the size of the catalog.
const Count = int(numPredicates)

// All returns every predicate in catalog order.
func All() []Predicate {
	out := make([]Predicate, numPredicates)
	for i := range out {
		out[i] = Predicate(i)
	}
	return out
}

// Valid reports whether p is a catalog entry.
func (p Predicate) Valid() bool {
	return p >= 0 && p < numPredicates
}

// Eval tests p against s. Unknown predicates and nil states evaluate to false.
func Eval(p Predicate, s *race.State) bool {
	if s == nil || !p.Valid() {
		return false
	}
	return catalog[p].test(s)
}

// Name returns the stable display identifier of p.
func (p Predicate) Name() string {
	if !p.Valid() {
		return fmt.Sprintf("predicate(%d)", int(p))
	}
	return catalog[p].name
}

func (p Predicate) String() string { return p.Name() }

// Parse returns the predicate whose display identifier is name.
func Parse(name string) (Predicate, error) {
	for i := range catalog {
		if catalog[i].name == name {
			return Predicate(i), nil
		}
	}
	return 0, fmt.Errorf("unknown predicate: %q", name)
}

// Weather reports whether p reads rain probability or track wetness.
func (p Predicate) Weather() bool {
	switch p {
	case RainOver50, RainOver70, WetnessOver30, WetnessOver60, DryTyresOnDampTrack, WetTyresOnDryingTrack:
		return true
	}
	return false
}
