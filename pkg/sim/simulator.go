package sim

import (
	"math/rand"

	"github.com/wildfunctions/genetic_strategy/pkg/race"
)

// Strategy picks a decision for each lap. *tree.Condition and *tree.Action satisfy it.
type Strategy interface {
	Decide(s *race.State) race.Decision
}

const (
	DefaultLaps = 50

	safetyCarChance = 0.05
	rainShiftChance = 0.02
	rainShiftMin    = 0.5
	rainShiftMax    = 0.9
	rainThreshold   = 0.5
	soakChance      = 0.3
	soakStep        = 0.2
	dryStep         = 0.1
	startRain       = 0.1
)

// Simulator runs synthetic races of a fixed length.
type Simulator struct {
	Laps int
}

// New returns a simulator for races of laps laps.
func New(laps int) *Simulator {
	return &Simulator{Laps: laps}
}

// InitialState samples a fresh grid position and gaps.
// Position, leader gap and rival gap are drawn in that order.
func InitialState(rng *rand.Rand) *race.State {
	pos := 5 + rng.Intn(11)
	leader := uniform(rng, 5, 20)
	rival := uniform(rng, -3, 3)
	return &race.State{
		TyreCompound:    race.Medium,
		Position:        pos,
		GapToLeader:     leader,
		GapToRival:      rival,
		RainProbability: startRain,
	}
}

// Run simulates one race and returns the total race time in seconds,
// including end-of-race penalties.
func (sim *Simulator) Run(strat Strategy, rng *rand.Rand) float64 {
	return sim.run(strat, rng, InitialState(rng), nil)
}

// LapRecord captures one simulated lap.
type LapRecord struct {
	Lap       int           `json:"lap"`
	Decision  race.Decision `json:"decision"`
	Compound  race.Compound `json:"compound"`
	TyreAge   int           `json:"tyre_age"`
	SafetyCar bool          `json:"safety_car"`
	Wetness   float64       `json:"wetness"`
	PitTime   float64       `json:"pit_time,omitempty"`
	LapTime   float64       `json:"lap_time"`
}

// Trace simulates one race like Run and also returns the per-lap record.
func (sim *Simulator) Trace(strat Strategy, rng *rand.Rand) (float64, []LapRecord) {
	laps := make([]LapRecord, 0, sim.Laps)
	total := sim.run(strat, rng, InitialState(rng), &laps)
	return total, laps
}

// RunFrom simulates from a caller-supplied starting state, which is copied.
func (sim *Simulator) RunFrom(strat Strategy, rng *rand.Rand, start race.State) float64 {
	return sim.run(strat, rng, &start, nil)
}

func (sim *Simulator) run(strat Strategy, rng *rand.Rand, state *race.State, trace *[]LapRecord) float64 {
	total := 0.0
	for lap := 0; lap < sim.Laps; lap++ {
		state.CurrentLap = lap
		applyEvents(state, rng)

		d := strat.Decide(state)

		pit := 0.0
		if d.PitNow {
			pit = PitTime(state.SafetyCar)
			state.PitStopsMade++
			state.TyreAge = 0
			state.TyreCompound = d.TargetCompound
		}

		lt := LapTime(state, d.AggressivePace)
		total += pit + lt

		if trace != nil {
			*trace = append(*trace, LapRecord{
				Lap:       lap,
				Decision:  d,
				Compound:  state.TyreCompound,
				TyreAge:   state.TyreAge,
				SafetyCar: state.SafetyCar,
				Wetness:   state.TrackWetness,
				PitTime:   pit,
				LapTime:   lt,
			})
		}

		state.TyreAge++
	}
	return total + Penalty(state.PitStopsMade)
}

// applyEvents rolls this lap's safety car, rain shift and wetness change.
func applyEvents(s *race.State, rng *rand.Rand) {
	s.SafetyCar = rng.Float64() < safetyCarChance

	if rng.Float64() < rainShiftChance {
		s.RainProbability = uniform(rng, rainShiftMin, rainShiftMax)
	}

	if s.RainProbability > rainThreshold && rng.Float64() < soakChance {
		s.TrackWetness = min(1.0, s.TrackWetness+soakStep)
	} else {
		s.TrackWetness = max(0.0, s.TrackWetness-dryStep)
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
