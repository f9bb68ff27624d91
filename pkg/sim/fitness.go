package sim

import "math/rand"

// RacesPerEvaluation is how many independent races are averaged into one fitness.
const RacesPerEvaluation = 3

// Fitness is the mean race time over RacesPerEvaluation fresh races. Lower is better.
// Each race consumes new draws from rng, so repeated calls on the same
// strategy give different results.
func (sim *Simulator) Fitness(strat Strategy, rng *rand.Rand) float64 {
	sum := 0.0
	for i := 0; i < RacesPerEvaluation; i++ {
		sum += sim.Run(strat, rng)
	}
	return sum / RacesPerEvaluation
}
