package strategy

import (
	"math/rand"

	"github.com/wildfunctions/genetic_strategy/pkg/pool"
)

const hillclimbInjectionRate = 0.05 // fraction of population replaced with random each gen

func init() {
	Register("hillclimb", func() Strategy { return &HillClimbStrategy{} })
}

// HillClimbStrategy implements directed hill-climbing with population.
// Each individual is cloned and mutated; the child replaces it only if it
// scores lower. The worst few are replaced by random trees to keep diversity.
type HillClimbStrategy struct{}

func (s *HillClimbStrategy) Name() string { return "hillclimb" }

func (s *HillClimbStrategy) Initialize(p pool.Pool, rng *rand.Rand, popSize int, params Params, eval Evaluator) []Individual {
	return randomPopulation(p, rng, popSize, params, eval)
}

func (s *HillClimbStrategy) Evolve(
	ranked []Individual,
	p pool.Pool,
	rng *rand.Rand,
	params Params,
	eval Evaluator,
) []Individual {
	n := len(ranked)
	next := make([]Individual, n)

	for i, ind := range ranked {
		child := clone(ind.Tree)
		Mutate(child, params.MutationRate, p, rng)
		if f := eval(child); f < ind.Fitness {
			next[i] = Individual{Tree: child, Fitness: f}
		} else {
			next[i] = ind
		}
	}

	// Replace the worst of the old ranking, never the best slot.
	injectionCount := int(float64(n) * hillclimbInjectionRate)
	if injectionCount < 1 {
		injectionCount = 1
	}
	for i := 0; i < injectionCount && n-1-i > 0; i++ {
		t := p.RandomTree(rng, params.MaxDepth)
		next[n-1-i] = newIndividual(t, eval)
	}

	return next
}
