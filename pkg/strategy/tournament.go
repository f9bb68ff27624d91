package strategy

import (
	"math/rand"

	"github.com/wildfunctions/genetic_strategy/pkg/pool"
	"github.com/wildfunctions/genetic_strategy/pkg/tree"
)

func init() {
	Register("tournament", func() Strategy { return &TournamentStrategy{} })
}

// TournamentStrategy is a generational GA: elitism, then tournament
// selection, crossover and mutation until the population is refilled.
type TournamentStrategy struct{}

func (s *TournamentStrategy) Name() string { return "tournament" }

func (s *TournamentStrategy) Initialize(p pool.Pool, rng *rand.Rand, popSize int, params Params, eval Evaluator) []Individual {
	return randomPopulation(p, rng, popSize, params, eval)
}

func (s *TournamentStrategy) Evolve(
	ranked []Individual,
	p pool.Pool,
	rng *rand.Rand,
	params Params,
	eval Evaluator,
) []Individual {
	n := len(ranked)
	next := make([]Individual, 0, n+1)

	// Elites keep their tree and their old fitness.
	elite := min(params.EliteSize, n)
	next = append(next, ranked[:elite]...)

	for len(next) < n {
		p1 := TournamentSelect(ranked, params.TournamentSize, rng)
		p2 := TournamentSelect(ranked, params.TournamentSize, rng)

		c1, c2 := Crossover(p1.Tree, p2.Tree, rng)

		Mutate(c1, params.MutationRate, p, rng)
		Mutate(c2, params.MutationRate, p, rng)

		next = append(next,
			newIndividual(c1, eval),
			newIndividual(c2, eval),
		)
	}

	return next[:n]
}

func newIndividual(t tree.Node, eval Evaluator) Individual {
	return Individual{Tree: t, Fitness: eval(t)}
}
