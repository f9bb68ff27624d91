package strategy

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/wildfunctions/genetic_strategy/pkg/pool"
	"github.com/wildfunctions/genetic_strategy/pkg/tree"
)

// Individual is one population entry. Fitness is assigned when the entry is
// created and never recomputed; a new score means a new Individual.
type Individual struct {
	Tree    tree.Node
	Fitness float64
}

// Evaluator scores a tree. Lower is better.
type Evaluator func(t tree.Node) float64

// Params carries the operator settings of a run.
type Params struct {
	MaxDepth       int
	EliteSize      int
	TournamentSize int
	MutationRate   float64
}

// Strategy defines an evolutionary strategy for evolving strategy trees.
type Strategy interface {
	Name() string
	Initialize(p pool.Pool, rng *rand.Rand, popSize int, params Params, eval Evaluator) []Individual
	// Evolve builds the next generation from a population sorted ascending by fitness.
	Evolve(ranked []Individual, p pool.Pool, rng *rand.Rand, params Params, eval Evaluator) []Individual
}

var registry = map[string]func() Strategy{}

// Register adds a strategy constructor to the registry.
func Register(name string, constructor func() Strategy) {
	registry[name] = constructor
}

// Get returns a strategy by name.
func Get(name string) (Strategy, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SortByFitness orders pop ascending by fitness. Equal fitnesses keep their order.
func SortByFitness(pop []Individual) {
	sort.SliceStable(pop, func(i, j int) bool {
		return pop[i].Fitness < pop[j].Fitness
	})
}

// Best returns the index of the lowest-fitness entry, the earliest on ties, or -1 if pop is empty.
func Best(pop []Individual) int {
	best := -1
	for i := range pop {
		if best < 0 || pop[i].Fitness < pop[best].Fitness {
			best = i
		}
	}
	return best
}

// randomPopulation builds popSize random trees, then scores them in order.
func randomPopulation(p pool.Pool, rng *rand.Rand, popSize int, params Params, eval Evaluator) []Individual {
	pop := make([]Individual, popSize)
	for i := range pop {
		pop[i].Tree = p.RandomTree(rng, params.MaxDepth)
	}
	for i := range pop {
		pop[i].Fitness = eval(pop[i].Tree)
	}
	return pop
}
