package pool

import (
	"math/rand"

	"github.com/wildfunctions/genetic_strategy/pkg/predicate"
	"github.com/wildfunctions/genetic_strategy/pkg/race"
	"github.com/wildfunctions/genetic_strategy/pkg/tree"
)

func init() {
	Register("dry", func() Pool { return newDryPool() })
}

// DryPool leaves out the weather predicates, so strategies react only to
// tyres, laps, position, gaps, the safety car and stop count.
type DryPool struct {
	preds []predicate.Predicate
}

func newDryPool() *DryPool {
	var preds []predicate.Predicate
	for _, p := range predicate.All() {
		if !p.Weather() {
			preds = append(preds, p)
		}
	}
	return &DryPool{preds: preds}
}

func (p *DryPool) Name() string { return "dry" }

func (p *DryPool) Predicates() []predicate.Predicate { return p.preds }

func (p *DryPool) RandomPredicate(rng *rand.Rand) predicate.Predicate {
	return pickPredicate(p.preds, rng)
}

func (p *DryPool) RandomDecision(rng *rand.Rand) race.Decision {
	return randomDecision(rng)
}

func (p *DryPool) RandomTree(rng *rand.Rand, maxDepth int) tree.Node {
	return randomTree(p, rng, 0, maxDepth)
}
