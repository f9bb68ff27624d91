package pool

import (
	"math/rand"

	"github.com/wildfunctions/genetic_strategy/pkg/predicate"
	"github.com/wildfunctions/genetic_strategy/pkg/race"
	"github.com/wildfunctions/genetic_strategy/pkg/tree"
)

func init() {
	Register("full", func() Pool { return &FullPool{preds: predicate.All()} })
}

// FullPool draws from the whole predicate catalog.
type FullPool struct {
	preds []predicate.Predicate
}

func (p *FullPool) Name() string { return "full" }

func (p *FullPool) Predicates() []predicate.Predicate { return p.preds }

func (p *FullPool) RandomPredicate(rng *rand.Rand) predicate.Predicate {
	return pickPredicate(p.preds, rng)
}

func (p *FullPool) RandomDecision(rng *rand.Rand) race.Decision {
	return randomDecision(rng)
}

func (p *FullPool) RandomTree(rng *rand.Rand, maxDepth int) tree.Node {
	return randomTree(p, rng, 0, maxDepth)
}
