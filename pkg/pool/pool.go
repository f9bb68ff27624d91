package pool

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/wildfunctions/genetic_strategy/pkg/predicate"
	"github.com/wildfunctions/genetic_strategy/pkg/race"
	"github.com/wildfunctions/genetic_strategy/pkg/tree"
)

// Pool provides random building blocks for constructing strategy trees.
type Pool interface {
	Name() string
	Predicates() []predicate.Predicate
	RandomPredicate(rng *rand.Rand) predicate.Predicate
	RandomDecision(rng *rand.Rand) race.Decision
	RandomTree(rng *rand.Rand, maxDepth int) tree.Node
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pool: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered pool names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// pickPredicate draws uniformly from preds.
func pickPredicate(preds []predicate.Predicate, rng *rand.Rand) predicate.Predicate {
	return preds[rng.Intn(len(preds))]
}

// randomDecision draws pit, compound and pace independently and uniformly, in that order.
func randomDecision(rng *rand.Rand) race.Decision {
	pit := rng.Intn(2) == 0
	compound := race.Compound(rng.Intn(race.NumCompounds))
	push := rng.Intn(2) == 0
	return race.Decision{PitNow: pit, TargetCompound: compound, AggressivePace: push}
}

// randomTree builds a full binary tree: conditions above maxDepth, actions at it.
// The predicate is drawn before either subtree, left subtree before right.
func randomTree(p Pool, rng *rand.Rand, depth, maxDepth int) tree.Node {
	if depth >= maxDepth {
		return &tree.Action{Decision: p.RandomDecision(rng)}
	}
	pred := p.RandomPredicate(rng)
	left := randomTree(p, rng, depth+1, maxDepth)
	right := randomTree(p, rng, depth+1, maxDepth)
	return &tree.Condition{Pred: pred, Left: left, Right: right}
}
