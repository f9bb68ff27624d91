package strategy

import (
	"math/rand"

	"github.com/wildfunctions/genetic_strategy/pkg/pool"
	"github.com/wildfunctions/genetic_strategy/pkg/tree"
)

const (
	actionMutationProb    = 0.5
	conditionMutationProb = 0.3
)

// Mutate rewrites payloads of root in place; the shape never changes.
//
// At each node a draw above rate stops the walk, so nothing at or below that
// node is touched. Otherwise an action gets a fresh random decision with
// probability 0.5, a condition gets a fresh predicate from p with
// probability 0.3, and the walk continues into both children.
func Mutate(root tree.Node, rate float64, p pool.Pool, rng *rand.Rand) {
	mutateNode(root, rate, p, rng)
}

func mutateNode(n tree.Node, rate float64, p pool.Pool, rng *rand.Rand) {
	if n == nil || rng.Float64() > rate {
		return
	}
	switch n := n.(type) {
	case *tree.Action:
		if rng.Float64() < actionMutationProb {
			n.Decision = p.RandomDecision(rng)
		}
	case *tree.Condition:
		if rng.Float64() < conditionMutationProb {
			n.Pred = p.RandomPredicate(rng)
		}
		mutateNode(n.Left, rate, p, rng)
		mutateNode(n.Right, rate, p, rng)
	}
}
