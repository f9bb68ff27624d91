package strategy

import (
	"math/rand"

	"github.com/wildfunctions/genetic_strategy/pkg/tree"
)

const (
	crossoverRate       = 0.7
	crossoverStopProb   = 0.3 // chance the descent stops at the current node
	crossoverMaxDescent = 3
)

// Crossover deep-copies both parents and, with probability 0.7, exchanges the
// left children of one randomly chosen node in each copy. Right subtrees are
// never exchanged. The children share no nodes with the parents or each other.
func Crossover(a, b tree.Node, rng *rand.Rand) (tree.Node, tree.Node) {
	c1 := clone(a)
	c2 := clone(b)

	if rng.Float64() < crossoverRate {
		n1 := randomNode(c1, 0, rng)
		n2 := randomNode(c2, 0, rng)
		swapLeft(n1, n2)
	}
	return c1, c2
}

// randomNode descends from n, stopping with probability 0.3 at each step,
// at depth 3, or when the chosen child is absent.
func randomNode(n tree.Node, depth int, rng *rand.Rand) tree.Node {
	if n == nil || depth >= crossoverMaxDescent || rng.Float64() < crossoverStopProb {
		return n
	}
	goLeft := rng.Float64() < 0.5

	c, ok := n.(*tree.Condition)
	if !ok {
		return n
	}
	next := c.Right
	if goLeft {
		next = c.Left
	}
	if next == nil {
		return n
	}
	return randomNode(next, depth+1, rng)
}

// swapLeft exchanges the left children of a and b. Actions have no children:
// a condition swapped with an action loses its left branch.
func swapLeft(a, b tree.Node) {
	la, lb := leftOf(a), leftOf(b)
	setLeft(a, lb)
	setLeft(b, la)
}

func leftOf(n tree.Node) tree.Node {
	if c, ok := n.(*tree.Condition); ok {
		return c.Left
	}
	return nil
}

func setLeft(n, child tree.Node) {
	if c, ok := n.(*tree.Condition); ok {
		c.Left = child
	}
}

func clone(n tree.Node) tree.Node {
	if n == nil {
		return nil
	}
	return n.Clone()
}
