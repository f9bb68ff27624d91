package tree

import (
	"github.com/wildfunctions/genetic_strategy/pkg/predicate"
	"github.com/wildfunctions/genetic_strategy/pkg/race"
)

// Node is the interface for all strategy tree nodes.
type Node interface {
	Decide(s *race.State) race.Decision
	String() string
	Clone() Node
	NodeCount() int
	Depth() int
	format(w *writer, depth int, prefix string)
}

// Condition branches on a predicate: Left when it holds, Right otherwise.
// A nil child is allowed; crossover can strip a left branch.
type Condition struct {
	Pred        predicate.Predicate
	Left, Right Node
}

// Action is a leaf carrying a fixed decision.
type Action struct {
	Decision race.Decision
}
