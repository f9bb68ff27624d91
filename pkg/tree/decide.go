package tree

import (
	"github.com/wildfunctions/genetic_strategy/pkg/predicate"
	"github.com/wildfunctions/genetic_strategy/pkg/race"
)

func (a *Action) Decide(_ *race.State) race.Decision {
	return a.Decision
}

func (c *Condition) Decide(s *race.State) race.Decision {
	next := c.Right
	if predicate.Eval(c.Pred, s) {
		next = c.Left
	}
	if next == nil {
		return race.DefaultDecision()
	}
	return next.Decide(s)
}

// Decide evaluates root against s. A nil root yields the default decision.
func Decide(root Node, s *race.State) race.Decision {
	if root == nil {
		return race.DefaultDecision()
	}
	return root.Decide(s)
}
