package pool

import (
	"math/rand"
	"testing"

	"github.com/wildfunctions/genetic_strategy/pkg/predicate"
	"github.com/wildfunctions/genetic_strategy/pkg/race"
	"github.com/wildfunctions/genetic_strategy/pkg/tree"
)

// checkFull verifies n is a full binary tree of conditions with actions exactly at depth maxDepth.
func checkFull(t *testing.T, n tree.Node, depth, maxDepth int) {
	t.Helper()
	switch n := n.(type) {
	case *tree.Action:
		if depth != maxDepth {
			t.Fatalf("action at depth %d, want %d", depth, maxDepth)
		}
	case *tree.Condition:
		if depth >= maxDepth {
			t.Fatalf("condition at depth %d (max %d)", depth, maxDepth)
		}
		if n.Left == nil || n.Right == nil {
			t.Fatal("condition built with a missing child")
		}
		if !n.Pred.Valid() {
			t.Fatalf("invalid predicate %d", int(n.Pred))
		}
		checkFull(t, n.Left, depth+1, maxDepth)
		checkFull(t, n.Right, depth+1, maxDepth)
	default:
		t.Fatalf("unexpected node %T", n)
	}
}

func TestFullPool(t *testing.T) {
	p, err := Get("full")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Predicates()) != predicate.Count {
		t.Errorf("full pool has %d predicates, want %d", len(p.Predicates()), predicate.Count)
	}

	rng := rand.New(rand.NewSource(42))
	for _, depth := range []int{0, 1, 4, 6} {
		root := p.RandomTree(rng, depth)
		checkFull(t, root, 0, depth)
		if root.NodeCount() != 1<<(depth+1)-1 {
			t.Errorf("depth %d: NodeCount = %d, want %d", depth, root.NodeCount(), 1<<(depth+1)-1)
		}
		if root.Depth() != depth {
			t.Errorf("Depth = %d, want %d", root.Depth(), depth)
		}
	}
}

func TestDryPoolHasNoWeather(t *testing.T) {
	p, err := Get("dry")
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		if pred := p.RandomPredicate(rng); pred.Weather() {
			t.Fatalf("dry pool produced weather predicate %s", pred)
		}
	}
	checkFull(t, p.RandomTree(rng, 4), 0, 4)
}

func TestRandomDecisionCoversDomain(t *testing.T) {
	p, _ := Get("full")
	rng := rand.New(rand.NewSource(1))

	compounds := make(map[race.Compound]int)
	pits, pushes := 0, 0
	total := 5000
	for i := 0; i < total; i++ {
		d := p.RandomDecision(rng)
		compounds[d.TargetCompound]++
		if d.PitNow {
			pits++
		}
		if d.AggressivePace {
			pushes++
		}
	}
	if len(compounds) != race.NumCompounds {
		t.Errorf("saw %d compounds, want %d", len(compounds), race.NumCompounds)
	}
	for _, n := range []int{pits, pushes} {
		if n < total*4/10 || n > total*6/10 {
			t.Errorf("boolean field not roughly uniform: %d/%d", n, total)
		}
	}
}

func TestSameSeedSameTree(t *testing.T) {
	p, _ := Get("full")
	a := p.RandomTree(rand.New(rand.NewSource(99)), 4)
	b := p.RandomTree(rand.New(rand.NewSource(99)), 4)
	if a.String() != b.String() {
		t.Error("same seed produced different trees")
	}
}

func TestPoolRegistry(t *testing.T) {
	names := Names()
	if len(names) < 2 {
		t.Errorf("expected at least 2 pools, got %d", len(names))
	}
	for _, name := range names {
		p, err := Get(name)
		if err != nil {
			t.Errorf("Get(%q): %v", name, err)
			continue
		}
		if p.Name() != name {
			t.Errorf("pool name mismatch: %q vs %q", p.Name(), name)
		}
	}
	if _, err := Get("nonexistent"); err == nil {
		t.Error("expected error for unknown pool")
	}
}
