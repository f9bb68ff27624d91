package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/wildfunctions/genetic_strategy/pkg/race"
	"github.com/wildfunctions/genetic_strategy/pkg/sim"
	"github.com/wildfunctions/genetic_strategy/pkg/store"
	"github.com/wildfunctions/genetic_strategy/pkg/strategy"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Population = 12
	cfg.Generations = 4
	cfg.Laps = 20
	cfg.Elite = 2
	cfg.Seed = 42
	cfg.Log = io.Discard
	return cfg
}

func newEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero population", func(c *Config) { c.Population = 0 }},
		{"negative elite", func(c *Config) { c.Elite = -1 }},
		{"elite above population", func(c *Config) { c.Elite = c.Population + 1 }},
		{"zero tournament", func(c *Config) { c.Tournament = 0 }},
		{"tournament above population", func(c *Config) { c.Tournament = c.Population + 1 }},
		{"mutation rate above one", func(c *Config) { c.MutationRate = 1.5 }},
		{"negative mutation rate", func(c *Config) { c.MutationRate = -0.1 }},
		{"zero laps", func(c *Config) { c.Laps = 0 }},
		{"negative generations", func(c *Config) { c.Generations = -1 }},
		{"zero max depth", func(c *Config) { c.MaxDepth = 0 }},
		{"unknown pool", func(c *Config) { c.Pool = "gravel" }},
		{"unknown strategy", func(c *Config) { c.Strategy = "annealing" }},
		{"unknown format", func(c *Config) { c.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := smallConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
			if _, err := New(cfg); err == nil {
				t.Fatal("New accepted an invalid config")
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEvolveBeforeInitialize(t *testing.T) {
	e := newEngine(t, smallConfig())
	if _, err := e.Evolve(1); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("got %v, want ErrNotInitialized", err)
	}
}

func TestEvolveNegativeGenerations(t *testing.T) {
	e := newEngine(t, smallConfig())
	e.Initialize()
	if _, err := e.Evolve(-1); err == nil {
		t.Fatal("expected error for negative generations")
	}
}

func TestPopulationAndHistory(t *testing.T) {
	cfg := smallConfig()
	e := newEngine(t, cfg)
	e.Initialize()

	if got := len(e.Population()); got != cfg.Population {
		t.Fatalf("initial population %d, want %d", got, cfg.Population)
	}

	best, err := e.Evolve(5)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(e.Population()); got != cfg.Population {
		t.Errorf("population %d after evolve, want %d", got, cfg.Population)
	}
	if got := len(e.History()); got != 5 {
		t.Errorf("history length %d, want 5", got)
	}
	for _, ind := range e.Population() {
		if best.Fitness > ind.Fitness {
			t.Fatalf("returned best %.2f is worse than %.2f in the population", best.Fitness, ind.Fitness)
		}
	}

	// A second call continues and extends the history.
	if _, err := e.Evolve(2); err != nil {
		t.Fatal(err)
	}
	if got := len(e.History()); got != 7 {
		t.Errorf("history length %d after second evolve, want 7", got)
	}
}

func TestEvolveZeroGenerations(t *testing.T) {
	e := newEngine(t, smallConfig())
	e.Initialize()
	initial := e.Population()

	best, err := e.Evolve(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(e.History()) != 0 {
		t.Errorf("history should be empty, got %v", e.History())
	}
	want := initial[strategy.Best(initial)]
	if best.Tree != want.Tree || best.Fitness != want.Fitness {
		t.Errorf("Evolve(0) returned %.2f, want best of initial population %.2f", best.Fitness, want.Fitness)
	}
}

func TestElitesCarriedUnchanged(t *testing.T) {
	cfg := smallConfig()
	cfg.Elite = 3
	e := newEngine(t, cfg)
	e.Initialize()

	ranked := e.Population()
	strategy.SortByFitness(ranked)

	if _, err := e.Evolve(1); err != nil {
		t.Fatal(err)
	}
	next := e.Population()
	for i := 0; i < cfg.Elite; i++ {
		if next[i].Tree != ranked[i].Tree {
			t.Errorf("elite %d: tree not carried over", i)
		}
		if next[i].Fitness != ranked[i].Fitness {
			t.Errorf("elite %d: fitness %.4f, want stale %.4f", i, next[i].Fitness, ranked[i].Fitness)
		}
	}
	if e.History()[0] != ranked[0].Fitness {
		t.Errorf("history[0] = %.4f, want %.4f", e.History()[0], ranked[0].Fitness)
	}
}

func TestRacesSimulated(t *testing.T) {
	cfg := smallConfig()
	cfg.Population = 10
	cfg.Elite = 3
	e := newEngine(t, cfg)
	e.Initialize()
	if _, err := e.Evolve(2); err != nil {
		t.Fatal(err)
	}
	// 10 initial, then 7 open slots filled in pairs: 8 evaluations per generation.
	want := int64((10 + 8 + 8) * sim.RacesPerEvaluation)
	if got := e.RacesSimulated(); got != want {
		t.Errorf("races simulated %d, want %d", got, want)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() FinalReport {
		r, err := newEngine(t, smallConfig()).Run(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		return r
	}
	a, b := run(), run()
	if a.BestFitness != b.BestFitness || a.BestCompact != b.BestCompact {
		t.Fatalf("runs diverged: %.4f %s vs %.4f %s", a.BestFitness, a.BestCompact, b.BestFitness, b.BestCompact)
	}
	for i := range a.History {
		if a.History[i] != b.History[i] {
			t.Fatalf("history diverged at generation %d", i)
		}
	}
}

func TestRandomSeedResolved(t *testing.T) {
	cfg := smallConfig()
	cfg.Seed = 0
	if newEngine(t, cfg).Seed() == 0 {
		t.Error("seed 0 should resolve to a random seed")
	}
}

func TestDecide(t *testing.T) {
	e := newEngine(t, smallConfig())
	if got := e.Decide(nil, race.State{}); got != race.DefaultDecision() {
		t.Errorf("nil tree decided %v, want default", got)
	}

	results := e.TestScenarios(nil)
	if len(results) != 5 {
		t.Fatalf("got %d scenario results, want 5", len(results))
	}
	for _, r := range results {
		if r.Decision != race.DefaultDecision() {
			t.Errorf("%s: %v", r.Description, r.Decision)
		}
	}
}

func TestRunReport(t *testing.T) {
	cfg := smallConfig()
	r, err := newEngine(t, cfg).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(r.History) != cfg.Generations {
		t.Errorf("history length %d, want %d", len(r.History), cfg.Generations)
	}
	if r.BestCompact == "" || r.BestTree == "" {
		t.Error("missing best tree rendering")
	}
	if r.RunID != "" {
		t.Errorf("run saved without a db path: %s", r.RunID)
	}

	var buf bytes.Buffer
	WriteTextFinal(&buf, r)
	out := buf.String()
	for _, want := range []string{"BEST EVOLVED STRATEGY", "Average race time", "SCENARIOS", "FITNESS EVOLUTION", "Total improvement"} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q", want)
		}
	}

	buf.Reset()
	if err := WriteJSONFinal(&buf, r); err != nil {
		t.Fatal(err)
	}
	var decoded FinalReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json report does not decode: %v", err)
	}
	if decoded.BestFitness != r.BestFitness || len(decoded.Scenarios) != 5 {
		t.Errorf("decoded report mismatch: %+v", decoded)
	}
}

func TestNoTreeHidesTree(t *testing.T) {
	r := FinalReport{BestTree: "? tyre_age > 25", Config: Config{NoTree: true}}
	var buf bytes.Buffer
	WriteTextFinal(&buf, r)
	if strings.Contains(buf.String(), "tyre_age") {
		t.Error("tree printed despite NoTree")
	}
	if !strings.Contains(buf.String(), "hidden") {
		t.Error("missing hidden-tree notice")
	}
}

func TestRunSavesToStore(t *testing.T) {
	ctx := context.Background()
	cfg := smallConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "runs.db")

	r, err := newEngine(t, cfg).Run(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if r.RunID == "" {
		t.Fatal("expected a run id")
	}

	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	got, ok, err := st.GetRun(ctx, r.RunID)
	if err != nil || !ok {
		t.Fatalf("GetRun: ok=%v err=%v", ok, err)
	}
	if got.Seed != 42 || got.Generations != cfg.Generations || got.BestFitness != r.BestFitness {
		t.Errorf("stored run mismatch: %+v", got)
	}
	if len(got.History) != cfg.Generations {
		t.Errorf("stored history length %d, want %d", len(got.History), cfg.Generations)
	}

	var buf bytes.Buffer
	runs, err := st.ListRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	WriteRuns(&buf, runs, time.Now())
	if !strings.Contains(buf.String(), r.RunID) {
		t.Errorf("run listing missing %s:\n%s", r.RunID, buf.String())
	}
}

func TestMilestones(t *testing.T) {
	history := make([]float64, 100)
	for i := range history {
		history[i] = 5000 - float64(i)
	}
	var gens []int
	for _, m := range Milestones(history) {
		gens = append(gens, m.Generation)
	}
	want := []int{0, 25, 50, 75, 99}
	if len(gens) != len(want) {
		t.Fatalf("milestones %v, want %v", gens, want)
	}
	for i := range want {
		if gens[i] != want[i] {
			t.Fatalf("milestones %v, want %v", gens, want)
		}
	}

	if got := Milestones([]float64{4800}); len(got) != 1 || got[0].Generation != 0 {
		t.Errorf("single-generation milestones %v", got)
	}
	if Milestones(nil) != nil {
		t.Error("empty history should give no milestones")
	}

	sec, pct := Improvement(history)
	if sec != 99 {
		t.Errorf("improvement %.2fs, want 99", sec)
	}
	if pct < 1.97 || pct > 1.99 {
		t.Errorf("improvement %.4f%%, want about 1.98", pct)
	}
}

func TestHillClimbStrategy(t *testing.T) {
	cfg := smallConfig()
	cfg.Strategy = "hillclimb"
	e := newEngine(t, cfg)
	e.Initialize()

	before := e.Population()
	strategy.SortByFitness(before)
	if _, err := e.Evolve(3); err != nil {
		t.Fatal(err)
	}
	after := e.Population()
	if len(after) != cfg.Population {
		t.Fatalf("population %d, want %d", len(after), cfg.Population)
	}
	if best, _ := e.Best(); best.Fitness > before[0].Fitness {
		t.Errorf("hill climbing lost its best: %.2f > %.2f", best.Fitness, before[0].Fitness)
	}
}
