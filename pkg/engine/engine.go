package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/wildfunctions/genetic_strategy/pkg/logx"
	"github.com/wildfunctions/genetic_strategy/pkg/pool"
	"github.com/wildfunctions/genetic_strategy/pkg/race"
	"github.com/wildfunctions/genetic_strategy/pkg/sim"
	"github.com/wildfunctions/genetic_strategy/pkg/store"
	"github.com/wildfunctions/genetic_strategy/pkg/strategy"
	"github.com/wildfunctions/genetic_strategy/pkg/tree"
)

// ErrNotInitialized is returned by Evolve before Initialize has run.
var ErrNotInitialized = errors.New("population not initialized")

type phase int

const (
	uninitialized phase = iota
	populated
	evolving
	terminated
)

// progressEvery is how often, in generations, progress is logged outside verbose mode.
const progressEvery = 10

// Engine runs the evolutionary search. It owns the single random stream:
// race sampling, tree generation and every operator draw from it in a fixed
// order, so a seed replays a run exactly.
type Engine struct {
	cfg      Config
	seed     int64
	pool     pool.Pool
	strategy strategy.Strategy
	sim      *sim.Simulator
	rng      *rand.Rand
	log      *logx.Logger

	phase      phase
	population []strategy.Individual
	history    []float64
	races      int64
}

// New validates cfg and creates an engine. The seed is applied here, once.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	p, err := pool.Get(cfg.Pool)
	if err != nil {
		return nil, err
	}
	s, err := strategy.Get(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	w := cfg.Log
	if w == nil {
		w = os.Stderr
	}

	return &Engine{
		cfg:      cfg,
		seed:     seed,
		pool:     p,
		strategy: s,
		sim:      sim.New(cfg.Laps),
		rng:      rand.New(rand.NewSource(seed)),
		log:      logx.New(w),
	}, nil
}

// Seed returns the seed in use, resolved if the config asked for a random one.
func (e *Engine) Seed() int64 { return e.seed }

// evaluate scores t as the mean of fresh simulated races.
func (e *Engine) evaluate(t tree.Node) float64 {
	e.races += sim.RacesPerEvaluation
	return e.sim.Fitness(t, e.rng)
}

// Initialize builds and scores the initial random population.
func (e *Engine) Initialize() {
	e.log.Logf("RUN ", "Creating initial population of %d strategies...", e.cfg.Population)
	e.population = e.strategy.Initialize(e.pool, e.rng, e.cfg.Population, e.cfg.params(), e.evaluate)
	e.history = nil
	e.phase = populated
}

// Evolve runs generations generations and returns the lowest-fitness
// individual of the final population. Elites are never re-scored, so the
// returned fitness may be a stale measurement. Calling Evolve again
// continues from the final population.
func (e *Engine) Evolve(generations int) (strategy.Individual, error) {
	if e.phase == uninitialized {
		return strategy.Individual{}, ErrNotInitialized
	}
	if generations < 0 {
		return strategy.Individual{}, fmt.Errorf("generations must not be negative, got %d", generations)
	}

	e.phase = evolving
	params := e.cfg.params()
	for gen := 0; gen < generations; gen++ {
		strategy.SortByFitness(e.population)
		best := e.population[0].Fitness
		e.history = append(e.history, best)

		if e.cfg.Verbose || gen%progressEvery == 0 {
			e.log.Progress(gen, best, topMean(e.population, 10))
		}

		e.population = e.strategy.Evolve(e.population, e.pool, e.rng, params, e.evaluate)
	}
	e.phase = terminated

	best, _ := e.Best()
	return best, nil
}

// topMean is the mean fitness of the first n entries of a sorted population.
func topMean(pop []strategy.Individual, n int) float64 {
	n = min(n, len(pop))
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, ind := range pop[:n] {
		sum += ind.Fitness
	}
	return sum / float64(n)
}

// Best returns the lowest-fitness individual of the current population.
func (e *Engine) Best() (strategy.Individual, bool) {
	i := strategy.Best(e.population)
	if i < 0 {
		return strategy.Individual{}, false
	}
	return e.population[i], true
}

// History returns the best fitness recorded at the start of each generation.
func (e *Engine) History() []float64 {
	return append([]float64(nil), e.history...)
}

// Population returns a copy of the current population slice. Trees are shared.
func (e *Engine) Population() []strategy.Individual {
	return append([]strategy.Individual(nil), e.population...)
}

// RacesSimulated counts every race run for fitness so far.
func (e *Engine) RacesSimulated() int64 { return e.races }

// Decide evaluates an arbitrary race state against t. The state is copied.
func (e *Engine) Decide(t tree.Node, s race.State) race.Decision {
	return tree.Decide(t, &s)
}

// Run initializes, evolves for the configured generations and builds the
// final report. When DBPath is set the run summary is stored there.
func (e *Engine) Run(ctx context.Context) (FinalReport, error) {
	start := time.Now()
	e.log.Logf("RUN ", "Starting strategy %s, pool %s, population %d, generations %d, laps %d, seed %d",
		e.cfg.Strategy, e.cfg.Pool, e.cfg.Population, e.cfg.Generations, e.cfg.Laps, e.seed)

	e.Initialize()
	best, err := e.Evolve(e.cfg.Generations)
	if err != nil {
		return FinalReport{}, err
	}
	e.log.Logf("RUN ", "%s", e.log.Success("Evolution complete"))

	report := FinalReport{
		Config:         e.cfg,
		Seed:           e.seed,
		BestFitness:    best.Fitness,
		BestCompact:    best.Tree.String(),
		BestTree:       tree.Format(best.Tree),
		History:        e.History(),
		Scenarios:      e.TestScenarios(best.Tree),
		RacesSimulated: e.races,
		Elapsed:        time.Since(start),
	}

	if e.cfg.DBPath != "" {
		id, err := e.save(ctx, report)
		if err != nil {
			return report, fmt.Errorf("save run: %w", err)
		}
		report.RunID = id
		e.log.Logf("DB  ", "Saved run %s to %s", id, e.cfg.DBPath)
	}
	return report, nil
}

func (e *Engine) save(ctx context.Context, r FinalReport) (string, error) {
	cfgJSON, err := json.Marshal(r.Config)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	st, err := store.Open(ctx, e.cfg.DBPath)
	if err != nil {
		return "", err
	}
	defer st.Close()

	return st.SaveRun(ctx, store.Run{
		Seed:           r.Seed,
		Strategy:       r.Config.Strategy,
		Pool:           r.Config.Pool,
		Config:         string(cfgJSON),
		Generations:    len(r.History),
		RacesSimulated: r.RacesSimulated,
		BestFitness:    r.BestFitness,
		BestCompact:    r.BestCompact,
		BestTree:       r.BestTree,
		History:        r.History,
	})
}
