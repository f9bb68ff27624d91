package engine

import (
	"fmt"
	"io"

	"github.com/wildfunctions/genetic_strategy/pkg/pool"
	"github.com/wildfunctions/genetic_strategy/pkg/strategy"
)

// Config holds all parameters for an evolutionary run.
type Config struct {
	Population   int     `json:"population"`
	Generations  int     `json:"generations"`
	Laps         int     `json:"laps"`
	Elite        int     `json:"elite"`
	Tournament   int     `json:"tournament"`
	MutationRate float64 `json:"mutation_rate"`
	MaxDepth     int     `json:"max_depth"`
	Pool         string  `json:"pool"`
	Strategy     string  `json:"strategy"`
	Seed         int64   `json:"seed"`
	Format       string  `json:"format"` // "text" or "json"
	Verbose      bool    `json:"verbose"`
	NoTree       bool    `json:"no_tree"`
	DBPath       string  `json:"db_path,omitempty"`

	// Log receives progress lines; nil means os.Stderr.
	Log io.Writer `json:"-"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Population:   50,
		Generations:  100,
		Laps:         50,
		Elite:        5,
		Tournament:   3,
		MutationRate: 0.2,
		MaxDepth:     4,
		Pool:         "full",
		Strategy:     "tournament",
		Seed:         42, // 0 = random
		Format:       "text",
	}
}

// Validate reports the first invalid setting, before any evolutionary work.
func (c Config) Validate() error {
	switch {
	case c.Population <= 0:
		return fmt.Errorf("population must be positive, got %d", c.Population)
	case c.Elite < 0 || c.Elite > c.Population:
		return fmt.Errorf("elite size %d must be within [0, population %d]", c.Elite, c.Population)
	case c.Tournament < 1 || c.Tournament > c.Population:
		return fmt.Errorf("tournament size %d must be within [1, population %d]", c.Tournament, c.Population)
	case c.MutationRate < 0 || c.MutationRate > 1:
		return fmt.Errorf("mutation rate %v must be within [0, 1]", c.MutationRate)
	case c.Laps <= 0:
		return fmt.Errorf("laps must be positive, got %d", c.Laps)
	case c.Generations < 0:
		return fmt.Errorf("generations must not be negative, got %d", c.Generations)
	case c.MaxDepth < 1:
		return fmt.Errorf("max depth must be at least 1, got %d", c.MaxDepth)
	case c.Format != "text" && c.Format != "json":
		return fmt.Errorf("unknown output format: %s (available: text, json)", c.Format)
	}
	if _, err := pool.Get(c.Pool); err != nil {
		return err
	}
	if _, err := strategy.Get(c.Strategy); err != nil {
		return err
	}
	return nil
}

func (c Config) params() strategy.Params {
	return strategy.Params{
		MaxDepth:       c.MaxDepth,
		EliteSize:      c.Elite,
		TournamentSize: c.Tournament,
		MutationRate:   c.MutationRate,
	}
}
