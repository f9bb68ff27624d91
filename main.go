package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/wildfunctions/genetic_strategy/pkg/engine"
	"github.com/wildfunctions/genetic_strategy/pkg/pool"
	"github.com/wildfunctions/genetic_strategy/pkg/store"
	"github.com/wildfunctions/genetic_strategy/pkg/strategy"
)

func main() {
	cfg := engine.DefaultConfig()
	listRuns := false

	flag.IntVar(&cfg.Population, "population", cfg.Population, "population size")
	flag.IntVar(&cfg.Generations, "generations", cfg.Generations, "number of generations")
	flag.IntVar(&cfg.Laps, "laps", cfg.Laps, "race laps")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	flag.IntVar(&cfg.Elite, "elite", cfg.Elite, "elite individuals carried unchanged")
	flag.IntVar(&cfg.Tournament, "tournament", cfg.Tournament, "tournament size")
	flag.Float64Var(&cfg.MutationRate, "mutation", cfg.MutationRate, "per-node mutation rate")
	flag.IntVar(&cfg.MaxDepth, "maxdepth", cfg.MaxDepth, "max depth of random trees")
	flag.StringVar(&cfg.Pool, "pool", cfg.Pool, "gene pool ("+strings.Join(pool.Names(), ", ")+")")
	flag.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "evolution strategy ("+strings.Join(strategy.Names(), ", ")+")")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format (text, json)")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log progress every generation")
	flag.BoolVar(&cfg.NoTree, "no-tree", cfg.NoTree, "hide the decision tree in the text report")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite file to record finished runs in")
	flag.BoolVar(&listRuns, "runs", listRuns, "list runs stored in -db and exit")
	flag.Parse()

	ctx := context.Background()

	if listRuns {
		if err := printRuns(ctx, cfg.DBPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	e, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Format == "text" {
		engine.WriteHeader(os.Stdout)
	}

	report, err := e.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	switch cfg.Format {
	case "json":
		if err := engine.WriteJSONFinal(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "error writing JSON: %v\n", err)
			os.Exit(1)
		}
	default:
		engine.WriteTextFinal(os.Stdout, report)
	}
}

func printRuns(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("-runs needs -db")
	}
	st, err := store.Open(ctx, path)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns(ctx, 50)
	if err != nil {
		return err
	}
	engine.WriteRuns(os.Stdout, runs, time.Now())
	return nil
}
