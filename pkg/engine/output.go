package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/wildfunctions/genetic_strategy/pkg/store"
)

// FinalReport summarizes the entire run.
type FinalReport struct {
	RunID          string           `json:"run_id,omitempty"`
	Config         Config           `json:"config"`
	Seed           int64            `json:"seed"`
	BestFitness    float64          `json:"best_fitness"`
	BestCompact    string           `json:"best_compact"`
	BestTree       string           `json:"best_tree"`
	History        []float64        `json:"history"`
	Scenarios      []ScenarioResult `json:"scenarios"`
	RacesSimulated int64            `json:"races_simulated"`
	Elapsed        time.Duration    `json:"elapsed_ns"`
}

// Milestone is the best fitness recorded at one generation.
type Milestone struct {
	Generation int
	Fitness    float64
}

// Milestones picks generations 0, 25, 50 and 75 when present, plus the last.
func Milestones(history []float64) []Milestone {
	if len(history) == 0 {
		return nil
	}
	var ms []Milestone
	for _, g := range []int{0, 25, 50, 75} {
		if g < len(history)-1 {
			ms = append(ms, Milestone{g, history[g]})
		}
	}
	last := len(history) - 1
	return append(ms, Milestone{last, history[last]})
}

// Improvement returns how many seconds the best fitness dropped over the
// history, and that drop as a percentage of the first value.
func Improvement(history []float64) (seconds, percent float64) {
	if len(history) == 0 {
		return 0, 0
	}
	seconds = history[0] - history[len(history)-1]
	if history[0] != 0 {
		percent = seconds / history[0] * 100
	}
	return seconds, percent
}

const rule = "======================================================================"

// WriteHeader writes the banner shown before a text run.
func WriteHeader(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "               FORMULA 1 STRATEGY EVOLUTION")
	fmt.Fprintln(w, "          Genetic Programming for Race Strategy")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
}

// WriteTextFinal writes the final report in human-readable format.
func WriteTextFinal(w io.Writer, r FinalReport) {
	section(w, "BEST EVOLVED STRATEGY:")
	fmt.Fprintln(w)
	if r.Config.NoTree {
		fmt.Fprintln(w, "(Tree visualization hidden for brevity)")
	} else {
		fmt.Fprintln(w, r.BestTree)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Average race time: %.2f seconds\n", r.BestFitness)
	fmt.Fprintf(w, "Strategy:  %s\n", r.Config.Strategy)
	fmt.Fprintf(w, "Pool:      %s\n", r.Config.Pool)
	fmt.Fprintf(w, "Seed:      %d\n", r.Seed)
	fmt.Fprintf(w, "Races:     %s simulated in %s\n", humanize.Comma(r.RacesSimulated), r.Elapsed.Round(time.Millisecond))
	if r.RunID != "" {
		fmt.Fprintf(w, "Run ID:    %s\n", r.RunID)
	}

	WriteScenarios(w, r.Scenarios)
	WriteFitnessHistory(w, r.History)
}

// WriteScenarios writes each scenario with the decision taken for it.
func WriteScenarios(w io.Writer, results []ScenarioResult) {
	section(w, "TESTING STRATEGY IN DIFFERENT SCENARIOS:")
	for _, res := range results {
		s := res.State
		fmt.Fprintf(w, "\n%s\n", res.Description)
		fmt.Fprintf(w, "   Lap: %d | Position: %d | Tyre age: %d | Wetness: %.1f\n",
			s.CurrentLap, s.Position, s.TyreAge, s.TrackWetness)
		fmt.Fprintf(w, "   Current: %s\n", s.TyreCompound)
		fmt.Fprintf(w, "   -> DECISION: %s\n", res.Decision)
	}
}

// WriteFitnessHistory writes fitness milestones and the total improvement.
func WriteFitnessHistory(w io.Writer, history []float64) {
	if len(history) == 0 {
		return
	}
	section(w, "FITNESS EVOLUTION:")
	for _, m := range Milestones(history) {
		fmt.Fprintf(w, "Generation %3d: %.2fs\n", m.Generation, m.Fitness)
	}
	sec, pct := Improvement(history)
	fmt.Fprintf(w, "\nTotal improvement: %.2fs (%.2f%%)\n", sec, pct)
}

// WriteJSONFinal writes the final report as JSON.
func WriteJSONFinal(w io.Writer, r FinalReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteRuns lists stored runs, newest first, with times relative to now.
func WriteRuns(w io.Writer, runs []store.Run, now time.Time) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No stored runs.")
		return
	}
	fmt.Fprintf(w, "%-36s  %-16s  %-10s  %-5s  %6s  %12s  %9s\n",
		"RUN", "WHEN", "STRATEGY", "POOL", "GENS", "RACES", "BEST")
	fmt.Fprintln(w, strings.Repeat("-", 106))
	for _, r := range runs {
		fmt.Fprintf(w, "%-36s  %-16s  %-10s  %-5s  %6d  %12s  %8.2fs\n",
			r.ID, humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
			r.Strategy, r.Pool, r.Generations, humanize.Comma(r.RacesSimulated), r.BestFitness)
	}
}
