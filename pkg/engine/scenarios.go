package engine

import (
	"github.com/wildfunctions/genetic_strategy/pkg/race"
	"github.com/wildfunctions/genetic_strategy/pkg/tree"
)

// Scenario is a fixed race situation used to inspect an evolved strategy.
type Scenario struct {
	Description string     `json:"description"`
	State       race.State `json:"state"`
}

// ScenarioResult pairs a scenario with the decision a strategy made for it.
type ScenarioResult struct {
	Scenario
	Decision race.Decision `json:"decision"`
}

// Scenarios returns the built-in test situations.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Description: "Early race, good position, soft tyres",
			State: race.State{
				CurrentLap: 10, TyreAge: 5, TyreCompound: race.Soft, Position: 3,
				GapToLeader: 5, GapToRival: -2, RainProbability: 0.1,
			},
		},
		{
			Description: "Mid-race, safety car deployed",
			State: race.State{
				CurrentLap: 25, TyreAge: 18, TyreCompound: race.Medium, Position: 8,
				GapToLeader: 15, GapToRival: 1.5, SafetyCar: true, RainProbability: 0.2,
				PitStopsMade: 1,
			},
		},
		{
			Description: "Late race, rain approaching",
			State: race.State{
				CurrentLap: 45, TyreAge: 30, TyreCompound: race.Hard, Position: 5,
				GapToLeader: 8, GapToRival: -1, RainProbability: 0.7,
				PitStopsMade: 1, TrackWetness: 0.1,
			},
		},
		{
			Description: "Start, poor position",
			State: race.State{
				CurrentLap: 5, TyreAge: 3, TyreCompound: race.Soft, Position: 15,
				GapToLeader: 25, GapToRival: 3, RainProbability: 0.1,
			},
		},
		{
			Description: "Mid-race, track is wet",
			State: race.State{
				CurrentLap: 20, TyreAge: 15, TyreCompound: race.Medium, Position: 6,
				GapToLeader: 10, GapToRival: 0.5, RainProbability: 0.8,
				PitStopsMade: 1, TrackWetness: 0.6,
			},
		},
	}
}

// TestScenarios evaluates t against every built-in scenario.
func (e *Engine) TestScenarios(t tree.Node) []ScenarioResult {
	scenarios := Scenarios()
	results := make([]ScenarioResult, len(scenarios))
	for i, sc := range scenarios {
		results[i] = ScenarioResult{Scenario: sc, Decision: e.Decide(t, sc.State)}
	}
	return results
}
