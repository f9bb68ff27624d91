package race

import "fmt"

// Decision is the action a strategy emits for one lap.
type Decision struct {
	PitNow         bool     `json:"pit_now"`
	TargetCompound Compound `json:"target_compound"`
	AggressivePace bool     `json:"aggressive_pace"`
}

// DefaultDecision is returned when a strategy has no branch for a state.
func DefaultDecision() Decision {
	return Decision{PitNow: false, TargetCompound: Medium, AggressivePace: false}
}

func (d Decision) String() string {
	pit := "NO"
	if d.PitNow {
		pit = "YES"
	}
	pace := "Conservative"
	if d.AggressivePace {
		pace = "Aggressive"
	}
	return fmt.Sprintf("Pit: %s, Tyres: %s, Pace: %s", pit, d.TargetCompound, pace)
}
