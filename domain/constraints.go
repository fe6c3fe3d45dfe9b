package domain

import "fmt"

// Constraints are the per-request hard limits plus the comfort/exploration
// slider. Budget and time limit are hard ceilings; the slider only shifts
// ranking, never excludes.
type Constraints struct {
	Budget               float64 `json:"budget"`
	TimeLimit            float64 `json:"time_limit"`
	ComfortVsExploration float64 `json:"comfort_vs_exploration"`
}

// Validate rejects constraint sets the engine cannot score. A zero budget
// or time limit would divide by zero downstream, so it is refused here
// before any filtering or scoring starts.
func (c Constraints) Validate() error {
	if c.Budget <= 0 {
		return fmt.Errorf("budget must be greater than 0, got %v", c.Budget)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("time_limit must be greater than 0, got %v", c.TimeLimit)
	}
	if c.ComfortVsExploration < 0 || c.ComfortVsExploration > 1 {
		return fmt.Errorf("comfort_vs_exploration must be in [0,1], got %v", c.ComfortVsExploration)
	}
	return nil
}
