package team

import "fmt"

// Team is a club as known to the prediction dropdowns, captured from the
// first standings table it appeared in.
type Team struct {
	ID             int64
	Name           string
	Points         int
	GoalDifference int
	Form           string
	Position       int
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
