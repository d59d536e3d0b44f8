package team

import "fmt"

// Team is one side in a season. DraftPosition is the admin-assigned rank used
// only to seed the round-robin pairing order; nil until the draft is held.
type Team struct {
	ID            string
	SeasonID      string
	Name          string
	DraftPosition *int
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.SeasonID == "" {
		return fmt.Errorf("team season id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.DraftPosition != nil && *t.DraftPosition < 1 {
		return fmt.Errorf("team draft position must be >= 1")
	}

	return nil
}
