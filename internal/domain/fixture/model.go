package fixture

import (
	"fmt"
	"time"
)

const (
	StatusScheduled = "scheduled"
	StatusComplete  = "complete"
)

// Fixture is one scheduled match. KickoffAt is an offset-aware instant; all
// scheduling logic reasons about its civil date in the league's zone.
type Fixture struct {
	ID           string
	SeasonID     string
	HomeTeamID   string
	AwayTeamID   string
	HomeTeamName string
	AwayTeamName string
	KickoffAt    time.Time
	Venue        string
	Matchweek    int
	Status       string
	HomeScore    *int
	AwayScore    *int
}

func ValidStatus(status string) bool {
	return status == StatusScheduled || status == StatusComplete
}

func (f Fixture) Validate() error {
	if f.SeasonID == "" {
		return fmt.Errorf("fixture season id is required")
	}
	if f.HomeTeamID == "" || f.AwayTeamID == "" {
		return fmt.Errorf("fixture requires both teams")
	}
	if f.HomeTeamID == f.AwayTeamID {
		return fmt.Errorf("fixture home and away teams must differ")
	}
	if f.KickoffAt.IsZero() {
		return fmt.Errorf("fixture kickoff is required")
	}
	if f.Matchweek < 1 {
		return fmt.Errorf("fixture matchweek must be >= 1")
	}
	if !ValidStatus(f.Status) {
		return fmt.Errorf("unknown fixture status %q", f.Status)
	}

	return nil
}

// KickoffUpdate moves one fixture to a new kickoff instant.
type KickoffUpdate struct {
	FixtureID string
	KickoffAt time.Time
}
