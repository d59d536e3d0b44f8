package schedule

import "fmt"

// PlannedFixture is one auto-scheduled pairing placed on a calendar date.
type PlannedFixture struct {
	HomeTeamID string
	AwayTeamID string
	Date       Date
	Matchweek  int
}

// InsufficientSlotsError reports that the season window cannot host the full
// double round-robin at the every-other-slot spacing.
type InsufficientSlotsError struct {
	Needed int
	Found  int
}

func (e *InsufficientSlotsError) Error() string {
	return fmt.Sprintf("not enough game-day slots: need %d, found %d", e.Needed, e.Found)
}

// PlanSeason assigns round k to slot 2k, leaving one empty slot between
// consecutive matchweeks as postponement headroom. The last round needs no
// trailing spare, so 2*len(rounds)-1 slots suffice.
func PlanSeason(rounds []Round, gameDays []Date) ([]PlannedFixture, error) {
	if len(rounds) == 0 {
		return nil, nil
	}
	needed := 2*len(rounds) - 1
	if len(gameDays) < needed {
		return nil, &InsufficientSlotsError{Needed: needed, Found: len(gameDays)}
	}

	var planned []PlannedFixture
	for k, round := range rounds {
		date := gameDays[2*k]
		for _, p := range round {
			planned = append(planned, PlannedFixture{
				HomeTeamID: p.HomeTeamID,
				AwayTeamID: p.AwayTeamID,
				Date:       date,
				Matchweek:  k + 1,
			})
		}
	}
	return planned, nil
}
