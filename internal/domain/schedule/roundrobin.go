package schedule

import (
	"fmt"
	"slices"
)

// Pair is a single pairing inside a round, identified by team IDs.
type Pair struct {
	HomeTeamID string
	AwayTeamID string
}

// Round is the set of pairings played on one slot. With an odd team count one
// team sits out each round.
type Round []Pair

// byeID marks the phantom opponent inserted for odd team counts. Pairings
// against it are dropped from the round.
const byeID = ""

// fiveTeamRounds is the league's historical first-half pattern for exactly
// five teams, indexed by draft order. It is kept verbatim so regenerating a
// five-team season reproduces the published fixture list.
var fiveTeamRounds = [5][2][2]int{
	{{0, 1}, {2, 3}},
	{{4, 0}, {1, 2}},
	{{1, 3}, {2, 4}},
	{{0, 2}, {3, 4}},
	{{0, 3}, {1, 4}},
}

// GenerateRounds produces a double round-robin: a first half where every team
// meets every other once, then the same rounds mirrored with home and away
// swapped. teamIDs must already be in draft order.
func GenerateRounds(teamIDs []string) ([]Round, error) {
	if len(teamIDs) < 2 {
		return nil, fmt.Errorf("round robin needs at least 2 teams, got %d", len(teamIDs))
	}

	var firstHalf []Round
	if len(teamIDs) == 5 {
		firstHalf = fiveTeamFirstHalf(teamIDs)
	} else {
		firstHalf = circleFirstHalf(teamIDs)
	}

	rounds := slices.Clone(firstHalf)
	for _, round := range firstHalf {
		mirrored := make(Round, len(round))
		for i, p := range round {
			mirrored[i] = Pair{HomeTeamID: p.AwayTeamID, AwayTeamID: p.HomeTeamID}
		}
		rounds = append(rounds, mirrored)
	}
	return rounds, nil
}

func fiveTeamFirstHalf(teamIDs []string) []Round {
	rounds := make([]Round, 0, len(fiveTeamRounds))
	for _, pattern := range fiveTeamRounds {
		round := make(Round, 0, len(pattern))
		for _, pairing := range pattern {
			round = append(round, Pair{
				HomeTeamID: teamIDs[pairing[0]],
				AwayTeamID: teamIDs[pairing[1]],
			})
		}
		rounds = append(rounds, round)
	}
	return rounds
}

// circleFirstHalf is the standard circle method: pin the first entry, rotate
// the rest one step per round, and pair opposite positions.
func circleFirstHalf(teamIDs []string) []Round {
	working := slices.Clone(teamIDs)
	if len(working)%2 == 1 {
		working = append(working, byeID)
	}
	n := len(working)

	rounds := make([]Round, 0, n-1)
	for r := 0; r < n-1; r++ {
		round := make(Round, 0, n/2)
		for i := 0; i < n/2; i++ {
			home, away := working[i], working[n-1-i]
			if home == byeID || away == byeID {
				continue
			}
			round = append(round, Pair{HomeTeamID: home, AwayTeamID: away})
		}
		rounds = append(rounds, round)

		last := working[n-1]
		copy(working[2:], working[1:n-1])
		working[1] = last
	}
	return rounds
}
