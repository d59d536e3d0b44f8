package schedule

import (
	"fmt"
	"testing"
)

func TestGenerateRoundsCoverage(t *testing.T) {
	for n := 2; n <= 12; n++ {
		t.Run(fmt.Sprintf("teams=%d", n), func(t *testing.T) {
			teamIDs := make([]string, n)
			for i := range teamIDs {
				teamIDs[i] = fmt.Sprintf("team-%d", i)
			}

			rounds, err := GenerateRounds(teamIDs)
			if err != nil {
				t.Fatalf("GenerateRounds: %v", err)
			}

			seen := make(map[Pair]int)
			total := 0
			for _, round := range rounds {
				for _, p := range round {
					seen[p]++
					total++
				}
			}
			if want := n * (n - 1); total != want {
				t.Fatalf("total pairings = %d, want %d", total, want)
			}
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if i == j {
						continue
					}
					p := Pair{HomeTeamID: teamIDs[i], AwayTeamID: teamIDs[j]}
					if seen[p] != 1 {
						t.Fatalf("pairing %v appears %d times, want exactly once", p, seen[p])
					}
				}
			}
		})
	}
}

func TestGenerateRoundsNoTeamTwicePerRound(t *testing.T) {
	for n := 2; n <= 12; n++ {
		teamIDs := make([]string, n)
		for i := range teamIDs {
			teamIDs[i] = fmt.Sprintf("team-%d", i)
		}
		rounds, err := GenerateRounds(teamIDs)
		if err != nil {
			t.Fatalf("GenerateRounds(%d): %v", n, err)
		}
		for r, round := range rounds {
			used := make(map[string]bool)
			for _, p := range round {
				if used[p.HomeTeamID] || used[p.AwayTeamID] {
					t.Fatalf("n=%d round %d schedules a team twice: %v", n, r, round)
				}
				used[p.HomeTeamID] = true
				used[p.AwayTeamID] = true
			}
		}
	}
}

func TestGenerateRoundsFiveTeamTable(t *testing.T) {
	rounds, err := GenerateRounds([]string{"A", "B", "C", "D", "E"})
	if err != nil {
		t.Fatalf("GenerateRounds: %v", err)
	}
	if len(rounds) != 10 {
		t.Fatalf("expected 10 rounds, got %d", len(rounds))
	}

	firstHalf := []Round{
		{{"A", "B"}, {"C", "D"}},
		{{"E", "A"}, {"B", "C"}},
		{{"B", "D"}, {"C", "E"}},
		{{"A", "C"}, {"D", "E"}},
		{{"A", "D"}, {"B", "E"}},
	}
	for r, want := range firstHalf {
		if len(rounds[r]) != len(want) {
			t.Fatalf("round %d: %v", r+1, rounds[r])
		}
		for i, p := range want {
			if rounds[r][i] != p {
				t.Fatalf("round %d pairing %d = %v, want %v", r+1, i, rounds[r][i], p)
			}
		}
	}

	// Second half mirrors the first with home and away swapped.
	for r := 0; r < 5; r++ {
		for i, p := range rounds[r] {
			mirrored := rounds[r+5][i]
			if mirrored.HomeTeamID != p.AwayTeamID || mirrored.AwayTeamID != p.HomeTeamID {
				t.Fatalf("round %d not mirrored in round %d: %v vs %v", r+1, r+6, p, mirrored)
			}
		}
	}
}

func TestGenerateRoundsTooFewTeams(t *testing.T) {
	if _, err := GenerateRounds([]string{"A"}); err == nil {
		t.Fatal("expected error for a single team")
	}
	if _, err := GenerateRounds(nil); err == nil {
		t.Fatal("expected error for no teams")
	}
}
