package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ufaleague/league-api/internal/domain/fixture"
	"github.com/ufaleague/league-api/internal/domain/holiday"
)

func TestAuditCleanSchedule(t *testing.T) {
	deps := newTestDeps(nil, nil)
	if _, err := deps.scheduleService().AutoSchedule(context.Background(), testSeasonID); err != nil {
		t.Fatalf("AutoSchedule: %v", err)
	}
	svc := NewAuditService(deps.seasonRepo, deps.teamRepo, deps.fixtureRepo, deps.holidayRepo, testCfg)

	report, err := svc.Run(context.Background(), testSeasonID)
	require.NoError(t, err)
	require.True(t, report.Clean, "a freshly generated schedule must audit clean: %+v", report.Teams)
	require.Len(t, report.Teams, 5)
}

func TestAuditFlagsViolations(t *testing.T) {
	fixtures := []fixture.Fixture{
		{
			ID: "fx-1", SeasonID: testSeasonID,
			HomeTeamID: "team-a", AwayTeamID: "team-b",
			HomeTeamName: "Anchors", AwayTeamName: "Bulls",
			KickoffAt: kickoff("2026-01-06"), Matchweek: 1, Status: fixture.StatusScheduled,
		},
		// Back-to-back for Anchors: only three days after fx-1.
		{
			ID: "fx-2", SeasonID: testSeasonID,
			HomeTeamID: "team-a", AwayTeamID: "team-c",
			HomeTeamName: "Anchors", AwayTeamName: "Comets",
			KickoffAt: kickoff("2026-01-09"), Matchweek: 2, Status: fixture.StatusScheduled,
		},
		// On a holiday.
		{
			ID: "fx-3", SeasonID: testSeasonID,
			HomeTeamID: "team-d", AwayTeamID: "team-e",
			HomeTeamName: "Drifters", AwayTeamName: "Eagles",
			KickoffAt: kickoff("2026-02-17"), Matchweek: 3, Status: fixture.StatusScheduled,
		},
	}
	deps := newTestDeps(fixtures, []holiday.Range{
		{
			ID: "hol-1", SeasonID: testSeasonID, Name: "Festival",
			StartDate: day("2026-02-17"), EndDate: day("2026-02-17"),
		},
	})
	svc := NewAuditService(deps.seasonRepo, deps.teamRepo, deps.fixtureRepo, deps.holidayRepo, testCfg)

	report, err := svc.Run(context.Background(), testSeasonID)
	require.NoError(t, err)
	require.False(t, report.Clean)

	issuesByTeam := make(map[string][]string)
	for _, audit := range report.Teams {
		issuesByTeam[audit.TeamID] = audit.Issues
	}
	require.NotEmpty(t, issuesByTeam["team-a"], "rest violation expected for Anchors")
	require.NotEmpty(t, issuesByTeam["team-d"], "holiday placement expected for Drifters")
	require.Empty(t, issuesByTeam["team-b"], "Bulls have a single fixture and no placement issue")
}
