package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ufaleague/league-api/internal/domain/fixture"
	"github.com/ufaleague/league-api/internal/domain/holiday"
)

func TestSeasonSummary(t *testing.T) {
	fixtures := cascadeTestFixtures()
	fixtures[0].Status = fixture.StatusComplete
	deps := newTestDeps(fixtures, []holiday.Range{
		{
			ID: "hol-1", SeasonID: testSeasonID, Name: "Festival",
			StartDate: day("2026-02-17"), EndDate: day("2026-02-17"),
		},
	})
	svc := NewSummaryService(deps.seasonRepo, deps.teamRepo, deps.fixtureRepo, deps.holidayRepo)

	summary, err := svc.Get(context.Background(), testSeasonID)
	require.NoError(t, err)

	require.Equal(t, testSeasonID, summary.Season.ID)
	require.Len(t, summary.Teams, 5)
	require.Equal(t, "team-a", summary.Teams[0].ID, "teams must come back in draft order")
	require.Len(t, summary.Holidays, 1)
	require.Equal(t, 4, summary.FixtureCount)
	require.Equal(t, 1, summary.CompletedFixtures)
	require.Equal(t, 3, summary.RemainingFixtures)

	require.NotNil(t, summary.NextFixture)
	require.Equal(t, "fx-2", summary.NextFixture.ID, "earliest scheduled fixture")
	require.NotNil(t, summary.LastCompleted)
	require.Equal(t, "fx-1", summary.LastCompleted.ID)
}

func TestSeasonSummaryUnknownSeason(t *testing.T) {
	deps := newTestDeps(nil, nil)
	svc := NewSummaryService(deps.seasonRepo, deps.teamRepo, deps.fixtureRepo, deps.holidayRepo)

	_, err := svc.Get(context.Background(), "season-unknown")
	require.ErrorIs(t, err, ErrNotFound)
}
