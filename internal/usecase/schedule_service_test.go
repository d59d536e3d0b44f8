package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ufaleague/league-api/internal/domain/fixture"
	"github.com/ufaleague/league-api/internal/domain/holiday"
	"github.com/ufaleague/league-api/internal/domain/schedule"
	"github.com/ufaleague/league-api/internal/domain/season"
	"github.com/ufaleague/league-api/internal/infrastructure/repository/memory"
)

func TestAutoScheduleGeneratesFullSeason(t *testing.T) {
	leftover := fixture.Fixture{
		ID: "fx-old", SeasonID: testSeasonID,
		HomeTeamID: "team-a", AwayTeamID: "team-b",
		HomeTeamName: "Anchors", AwayTeamName: "Bulls",
		KickoffAt: kickoff("2026-01-06"), Venue: "Old Ground",
		Matchweek: 1, Status: fixture.StatusScheduled,
	}
	deps := newTestDeps([]fixture.Fixture{leftover}, nil)
	svc := deps.scheduleService()

	result, err := svc.AutoSchedule(context.Background(), testSeasonID)
	if err != nil {
		t.Fatalf("AutoSchedule: %v", err)
	}
	if result.FixtureCount != 20 {
		t.Fatalf("fixture count = %d, want 20", result.FixtureCount)
	}
	if result.Matchweeks != 10 {
		t.Fatalf("matchweeks = %d, want 10", result.Matchweeks)
	}

	fixtures, err := deps.fixtureRepo.ListBySeason(context.Background(), testSeasonID)
	if err != nil {
		t.Fatalf("ListBySeason: %v", err)
	}
	if len(fixtures) != 20 {
		t.Fatalf("stored fixtures = %d, want 20", len(fixtures))
	}
	for _, fx := range fixtures {
		if fx.ID == "fx-old" {
			t.Fatal("auto-schedule must replace the previous fixture set")
		}
		if fx.Status != fixture.StatusScheduled {
			t.Fatalf("fixture %s status %q", fx.ID, fx.Status)
		}
		if fx.Venue != testCfg.DefaultVenue {
			t.Fatalf("fixture %s venue %q", fx.ID, fx.Venue)
		}
		civil := testCfg.CivilDate(fx.KickoffAt)
		if !testCfg.IsGameWeekday(civil) {
			t.Fatalf("fixture %s on %v is not a game weekday", fx.ID, civil)
		}
		if fx.KickoffAt.Hour() != 20 || fx.KickoffAt.Minute() != 30 {
			t.Fatalf("fixture %s kickoff %v", fx.ID, fx.KickoffAt)
		}
	}

	// Matchweek dates sit two slots apart.
	dates := make(map[int]schedule.Date)
	for _, fx := range fixtures {
		civil := testCfg.CivilDate(fx.KickoffAt)
		if prev, ok := dates[fx.Matchweek]; ok && prev != civil {
			t.Fatalf("matchweek %d spans %v and %v", fx.Matchweek, prev, civil)
		}
		dates[fx.Matchweek] = civil
	}
	gameDays, err := svc.GameDays(context.Background(), testSeasonID)
	if err != nil {
		t.Fatalf("GameDays: %v", err)
	}
	for week, date := range dates {
		if gameDays[2*(week-1)] != date {
			t.Fatalf("matchweek %d on %v, want %v", week, date, gameDays[2*(week-1)])
		}
	}
}

func TestAutoScheduleInsufficientSlots(t *testing.T) {
	// A season ending in January has nowhere near the 19 slots ten rounds need.
	shortSeason := testSeason()
	shortSeason.EndDate = day("2026-01-31")

	existing := fixture.Fixture{
		ID: "fx-keep", SeasonID: testSeasonID,
		HomeTeamID: "team-a", AwayTeamID: "team-b",
		HomeTeamName: "Anchors", AwayTeamName: "Bulls",
		KickoffAt: kickoff("2026-01-06"),
		Matchweek: 1, Status: fixture.StatusScheduled,
	}
	deps := newTestDeps([]fixture.Fixture{existing}, nil)
	deps.seasonRepo = memory.NewSeasonRepository([]season.Season{shortSeason})
	svc := deps.scheduleService()

	_, err := svc.AutoSchedule(context.Background(), testSeasonID)
	var insufficient *schedule.InsufficientSlotsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientSlotsError, got %v", err)
	}
	if insufficient.Needed != 19 {
		t.Fatalf("needed = %d, want 19", insufficient.Needed)
	}

	fixtures, err := deps.fixtureRepo.ListBySeason(context.Background(), testSeasonID)
	if err != nil {
		t.Fatalf("ListBySeason: %v", err)
	}
	if len(fixtures) != 1 || fixtures[0].ID != "fx-keep" {
		t.Fatalf("failed auto-schedule must leave the old set untouched, got %v", fixtures)
	}
}

func TestAutoScheduleRequiresDraftPositions(t *testing.T) {
	deps := newTestDeps(nil, nil)
	teams := testTeams()
	teams[2].DraftPosition = nil
	deps.teamRepo = memory.NewTeamRepository(teams)
	svc := deps.scheduleService()

	_, err := svc.AutoSchedule(context.Background(), testSeasonID)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAutoScheduleRejectsDuplicateDraftPositions(t *testing.T) {
	deps := newTestDeps(nil, nil)
	teams := testTeams()
	teams[1].DraftPosition = draftPos(1)
	deps.teamRepo = memory.NewTeamRepository(teams)
	svc := deps.scheduleService()

	_, err := svc.AutoSchedule(context.Background(), testSeasonID)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAutoScheduleUnknownSeason(t *testing.T) {
	deps := newTestDeps(nil, nil)
	svc := deps.scheduleService()

	if _, err := svc.AutoSchedule(context.Background(), "season-unknown"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGameDaysRespectHolidays(t *testing.T) {
	deps := newTestDeps(nil, []holiday.Range{
		{
			ID: "hol-1", SeasonID: testSeasonID, Name: "Festival",
			StartDate: day("2026-01-09"), EndDate: day("2026-01-09"),
		},
	})
	svc := deps.scheduleService()

	gameDays, err := svc.GameDays(context.Background(), testSeasonID)
	if err != nil {
		t.Fatalf("GameDays: %v", err)
	}
	blocked := schedule.MustParseDate("2026-01-09")
	for _, d := range gameDays {
		if d == blocked {
			t.Fatal("holiday date must not be a game day")
		}
	}
	if gameDays[0] != schedule.MustParseDate("2026-01-02") {
		t.Fatalf("first game day = %v", gameDays[0])
	}
}
