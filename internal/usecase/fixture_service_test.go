package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ufaleague/league-api/internal/domain/fixture"
	"github.com/ufaleague/league-api/internal/domain/holiday"
	"github.com/ufaleague/league-api/internal/domain/schedule"
)

func TestFixtureCreateAndGet(t *testing.T) {
	deps := newTestDeps(nil, nil)
	svc := deps.fixtureService()

	created, err := svc.Create(context.Background(), CreateFixtureInput{
		SeasonID:   testSeasonID,
		HomeTeamID: "team-a",
		AwayTeamID: "team-b",
		Date:       day("2026-01-06"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.HomeTeamName != "Anchors" || created.AwayTeamName != "Bulls" {
		t.Fatalf("team names not resolved: %+v", created)
	}
	if created.Venue != testCfg.DefaultVenue {
		t.Fatalf("venue = %q", created.Venue)
	}
	if !created.KickoffAt.Equal(kickoff("2026-01-06")) {
		t.Fatalf("kickoff = %v", created.KickoffAt)
	}

	got, err := svc.GetBySeason(context.Background(), testSeasonID, created.ID)
	if err != nil {
		t.Fatalf("GetBySeason: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("got %+v", got)
	}
}

func TestFixtureCreateValidations(t *testing.T) {
	deps := newTestDeps(nil, nil)
	svc := deps.fixtureService()

	cases := map[string]CreateFixtureInput{
		"same team twice": {
			SeasonID: testSeasonID, HomeTeamID: "team-a", AwayTeamID: "team-a", Date: day("2026-01-06"),
		},
		"outside season window": {
			SeasonID: testSeasonID, HomeTeamID: "team-a", AwayTeamID: "team-b", Date: day("2026-06-02"),
		},
		"missing date": {
			SeasonID: testSeasonID, HomeTeamID: "team-a", AwayTeamID: "team-b",
		},
	}
	for name, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}

	unknownTeam := CreateFixtureInput{
		SeasonID: testSeasonID, HomeTeamID: "team-x", AwayTeamID: "team-b", Date: day("2026-01-06"),
	}
	if _, err := svc.Create(context.Background(), unknownTeam); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown team: expected ErrNotFound, got %v", err)
	}
}

func TestRecordResultCompletesFixture(t *testing.T) {
	deps := newTestDeps(cascadeTestFixtures(), nil)
	svc := deps.fixtureService()

	updated, err := svc.RecordResult(context.Background(), testSeasonID, "fx-1", 3, 1)
	if err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	if updated.Status != fixture.StatusComplete {
		t.Fatalf("status = %q", updated.Status)
	}
	if updated.HomeScore == nil || *updated.HomeScore != 3 || updated.AwayScore == nil || *updated.AwayScore != 1 {
		t.Fatalf("scores = %v %v", updated.HomeScore, updated.AwayScore)
	}

	if _, err := svc.RecordResult(context.Background(), testSeasonID, "fx-2", -1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative score: expected ErrInvalidInput, got %v", err)
	}
}

func TestFixtureUpdateFields(t *testing.T) {
	deps := newTestDeps(cascadeTestFixtures(), nil)
	svc := deps.fixtureService()

	away := "team-e"
	date := day("2026-02-24")
	venue := "North Ground"
	matchweek := 5
	updated, err := svc.Update(context.Background(), UpdateFixtureInput{
		SeasonID:   testSeasonID,
		FixtureID:  "fx-4",
		AwayTeamID: &away,
		Date:       &date,
		Venue:      &venue,
		Matchweek:  &matchweek,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.AwayTeamID != "team-e" || updated.AwayTeamName != "Eagles" {
		t.Fatalf("away team not resolved: %+v", updated)
	}
	if updated.HomeTeamID != "team-c" {
		t.Fatalf("home team changed unexpectedly: %+v", updated)
	}
	if !updated.KickoffAt.Equal(kickoff("2026-02-24")) {
		t.Fatalf("kickoff = %v", updated.KickoffAt)
	}
	if updated.Venue != "North Ground" || updated.Matchweek != 5 {
		t.Fatalf("venue/matchweek = %q %d", updated.Venue, updated.Matchweek)
	}
}

func TestFixtureUpdateValidations(t *testing.T) {
	deps := newTestDeps(cascadeTestFixtures(), nil)
	svc := deps.fixtureService()

	// fx-4 is Comets v Drifters; pointing away at the home side is rejected.
	sameTeam := "team-c"
	if _, err := svc.Update(context.Background(), UpdateFixtureInput{
		SeasonID: testSeasonID, FixtureID: "fx-4", AwayTeamID: &sameTeam,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("same team twice: expected ErrInvalidInput, got %v", err)
	}

	outside := day("2026-06-02")
	if _, err := svc.Update(context.Background(), UpdateFixtureInput{
		SeasonID: testSeasonID, FixtureID: "fx-4", Date: &outside,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("outside season: expected ErrInvalidInput, got %v", err)
	}

	unknown := "team-x"
	if _, err := svc.Update(context.Background(), UpdateFixtureInput{
		SeasonID: testSeasonID, FixtureID: "fx-4", HomeTeamID: &unknown,
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown team: expected ErrNotFound, got %v", err)
	}

	blank := "   "
	if _, err := svc.Update(context.Background(), UpdateFixtureInput{
		SeasonID: testSeasonID, FixtureID: "fx-4", Venue: &blank,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank venue: expected ErrInvalidInput, got %v", err)
	}
}

func TestFixtureUpdateCompletedRejected(t *testing.T) {
	fixtures := cascadeTestFixtures()
	fixtures[3].Status = fixture.StatusComplete
	deps := newTestDeps(fixtures, nil)
	svc := deps.fixtureService()

	matchweek := 4
	if _, err := svc.Update(context.Background(), UpdateFixtureInput{
		SeasonID: testSeasonID, FixtureID: "fx-4", Matchweek: &matchweek,
	}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestFixtureMove(t *testing.T) {
	deps := newTestDeps(cascadeTestFixtures(), nil)
	svc := deps.fixtureService()

	// fx-4 (Comets v Drifters) on Jan 16; Feb 24 is clear for both teams.
	moved, err := svc.Move(context.Background(), testSeasonID, "fx-4", day("2026-02-24"))
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if !moved.KickoffAt.Equal(kickoff("2026-02-24")) {
		t.Fatalf("kickoff = %v", moved.KickoffAt)
	}

	// Moving onto a teammate-occupied date is a conflict: fx-2 (Anchors v
	// Comets) sits on Jan 9, so Drifters' opponent Comets is taken.
	if _, err := svc.Move(context.Background(), testSeasonID, "fx-4", day("2026-01-09")); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Moving to the current date is a no-op.
	same, err := svc.Move(context.Background(), testSeasonID, "fx-4", day("2026-02-24"))
	if err != nil {
		t.Fatalf("Move to current date: %v", err)
	}
	if !same.KickoffAt.Equal(kickoff("2026-02-24")) {
		t.Fatalf("kickoff = %v", same.KickoffAt)
	}
}

func TestFixtureMoveCompletedRejected(t *testing.T) {
	fixtures := cascadeTestFixtures()
	fixtures[3].Status = fixture.StatusComplete
	deps := newTestDeps(fixtures, nil)
	svc := deps.fixtureService()

	if _, err := svc.Move(context.Background(), testSeasonID, "fx-4", day("2026-02-24")); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestMoveCandidates(t *testing.T) {
	deps := newTestDeps(cascadeTestFixtures(), []holiday.Range{
		{
			ID: "hol-1", SeasonID: testSeasonID, Name: "Festival",
			StartDate: day("2026-02-17"), EndDate: day("2026-02-17"),
		},
	})
	svc := deps.fixtureService()

	candidates, err := svc.MoveCandidates(context.Background(), testSeasonID, "fx-4")
	if err != nil {
		t.Fatalf("MoveCandidates: %v", err)
	}

	byDate := make(map[schedule.Date]schedule.MoveValidity, len(candidates))
	for _, c := range candidates {
		byDate[c.Date] = c.Validity
	}
	if byDate[schedule.MustParseDate("2026-01-16")] != schedule.MoveCurrent {
		t.Fatal("present date must be current")
	}
	if byDate[schedule.MustParseDate("2026-02-17")] != schedule.MoveInvalid {
		t.Fatal("holiday must be invalid")
	}
	if byDate[schedule.MustParseDate("2026-01-14")] != schedule.MoveInvalid {
		t.Fatal("midweek date must be invalid")
	}
	if byDate[schedule.MustParseDate("2026-02-24")] != schedule.MoveValid {
		t.Fatal("clear game day must be valid")
	}
}

func TestFixtureDelete(t *testing.T) {
	deps := newTestDeps(cascadeTestFixtures(), nil)
	svc := deps.fixtureService()

	if err := svc.Delete(context.Background(), testSeasonID, "fx-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetBySeason(context.Background(), testSeasonID, "fx-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), testSeasonID, "fx-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete: expected ErrNotFound, got %v", err)
	}
}
