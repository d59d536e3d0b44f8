package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ufaleague/league-api/internal/domain/fixture"
	"github.com/ufaleague/league-api/internal/domain/season"
)

func TestSeasonStatus(t *testing.T) {
	fixtures := cascadeTestFixtures()
	fixtures[0].Status = fixture.StatusComplete
	deps := newTestDeps(fixtures, nil)
	svc := NewSeasonService(deps.seasonRepo, deps.teamRepo, deps.fixtureRepo, testCfg)

	status, err := svc.Status(context.Background(), testSeasonID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.TeamCount != 5 {
		t.Fatalf("team count = %d", status.TeamCount)
	}
	if status.FixtureCount != 4 || status.CompletedFixtures != 1 {
		t.Fatalf("fixtures = %d completed = %d", status.FixtureCount, status.CompletedFixtures)
	}
	if status.CurrentMatchweek != 2 {
		t.Fatalf("current matchweek = %d, want 2", status.CurrentMatchweek)
	}
}

func TestSeasonUpdateEndDate(t *testing.T) {
	deps := newTestDeps(cascadeTestFixtures(), nil)
	svc := NewSeasonService(deps.seasonRepo, deps.teamRepo, deps.fixtureRepo, testCfg)

	updated, err := svc.UpdateEndDate(context.Background(), testSeasonID, day("2026-04-30"))
	if err != nil {
		t.Fatalf("UpdateEndDate: %v", err)
	}
	if !updated.EndDate.Equal(day("2026-04-30")) {
		t.Fatalf("end date = %v", updated.EndDate)
	}

	// Shortening below the last scheduled fixture (Jan 16) is a conflict.
	if _, err := svc.UpdateEndDate(context.Background(), testSeasonID, day("2026-01-14")); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// An end before the start is invalid outright.
	if _, err := svc.UpdateEndDate(context.Background(), testSeasonID, day("2025-12-01")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSeasonUpdateStatus(t *testing.T) {
	deps := newTestDeps(nil, nil)
	svc := NewSeasonService(deps.seasonRepo, deps.teamRepo, deps.fixtureRepo, testCfg)

	updated, err := svc.UpdateStatus(context.Background(), testSeasonID, season.StatusComplete)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != season.StatusComplete {
		t.Fatalf("status = %q", updated.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), testSeasonID, "archived"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "season-unknown", season.StatusActive); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
