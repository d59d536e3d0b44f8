package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ufaleague/league-api/internal/domain/fixture"
	"github.com/ufaleague/league-api/internal/domain/schedule"
	"github.com/ufaleague/league-api/internal/domain/season"
	"github.com/ufaleague/league-api/internal/domain/team"
)

// SeasonStatus is the operational snapshot behind the season status endpoint.
type SeasonStatus struct {
	Season            season.Season
	TeamCount         int
	FixtureCount      int
	CompletedFixtures int
	NextKickoff       *time.Time
	CurrentMatchweek  int
}

type SeasonService struct {
	seasonRepo  season.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	cfg         schedule.Config
}

func NewSeasonService(seasonRepo season.Repository, teamRepo team.Repository, fixtureRepo fixture.Repository, cfg schedule.Config) *SeasonService {
	return &SeasonService{
		seasonRepo:  seasonRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		cfg:         cfg,
	}
}

func (s *SeasonService) GetSeason(ctx context.Context, seasonID string) (season.Season, error) {
	return getSeason(ctx, s.seasonRepo, seasonID)
}

// Status reports season progress derived from the current fixture set.
func (s *SeasonService) Status(ctx context.Context, seasonID string) (SeasonStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "SeasonService.Status")
	defer span.End()

	item, err := getSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return SeasonStatus{}, err
	}

	teams, err := s.teamRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return SeasonStatus{}, fmt.Errorf("list teams by season: %w", err)
	}
	fixtures, err := s.fixtureRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return SeasonStatus{}, fmt.Errorf("list fixtures by season: %w", err)
	}

	status := SeasonStatus{Season: item, TeamCount: len(teams), FixtureCount: len(fixtures)}
	now := time.Now()
	for _, fx := range fixtures {
		if fx.Status == fixture.StatusComplete {
			status.CompletedFixtures++
			continue
		}
		if fx.KickoffAt.After(now) && (status.NextKickoff == nil || fx.KickoffAt.Before(*status.NextKickoff)) {
			kickoff := fx.KickoffAt
			status.NextKickoff = &kickoff
		}
		if status.CurrentMatchweek == 0 || fx.Matchweek < status.CurrentMatchweek {
			status.CurrentMatchweek = fx.Matchweek
		}
	}
	return status, nil
}

// UpdateEndDate extends or shortens the season. Shortening below a scheduled
// fixture would strand it outside the window, so that is rejected.
func (s *SeasonService) UpdateEndDate(ctx context.Context, seasonID string, endDate time.Time) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "SeasonService.UpdateEndDate")
	defer span.End()

	item, err := getSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return season.Season{}, err
	}
	if endDate.IsZero() {
		return season.Season{}, fmt.Errorf("%w: end date is required", ErrInvalidInput)
	}

	candidate := item
	candidate.EndDate = endDate
	if err := candidate.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fixtures, err := s.fixtureRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("list fixtures by season: %w", err)
	}
	end := schedule.DateOf(endDate)
	for _, fx := range fixtures {
		if s.cfg.CivilDate(fx.KickoffAt).After(end) {
			return season.Season{}, fmt.Errorf("%w: fixture %s falls after the new end date", ErrConflict, fx.ID)
		}
	}

	updated, err := s.seasonRepo.UpdateEndDate(ctx, seasonID, endDate)
	if err != nil {
		return season.Season{}, fmt.Errorf("update season end date: %w", err)
	}
	return updated, nil
}

func (s *SeasonService) UpdateStatus(ctx context.Context, seasonID, status string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "SeasonService.UpdateStatus")
	defer span.End()

	status = strings.TrimSpace(status)
	if !season.ValidStatus(status) {
		return season.Season{}, fmt.Errorf("%w: unknown season status %q", ErrInvalidInput, status)
	}
	if _, err := getSeason(ctx, s.seasonRepo, seasonID); err != nil {
		return season.Season{}, err
	}

	updated, err := s.seasonRepo.UpdateStatus(ctx, seasonID, status)
	if err != nil {
		return season.Season{}, fmt.Errorf("update season status: %w", err)
	}
	return updated, nil
}

// getSeason is the shared season guard used by every service.
func getSeason(ctx context.Context, repo season.Repository, seasonID string) (season.Season, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return season.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	item, exists, err := repo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}
	return item, nil
}

// seasonWindow converts a stored season into the scheduler's calendar window.
func seasonWindow(item season.Season) schedule.SeasonWindow {
	window := schedule.SeasonWindow{
		Start: schedule.DateOf(item.StartDate),
		End:   schedule.DateOf(item.EndDate),
	}
	if item.BreakStart != nil && item.BreakEnd != nil {
		window.Break = &schedule.DateRange{
			Start: schedule.DateOf(*item.BreakStart),
			End:   schedule.DateOf(*item.BreakEnd),
		}
	}
	return window
}
