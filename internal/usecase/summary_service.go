package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"github.com/ufaleague/league-api/internal/domain/fixture"
	"github.com/ufaleague/league-api/internal/domain/holiday"
	"github.com/ufaleague/league-api/internal/domain/season"
	"github.com/ufaleague/league-api/internal/domain/team"
)

// SeasonSummary is the one-call dashboard aggregate for a season.
type SeasonSummary struct {
	Season            season.Season
	Teams             []team.Team
	Holidays          []holiday.Range
	FixtureCount      int
	CompletedFixtures int
	RemainingFixtures int
	NextFixture       *fixture.Fixture
	LastCompleted     *fixture.Fixture
}

type SummaryService struct {
	seasonRepo  season.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	holidayRepo holiday.Repository
}

func NewSummaryService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	holidayRepo holiday.Repository,
) *SummaryService {
	return &SummaryService{
		seasonRepo:  seasonRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		holidayRepo: holidayRepo,
	}
}

// Get loads the season's teams, holidays, and fixtures concurrently and
// folds them into one summary.
func (s *SummaryService) Get(ctx context.Context, seasonID string) (SeasonSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "SummaryService.Get")
	defer span.End()

	seasonItem, err := getSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return SeasonSummary{}, err
	}

	var (
		teams    []team.Team
		holidays []holiday.Range
		fixtures []fixture.Fixture
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.teamRepo.ListBySeason(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("list teams by season: %w", err)
		}
		teams = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.holidayRepo.ListBySeason(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("list holidays by season: %w", err)
		}
		holidays = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.fixtureRepo.ListBySeason(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("list fixtures by season: %w", err)
		}
		fixtures = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return SeasonSummary{}, err
	}

	sortTeamsByDraftOrder(teams)
	sort.SliceStable(holidays, func(i, j int) bool { return holidays[i].StartDate.Before(holidays[j].StartDate) })
	sort.SliceStable(fixtures, func(i, j int) bool { return fixtures[i].KickoffAt.Before(fixtures[j].KickoffAt) })

	summary := SeasonSummary{
		Season:       seasonItem,
		Teams:        teams,
		Holidays:     holidays,
		FixtureCount: len(fixtures),
	}
	for i := range fixtures {
		fx := fixtures[i]
		if fx.Status == fixture.StatusComplete {
			summary.CompletedFixtures++
			last := fx
			summary.LastCompleted = &last
			continue
		}
		summary.RemainingFixtures++
		if summary.NextFixture == nil {
			next := fx
			summary.NextFixture = &next
		}
	}
	return summary, nil
}
