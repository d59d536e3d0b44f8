package usecase

import (
	"context"
	"fmt"

	"github.com/ufaleague/league-api/internal/domain/fixture"
	"github.com/ufaleague/league-api/internal/domain/holiday"
	"github.com/ufaleague/league-api/internal/domain/schedule"
	"github.com/ufaleague/league-api/internal/domain/season"
	"github.com/ufaleague/league-api/internal/domain/team"
	"github.com/ufaleague/league-api/internal/platform/id"
)

// AutoScheduleResult summarizes a full schedule regeneration.
type AutoScheduleResult struct {
	FixtureCount   int
	Matchweeks     int
	SlotsAvailable int
	SlotsUsed      int
}

type ScheduleService struct {
	seasonRepo  season.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	holidayRepo holiday.Repository
	idGen       id.Generator
	cfg         schedule.Config
	notifier    Notifier
}

func NewScheduleService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	holidayRepo holiday.Repository,
	idGen id.Generator,
	cfg schedule.Config,
	notifier Notifier,
) *ScheduleService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &ScheduleService{
		seasonRepo:  seasonRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		holidayRepo: holidayRepo,
		idGen:       idGen,
		cfg:         cfg,
		notifier:    notifier,
	}
}

// GameDays lists every playable slot date of the season in order.
func (s *ScheduleService) GameDays(ctx context.Context, seasonID string) ([]schedule.Date, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.GameDays")
	defer span.End()

	seasonItem, err := getSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return nil, err
	}
	holidays, err := s.holidayRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list holidays by season: %w", err)
	}
	return s.cfg.GameDays(seasonWindow(seasonItem), holidaySet(holidays)), nil
}

// AutoSchedule regenerates the season's complete fixture set from the draft
// order: double round-robin pairings placed on every other game-day slot.
// The previous fixture set is replaced in the same transaction, so a failed
// run leaves the old schedule untouched.
func (s *ScheduleService) AutoSchedule(ctx context.Context, seasonID string) (AutoScheduleResult, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.AutoSchedule")
	defer span.End()

	seasonItem, err := getSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return AutoScheduleResult{}, err
	}

	teamIDs, teamsByID, err := s.draftOrder(ctx, seasonID)
	if err != nil {
		return AutoScheduleResult{}, err
	}

	holidays, err := s.holidayRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return AutoScheduleResult{}, fmt.Errorf("list holidays by season: %w", err)
	}

	rounds, err := schedule.GenerateRounds(teamIDs)
	if err != nil {
		return AutoScheduleResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	gameDays := s.cfg.GameDays(seasonWindow(seasonItem), holidaySet(holidays))
	planned, err := schedule.PlanSeason(rounds, gameDays)
	if err != nil {
		// InsufficientSlotsError passes through for the transport layer.
		return AutoScheduleResult{}, fmt.Errorf("plan season: %w", err)
	}

	items := make([]fixture.Fixture, 0, len(planned))
	matchweeks := 0
	for _, p := range planned {
		newID, err := s.idGen.NewID()
		if err != nil {
			return AutoScheduleResult{}, fmt.Errorf("generate fixture id: %w", err)
		}
		items = append(items, fixture.Fixture{
			ID:           newID,
			SeasonID:     seasonItem.ID,
			HomeTeamID:   p.HomeTeamID,
			AwayTeamID:   p.AwayTeamID,
			HomeTeamName: teamsByID[p.HomeTeamID].Name,
			AwayTeamName: teamsByID[p.AwayTeamID].Name,
			KickoffAt:    s.cfg.KickoffAt(p.Date),
			Venue:        s.cfg.DefaultVenue,
			Matchweek:    p.Matchweek,
			Status:       fixture.StatusScheduled,
		})
		if p.Matchweek > matchweeks {
			matchweeks = p.Matchweek
		}
	}

	count, err := s.fixtureRepo.ReplaceBySeason(ctx, seasonItem.ID, items)
	if err != nil {
		return AutoScheduleResult{}, fmt.Errorf("replace season fixtures: %w", err)
	}

	s.notifier.Publish(ctx, EventScheduleGenerated, map[string]any{
		"seasonId":     seasonItem.ID,
		"fixtureCount": count,
		"matchweeks":   matchweeks,
	})
	return AutoScheduleResult{
		FixtureCount:   count,
		Matchweeks:     matchweeks,
		SlotsAvailable: len(gameDays),
		SlotsUsed:      2*matchweeks - 1,
	}, nil
}

// draftOrder returns the season's team IDs sorted by draft position. Every
// team must hold a distinct position before a schedule can be generated.
func (s *ScheduleService) draftOrder(ctx context.Context, seasonID string) ([]string, map[string]team.Team, error) {
	teams, err := s.teamRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, nil, fmt.Errorf("list teams by season: %w", err)
	}
	if len(teams) < 2 {
		return nil, nil, fmt.Errorf("%w: season needs at least 2 teams, has %d", ErrInvalidInput, len(teams))
	}

	positions := make(map[int]string, len(teams))
	for _, t := range teams {
		if t.DraftPosition == nil {
			return nil, nil, fmt.Errorf("%w: team %s has no draft position", ErrInvalidInput, t.ID)
		}
		if other, taken := positions[*t.DraftPosition]; taken {
			return nil, nil, fmt.Errorf("%w: teams %s and %s share draft position %d", ErrConflict, other, t.ID, *t.DraftPosition)
		}
		positions[*t.DraftPosition] = t.ID
	}

	sortTeamsByDraftOrder(teams)
	ids := make([]string, 0, len(teams))
	byID := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
		byID[t.ID] = t
	}
	return ids, byID, nil
}
