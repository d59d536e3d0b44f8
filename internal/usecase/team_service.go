package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ufaleague/league-api/internal/domain/season"
	"github.com/ufaleague/league-api/internal/domain/team"
)

type TeamService struct {
	seasonRepo season.Repository
	teamRepo   team.Repository
}

func NewTeamService(seasonRepo season.Repository, teamRepo team.Repository) *TeamService {
	return &TeamService{
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
	}
}

// ListBySeason returns teams in draft order. Teams without a draft position
// sort after positioned ones, alphabetically.
func (s *TeamService) ListBySeason(ctx context.Context, seasonID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.ListBySeason")
	defer span.End()

	if _, err := getSeason(ctx, s.seasonRepo, seasonID); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list teams by season: %w", err)
	}
	sortTeamsByDraftOrder(teams)
	return teams, nil
}

func (s *TeamService) Rename(ctx context.Context, seasonID, teamID, name string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.Rename")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	item, err := s.getTeam(ctx, seasonID, teamID)
	if err != nil {
		return team.Team{}, err
	}

	item.Name = name
	updated, err := s.teamRepo.Update(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	return updated, nil
}

// SetDraftPosition assigns a team's slot in the draft order. Positions are
// unique within a season; taking another team's position is a conflict rather
// than an implicit swap.
func (s *TeamService) SetDraftPosition(ctx context.Context, seasonID, teamID string, position int) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.SetDraftPosition")
	defer span.End()

	if position < 1 {
		return team.Team{}, fmt.Errorf("%w: draft position must be >= 1", ErrInvalidInput)
	}

	item, err := s.getTeam(ctx, seasonID, teamID)
	if err != nil {
		return team.Team{}, err
	}

	teams, err := s.teamRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return team.Team{}, fmt.Errorf("list teams by season: %w", err)
	}
	for _, other := range teams {
		if other.ID != item.ID && other.DraftPosition != nil && *other.DraftPosition == position {
			return team.Team{}, fmt.Errorf("%w: draft position %d already held by team %s", ErrConflict, position, other.ID)
		}
	}

	item.DraftPosition = &position
	updated, err := s.teamRepo.Update(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	return updated, nil
}

func (s *TeamService) getTeam(ctx context.Context, seasonID, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if _, err := getSeason(ctx, s.seasonRepo, seasonID); err != nil {
		return team.Team{}, err
	}

	item, exists, err := s.teamRepo.GetByID(ctx, seasonID, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s season=%s", ErrNotFound, teamID, seasonID)
	}
	return item, nil
}

func sortTeamsByDraftOrder(teams []team.Team) {
	sort.SliceStable(teams, func(i, j int) bool {
		a, b := teams[i], teams[j]
		switch {
		case a.DraftPosition != nil && b.DraftPosition != nil:
			return *a.DraftPosition < *b.DraftPosition
		case a.DraftPosition != nil:
			return true
		case b.DraftPosition != nil:
			return false
		default:
			return a.Name < b.Name
		}
	})
}
