package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ufaleague/league-api/internal/domain/team"
)

type TeamRepository struct {
	mu            sync.RWMutex
	teamsBySeason map[string][]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	teamsBySeason := make(map[string][]team.Team)
	for _, item := range teams {
		teamsBySeason[item.SeasonID] = append(teamsBySeason[item.SeasonID], item)
	}

	return &TeamRepository{teamsBySeason: teamsBySeason}
}

func (r *TeamRepository) ListBySeason(_ context.Context, seasonID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.teamsBySeason[seasonID]
	out := make([]team.Team, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, seasonID, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teamsBySeason[seasonID] {
		if item.ID == teamID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) Update(_ context.Context, updated team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.teamsBySeason[updated.SeasonID]
	for i, item := range items {
		if item.ID == updated.ID {
			items[i] = updated
			return updated, nil
		}
	}
	return team.Team{}, fmt.Errorf("team %s not found in season %s", updated.ID, updated.SeasonID)
}
