package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ufaleague/league-api/internal/domain/season"
)

type SeasonRepository struct {
	mu      sync.RWMutex
	seasons map[string]season.Season
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	byID := make(map[string]season.Season, len(seasons))
	for _, item := range seasons {
		byID[item.ID] = item
	}

	return &SeasonRepository{seasons: byID}
}

func (r *SeasonRepository) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.seasons[seasonID]
	return item, ok, nil
}

func (r *SeasonRepository) UpdateEndDate(_ context.Context, seasonID string, endDate time.Time) (season.Season, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.seasons[seasonID]
	if !ok {
		return season.Season{}, fmt.Errorf("season %s not found", seasonID)
	}
	item.EndDate = endDate
	r.seasons[seasonID] = item
	return item, nil
}

func (r *SeasonRepository) UpdateStatus(_ context.Context, seasonID, status string) (season.Season, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.seasons[seasonID]
	if !ok {
		return season.Season{}, fmt.Errorf("season %s not found", seasonID)
	}
	item.Status = status
	r.seasons[seasonID] = item
	return item, nil
}
