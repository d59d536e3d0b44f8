package memory

import (
	"context"
	"sync"

	"github.com/ufaleague/league-api/internal/domain/holiday"
)

type HolidayRepository struct {
	mu               sync.RWMutex
	holidaysBySeason map[string][]holiday.Range
}

func NewHolidayRepository(holidays []holiday.Range) *HolidayRepository {
	holidaysBySeason := make(map[string][]holiday.Range)
	for _, item := range holidays {
		holidaysBySeason[item.SeasonID] = append(holidaysBySeason[item.SeasonID], item)
	}

	return &HolidayRepository{holidaysBySeason: holidaysBySeason}
}

func (r *HolidayRepository) ListBySeason(_ context.Context, seasonID string) ([]holiday.Range, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.holidaysBySeason[seasonID]
	out := make([]holiday.Range, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *HolidayRepository) Create(_ context.Context, item holiday.Range) (holiday.Range, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.holidaysBySeason[item.SeasonID] = append(r.holidaysBySeason[item.SeasonID], item)
	return item, nil
}

func (r *HolidayRepository) Delete(_ context.Context, seasonID, holidayID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.holidaysBySeason[seasonID]
	for i, item := range items {
		if item.ID == holidayID {
			r.holidaysBySeason[seasonID] = append(items[:i:i], items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
