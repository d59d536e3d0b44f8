package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ufaleague/league-api/internal/domain/fixture"
)

type FixtureRepository struct {
	mu               sync.RWMutex
	fixturesBySeason map[string][]fixture.Fixture
}

type fixtureLoc struct {
	seasonID string
	index    int
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	fixturesBySeason := make(map[string][]fixture.Fixture)
	for _, item := range fixtures {
		fixturesBySeason[item.SeasonID] = append(fixturesBySeason[item.SeasonID], item)
	}

	return &FixtureRepository{fixturesBySeason: fixturesBySeason}
}

func (r *FixtureRepository) ListBySeason(_ context.Context, seasonID string) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.fixturesBySeason[seasonID]
	out := make([]fixture.Fixture, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *FixtureRepository) GetByID(_ context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loc, ok := r.locate(fixtureID)
	if !ok {
		return fixture.Fixture{}, false, nil
	}
	return r.fixturesBySeason[loc.seasonID][loc.index], true, nil
}

func (r *FixtureRepository) Create(_ context.Context, item fixture.Fixture) (fixture.Fixture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fixturesBySeason[item.SeasonID] = append(r.fixturesBySeason[item.SeasonID], item)
	return item, nil
}

func (r *FixtureRepository) Update(_ context.Context, updated fixture.Fixture) (fixture.Fixture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.fixturesBySeason[updated.SeasonID]
	for i, item := range items {
		if item.ID == updated.ID {
			items[i] = updated
			return updated, nil
		}
	}
	return fixture.Fixture{}, fmt.Errorf("fixture %s not found", updated.ID)
}

func (r *FixtureRepository) Delete(_ context.Context, fixtureID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	loc, ok := r.locate(fixtureID)
	if !ok {
		return false, nil
	}
	items := r.fixturesBySeason[loc.seasonID]
	r.fixturesBySeason[loc.seasonID] = append(items[:loc.index:loc.index], items[loc.index+1:]...)
	return true, nil
}

func (r *FixtureRepository) ReplaceBySeason(_ context.Context, seasonID string, items []fixture.Fixture) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	replacement := make([]fixture.Fixture, 0, len(items))
	replacement = append(replacement, items...)
	r.fixturesBySeason[seasonID] = replacement
	return len(replacement), nil
}

func (r *FixtureRepository) ApplyKickoffUpdates(_ context.Context, updates []fixture.KickoffUpdate) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Resolve the whole batch before touching anything so a bad update
	// cannot leave a half-applied cascade.
	locs := make([]fixtureLoc, 0, len(updates))
	for _, update := range updates {
		loc, ok := r.locate(update.FixtureID)
		if !ok {
			return 0, fmt.Errorf("fixture %s not found", update.FixtureID)
		}
		locs = append(locs, loc)
	}

	for i, update := range updates {
		loc := locs[i]
		r.fixturesBySeason[loc.seasonID][loc.index].KickoffAt = update.KickoffAt
	}
	return len(updates), nil
}

func (r *FixtureRepository) locate(fixtureID string) (fixtureLoc, bool) {
	for seasonID, items := range r.fixturesBySeason {
		for i, item := range items {
			if item.ID == fixtureID {
				return fixtureLoc{seasonID: seasonID, index: i}, true
			}
		}
	}
	return fixtureLoc{}, false
}
