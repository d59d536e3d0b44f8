// Package cache wraps the persistence repositories with read-through caching.
// Reads are served from the store until the TTL expires; writes pass through
// and invalidate the affected keys so admin edits are visible immediately.
package cache

import (
	"context"
	"time"

	"github.com/ufaleague/league-api/internal/domain/fixture"
	"github.com/ufaleague/league-api/internal/domain/holiday"
	"github.com/ufaleague/league-api/internal/domain/season"
	"github.com/ufaleague/league-api/internal/domain/team"
	basecache "github.com/ufaleague/league-api/internal/platform/cache"
)

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

type cachedSeason struct {
	value  season.Season
	exists bool
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	key := "season:id:" + seasonID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return cachedSeason{value: item, exists: exists}, nil
	})
	if err != nil {
		return season.Season{}, false, err
	}

	cached, _ := v.(cachedSeason)
	return cached.value, cached.exists, nil
}

func (r *SeasonRepository) UpdateEndDate(ctx context.Context, seasonID string, endDate time.Time) (season.Season, error) {
	item, err := r.next.UpdateEndDate(ctx, seasonID, endDate)
	if err != nil {
		return season.Season{}, err
	}
	r.cache.Delete(ctx, "season:id:"+seasonID)
	return item, nil
}

func (r *SeasonRepository) UpdateStatus(ctx context.Context, seasonID, status string) (season.Season, error) {
	item, err := r.next.UpdateStatus(ctx, seasonID, status)
	if err != nil {
		return season.Season{}, err
	}
	r.cache.Delete(ctx, "season:id:"+seasonID)
	return item, nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

type cachedTeam struct {
	value  team.Team
	exists bool
}

func (r *TeamRepository) ListBySeason(ctx context.Context, seasonID string) ([]team.Team, error) {
	key := "team:season:" + seasonID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySeason(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, seasonID, teamID string) (team.Team, bool, error) {
	key := "team:id:" + seasonID + ":" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, seasonID, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeam{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeam)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, error) {
	updated, err := r.next.Update(ctx, item)
	if err != nil {
		return team.Team{}, err
	}
	r.cache.DeletePrefix(ctx, "team:")
	// A rename also changes the denormalized team names on fixtures.
	r.cache.DeletePrefix(ctx, "fixture:")
	return updated, nil
}

type HolidayRepository struct {
	next  holiday.Repository
	cache *basecache.Store
}

func NewHolidayRepository(next holiday.Repository, cache *basecache.Store) *HolidayRepository {
	return &HolidayRepository{next: next, cache: cache}
}

func (r *HolidayRepository) ListBySeason(ctx context.Context, seasonID string) ([]holiday.Range, error) {
	key := "holiday:season:" + seasonID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySeason(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return append([]holiday.Range(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]holiday.Range)
	return append([]holiday.Range(nil), items...), nil
}

func (r *HolidayRepository) Create(ctx context.Context, item holiday.Range) (holiday.Range, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return holiday.Range{}, err
	}
	r.cache.Delete(ctx, "holiday:season:"+item.SeasonID)
	return created, nil
}

func (r *HolidayRepository) Delete(ctx context.Context, seasonID, holidayID string) (bool, error) {
	deleted, err := r.next.Delete(ctx, seasonID, holidayID)
	if err != nil {
		return false, err
	}
	r.cache.Delete(ctx, "holiday:season:"+seasonID)
	return deleted, nil
}

type FixtureRepository struct {
	next  fixture.Repository
	cache *basecache.Store
}

func NewFixtureRepository(next fixture.Repository, cache *basecache.Store) *FixtureRepository {
	return &FixtureRepository{next: next, cache: cache}
}

type cachedFixture struct {
	value  fixture.Fixture
	exists bool
}

func (r *FixtureRepository) ListBySeason(ctx context.Context, seasonID string) ([]fixture.Fixture, error) {
	key := "fixture:season:" + seasonID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySeason(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return append([]fixture.Fixture(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]fixture.Fixture)
	return append([]fixture.Fixture(nil), items...), nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	key := "fixture:id:" + fixtureID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, fixtureID)
		if err != nil {
			return nil, err
		}
		return cachedFixture{value: item, exists: exists}, nil
	})
	if err != nil {
		return fixture.Fixture{}, false, err
	}

	cached, _ := v.(cachedFixture)
	return cached.value, cached.exists, nil
}

func (r *FixtureRepository) Create(ctx context.Context, item fixture.Fixture) (fixture.Fixture, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return fixture.Fixture{}, err
	}
	r.cache.DeletePrefix(ctx, "fixture:")
	return created, nil
}

func (r *FixtureRepository) Update(ctx context.Context, item fixture.Fixture) (fixture.Fixture, error) {
	updated, err := r.next.Update(ctx, item)
	if err != nil {
		return fixture.Fixture{}, err
	}
	r.cache.DeletePrefix(ctx, "fixture:")
	return updated, nil
}

func (r *FixtureRepository) Delete(ctx context.Context, fixtureID string) (bool, error) {
	deleted, err := r.next.Delete(ctx, fixtureID)
	if err != nil {
		return false, err
	}
	r.cache.DeletePrefix(ctx, "fixture:")
	return deleted, nil
}

func (r *FixtureRepository) ReplaceBySeason(ctx context.Context, seasonID string, items []fixture.Fixture) (int, error) {
	count, err := r.next.ReplaceBySeason(ctx, seasonID, items)
	if err != nil {
		return 0, err
	}
	r.cache.DeletePrefix(ctx, "fixture:")
	return count, nil
}

func (r *FixtureRepository) ApplyKickoffUpdates(ctx context.Context, updates []fixture.KickoffUpdate) (int, error) {
	count, err := r.next.ApplyKickoffUpdates(ctx, updates)
	if err != nil {
		return 0, err
	}
	r.cache.DeletePrefix(ctx, "fixture:")
	return count, nil
}
