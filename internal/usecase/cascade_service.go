package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ufaleague/league-api/internal/domain/fixture"
	"github.com/ufaleague/league-api/internal/domain/holiday"
	"github.com/ufaleague/league-api/internal/domain/schedule"
	"github.com/ufaleague/league-api/internal/domain/season"
)

// CascadePreview is the computed knock-on plan for one postponement. The
// server holds no preview state: recheck and confirm recompute from the
// stored schedule plus the caller's overrides, so a stale preview can never
// be committed against a schedule that changed underneath it.
type CascadePreview struct {
	PostponedFixtureID string
	NewDate            schedule.Date
	Rows               []schedule.CascadeRow
}

type CascadeService struct {
	seasonRepo  season.Repository
	fixtureRepo fixture.Repository
	holidayRepo holiday.Repository
	cfg         schedule.Config
	notifier    Notifier
}

func NewCascadeService(
	seasonRepo season.Repository,
	fixtureRepo fixture.Repository,
	holidayRepo holiday.Repository,
	cfg schedule.Config,
	notifier Notifier,
) *CascadeService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &CascadeService{
		seasonRepo:  seasonRepo,
		fixtureRepo: fixtureRepo,
		holidayRepo: holidayRepo,
		cfg:         cfg,
		notifier:    notifier,
	}
}

// Compute previews the cascade of postponing fixtureID to newDate.
func (s *CascadeService) Compute(ctx context.Context, seasonID, fixtureID string, newDate time.Time) (CascadePreview, error) {
	ctx, span := startUsecaseSpan(ctx, "CascadeService.Compute")
	defer span.End()

	state, err := s.loadCascadeState(ctx, seasonID, fixtureID, newDate)
	if err != nil {
		return CascadePreview{}, err
	}
	return CascadePreview{
		PostponedFixtureID: state.postponed.ID,
		NewDate:            state.newDate,
		Rows:               state.rows,
	}, nil
}

// Recheck re-validates one row against an admin-chosen override date, with
// every previously overridden row pinned at its override.
func (s *CascadeService) Recheck(ctx context.Context, seasonID, fixtureID string, newDate time.Time, overrides map[string]time.Time, rowFixtureID string, overrideDate time.Time) (schedule.CascadeRow, error) {
	ctx, span := startUsecaseSpan(ctx, "CascadeService.Recheck")
	defer span.End()

	if overrideDate.IsZero() {
		return schedule.CascadeRow{}, fmt.Errorf("%w: override date is required", ErrInvalidInput)
	}

	state, err := s.loadCascadeState(ctx, seasonID, fixtureID, newDate)
	if err != nil {
		return schedule.CascadeRow{}, err
	}
	if err := state.applyOverrides(s.cfg, overrides); err != nil {
		return schedule.CascadeRow{}, err
	}

	row, ok := s.cfg.RecheckOverride(state.recheckInput(), rowFixtureID, schedule.DateOf(overrideDate))
	if !ok {
		return schedule.CascadeRow{}, fmt.Errorf("%w: fixture %s is not part of the cascade", ErrInvalidInput, rowFixtureID)
	}
	return row, nil
}

// Confirm commits the cascade: the postponed fixture's new kickoff plus every
// row's final date, written as one atomic batch. Rows still flagged conflict
// or out-of-bounds after overrides refuse the whole confirm; the admin must
// override them to clean dates first.
func (s *CascadeService) Confirm(ctx context.Context, seasonID, fixtureID string, newDate time.Time, overrides map[string]time.Time) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "CascadeService.Confirm")
	defer span.End()

	state, err := s.loadCascadeState(ctx, seasonID, fixtureID, newDate)
	if err != nil {
		return 0, err
	}
	if err := state.applyOverrides(s.cfg, overrides); err != nil {
		return 0, err
	}
	for _, row := range state.rows {
		if row.Flag == schedule.FlagConflict || row.Flag == schedule.FlagOutOfBounds {
			return 0, fmt.Errorf("%w: fixture %s is flagged %s on %s", ErrConflict, row.FixtureID, row.Flag, row.FinalDate())
		}
	}

	updates := make([]fixture.KickoffUpdate, 0, len(state.rows)+1)
	updates = append(updates, fixture.KickoffUpdate{
		FixtureID: state.postponed.ID,
		KickoffAt: s.cfg.KickoffAt(state.newDate),
	})
	for _, row := range state.rows {
		updates = append(updates, fixture.KickoffUpdate{
			FixtureID: row.FixtureID,
			KickoffAt: s.cfg.KickoffAt(row.FinalDate()),
		})
	}

	count, err := s.fixtureRepo.ApplyKickoffUpdates(ctx, updates)
	if err != nil {
		return 0, fmt.Errorf("apply cascade updates: %w", err)
	}

	s.notifier.Publish(ctx, EventCascadeConfirmed, map[string]any{
		"seasonId":       seasonID,
		"fixtureId":      state.postponed.ID,
		"newDate":        state.newDate.String(),
		"affectedRows":   len(state.rows),
		"updatedFixture": count,
	})
	return count, nil
}

type cascadeState struct {
	postponed schedule.FixtureInfo
	newDate   schedule.Date
	all       []schedule.FixtureInfo
	holidays  schedule.DateSet
	seasonEnd schedule.Date
	rows      []schedule.CascadeRow
}

func (st *cascadeState) recheckInput() schedule.RecheckInput {
	return schedule.RecheckInput{
		Postponed:        st.postponed,
		PostponedNewDate: st.newDate,
		Rows:             st.rows,
		All:              st.all,
		Holidays:         st.holidays,
		SeasonEnd:        st.seasonEnd,
	}
}

// applyOverrides pins caller-supplied overrides onto the freshly computed
// rows, re-validating each in row order so earlier overrides are visible to
// later ones.
func (st *cascadeState) applyOverrides(cfg schedule.Config, overrides map[string]time.Time) error {
	if len(overrides) == 0 {
		return nil
	}
	applied := 0
	for i, row := range st.rows {
		overrideAt, ok := overrides[row.FixtureID]
		if !ok {
			continue
		}
		rechecked, found := cfg.RecheckOverride(st.recheckInput(), row.FixtureID, schedule.DateOf(overrideAt))
		if !found {
			return fmt.Errorf("%w: fixture %s is not part of the cascade", ErrInvalidInput, row.FixtureID)
		}
		st.rows[i] = rechecked
		applied++
	}
	if applied != len(overrides) {
		return fmt.Errorf("%w: overrides reference fixtures outside the cascade", ErrInvalidInput)
	}
	return nil
}

func (s *CascadeService) loadCascadeState(ctx context.Context, seasonID, fixtureID string, newDate time.Time) (*cascadeState, error) {
	if newDate.IsZero() {
		return nil, fmt.Errorf("%w: new date is required", ErrInvalidInput)
	}

	seasonItem, err := getSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return nil, err
	}
	item, err := getFixture(ctx, s.seasonRepo, s.fixtureRepo, seasonID, fixtureID)
	if err != nil {
		return nil, err
	}
	if item.Status != fixture.StatusScheduled {
		return nil, fmt.Errorf("%w: completed fixture cannot be postponed", ErrConflict)
	}

	window := seasonWindow(seasonItem)
	date := schedule.DateOf(newDate)
	if !s.cfg.IsGameWeekday(date) {
		return nil, fmt.Errorf("%w: %s is not a game weekday", ErrInvalidInput, date)
	}
	if !window.Contains(date) || window.InBreak(date) {
		return nil, fmt.Errorf("%w: %s is outside the playable season window", ErrInvalidInput, date)
	}

	holidayItems, err := s.holidayRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list holidays by season: %w", err)
	}
	holidays := holidaySet(holidayItems)
	if holidays.Contains(date) {
		return nil, fmt.Errorf("%w: %s is a holiday", ErrInvalidInput, date)
	}

	fixtures, err := s.fixtureRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by season: %w", err)
	}

	state := &cascadeState{
		postponed: fixtureInfo(s.cfg, item),
		newDate:   date,
		all:       fixtureInfos(s.cfg, fixtures),
		holidays:  holidays,
		seasonEnd: window.End,
	}
	state.rows = s.cfg.ComputeCascade(state.postponed, state.newDate, state.all, state.holidays, state.seasonEnd)
	return state, nil
}
