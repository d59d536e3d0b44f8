package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ufaleague/league-api/internal/domain/fixture"
	"github.com/ufaleague/league-api/internal/domain/holiday"
	"github.com/ufaleague/league-api/internal/domain/schedule"
	"github.com/ufaleague/league-api/internal/domain/season"
	"github.com/ufaleague/league-api/internal/domain/team"
	"github.com/ufaleague/league-api/internal/platform/id"
)

type FixtureService struct {
	seasonRepo  season.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	holidayRepo holiday.Repository
	idGen       id.Generator
	cfg         schedule.Config
	notifier    Notifier
}

func NewFixtureService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	holidayRepo holiday.Repository,
	idGen id.Generator,
	cfg schedule.Config,
	notifier Notifier,
) *FixtureService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &FixtureService{
		seasonRepo:  seasonRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		holidayRepo: holidayRepo,
		idGen:       idGen,
		cfg:         cfg,
		notifier:    notifier,
	}
}

func (s *FixtureService) ListBySeason(ctx context.Context, seasonID string) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.ListBySeason")
	defer span.End()

	if _, err := getSeason(ctx, s.seasonRepo, seasonID); err != nil {
		return nil, err
	}

	fixtures, err := s.fixtureRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by season: %w", err)
	}
	sort.SliceStable(fixtures, func(i, j int) bool {
		return fixtures[i].KickoffAt.Before(fixtures[j].KickoffAt)
	})
	return fixtures, nil
}

func (s *FixtureService) GetBySeason(ctx context.Context, seasonID, fixtureID string) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.GetBySeason")
	defer span.End()

	return getFixture(ctx, s.seasonRepo, s.fixtureRepo, seasonID, fixtureID)
}

// CreateFixtureInput carries a manual one-off fixture. Date is the civil
// match date; kickoff time-of-day is always the league's fixed kickoff.
type CreateFixtureInput struct {
	SeasonID   string
	HomeTeamID string
	AwayTeamID string
	Date       time.Time
	Venue      string
	Matchweek  int
}

func (s *FixtureService) Create(ctx context.Context, in CreateFixtureInput) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.Create")
	defer span.End()

	seasonItem, err := getSeason(ctx, s.seasonRepo, in.SeasonID)
	if err != nil {
		return fixture.Fixture{}, err
	}
	if in.Date.IsZero() {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture date is required", ErrInvalidInput)
	}

	date := schedule.DateOf(in.Date)
	window := seasonWindow(seasonItem)
	if !window.Contains(date) {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture date %s is outside the season", ErrInvalidInput, date)
	}

	home, err := s.requireTeam(ctx, seasonItem.ID, in.HomeTeamID)
	if err != nil {
		return fixture.Fixture{}, err
	}
	away, err := s.requireTeam(ctx, seasonItem.ID, in.AwayTeamID)
	if err != nil {
		return fixture.Fixture{}, err
	}

	venue := strings.TrimSpace(in.Venue)
	if venue == "" {
		venue = s.cfg.DefaultVenue
	}
	matchweek := in.Matchweek
	if matchweek == 0 {
		matchweek = 1
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("generate fixture id: %w", err)
	}
	item := fixture.Fixture{
		ID:           newID,
		SeasonID:     seasonItem.ID,
		HomeTeamID:   home.ID,
		AwayTeamID:   away.ID,
		HomeTeamName: home.Name,
		AwayTeamName: away.Name,
		KickoffAt:    s.cfg.KickoffAt(date),
		Venue:        venue,
		Matchweek:    matchweek,
		Status:       fixture.StatusScheduled,
	}
	if err := item.Validate(); err != nil {
		return fixture.Fixture{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.fixtureRepo.Create(ctx, item)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("create fixture: %w", err)
	}
	return created, nil
}

// UpdateFixtureInput carries a partial fixture edit. Nil fields keep their
// stored value; Date moves the kickoff to the league time on that day.
type UpdateFixtureInput struct {
	SeasonID   string
	FixtureID  string
	HomeTeamID *string
	AwayTeamID *string
	Date       *time.Time
	Venue      *string
	Matchweek  *int
}

// Update edits a scheduled fixture's pairing, date, venue, or matchweek.
// Unlike Move it performs no availability grading; it is the raw editor, and
// only home!=away, team membership, and the season window are enforced.
func (s *FixtureService) Update(ctx context.Context, in UpdateFixtureInput) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.Update")
	defer span.End()

	item, err := getFixture(ctx, s.seasonRepo, s.fixtureRepo, in.SeasonID, in.FixtureID)
	if err != nil {
		return fixture.Fixture{}, err
	}
	if item.Status != fixture.StatusScheduled {
		return fixture.Fixture{}, fmt.Errorf("%w: completed fixture cannot be edited", ErrConflict)
	}

	if in.HomeTeamID != nil {
		home, err := s.requireTeam(ctx, item.SeasonID, *in.HomeTeamID)
		if err != nil {
			return fixture.Fixture{}, err
		}
		item.HomeTeamID = home.ID
		item.HomeTeamName = home.Name
	}
	if in.AwayTeamID != nil {
		away, err := s.requireTeam(ctx, item.SeasonID, *in.AwayTeamID)
		if err != nil {
			return fixture.Fixture{}, err
		}
		item.AwayTeamID = away.ID
		item.AwayTeamName = away.Name
	}
	if item.HomeTeamID == item.AwayTeamID {
		return fixture.Fixture{}, fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}

	kickoffChanged := false
	if in.Date != nil {
		seasonItem, err := getSeason(ctx, s.seasonRepo, in.SeasonID)
		if err != nil {
			return fixture.Fixture{}, err
		}
		date := schedule.DateOf(*in.Date)
		if !seasonWindow(seasonItem).Contains(date) {
			return fixture.Fixture{}, fmt.Errorf("%w: fixture date %s is outside the season", ErrInvalidInput, date)
		}
		item.KickoffAt = s.cfg.KickoffAt(date)
		kickoffChanged = true
	}
	if in.Venue != nil {
		venue := strings.TrimSpace(*in.Venue)
		if venue == "" {
			return fixture.Fixture{}, fmt.Errorf("%w: venue cannot be blank", ErrInvalidInput)
		}
		item.Venue = venue
	}
	if in.Matchweek != nil {
		if *in.Matchweek < 1 {
			return fixture.Fixture{}, fmt.Errorf("%w: matchweek must be >= 1", ErrInvalidInput)
		}
		item.Matchweek = *in.Matchweek
	}
	if err := item.Validate(); err != nil {
		return fixture.Fixture{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.fixtureRepo.Update(ctx, item)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("update fixture: %w", err)
	}

	if kickoffChanged {
		s.notifier.Publish(ctx, EventFixtureMoved, map[string]any{
			"seasonId":  updated.SeasonID,
			"fixtureId": updated.ID,
			"kickoffAt": updated.KickoffAt,
		})
	}
	return updated, nil
}

func (s *FixtureService) Delete(ctx context.Context, seasonID, fixtureID string) error {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.Delete")
	defer span.End()

	item, err := getFixture(ctx, s.seasonRepo, s.fixtureRepo, seasonID, fixtureID)
	if err != nil {
		return err
	}

	deleted, err := s.fixtureRepo.Delete(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("delete fixture: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}
	return nil
}

// RecordResult stores the final score and completes the fixture. Completed
// fixtures drop out of every rescheduling computation.
func (s *FixtureService) RecordResult(ctx context.Context, seasonID, fixtureID string, homeScore, awayScore int) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.RecordResult")
	defer span.End()

	if homeScore < 0 || awayScore < 0 {
		return fixture.Fixture{}, fmt.Errorf("%w: scores must be >= 0", ErrInvalidInput)
	}

	item, err := getFixture(ctx, s.seasonRepo, s.fixtureRepo, seasonID, fixtureID)
	if err != nil {
		return fixture.Fixture{}, err
	}

	item.HomeScore = &homeScore
	item.AwayScore = &awayScore
	item.Status = fixture.StatusComplete

	updated, err := s.fixtureRepo.Update(ctx, item)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("update fixture result: %w", err)
	}

	s.notifier.Publish(ctx, EventResultRecorded, map[string]any{
		"seasonId":  updated.SeasonID,
		"fixtureId": updated.ID,
		"homeScore": homeScore,
		"awayScore": awayScore,
	})
	return updated, nil
}

// MoveCandidate grades one calendar date for a manual fixture move.
type MoveCandidate struct {
	Date     schedule.Date
	Validity schedule.MoveValidity
}

// MoveCandidates classifies every date in the season window for moving the
// given fixture, powering the adjust-mode calendar.
func (s *FixtureService) MoveCandidates(ctx context.Context, seasonID, fixtureID string) ([]MoveCandidate, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.MoveCandidates")
	defer span.End()

	item, err := getFixture(ctx, s.seasonRepo, s.fixtureRepo, seasonID, fixtureID)
	if err != nil {
		return nil, err
	}
	if item.Status != fixture.StatusScheduled {
		return nil, fmt.Errorf("%w: completed fixture cannot move", ErrConflict)
	}

	_, window, holidays, infos, err := s.loadScheduleState(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	target := fixtureInfo(s.cfg, item)
	var candidates []MoveCandidate
	for d := window.Start; !d.After(window.End); d = d.AddDays(1) {
		candidates = append(candidates, MoveCandidate{
			Date:     d,
			Validity: s.cfg.ClassifyMove(target, d, infos, window, holidays),
		})
	}
	return candidates, nil
}

// Move applies a single manual fixture move after re-validating the target
// date. Invalid targets are conflicts; the current date is a no-op.
func (s *FixtureService) Move(ctx context.Context, seasonID, fixtureID string, newDate time.Time) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.Move")
	defer span.End()

	if newDate.IsZero() {
		return fixture.Fixture{}, fmt.Errorf("%w: new date is required", ErrInvalidInput)
	}

	item, err := getFixture(ctx, s.seasonRepo, s.fixtureRepo, seasonID, fixtureID)
	if err != nil {
		return fixture.Fixture{}, err
	}
	if item.Status != fixture.StatusScheduled {
		return fixture.Fixture{}, fmt.Errorf("%w: completed fixture cannot move", ErrConflict)
	}

	_, window, holidays, infos, err := s.loadScheduleState(ctx, seasonID)
	if err != nil {
		return fixture.Fixture{}, err
	}

	date := schedule.DateOf(newDate)
	switch s.cfg.ClassifyMove(fixtureInfo(s.cfg, item), date, infos, window, holidays) {
	case schedule.MoveCurrent:
		return item, nil
	case schedule.MoveInvalid:
		return fixture.Fixture{}, fmt.Errorf("%w: date %s is not available for fixture %s", ErrConflict, date, fixtureID)
	}

	item.KickoffAt = s.cfg.KickoffAt(date)
	updated, err := s.fixtureRepo.Update(ctx, item)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("update fixture kickoff: %w", err)
	}

	s.notifier.Publish(ctx, EventFixtureMoved, map[string]any{
		"seasonId":  updated.SeasonID,
		"fixtureId": updated.ID,
		"kickoffAt": updated.KickoffAt,
	})
	return updated, nil
}

func (s *FixtureService) requireTeam(ctx context.Context, seasonID, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
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

func (s *FixtureService) loadScheduleState(ctx context.Context, seasonID string) (season.Season, schedule.SeasonWindow, schedule.DateSet, []schedule.FixtureInfo, error) {
	seasonItem, err := getSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return season.Season{}, schedule.SeasonWindow{}, nil, nil, err
	}
	holidays, err := s.holidayRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return season.Season{}, schedule.SeasonWindow{}, nil, nil, fmt.Errorf("list holidays by season: %w", err)
	}
	fixtures, err := s.fixtureRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return season.Season{}, schedule.SeasonWindow{}, nil, nil, fmt.Errorf("list fixtures by season: %w", err)
	}
	return seasonItem, seasonWindow(seasonItem), holidaySet(holidays), fixtureInfos(s.cfg, fixtures), nil
}

// getFixture is the shared fixture guard: the fixture must exist and belong
// to the addressed season.
func getFixture(ctx context.Context, seasonRepo season.Repository, fixtureRepo fixture.Repository, seasonID, fixtureID string) (fixture.Fixture, error) {
	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}
	if _, err := getSeason(ctx, seasonRepo, seasonID); err != nil {
		return fixture.Fixture{}, err
	}

	item, exists, err := fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get fixture by id: %w", err)
	}
	if !exists || item.SeasonID != strings.TrimSpace(seasonID) {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%s season=%s", ErrNotFound, fixtureID, seasonID)
	}
	return item, nil
}

func fixtureInfo(cfg schedule.Config, item fixture.Fixture) schedule.FixtureInfo {
	return schedule.FixtureInfo{
		ID:           item.ID,
		HomeTeamID:   item.HomeTeamID,
		AwayTeamID:   item.AwayTeamID,
		HomeTeamName: item.HomeTeamName,
		AwayTeamName: item.AwayTeamName,
		Date:         cfg.CivilDate(item.KickoffAt),
		Scheduled:    item.Status == fixture.StatusScheduled,
	}
}

func fixtureInfos(cfg schedule.Config, items []fixture.Fixture) []schedule.FixtureInfo {
	infos := make([]schedule.FixtureInfo, 0, len(items))
	for _, item := range items {
		infos = append(infos, fixtureInfo(cfg, item))
	}
	return infos
}
