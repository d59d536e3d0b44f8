package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/ufaleague/league-api/internal/domain/fixture"
	"github.com/ufaleague/league-api/internal/domain/holiday"
	"github.com/ufaleague/league-api/internal/domain/schedule"
	"github.com/ufaleague/league-api/internal/domain/season"
	"github.com/ufaleague/league-api/internal/domain/team"
)

const auditWorkers = 4

// TeamAudit lists every constraint violation found in one team's schedule.
type TeamAudit struct {
	TeamID   string
	TeamName string
	Issues   []string
}

// AuditReport is a consistency check of the stored schedule against the
// league's constraints. It reads, never writes: flagged issues are for the
// admin to resolve through the cascade or adjust workflows.
type AuditReport struct {
	SeasonID    string
	GeneratedAt time.Time
	Teams       []TeamAudit
	Clean       bool
}

type AuditService struct {
	seasonRepo  season.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	holidayRepo holiday.Repository
	cfg         schedule.Config
}

func NewAuditService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	holidayRepo holiday.Repository,
	cfg schedule.Config,
) *AuditService {
	return &AuditService{
		seasonRepo:  seasonRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		holidayRepo: holidayRepo,
		cfg:         cfg,
	}
}

// Run audits every team's schedule concurrently over a bounded worker pool.
func (s *AuditService) Run(ctx context.Context, seasonID string) (AuditReport, error) {
	ctx, span := startUsecaseSpan(ctx, "AuditService.Run")
	defer span.End()

	seasonItem, err := getSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return AuditReport{}, err
	}
	teams, err := s.teamRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return AuditReport{}, fmt.Errorf("list teams by season: %w", err)
	}
	fixtures, err := s.fixtureRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return AuditReport{}, fmt.Errorf("list fixtures by season: %w", err)
	}
	holidayItems, err := s.holidayRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return AuditReport{}, fmt.Errorf("list holidays by season: %w", err)
	}

	window := seasonWindow(seasonItem)
	holidays := holidaySet(holidayItems)
	infos := fixtureInfos(s.cfg, fixtures)

	pool, err := ants.NewPool(auditWorkers)
	if err != nil {
		return AuditReport{}, fmt.Errorf("create audit worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make([]TeamAudit, 0, len(teams))
	)
	for _, t := range teams {
		t := t
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			audit := s.auditTeam(t, infos, window, holidays)
			mu.Lock()
			results = append(results, audit)
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			return AuditReport{}, fmt.Errorf("submit audit task: %w", submitErr)
		}
	}
	wg.Wait()

	sort.SliceStable(results, func(i, j int) bool { return results[i].TeamName < results[j].TeamName })

	report := AuditReport{
		SeasonID:    seasonItem.ID,
		GeneratedAt: time.Now().UTC(),
		Teams:       results,
		Clean:       true,
	}
	for _, audit := range results {
		if len(audit.Issues) > 0 {
			report.Clean = false
			break
		}
	}
	return report, nil
}

func (s *AuditService) auditTeam(t team.Team, all []schedule.FixtureInfo, window schedule.SeasonWindow, holidays schedule.DateSet) TeamAudit {
	audit := TeamAudit{TeamID: t.ID, TeamName: t.Name}

	var own []schedule.FixtureInfo
	for _, fx := range all {
		if fx.HomeTeamID == t.ID || fx.AwayTeamID == t.ID {
			own = append(own, fx)
		}
	}
	sort.SliceStable(own, func(i, j int) bool { return own[i].Date.Before(own[j].Date) })

	restCycle := s.cfg.RestCycleDays()
	for i, fx := range own {
		switch {
		case !window.Contains(fx.Date):
			audit.Issues = append(audit.Issues, fmt.Sprintf("fixture %s on %s is outside the season window", fx.ID, fx.Date))
		case window.InBreak(fx.Date):
			audit.Issues = append(audit.Issues, fmt.Sprintf("fixture %s on %s falls in the mid-season break", fx.ID, fx.Date))
		case holidays.Contains(fx.Date):
			audit.Issues = append(audit.Issues, fmt.Sprintf("fixture %s on %s falls on a holiday", fx.ID, fx.Date))
		case !s.cfg.IsGameWeekday(fx.Date):
			audit.Issues = append(audit.Issues, fmt.Sprintf("fixture %s on %s is not on a game weekday", fx.ID, fx.Date))
		}

		if i == 0 {
			continue
		}
		prev := own[i-1]
		gap := schedule.DaysApart(prev.Date, fx.Date)
		if gap == 0 {
			audit.Issues = append(audit.Issues, fmt.Sprintf("fixtures %s and %s share %s", prev.ID, fx.ID, fx.Date))
		} else if fx.Scheduled && prev.Scheduled && gap <= restCycle {
			audit.Issues = append(audit.Issues, fmt.Sprintf("fixtures %s and %s are %d days apart", prev.ID, fx.ID, gap))
		}
	}
	return audit
}
