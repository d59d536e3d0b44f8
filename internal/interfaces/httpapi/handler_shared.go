package httpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/ufaleague/league-api/internal/domain/fixture"
	"github.com/ufaleague/league-api/internal/domain/holiday"
	"github.com/ufaleague/league-api/internal/domain/schedule"
	"github.com/ufaleague/league-api/internal/domain/season"
	"github.com/ufaleague/league-api/internal/domain/team"
	"github.com/ufaleague/league-api/internal/usecase"
)

// Request payloads. All dates travel as "YYYY-MM-DD" strings; kickoff
// instants in responses are RFC 3339.

type updateSeasonEndDateRequest struct {
	EndDate string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

type updateSeasonStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft active complete"`
}

type renameTeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type setDraftPositionRequest struct {
	DraftPosition int `json:"draftPosition" validate:"required,gte=1"`
}

type createHolidayRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

type createFixtureRequest struct {
	HomeTeamID string `json:"homeTeamId" validate:"required"`
	AwayTeamID string `json:"awayTeamId" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Venue      string `json:"venue" validate:"omitempty,max=120"`
	Matchweek  int    `json:"matchweek" validate:"omitempty,gte=1"`
}

type updateFixtureRequest struct {
	HomeTeamID *string `json:"homeTeamId" validate:"omitempty,min=1"`
	AwayTeamID *string `json:"awayTeamId" validate:"omitempty,min=1"`
	Date       *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Venue      *string `json:"venue" validate:"omitempty,max=120"`
	Matchweek  *int    `json:"matchweek" validate:"omitempty,gte=1"`
}

type recordResultRequest struct {
	HomeScore int `json:"homeScore" validate:"gte=0"`
	AwayScore int `json:"awayScore" validate:"gte=0"`
}

type moveFixtureRequest struct {
	NewDate string `json:"newDate" validate:"required,datetime=2006-01-02"`
}

type cascadePreviewRequest struct {
	FixtureID string `json:"fixtureId" validate:"required"`
	NewDate   string `json:"newDate" validate:"required,datetime=2006-01-02"`
}

type cascadeRecheckRequest struct {
	FixtureID    string            `json:"fixtureId" validate:"required"`
	NewDate      string            `json:"newDate" validate:"required,datetime=2006-01-02"`
	Overrides    map[string]string `json:"overrides" validate:"omitempty,dive,datetime=2006-01-02"`
	RowFixtureID string            `json:"rowFixtureId" validate:"required"`
	OverrideDate string            `json:"overrideDate" validate:"required,datetime=2006-01-02"`
}

type cascadeConfirmRequest struct {
	FixtureID string            `json:"fixtureId" validate:"required"`
	NewDate   string            `json:"newDate" validate:"required,datetime=2006-01-02"`
	Overrides map[string]string `json:"overrides" validate:"omitempty,dive,datetime=2006-01-02"`
}

// Response DTOs.

type seasonDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	BreakStart string `json:"breakStart,omitempty"`
	BreakEnd   string `json:"breakEnd,omitempty"`
	Status     string `json:"status"`
}

type seasonStatusDTO struct {
	Season            seasonDTO `json:"season"`
	TeamCount         int       `json:"teamCount"`
	FixtureCount      int       `json:"fixtureCount"`
	CompletedFixtures int       `json:"completedFixtures"`
	NextKickoff       string    `json:"nextKickoff,omitempty"`
	CurrentMatchweek  int       `json:"currentMatchweek"`
}

type teamDTO struct {
	ID            string `json:"id"`
	SeasonID      string `json:"seasonId"`
	Name          string `json:"name"`
	DraftPosition *int   `json:"draftPosition,omitempty"`
}

type holidayDTO struct {
	ID        string `json:"id"`
	SeasonID  string `json:"seasonId"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type fixtureDTO struct {
	ID           string `json:"id"`
	SeasonID     string `json:"seasonId"`
	HomeTeamID   string `json:"homeTeamId"`
	AwayTeamID   string `json:"awayTeamId"`
	HomeTeam     string `json:"homeTeam"`
	AwayTeam     string `json:"awayTeam"`
	Kickoff      string `json:"kickoffAt"`
	Date         string `json:"date"`
	Venue        string `json:"venue"`
	Matchweek    int    `json:"matchweek"`
	Status       string `json:"status"`
	HomeScore    *int   `json:"homeScore,omitempty"`
	AwayScore    *int   `json:"awayScore,omitempty"`
}

type autoScheduleResultDTO struct {
	FixtureCount   int `json:"fixtureCount"`
	Matchweeks     int `json:"matchweeks"`
	SlotsAvailable int `json:"slotsAvailable"`
	SlotsUsed      int `json:"slotsUsed"`
}

type cascadeRowDTO struct {
	FixtureID    string `json:"fixtureId"`
	HomeTeam     string `json:"homeTeam"`
	AwayTeam     string `json:"awayTeam"`
	OriginalDate string `json:"originalDate"`
	ProposedDate string `json:"proposedDate"`
	FinalDate    string `json:"finalDate"`
	Flag         string `json:"flag"`
	Override     string `json:"override,omitempty"`
}

type cascadePreviewDTO struct {
	PostponedFixtureID string          `json:"postponedFixtureId"`
	NewDate            string          `json:"newDate"`
	Rows               []cascadeRowDTO `json:"rows"`
}

type cascadeConfirmDTO struct {
	UpdatedFixtures int `json:"updatedFixtures"`
}

type moveCandidateDTO struct {
	Date     string `json:"date"`
	Validity string `json:"validity"`
}

type teamAuditDTO struct {
	TeamID   string   `json:"teamId"`
	TeamName string   `json:"teamName"`
	Issues   []string `json:"issues,omitempty"`
}

type auditReportDTO struct {
	SeasonID    string         `json:"seasonId"`
	GeneratedAt string         `json:"generatedAt"`
	Teams       []teamAuditDTO `json:"teams"`
	Clean       bool           `json:"clean"`
}

type seasonSummaryDTO struct {
	Season            seasonDTO    `json:"season"`
	Teams             []teamDTO    `json:"teams"`
	Holidays          []holidayDTO `json:"holidays"`
	FixtureCount      int          `json:"fixtureCount"`
	CompletedFixtures int          `json:"completedFixtures"`
	RemainingFixtures int          `json:"remainingFixtures"`
	NextFixture       *fixtureDTO  `json:"nextFixture,omitempty"`
	LastCompleted     *fixtureDTO  `json:"lastCompleted,omitempty"`
}

// parseDateField turns a request date string into the UTC-midnight instant the
// usecase layer expects. Validation has already checked the layout; this is
// the final authority on range errors like "2026-02-30".
func parseDateField(field, value string) (time.Time, error) {
	d, err := schedule.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", usecase.ErrInvalidInput, field, err)
	}
	return d.Time(), nil
}

func parseOverrides(overrides map[string]string) (map[string]time.Time, error) {
	if len(overrides) == 0 {
		return nil, nil
	}
	out := make(map[string]time.Time, len(overrides))
	for fixtureID, value := range overrides {
		at, err := parseDateField("overrides."+fixtureID, value)
		if err != nil {
			return nil, err
		}
		out[fixtureID] = at
	}
	return out, nil
}

func seasonToDTO(ctx context.Context, v season.Season) seasonDTO {
	ctx, span := startSpan(ctx, "httpapi.seasonToDTO")
	defer span.End()

	dto := seasonDTO{
		ID:        v.ID,
		Name:      v.Name,
		StartDate: schedule.DateOf(v.StartDate).String(),
		EndDate:   schedule.DateOf(v.EndDate).String(),
		Status:    v.Status,
	}
	if v.BreakStart != nil && v.BreakEnd != nil {
		dto.BreakStart = schedule.DateOf(*v.BreakStart).String()
		dto.BreakEnd = schedule.DateOf(*v.BreakEnd).String()
	}
	return dto
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	dto := teamDTO{
		ID:       v.ID,
		SeasonID: v.SeasonID,
		Name:     v.Name,
	}
	if v.DraftPosition != nil {
		position := *v.DraftPosition
		dto.DraftPosition = &position
	}
	return dto
}

func holidayToDTO(ctx context.Context, v holiday.Range) holidayDTO {
	ctx, span := startSpan(ctx, "httpapi.holidayToDTO")
	defer span.End()

	return holidayDTO{
		ID:        v.ID,
		SeasonID:  v.SeasonID,
		Name:      v.Name,
		StartDate: schedule.DateOf(v.StartDate).String(),
		EndDate:   schedule.DateOf(v.EndDate).String(),
	}
}

func fixtureToDTO(ctx context.Context, v fixture.Fixture) fixtureDTO {
	ctx, span := startSpan(ctx, "httpapi.fixtureToDTO")
	defer span.End()

	return fixtureDTO{
		ID:         v.ID,
		SeasonID:   v.SeasonID,
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		HomeTeam:   v.HomeTeamName,
		AwayTeam:   v.AwayTeamName,
		Kickoff:    v.KickoffAt.UTC().Format(time.RFC3339),
		Date:       schedule.DateOf(v.KickoffAt).String(),
		Venue:      v.Venue,
		Matchweek:  v.Matchweek,
		Status:     v.Status,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
	}
}

func cascadeRowToDTO(ctx context.Context, row schedule.CascadeRow) cascadeRowDTO {
	ctx, span := startSpan(ctx, "httpapi.cascadeRowToDTO")
	defer span.End()

	dto := cascadeRowDTO{
		FixtureID:    row.FixtureID,
		HomeTeam:     row.HomeTeamName,
		AwayTeam:     row.AwayTeamName,
		OriginalDate: row.OriginalDate.String(),
		ProposedDate: row.ProposedDate.String(),
		FinalDate:    row.FinalDate().String(),
		Flag:         string(row.Flag),
	}
	if row.Override != nil {
		dto.Override = row.Override.String()
	}
	return dto
}

func cascadePreviewToDTO(ctx context.Context, preview usecase.CascadePreview) cascadePreviewDTO {
	ctx, span := startSpan(ctx, "httpapi.cascadePreviewToDTO")
	defer span.End()

	rows := make([]cascadeRowDTO, 0, len(preview.Rows))
	for _, row := range preview.Rows {
		rows = append(rows, cascadeRowToDTO(ctx, row))
	}
	return cascadePreviewDTO{
		PostponedFixtureID: preview.PostponedFixtureID,
		NewDate:            preview.NewDate.String(),
		Rows:               rows,
	}
}

func auditReportToDTO(ctx context.Context, report usecase.AuditReport) auditReportDTO {
	ctx, span := startSpan(ctx, "httpapi.auditReportToDTO")
	defer span.End()

	teams := make([]teamAuditDTO, 0, len(report.Teams))
	for _, audit := range report.Teams {
		teams = append(teams, teamAuditDTO{
			TeamID:   audit.TeamID,
			TeamName: audit.TeamName,
			Issues:   audit.Issues,
		})
	}
	return auditReportDTO{
		SeasonID:    report.SeasonID,
		GeneratedAt: report.GeneratedAt.UTC().Format(time.RFC3339),
		Teams:       teams,
		Clean:       report.Clean,
	}
}

func seasonSummaryToDTO(ctx context.Context, summary usecase.SeasonSummary) seasonSummaryDTO {
	ctx, span := startSpan(ctx, "httpapi.seasonSummaryToDTO")
	defer span.End()

	dto := seasonSummaryDTO{
		Season:            seasonToDTO(ctx, summary.Season),
		Teams:             make([]teamDTO, 0, len(summary.Teams)),
		Holidays:          make([]holidayDTO, 0, len(summary.Holidays)),
		FixtureCount:      summary.FixtureCount,
		CompletedFixtures: summary.CompletedFixtures,
		RemainingFixtures: summary.RemainingFixtures,
	}
	for _, t := range summary.Teams {
		dto.Teams = append(dto.Teams, teamToDTO(ctx, t))
	}
	for _, hd := range summary.Holidays {
		dto.Holidays = append(dto.Holidays, holidayToDTO(ctx, hd))
	}
	if summary.NextFixture != nil {
		next := fixtureToDTO(ctx, *summary.NextFixture)
		dto.NextFixture = &next
	}
	if summary.LastCompleted != nil {
		last := fixtureToDTO(ctx, *summary.LastCompleted)
		dto.LastCompleted = &last
	}
	return dto
}
