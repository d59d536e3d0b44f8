package usecase

import (
	"time"

	"github.com/ufaleague/league-api/internal/domain/fixture"
	"github.com/ufaleague/league-api/internal/domain/holiday"
	"github.com/ufaleague/league-api/internal/domain/schedule"
	"github.com/ufaleague/league-api/internal/domain/season"
	"github.com/ufaleague/league-api/internal/domain/team"
	"github.com/ufaleague/league-api/internal/infrastructure/repository/memory"
	"github.com/ufaleague/league-api/internal/platform/id"
)

const testSeasonID = "season-2026"

var testCfg = schedule.Config{
	GameWeekdays:  [2]time.Weekday{time.Tuesday, time.Friday},
	KickoffHour:   20,
	KickoffMinute: 30,
	Location:      time.UTC,
	DefaultVenue:  "Central Ground",
}

func day(value string) time.Time {
	return schedule.MustParseDate(value).Time()
}

func kickoff(value string) time.Time {
	return testCfg.KickoffAt(schedule.MustParseDate(value))
}

func draftPos(v int) *int { return &v }

func testSeason() season.Season {
	return season.Season{
		ID:        testSeasonID,
		Name:      "Test Season 2026",
		StartDate: day("2026-01-01"),
		EndDate:   day("2026-03-31"),
		Status:    season.StatusActive,
	}
}

func testTeams() []team.Team {
	return []team.Team{
		{ID: "team-a", SeasonID: testSeasonID, Name: "Anchors", DraftPosition: draftPos(1)},
		{ID: "team-b", SeasonID: testSeasonID, Name: "Bulls", DraftPosition: draftPos(2)},
		{ID: "team-c", SeasonID: testSeasonID, Name: "Comets", DraftPosition: draftPos(3)},
		{ID: "team-d", SeasonID: testSeasonID, Name: "Drifters", DraftPosition: draftPos(4)},
		{ID: "team-e", SeasonID: testSeasonID, Name: "Eagles", DraftPosition: draftPos(5)},
	}
}

// testDeps bundles the memory-backed repositories every service test needs.
type testDeps struct {
	seasonRepo  *memory.SeasonRepository
	teamRepo    *memory.TeamRepository
	fixtureRepo *memory.FixtureRepository
	holidayRepo *memory.HolidayRepository
	idGen       id.Generator
}

func newTestDeps(fixtures []fixture.Fixture, holidays []holiday.Range) *testDeps {
	return &testDeps{
		seasonRepo:  memory.NewSeasonRepository([]season.Season{testSeason()}),
		teamRepo:    memory.NewTeamRepository(testTeams()),
		fixtureRepo: memory.NewFixtureRepository(fixtures),
		holidayRepo: memory.NewHolidayRepository(holidays),
		idGen:       id.NewRandomGenerator(),
	}
}

func (d *testDeps) scheduleService() *ScheduleService {
	return NewScheduleService(d.seasonRepo, d.teamRepo, d.fixtureRepo, d.holidayRepo, d.idGen, testCfg, nil)
}

func (d *testDeps) cascadeService() *CascadeService {
	return NewCascadeService(d.seasonRepo, d.fixtureRepo, d.holidayRepo, testCfg, nil)
}

func (d *testDeps) fixtureService() *FixtureService {
	return NewFixtureService(d.seasonRepo, d.teamRepo, d.fixtureRepo, d.holidayRepo, d.idGen, testCfg, nil)
}
