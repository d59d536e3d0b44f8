package memory

import (
	"time"

	"github.com/ufaleague/league-api/internal/domain/holiday"
	"github.com/ufaleague/league-api/internal/domain/season"
	"github.com/ufaleague/league-api/internal/domain/team"
)

const SeasonID2026 = "ufa-2026"

func intPtr(v int) *int { return &v }

func SeedSeasons() []season.Season {
	breakStart := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)
	breakEnd := time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC)

	return []season.Season{
		{
			ID:         SeasonID2026,
			Name:       "UFA League 2026",
			StartDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
			BreakStart: &breakStart,
			BreakEnd:   &breakEnd,
			Status:     season.StatusActive,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "ufa-reef-rovers", SeasonID: SeasonID2026, Name: "Reef Rovers", DraftPosition: intPtr(1)},
		{ID: "ufa-atoll-united", SeasonID: SeasonID2026, Name: "Atoll United", DraftPosition: intPtr(2)},
		{ID: "ufa-lagoon-fc", SeasonID: SeasonID2026, Name: "Lagoon FC", DraftPosition: intPtr(3)},
		{ID: "ufa-coral-city", SeasonID: SeasonID2026, Name: "Coral City", DraftPosition: intPtr(4)},
		{ID: "ufa-harbour-sc", SeasonID: SeasonID2026, Name: "Harbour SC", DraftPosition: intPtr(5)},
	}
}

func SeedHolidays() []holiday.Range {
	return []holiday.Range{
		{
			ID:        "hol-eid-2026",
			SeasonID:  SeasonID2026,
			Name:      "Eid al-Fitr",
			StartDate: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC),
		},
	}
}
