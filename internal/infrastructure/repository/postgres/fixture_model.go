package postgres

import (
	"database/sql"
	"time"

	"github.com/ufaleague/league-api/internal/domain/fixture"
)

type fixtureTableModel struct {
	ID           int64         `db:"id"`
	PublicID     string        `db:"public_id"`
	SeasonID     string        `db:"season_public_id"`
	HomeTeamID   string        `db:"home_team_public_id"`
	AwayTeamID   string        `db:"away_team_public_id"`
	HomeTeamName string        `db:"home_team_name"`
	AwayTeamName string        `db:"away_team_name"`
	KickoffAt    time.Time     `db:"kickoff_at"`
	Venue        string        `db:"venue"`
	Matchweek    int           `db:"matchweek"`
	Status       string        `db:"status"`
	HomeScore    sql.NullInt64 `db:"home_score"`
	AwayScore    sql.NullInt64 `db:"away_score"`
	CreatedAt    time.Time     `db:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"`
	DeletedAt    *time.Time    `db:"deleted_at"`
}

type fixtureInsertModel struct {
	PublicID     string        `db:"public_id"`
	SeasonID     string        `db:"season_public_id"`
	HomeTeamID   string        `db:"home_team_public_id"`
	AwayTeamID   string        `db:"away_team_public_id"`
	HomeTeamName string        `db:"home_team_name"`
	AwayTeamName string        `db:"away_team_name"`
	KickoffAt    time.Time     `db:"kickoff_at"`
	Venue        string        `db:"venue"`
	Matchweek    int           `db:"matchweek"`
	Status       string        `db:"status"`
	HomeScore    sql.NullInt64 `db:"home_score"`
	AwayScore    sql.NullInt64 `db:"away_score"`
}

func fixtureToInsertModel(item fixture.Fixture) fixtureInsertModel {
	return fixtureInsertModel{
		PublicID:     item.ID,
		SeasonID:     item.SeasonID,
		HomeTeamID:   item.HomeTeamID,
		AwayTeamID:   item.AwayTeamID,
		HomeTeamName: item.HomeTeamName,
		AwayTeamName: item.AwayTeamName,
		KickoffAt:    item.KickoffAt.UTC(),
		Venue:        item.Venue,
		Matchweek:    item.Matchweek,
		Status:       item.Status,
		HomeScore:    intPtrToNullInt64(item.HomeScore),
		AwayScore:    intPtrToNullInt64(item.AwayScore),
	}
}

func fixtureFromRow(row fixtureTableModel, loc *time.Location) fixture.Fixture {
	return fixture.Fixture{
		ID:           row.PublicID,
		SeasonID:     row.SeasonID,
		HomeTeamID:   row.HomeTeamID,
		AwayTeamID:   row.AwayTeamID,
		HomeTeamName: row.HomeTeamName,
		AwayTeamName: row.AwayTeamName,
		KickoffAt:    row.KickoffAt.In(loc),
		Venue:        row.Venue,
		Matchweek:    row.Matchweek,
		Status:       row.Status,
		HomeScore:    nullInt64ToIntPtr(row.HomeScore),
		AwayScore:    nullInt64ToIntPtr(row.AwayScore),
	}
}
