package postgres

import (
	"time"

	"github.com/ufaleague/league-api/internal/domain/holiday"
)

type holidayTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	SeasonID  string     `db:"season_public_id"`
	Name      string     `db:"name"`
	StartDate time.Time  `db:"start_date"`
	EndDate   time.Time  `db:"end_date"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type holidayInsertModel struct {
	PublicID  string    `db:"public_id"`
	SeasonID  string    `db:"season_public_id"`
	Name      string    `db:"name"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
}

func holidayFromRow(row holidayTableModel) holiday.Range {
	return holiday.Range{
		ID:        row.PublicID,
		SeasonID:  row.SeasonID,
		Name:      row.Name,
		StartDate: row.StartDate.UTC(),
		EndDate:   row.EndDate.UTC(),
	}
}
