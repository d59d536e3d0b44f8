package postgres

import (
	"time"

	"github.com/ufaleague/league-api/internal/domain/season"
)

type seasonTableModel struct {
	ID         int64      `db:"id"`
	PublicID   string     `db:"public_id"`
	Name       string     `db:"name"`
	StartDate  time.Time  `db:"start_date"`
	EndDate    time.Time  `db:"end_date"`
	BreakStart *time.Time `db:"break_start"`
	BreakEnd   *time.Time `db:"break_end"`
	Status     string     `db:"status"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:         row.PublicID,
		Name:       row.Name,
		StartDate:  row.StartDate.UTC(),
		EndDate:    row.EndDate.UTC(),
		BreakStart: utcDatePtr(row.BreakStart),
		BreakEnd:   utcDatePtr(row.BreakEnd),
		Status:     row.Status,
	}
}

func utcDatePtr(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	out := v.UTC()
	return &out
}
