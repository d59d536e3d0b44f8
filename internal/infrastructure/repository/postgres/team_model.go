package postgres

import (
	"database/sql"
	"time"

	"github.com/ufaleague/league-api/internal/domain/team"
)

type teamTableModel struct {
	ID            int64         `db:"id"`
	PublicID      string        `db:"public_id"`
	SeasonID      string        `db:"season_public_id"`
	Name          string        `db:"name"`
	DraftPosition sql.NullInt64 `db:"draft_position"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
	DeletedAt     *time.Time    `db:"deleted_at"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:            row.PublicID,
		SeasonID:      row.SeasonID,
		Name:          row.Name,
		DraftPosition: nullInt64ToIntPtr(row.DraftPosition),
	}
}
