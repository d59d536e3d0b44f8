package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ufaleague/league-api/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo season into an empty database so a fresh
// deployment serves data immediately. A database that already holds a season
// is left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM seasons WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count seasons for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, s := range memory.SeedSeasons() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO seasons (public_id, name, start_date, end_date, break_start, break_end, status)
VALUES (:public_id, :name, :start_date, :end_date, :break_start, :break_end, :status)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":   s.ID,
			"name":        s.Name,
			"start_date":  s.StartDate,
			"end_date":    s.EndDate,
			"break_start": s.BreakStart,
			"break_end":   s.BreakEnd,
			"status":      s.Status,
		})
		if err != nil {
			return fmt.Errorf("bind seed season %s query: %w", s.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed season %s: %w", s.ID, err)
		}
	}

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (public_id, season_public_id, name, draft_position)
VALUES (:public_id, :season_public_id, :name, :draft_position)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":        t.ID,
			"season_public_id": t.SeasonID,
			"name":             t.Name,
			"draft_position":   intPtrToNullInt64(t.DraftPosition),
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
	}

	for _, h := range memory.SeedHolidays() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO holidays (public_id, season_public_id, name, start_date, end_date)
VALUES (:public_id, :season_public_id, :name, :start_date, :end_date)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":        h.ID,
			"season_public_id": h.SeasonID,
			"name":             h.Name,
			"start_date":       h.StartDate,
			"end_date":         h.EndDate,
		})
		if err != nil {
			return fmt.Errorf("bind seed holiday %s query: %w", h.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed holiday %s: %w", h.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
