package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ufaleague/league-api/internal/domain/season"
	qb "github.com/ufaleague/league-api/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season: %w", err)
	}

	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) UpdateEndDate(ctx context.Context, seasonID string, endDate time.Time) (season.Season, error) {
	query, args, err := qb.Update("seasons").
		Set("end_date", endDate.UTC()).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return season.Season{}, fmt.Errorf("build update season end date query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		return season.Season{}, fmt.Errorf("update season end date: %w", err)
	}

	return seasonFromRow(row), nil
}

func (r *SeasonRepository) UpdateStatus(ctx context.Context, seasonID, status string) (season.Season, error) {
	query, args, err := qb.Update("seasons").
		Set("status", status).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return season.Season{}, fmt.Errorf("build update season status query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		return season.Season{}, fmt.Errorf("update season status: %w", err)
	}

	return seasonFromRow(row), nil
}
