package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ufaleague/league-api/internal/domain/holiday"
	qb "github.com/ufaleague/league-api/internal/platform/querybuilder"
)

type HolidayRepository struct {
	db *sqlx.DB
}

func NewHolidayRepository(db *sqlx.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

func (r *HolidayRepository) ListBySeason(ctx context.Context, seasonID string) ([]holiday.Range, error) {
	query, args, err := qb.Select("*").From("holidays").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("start_date", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select holidays by season query: %w", err)
	}

	var rows []holidayTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select holidays by season: %w", err)
	}

	out := make([]holiday.Range, 0, len(rows))
	for _, row := range rows {
		out = append(out, holidayFromRow(row))
	}

	return out, nil
}

func (r *HolidayRepository) Create(ctx context.Context, item holiday.Range) (holiday.Range, error) {
	insertModel := holidayInsertModel{
		PublicID:  item.ID,
		SeasonID:  item.SeasonID,
		Name:      item.Name,
		StartDate: item.StartDate.UTC(),
		EndDate:   item.EndDate.UTC(),
	}

	query, args, err := qb.InsertModel("holidays", insertModel, "RETURNING *")
	if err != nil {
		return holiday.Range{}, fmt.Errorf("build insert holiday query: %w", err)
	}

	var row holidayTableModel
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		return holiday.Range{}, fmt.Errorf("insert holiday: %w", err)
	}

	return holidayFromRow(row), nil
}

func (r *HolidayRepository) Delete(ctx context.Context, seasonID, holidayID string) (bool, error) {
	query, args, err := qb.Update("holidays").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.Eq("public_id", holidayID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete holiday query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete holiday: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete holiday rows affected: %w", err)
	}

	return affected > 0, nil
}
