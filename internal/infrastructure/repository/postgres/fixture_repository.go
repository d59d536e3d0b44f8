package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ufaleague/league-api/internal/domain/fixture"
	qb "github.com/ufaleague/league-api/internal/platform/querybuilder"
)

// FixtureRepository stores kickoffs as UTC instants and returns them in the
// league's zone, since every caller reasons about their civil dates there.
type FixtureRepository struct {
	db  *sqlx.DB
	loc *time.Location
}

func NewFixtureRepository(db *sqlx.DB, loc *time.Location) *FixtureRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &FixtureRepository{db: db, loc: loc}
}

func (r *FixtureRepository) ListBySeason(ctx context.Context, seasonID string) ([]fixture.Fixture, error) {
	query, args, err := fixtureBaseSelectBuilder().
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "matchweek", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures by season query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures by season: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixtureFromRow(row, r.loc))
	}

	return out, nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	query, args, err := fixtureBaseSelectBuilder().
		Where(
			qb.Eq("public_id", fixtureID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build get fixture query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err) {
			return r.getByIDLiteral(ctx, fixtureID)
		}
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("get fixture: %w", err)
	}

	return fixtureFromRow(row, r.loc), true, nil
}

func (r *FixtureRepository) getByIDLiteral(ctx context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	query, args, err := fixtureBaseSelectBuilder().
		Where(
			qb.EqLiteral("public_id", fixtureID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build get fixture literal fallback query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("get fixture literal fallback: %w", err)
	}

	return fixtureFromRow(row, r.loc), true, nil
}

func (r *FixtureRepository) Create(ctx context.Context, item fixture.Fixture) (fixture.Fixture, error) {
	query, args, err := qb.InsertModel("fixtures", fixtureToInsertModel(item), "RETURNING *")
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("build insert fixture query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		return fixture.Fixture{}, fmt.Errorf("insert fixture: %w", err)
	}

	return fixtureFromRow(row, r.loc), nil
}

func (r *FixtureRepository) Update(ctx context.Context, item fixture.Fixture) (fixture.Fixture, error) {
	query, args, err := qb.Update("fixtures").
		Set("home_team_name", item.HomeTeamName).
		Set("away_team_name", item.AwayTeamName).
		Set("kickoff_at", item.KickoffAt.UTC()).
		Set("venue", item.Venue).
		Set("matchweek", item.Matchweek).
		Set("status", item.Status).
		Set("home_score", intPtrToNullInt64(item.HomeScore)).
		Set("away_score", intPtrToNullInt64(item.AwayScore)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("build update fixture query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		return fixture.Fixture{}, fmt.Errorf("update fixture: %w", err)
	}

	return fixtureFromRow(row, r.loc), nil
}

func (r *FixtureRepository) Delete(ctx context.Context, fixtureID string) (bool, error) {
	query, args, err := qb.Update("fixtures").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", fixtureID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete fixture query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete fixture: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete fixture rows affected: %w", err)
	}

	return affected > 0, nil
}

// ReplaceBySeason soft-deletes the season's current fixtures and inserts the
// new set inside one transaction.
func (r *FixtureRepository) ReplaceBySeason(ctx context.Context, seasonID string, items []fixture.Fixture) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin replace fixtures tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("fixtures").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build clear fixtures query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return 0, fmt.Errorf("clear fixtures for season %s: %w", seasonID, err)
	}

	for _, item := range items {
		query, args, err := qb.InsertModel("fixtures", fixtureToInsertModel(item), "")
		if err != nil {
			return 0, fmt.Errorf("build insert fixture %s query: %w", item.ID, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("insert fixture %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit replace fixtures tx: %w", err)
	}

	return len(items), nil
}

// ApplyKickoffUpdates moves a batch of fixtures in one transaction; a missing
// fixture aborts the whole batch.
func (r *FixtureRepository) ApplyKickoffUpdates(ctx context.Context, updates []fixture.KickoffUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin kickoff updates tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	applied := 0
	for _, u := range updates {
		query, args, err := qb.Update("fixtures").
			Set("kickoff_at", u.KickoffAt.UTC()).
			SetExpr("updated_at", "NOW()").
			Where(
				qb.Eq("public_id", u.FixtureID),
				qb.IsNull("deleted_at"),
			).
			ToSQL()
		if err != nil {
			return 0, fmt.Errorf("build kickoff update %s query: %w", u.FixtureID, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("update kickoff for fixture %s: %w", u.FixtureID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("kickoff update rows affected: %w", err)
		}
		if affected == 0 {
			return 0, fmt.Errorf("update kickoff: fixture %s not found", u.FixtureID)
		}
		applied++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit kickoff updates tx: %w", err)
	}

	return applied, nil
}

func fixtureBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("fixtures")
}
