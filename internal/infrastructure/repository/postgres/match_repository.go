package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	qb "github.com/riskibarqy/league-dashboard/internal/platform/querybuilder"
)

var (
	matchSelectColumns = []string{
		"id", "division_id", "match_date", "home_team_id", "away_team_id",
		"home_score", "away_score", "notes", "created_at", "updated_at",
	}
	goalSelectColumns = []string{"id", "match_id", "team_id", "player_id", "minute", "is_own_goal", "created_at"}
)

// MatchRepository stores matches with their goals. Goal rows are always
// written in the same transaction as their match.
type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByDivision(ctx context.Context, divisionID string) ([]match.Match, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("division_id", divisionID)).
		OrderBy("match_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by division query: %w", err)
	}
	return r.selectMatches(ctx, "matches by division", query, args)
}

func (r *MatchRepository) ListRecentByDivision(ctx context.Context, divisionID string, limit int) ([]match.Match, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("division_id", divisionID)).
		OrderBy("match_date DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select recent matches query: %w", err)
	}
	return r.selectMatches(ctx, "recent matches", query, args)
}

func (r *MatchRepository) ListByTeam(ctx context.Context, divisionID, teamID string) ([]match.Match, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(
			qb.Eq("division_id", divisionID),
			qb.Expr("(home_team_id = ? OR away_team_id = ?)", teamID, teamID),
		).
		OrderBy("match_date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by team query: %w", err)
	}
	return r.selectMatches(ctx, "matches by team", query, args)
}

func (r *MatchRepository) selectMatches(ctx context.Context, what, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", what, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) ListGoalsByMatches(ctx context.Context, matchIDs []string) ([]match.Goal, error) {
	if len(matchIDs) == 0 {
		return []match.Goal{}, nil
	}

	query, args, err := qb.Select(goalSelectColumns...).From("goals").
		Where(qb.InStrings("match_id", matchIDs)).
		OrderBy("match_id", "minute NULLS LAST", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goals by matches query: %w", err)
	}

	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select goals by matches: %w", err)
	}

	out := make([]match.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match, goals []match.Goal) (match.Match, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return match.Match{}, fmt.Errorf("begin tx for match create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertModel("matches", matchModelFromDomain(item), "RETURNING "+joinColumns(matchSelectColumns))
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}
	var row matchTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	if err := insertGoals(ctx, tx, goals); err != nil {
		return match.Match{}, err
	}

	if err := tx.Commit(); err != nil {
		return match.Match{}, fmt.Errorf("commit match create tx: %w", err)
	}
	return row.toDomain(), nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match, goals []match.Goal) (match.Match, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("begin tx for match update: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.Update("matches").
		Set("division_id", item.DivisionID).
		Set("match_date", item.MatchDate.UTC()).
		Set("home_team_id", item.HomeTeamID).
		Set("away_team_id", item.AwayTeamID).
		Set("home_score", item.HomeScore).
		Set("away_score", item.AwayScore).
		Set("notes", item.Notes).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + joinColumns(matchSelectColumns)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build update match query: %w", err)
	}
	var row matchTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("update match: %w", err)
	}

	if err := deleteGoals(ctx, tx, item.ID); err != nil {
		return match.Match{}, false, err
	}
	if err := insertGoals(ctx, tx, goals); err != nil {
		return match.Match{}, false, err
	}

	if err := tx.Commit(); err != nil {
		return match.Match{}, false, fmt.Errorf("commit match update tx: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx for match delete: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := deleteGoals(ctx, tx, matchID); err != nil {
		return false, err
	}

	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("id", matchID)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete match query: %w", err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete match: %w", err)
	}
	deleted, err := affected(res)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit match delete tx: %w", err)
	}
	return deleted, nil
}

func insertGoals(ctx context.Context, tx *sqlx.Tx, goals []match.Goal) error {
	if len(goals) == 0 {
		return nil
	}

	models := make([]goalTableModel, 0, len(goals))
	for _, goal := range goals {
		models = append(models, goalModelFromDomain(goal))
	}
	query, args, err := qb.InsertModels("goals", modelsToAny(models), "")
	if err != nil {
		return fmt.Errorf("build insert goals query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert goals: %w", err)
	}
	return nil
}

func deleteGoals(ctx context.Context, tx *sqlx.Tx, matchID string) error {
	query, args, err := qb.DeleteFrom("goals").Where(qb.Eq("match_id", matchID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete goals query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete goals of match=%s: %w", matchID, err)
	}
	return nil
}
