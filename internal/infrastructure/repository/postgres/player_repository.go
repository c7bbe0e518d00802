package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-dashboard/internal/domain/player"
	qb "github.com/riskibarqy/league-dashboard/internal/platform/querybuilder"
)

var playerSelectColumns = []string{"id", "team_id", "name", "number", "position", "created_at", "updated_at"}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByTeams(ctx context.Context, teamIDs []string) ([]player.Player, error) {
	if len(teamIDs) == 0 {
		return []player.Player{}, nil
	}
	return r.list(ctx, "players by teams", qb.InStrings("team_id", teamIDs))
}

func (r *PlayerRepository) ListByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}
	return r.list(ctx, "players by ids", qb.InStrings("id", playerIDs))
}

func (r *PlayerRepository) list(ctx context.Context, what string, condition qb.Condition) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(condition).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", what, err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", what, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerModelFromDomain(item), "RETURNING "+joinColumns(playerSelectColumns))
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return player.Player{}, fmt.Errorf("insert player: %w", player.ErrUnknownTeam)
		}
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}
	return row.toDomain(), nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (player.Player, bool, error) {
	query, args, err := qb.Update("players").
		Set("team_id", item.TeamID).
		Set("name", item.Name).
		Set("number", nullableInt(item.Number)).
		Set("position", item.Position).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + joinColumns(playerSelectColumns)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build update player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		if isForeignKeyViolation(err) {
			return player.Player{}, false, fmt.Errorf("update player: %w", player.ErrUnknownTeam)
		}
		return player.Player{}, false, fmt.Errorf("update player: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) (bool, error) {
	query, args, err := qb.DeleteFrom("players").Where(qb.Eq("id", playerID)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}
	return affected(res)
}
