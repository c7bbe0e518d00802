package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-dashboard/internal/domain/division"
	qb "github.com/riskibarqy/league-dashboard/internal/platform/querybuilder"
)

var divisionSelectColumns = []string{"id", "league_id", "name", "short_name", "age_group", "sort_order", "created_at"}

type DivisionRepository struct {
	db *sqlx.DB
}

func NewDivisionRepository(db *sqlx.DB) *DivisionRepository {
	return &DivisionRepository{db: db}
}

func (r *DivisionRepository) List(ctx context.Context) ([]division.Division, error) {
	query, args, err := qb.Select(divisionSelectColumns...).From("divisions").
		OrderBy("sort_order", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select divisions query: %w", err)
	}

	var rows []divisionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select divisions: %w", err)
	}

	out := make([]division.Division, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *DivisionRepository) GetByID(ctx context.Context, divisionID string) (division.Division, bool, error) {
	query, args, err := qb.Select(divisionSelectColumns...).From("divisions").
		Where(qb.Eq("id", divisionID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return division.Division{}, false, fmt.Errorf("build select division by id query: %w", err)
	}

	var row divisionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return division.Division{}, false, nil
		}
		return division.Division{}, false, fmt.Errorf("get division by id: %w", err)
	}
	return row.toDomain(), true, nil
}
