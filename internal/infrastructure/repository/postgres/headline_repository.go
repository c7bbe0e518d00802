package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-dashboard/internal/domain/headline"
	qb "github.com/riskibarqy/league-dashboard/internal/platform/querybuilder"
)

var headlineSelectColumns = []string{"id", "division_id", "match_id", "title", "body", "created_at", "updated_at"}

type HeadlineRepository struct {
	db *sqlx.DB
}

func NewHeadlineRepository(db *sqlx.DB) *HeadlineRepository {
	return &HeadlineRepository{db: db}
}

func (r *HeadlineRepository) ListByDivision(ctx context.Context, divisionID string, limit int) ([]headline.Headline, error) {
	query, args, err := qb.Select(headlineSelectColumns...).From("headlines").
		Where(qb.Eq("division_id", divisionID)).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select headlines query: %w", err)
	}

	var rows []headlineTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select headlines by division: %w", err)
	}

	out := make([]headline.Headline, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *HeadlineRepository) GetByID(ctx context.Context, headlineID string) (headline.Headline, bool, error) {
	query, args, err := qb.Select(headlineSelectColumns...).From("headlines").
		Where(qb.Eq("id", headlineID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return headline.Headline{}, false, fmt.Errorf("build select headline by id query: %w", err)
	}

	var row headlineTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return headline.Headline{}, false, nil
		}
		return headline.Headline{}, false, fmt.Errorf("get headline by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *HeadlineRepository) Create(ctx context.Context, item headline.Headline) (headline.Headline, error) {
	query, args, err := qb.InsertModel("headlines", headlineModelFromDomain(item), "RETURNING "+joinColumns(headlineSelectColumns))
	if err != nil {
		return headline.Headline{}, fmt.Errorf("build insert headline query: %w", err)
	}

	var row headlineTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return headline.Headline{}, fmt.Errorf("insert headline: %w", err)
	}
	return row.toDomain(), nil
}

func (r *HeadlineRepository) Update(ctx context.Context, item headline.Headline) (headline.Headline, bool, error) {
	query, args, err := qb.Update("headlines").
		Set("division_id", item.DivisionID).
		Set("match_id", nullableString(item.MatchID)).
		Set("title", item.Title).
		Set("body", item.Body).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + joinColumns(headlineSelectColumns)).
		ToSQL()
	if err != nil {
		return headline.Headline{}, false, fmt.Errorf("build update headline query: %w", err)
	}

	var row headlineTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return headline.Headline{}, false, nil
		}
		return headline.Headline{}, false, fmt.Errorf("update headline: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *HeadlineRepository) Delete(ctx context.Context, headlineID string) (bool, error) {
	query, args, err := qb.DeleteFrom("headlines").Where(qb.Eq("id", headlineID)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete headline query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete headline: %w", err)
	}
	return affected(res)
}
