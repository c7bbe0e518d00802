package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-dashboard/internal/domain/correction"
	qb "github.com/riskibarqy/league-dashboard/internal/platform/querybuilder"
)

var correctionSelectColumns = []string{
	"id", "division_id", "division_name", "team_id", "team_name", "category",
	"contact_name", "contact_email", "contact_role", "message", "status", "notes",
	"created_at", "updated_at",
}

type CorrectionRepository struct {
	db *sqlx.DB
}

func NewCorrectionRepository(db *sqlx.DB) *CorrectionRepository {
	return &CorrectionRepository{db: db}
}

func (r *CorrectionRepository) Create(ctx context.Context, item correction.Correction) (correction.Correction, error) {
	query, args, err := qb.InsertModel("score_corrections", correctionModelFromDomain(item), "RETURNING "+joinColumns(correctionSelectColumns))
	if err != nil {
		return correction.Correction{}, fmt.Errorf("build insert correction query: %w", err)
	}

	var row correctionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return correction.Correction{}, fmt.Errorf("insert correction: %w", err)
	}
	return row.toDomain(), nil
}

func (r *CorrectionRepository) List(ctx context.Context, limit int) ([]correction.Correction, error) {
	query, args, err := qb.Select(correctionSelectColumns...).From("score_corrections").
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select corrections query: %w", err)
	}

	var rows []correctionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select corrections: %w", err)
	}

	out := make([]correction.Correction, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Update applies only the fields present in the patch.
func (r *CorrectionRepository) Update(ctx context.Context, correctionID string, patch correction.Patch) (correction.Correction, bool, error) {
	builder := qb.Update("score_corrections")
	if patch.Status != nil {
		builder = builder.Set("status", string(*patch.Status))
	}
	if patch.SetNotes {
		builder = builder.Set("notes", nullStringFromPtr(patch.Notes))
	}

	query, args, err := builder.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", correctionID)).
		Suffix("RETURNING " + joinColumns(correctionSelectColumns)).
		ToSQL()
	if err != nil {
		return correction.Correction{}, false, fmt.Errorf("build update correction query: %w", err)
	}

	var row correctionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return correction.Correction{}, false, nil
		}
		return correction.Correction{}, false, fmt.Errorf("update correction: %w", err)
	}
	return row.toDomain(), true, nil
}
