package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/headline"
)

type headlineTableModel struct {
	ID         string         `db:"id"`
	DivisionID string         `db:"division_id"`
	MatchID    sql.NullString `db:"match_id"`
	Title      string         `db:"title"`
	Body       string         `db:"body"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" qb:"readonly"`
}

func headlineModelFromDomain(item headline.Headline) headlineTableModel {
	createdAt := item.CreatedAt.UTC()
	if item.CreatedAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return headlineTableModel{
		ID:         item.ID,
		DivisionID: item.DivisionID,
		MatchID:    nullableString(item.MatchID),
		Title:      item.Title,
		Body:       item.Body,
		CreatedAt:  createdAt,
	}
}

func (m headlineTableModel) toDomain() headline.Headline {
	return headline.Headline{
		ID:         m.ID,
		MatchID:    m.MatchID.String,
		DivisionID: m.DivisionID,
		Title:      m.Title,
		Body:       m.Body,
		CreatedAt:  m.CreatedAt.UTC(),
	}
}
