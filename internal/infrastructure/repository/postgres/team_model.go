package postgres

import (
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/team"
)

type teamTableModel struct {
	ID         string    `db:"id"`
	DivisionID string    `db:"division_id"`
	Name       string    `db:"name"`
	ShortName  string    `db:"short_name"`
	BadgeURL   string    `db:"badge_url"`
	CreatedAt  time.Time `db:"created_at" qb:"readonly"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:         m.ID,
		DivisionID: m.DivisionID,
		Name:       m.Name,
		ShortName:  m.ShortName,
		BadgeURL:   m.BadgeURL,
	}
}
