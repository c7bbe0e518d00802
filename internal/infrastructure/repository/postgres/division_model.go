package postgres

import (
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/division"
)

type divisionTableModel struct {
	ID        string    `db:"id"`
	LeagueID  string    `db:"league_id"`
	Name      string    `db:"name"`
	ShortName string    `db:"short_name"`
	AgeGroup  string    `db:"age_group"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at" qb:"readonly"`
}

func (m divisionTableModel) toDomain() division.Division {
	return division.Division{
		ID:        m.ID,
		LeagueID:  m.LeagueID,
		Name:      m.Name,
		ShortName: m.ShortName,
		AgeGroup:  m.AgeGroup,
	}
}
