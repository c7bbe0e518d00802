package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/player"
)

type playerTableModel struct {
	ID        string        `db:"id"`
	TeamID    string        `db:"team_id"`
	Name      string        `db:"name"`
	Number    sql.NullInt64 `db:"number"`
	Position  string        `db:"position"`
	CreatedAt time.Time     `db:"created_at" qb:"readonly"`
	UpdatedAt time.Time     `db:"updated_at" qb:"readonly"`
}

func playerModelFromDomain(item player.Player) playerTableModel {
	return playerTableModel{
		ID:       item.ID,
		TeamID:   item.TeamID,
		Name:     item.Name,
		Number:   nullableInt(item.Number),
		Position: item.Position,
	}
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:       m.ID,
		TeamID:   m.TeamID,
		Name:     m.Name,
		Number:   nullIntToPtr(m.Number),
		Position: m.Position,
	}
}
