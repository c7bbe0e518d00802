package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/match"
)

type matchTableModel struct {
	ID         string    `db:"id"`
	DivisionID string    `db:"division_id"`
	MatchDate  time.Time `db:"match_date"`
	HomeTeamID string    `db:"home_team_id"`
	AwayTeamID string    `db:"away_team_id"`
	HomeScore  int       `db:"home_score"`
	AwayScore  int       `db:"away_score"`
	Notes      string    `db:"notes"`
	CreatedAt  time.Time `db:"created_at" qb:"readonly"`
	UpdatedAt  time.Time `db:"updated_at" qb:"readonly"`
}

type goalTableModel struct {
	ID        string         `db:"id"`
	MatchID   string         `db:"match_id"`
	TeamID    string         `db:"team_id"`
	PlayerID  sql.NullString `db:"player_id"`
	Minute    sql.NullInt64  `db:"minute"`
	IsOwnGoal bool           `db:"is_own_goal"`
	CreatedAt time.Time      `db:"created_at" qb:"readonly"`
}

func matchModelFromDomain(item match.Match) matchTableModel {
	return matchTableModel{
		ID:         item.ID,
		DivisionID: item.DivisionID,
		MatchDate:  item.MatchDate.UTC(),
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
		HomeScore:  item.HomeScore,
		AwayScore:  item.AwayScore,
		Notes:      item.Notes,
	}
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:         m.ID,
		DivisionID: m.DivisionID,
		MatchDate:  m.MatchDate.UTC(),
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		Notes:      m.Notes,
	}
}

func goalModelFromDomain(item match.Goal) goalTableModel {
	return goalTableModel{
		ID:        item.ID,
		MatchID:   item.MatchID,
		TeamID:    item.TeamID,
		PlayerID:  nullableString(item.PlayerID),
		Minute:    nullableInt(item.Minute),
		IsOwnGoal: item.IsOwnGoal,
	}
}

func (m goalTableModel) toDomain() match.Goal {
	return match.Goal{
		ID:        m.ID,
		MatchID:   m.MatchID,
		TeamID:    m.TeamID,
		PlayerID:  m.PlayerID.String,
		Minute:    nullIntToPtr(m.Minute),
		IsOwnGoal: m.IsOwnGoal,
	}
}
