package match

import (
	"fmt"
	"time"
)

// Match is a completed fixture with its final score.
type Match struct {
	ID         string
	DivisionID string
	MatchDate  time.Time
	HomeTeamID string
	AwayTeamID string
	HomeScore  int
	AwayScore  int
	Notes      string
}

// Goal credits one goal in a match to a side and optionally a player.
// PlayerID is empty when the scorer was not recorded.
type Goal struct {
	ID        string
	MatchID   string
	TeamID    string
	PlayerID  string
	Minute    *int
	IsOwnGoal bool
}

// Involves reports whether teamID played in the match.
func (m Match) Involves(teamID string) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// Outcome is W, D or L from the perspective of teamID.
func (m Match) Outcome(teamID string) string {
	teamScore, opponentScore := m.ScoresFor(teamID)
	switch {
	case teamScore > opponentScore:
		return OutcomeWin
	case teamScore < opponentScore:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// ScoresFor returns (team score, opponent score) for teamID.
func (m Match) ScoresFor(teamID string) (int, int) {
	if m.HomeTeamID == teamID {
		return m.HomeScore, m.AwayScore
	}
	return m.AwayScore, m.HomeScore
}

const (
	OutcomeWin  = "W"
	OutcomeDraw = "D"
	OutcomeLoss = "L"
)

func (m Match) Validate() error {
	if m.DivisionID == "" {
		return fmt.Errorf("match division id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match teams are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match home and away team must differ")
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return fmt.Errorf("match scores must be non-negative")
	}

	return nil
}
