package standing

// Row is one team's line in a division table.
type Row struct {
	TeamID          string  `json:"teamId"`
	TeamName        string  `json:"teamName"`
	TeamShortName   string  `json:"teamShortName"`
	GP              int     `json:"gp"`
	W               int     `json:"w"`
	D               int     `json:"d"`
	L               int     `json:"l"`
	GF              int     `json:"gf"`
	GA              int     `json:"ga"`
	GD              int     `json:"gd"`
	Points          int     `json:"points"`
	CleanSheets     int     `json:"cleanSheets"`
	AvgGoalsFor     float64 `json:"avgGoalsFor"`
	AvgGoalsAgainst float64 `json:"avgGoalsAgainst"`
}

// ScorerRow is one player's line in the division goal leaderboard.
type ScorerRow struct {
	Rank            int    `json:"rank"`
	PlayerID        string `json:"playerId"`
	PlayerName      string `json:"playerName"`
	TeamID          string `json:"teamId"`
	TeamShortName   string `json:"teamShortName"`
	Goals           int    `json:"goals"`
	MatchesWithGoal int    `json:"matchesWithGoal"`
}

// PlayerTally is an unranked goal count used for per-match and per-team lists.
type PlayerTally struct {
	PlayerID        string `json:"playerId"`
	PlayerName      string `json:"playerName"`
	Goals           int    `json:"goals"`
	MatchesWithGoal int    `json:"matchesWithGoal"`
}

// TeamStatHighlight wraps a ranked team value with its display string.
type TeamStatHighlight struct {
	TeamID         string  `json:"teamId"`
	TeamName       string  `json:"teamName"`
	TeamShortName  string  `json:"teamShortName"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formattedValue"`
}

type DivisionStats struct {
	TopAttacks            []TeamStatHighlight `json:"topAttacks"`
	TopDefenses           []TeamStatHighlight `json:"topDefenses"`
	CleanSheetLeaders     []TeamStatHighlight `json:"cleanSheetLeaders"`
	LeagueAvgGoalsPerGame float64             `json:"leagueAvgGoalsPerGame"`
}

// StandingsSkips counts matches left out of a table because a side is not
// one of the division's teams.
type StandingsSkips struct {
	UnknownTeamMatches int
}

func (s StandingsSkips) Total() int {
	return s.UnknownTeamMatches
}

// ScorerSkips counts goals left out of the leaderboard, by reason. Own goals
// and unattributed goals are expected; the other two point at stale data.
type ScorerSkips struct {
	OwnGoals      int
	Unattributed  int
	ForeignMatch  int
	UnknownPlayer int
}

// Orphans is the number of goals dropped because they reference records
// outside the division.
func (s ScorerSkips) Orphans() int {
	return s.ForeignMatch + s.UnknownPlayer
}
