package standing

import (
	"sort"

	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
)

const (
	pointsForWin  = 3
	pointsForDraw = 1
)

// ComputeStandings builds the ranked table for a division from its teams and
// every match played. Matches naming a team outside teams are ignored.
func ComputeStandings(teams []team.Team, matches []match.Match) []Row {
	rows, _ := ComputeStandingsReport(teams, matches)
	return rows
}

// ComputeStandingsReport is ComputeStandings plus a count of ignored matches.
func ComputeStandingsReport(teams []team.Team, matches []match.Match) ([]Row, StandingsSkips) {
	var skips StandingsSkips

	byTeam := make(map[string]*Row, len(teams))
	order := make([]*Row, 0, len(teams))
	for _, item := range teams {
		if _, seen := byTeam[item.ID]; seen {
			continue
		}
		row := &Row{
			TeamID:        item.ID,
			TeamName:      item.Name,
			TeamShortName: item.Label(),
		}
		byTeam[item.ID] = row
		order = append(order, row)
	}

	for _, m := range matches {
		home, okHome := byTeam[m.HomeTeamID]
		away, okAway := byTeam[m.AwayTeamID]
		if !okHome || !okAway {
			skips.UnknownTeamMatches++
			continue
		}
		applyResult(home, away, m.HomeScore, m.AwayScore)
	}

	out := make([]Row, 0, len(order))
	for _, row := range order {
		row.GD = row.GF - row.GA
		row.AvgGoalsFor = perGame(row.GF, row.GP)
		row.AvgGoalsAgainst = perGame(row.GA, row.GP)
		out = append(out, *row)
	}

	SortRows(out)
	return out, skips
}

func applyResult(home, away *Row, homeScore, awayScore int) {
	home.GP++
	away.GP++

	home.GF += homeScore
	home.GA += awayScore
	away.GF += awayScore
	away.GA += homeScore

	if awayScore == 0 {
		home.CleanSheets++
	}
	if homeScore == 0 {
		away.CleanSheets++
	}

	switch {
	case homeScore > awayScore:
		home.W++
		away.L++
		home.Points += pointsForWin
	case homeScore < awayScore:
		away.W++
		home.L++
		away.Points += pointsForWin
	default:
		home.D++
		away.D++
		home.Points += pointsForDraw
		away.Points += pointsForDraw
	}
}

// SortRows orders a table by points, goal difference and goals scored, all
// descending, then by team name.
func SortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GD != b.GD {
			return a.GD > b.GD
		}
		if a.GF != b.GF {
			return a.GF > b.GF
		}
		return a.TeamName < b.TeamName
	})
}

func perGame(total, games int) float64 {
	if games <= 0 {
		return 0
	}
	return Round2(float64(total) / float64(games))
}

// FindRow returns the table row for teamID.
func FindRow(rows []Row, teamID string) (Row, bool) {
	for _, row := range rows {
		if row.TeamID == teamID {
			return row, true
		}
	}
	return Row{}, false
}
