package standing

import "sort"

const highlightLimit = 3

// ComputeDivisionStats derives the attack, defence and clean sheet leaders
// from a computed table. Teams without a game are excluded from the averages.
func ComputeDivisionStats(rows []Row) DivisionStats {
	played := make([]Row, 0, len(rows))
	totalGoals, totalGames := 0, 0
	for _, row := range rows {
		if row.GP <= 0 {
			continue
		}
		played = append(played, row)
		totalGoals += row.GF
		totalGames += row.GP
	}

	stats := DivisionStats{
		TopAttacks: topHighlights(played, func(r Row) float64 { return r.AvgGoalsFor }, true, func(v float64) string {
			return FormatNumber(v, 2) + " GF/G"
		}),
		TopDefenses: topHighlights(played, func(r Row) float64 { return r.AvgGoalsAgainst }, false, func(v float64) string {
			return FormatNumber(v, 2) + " GA/G"
		}),
		CleanSheetLeaders: topHighlights(rows, func(r Row) float64 { return float64(r.CleanSheets) }, true, func(v float64) string {
			return FormatNumber(v, 0) + " CS"
		}),
	}
	if totalGames > 0 {
		stats.LeagueAvgGoalsPerGame = Round2(float64(totalGoals) / float64(totalGames))
	}

	return stats
}

func topHighlights(rows []Row, value func(Row) float64, descending bool, format func(float64) string) []TeamStatHighlight {
	out := make([]TeamStatHighlight, 0, len(rows))
	for _, row := range rows {
		v := value(row)
		out = append(out, TeamStatHighlight{
			TeamID:         row.TeamID,
			TeamName:       row.TeamName,
			TeamShortName:  row.TeamShortName,
			Value:          v,
			FormattedValue: format(v),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Value > out[j].Value
		}
		return out[i].Value < out[j].Value
	})

	if len(out) > highlightLimit {
		out = out[:highlightLimit]
	}
	return out
}
