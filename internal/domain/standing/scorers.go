package standing

import (
	"sort"

	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	"github.com/riskibarqy/league-dashboard/internal/domain/player"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
)

const unknownTeamLabel = "Unknown"

type scorerTally struct {
	player  player.Player
	goals   int
	matches map[string]struct{}
}

func (t *scorerTally) add(matchID string) {
	t.goals++
	t.matches[matchID] = struct{}{}
}

// ComputeTopScorers ranks the division's goal scorers. Only goals that are
// not own goals, name a player on one of teams, and belong to one of
// matchIDs are credited.
func ComputeTopScorers(teams []team.Team, matchIDs map[string]struct{}, goals []match.Goal, players []player.Player) []ScorerRow {
	rows, _ := ComputeTopScorersReport(teams, matchIDs, goals, players)
	return rows
}

// ComputeTopScorersReport is ComputeTopScorers plus a tally of every goal it
// did not credit.
func ComputeTopScorersReport(teams []team.Team, matchIDs map[string]struct{}, goals []match.Goal, players []player.Player) ([]ScorerRow, ScorerSkips) {
	var skips ScorerSkips

	teamsByID := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		teamsByID[item.ID] = item
	}
	playersByID := make(map[string]player.Player, len(players))
	for _, item := range players {
		playersByID[item.ID] = item
	}

	tallies := make(map[string]*scorerTally)
	order := make([]string, 0)
	for _, goal := range goals {
		switch {
		case goal.IsOwnGoal:
			skips.OwnGoals++
			continue
		case goal.PlayerID == "":
			skips.Unattributed++
			continue
		}
		if _, ok := matchIDs[goal.MatchID]; !ok {
			skips.ForeignMatch++
			continue
		}
		scorer, ok := playersByID[goal.PlayerID]
		if !ok {
			skips.UnknownPlayer++
			continue
		}
		if _, ok := teamsByID[scorer.TeamID]; !ok {
			skips.UnknownPlayer++
			continue
		}

		tally, ok := tallies[scorer.ID]
		if !ok {
			tally = &scorerTally{player: scorer, matches: make(map[string]struct{})}
			tallies[scorer.ID] = tally
			order = append(order, scorer.ID)
		}
		tally.add(goal.MatchID)
	}

	rows := make([]ScorerRow, 0, len(tallies))
	for _, playerID := range order {
		tally := tallies[playerID]
		teamLabel := unknownTeamLabel
		if owner, ok := teamsByID[tally.player.TeamID]; ok {
			teamLabel = owner.Label()
		}
		rows = append(rows, ScorerRow{
			PlayerID:        playerID,
			PlayerName:      FormatPlayerDisplayName(tally.player.Name),
			TeamID:          tally.player.TeamID,
			TeamShortName:   teamLabel,
			Goals:           tally.goals,
			MatchesWithGoal: len(tally.matches),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Goals != rows[j].Goals {
			return rows[i].Goals > rows[j].Goals
		}
		return rows[i].PlayerName < rows[j].PlayerName
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows, skips
}

// TallyScorers counts credited goals per player without any division
// filtering. Own goals, unattributed goals and unknown players are ignored.
// The result is sorted by goals, then display name.
func TallyScorers(goals []match.Goal, playersByID map[string]player.Player) []PlayerTally {
	tallies := make(map[string]*scorerTally)
	order := make([]string, 0)
	for _, goal := range goals {
		if goal.IsOwnGoal || goal.PlayerID == "" {
			continue
		}
		scorer, ok := playersByID[goal.PlayerID]
		if !ok {
			continue
		}
		tally, ok := tallies[scorer.ID]
		if !ok {
			tally = &scorerTally{player: scorer, matches: make(map[string]struct{})}
			tallies[scorer.ID] = tally
			order = append(order, scorer.ID)
		}
		tally.add(goal.MatchID)
	}

	out := make([]PlayerTally, 0, len(order))
	for _, playerID := range order {
		tally := tallies[playerID]
		out = append(out, PlayerTally{
			PlayerID:        playerID,
			PlayerName:      FormatPlayerDisplayName(tally.player.Name),
			Goals:           tally.goals,
			MatchesWithGoal: len(tally.matches),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	return out
}

// NotableScorers keeps players who scored at least twice in a single match.
func NotableScorers(matchGoals []match.Goal, playersByID map[string]player.Player) []PlayerTally {
	all := TallyScorers(matchGoals, playersByID)
	out := make([]PlayerTally, 0, len(all))
	for _, item := range all {
		if item.Goals >= 2 {
			out = append(out, item)
		}
	}
	return out
}
