package standing

import (
	"testing"

	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
)

func TestComputeStandings_WinAndDrawScenario(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: "a", Name: "Alpha", ShortName: "ALP"},
		{ID: "b", Name: "Bravo", ShortName: "BRV"},
		{ID: "c", Name: "Charlie"},
	}
	matches := []match.Match{
		{ID: "m1", HomeTeamID: "a", AwayTeamID: "b", HomeScore: 3, AwayScore: 0},
		{ID: "m2", HomeTeamID: "c", AwayTeamID: "a", HomeScore: 1, AwayScore: 1},
	}

	rows := ComputeStandings(teams, matches)
	if len(rows) != 3 {
		t.Fatalf("unexpected row count: %d", len(rows))
	}

	got := rows[0]
	want := Row{
		TeamID: "a", TeamName: "Alpha", TeamShortName: "ALP",
		GP: 2, W: 1, D: 1, L: 0, GF: 4, GA: 1, GD: 3, Points: 4,
		CleanSheets: 1, AvgGoalsFor: 2.00, AvgGoalsAgainst: 0.50,
	}
	if got != want {
		t.Fatalf("unexpected rank 1 row:\nwant %+v\ngot  %+v", want, got)
	}

	charlie, ok := FindRow(rows, "c")
	if !ok {
		t.Fatalf("expected row for team c")
	}
	if charlie.TeamShortName != "Charlie" {
		t.Fatalf("expected short name to fall back to name, got %q", charlie.TeamShortName)
	}
}

func TestComputeStandings_GoallessDrawGivesBothCleanSheets(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: "x", Name: "X"}, {ID: "y", Name: "Y"}}
	matches := []match.Match{{ID: "m1", HomeTeamID: "x", AwayTeamID: "y"}}

	for _, row := range ComputeStandings(teams, matches) {
		if row.CleanSheets != 1 {
			t.Fatalf("team %s clean sheets=%d want 1", row.TeamID, row.CleanSheets)
		}
		if row.D != 1 || row.Points != 1 {
			t.Fatalf("team %s unexpected draw record: %+v", row.TeamID, row)
		}
	}
}

func TestComputeStandings_SkipsMatchesWithUnknownTeams(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	matches := []match.Match{
		{ID: "m1", HomeTeamID: "a", AwayTeamID: "ghost", HomeScore: 5, AwayScore: 0},
		{ID: "m2", HomeTeamID: "ghost", AwayTeamID: "b", HomeScore: 0, AwayScore: 2},
		{ID: "m3", HomeTeamID: "a", AwayTeamID: "b", HomeScore: 1, AwayScore: 2},
	}

	rows, skips := ComputeStandingsReport(teams, matches)
	if skips.UnknownTeamMatches != 2 || skips.Total() != 2 {
		t.Fatalf("unexpected skips: %+v", skips)
	}
	if rows[0].TeamID != "b" || rows[0].GP != 1 || rows[0].GF != 2 {
		t.Fatalf("unexpected leader: %+v", rows[0])
	}
	if rows[1].GP != 1 || rows[1].GF != 1 {
		t.Fatalf("orphaned match leaked into row: %+v", rows[1])
	}

	plain := ComputeStandings(teams, matches)
	for i := range plain {
		if plain[i] != rows[i] {
			t.Fatalf("report rows differ from plain rows at %d", i)
		}
	}
}

func TestComputeStandings_TieBreakOrder(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{TeamID: "1", TeamName: "Zulu", Points: 6, GD: 2, GF: 5},
		{TeamID: "2", TeamName: "Echo", Points: 6, GD: 2, GF: 5},
		{TeamID: "3", TeamName: "Alpha", Points: 6, GD: 2, GF: 4},
		{TeamID: "4", TeamName: "Bravo", Points: 6, GD: 3, GF: 1},
		{TeamID: "5", TeamName: "Aaron", Points: 7, GD: -4, GF: 0},
	}
	SortRows(rows)

	wantOrder := []string{"5", "4", "2", "1", "3"}
	for i, id := range wantOrder {
		if rows[i].TeamID != id {
			t.Fatalf("position %d: want team %s got %s (%+v)", i+1, id, rows[i].TeamID, rows)
		}
	}
}

func TestComputeStandings_ZeroGameTeamsHaveZeroAverages(t *testing.T) {
	t.Parallel()

	rows := ComputeStandings([]team.Team{{ID: "a", Name: "B-Team"}, {ID: "b", Name: "A-Team"}}, nil)
	if len(rows) != 2 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if rows[0].TeamName != "A-Team" {
		t.Fatalf("expected name ordering for empty table, got %+v", rows)
	}
	for _, row := range rows {
		if row.AvgGoalsFor != 0 || row.AvgGoalsAgainst != 0 || row.GP != 0 {
			t.Fatalf("expected zeroed row, got %+v", row)
		}
	}
}

func TestComputeStandings_EmptyInput(t *testing.T) {
	t.Parallel()

	if rows := ComputeStandings(nil, nil); len(rows) != 0 {
		t.Fatalf("expected empty table, got %+v", rows)
	}
}

func TestComputeStandings_Invariants(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}, {ID: "d", Name: "D"},
	}
	ids := []string{"a", "b", "c", "d"}
	var matches []match.Match
	n := 0
	for i := range ids {
		for j := range ids {
			if i == j {
				continue
			}
			matches = append(matches, match.Match{
				ID:         "m" + ids[i] + ids[j],
				HomeTeamID: ids[i],
				AwayTeamID: ids[j],
				HomeScore:  (n * 7) % 4,
				AwayScore:  (n * 3) % 3,
			})
			n++
		}
	}

	rows := ComputeStandings(teams, matches)

	sumW, sumL, sumD := 0, 0, 0
	for _, row := range rows {
		sumW += row.W
		sumL += row.L
		sumD += row.D
		if row.GD != row.GF-row.GA {
			t.Fatalf("gd mismatch: %+v", row)
		}
		if row.Points != 3*row.W+row.D {
			t.Fatalf("points mismatch: %+v", row)
		}
		if row.GP != row.W+row.D+row.L {
			t.Fatalf("games mismatch: %+v", row)
		}
	}
	if sumW != sumL {
		t.Fatalf("sum(w)=%d sum(l)=%d", sumW, sumL)
	}
	if sumD%2 != 0 {
		t.Fatalf("sum(d)=%d is odd", sumD)
	}

	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if prev.Points < cur.Points {
			t.Fatalf("rows not ordered by points at %d", i)
		}
	}
}
