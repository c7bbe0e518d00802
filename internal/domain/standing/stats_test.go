package standing

import "testing"

func TestComputeDivisionStats_ExcludesTeamsWithoutGames(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{TeamID: "a", TeamName: "A", GP: 3, GF: 9, GA: 2, AvgGoalsFor: 3, AvgGoalsAgainst: 0.67, CleanSheets: 2},
		{TeamID: "z", TeamName: "Z"},
	}

	stats := ComputeDivisionStats(rows)
	if stats.LeagueAvgGoalsPerGame != 3 {
		t.Fatalf("unexpected league average: %v", stats.LeagueAvgGoalsPerGame)
	}
	if got := FormatNumber(stats.LeagueAvgGoalsPerGame, 2); got != "3" {
		t.Fatalf("unexpected formatted league average: %q", got)
	}
	if len(stats.TopAttacks) != 1 || len(stats.TopDefenses) != 1 {
		t.Fatalf("zero-game team leaked into averages: %+v", stats)
	}
	if stats.TopAttacks[0].FormattedValue != "3 GF/G" {
		t.Fatalf("unexpected attack label: %q", stats.TopAttacks[0].FormattedValue)
	}
	if stats.TopDefenses[0].FormattedValue != "0.67 GA/G" {
		t.Fatalf("unexpected defence label: %q", stats.TopDefenses[0].FormattedValue)
	}
	if len(stats.CleanSheetLeaders) != 2 || stats.CleanSheetLeaders[1].TeamID != "z" {
		t.Fatalf("clean sheet leaders should include every team: %+v", stats.CleanSheetLeaders)
	}
	if stats.CleanSheetLeaders[0].FormattedValue != "2 CS" || stats.CleanSheetLeaders[1].FormattedValue != "0 CS" {
		t.Fatalf("unexpected clean sheet labels: %+v", stats.CleanSheetLeaders)
	}
}

func TestComputeDivisionStats_TopThreeOrdering(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{TeamID: "a", GP: 2, AvgGoalsFor: 1.5, AvgGoalsAgainst: 2, CleanSheets: 0},
		{TeamID: "b", GP: 2, AvgGoalsFor: 3, AvgGoalsAgainst: 0.5, CleanSheets: 1},
		{TeamID: "c", GP: 2, AvgGoalsFor: 2.5, AvgGoalsAgainst: 1, CleanSheets: 2},
		{TeamID: "d", GP: 2, AvgGoalsFor: 0.5, AvgGoalsAgainst: 0.25, CleanSheets: 3},
	}

	stats := ComputeDivisionStats(rows)

	assertIDs := func(name string, got []TeamStatHighlight, want ...string) {
		t.Helper()
		if len(got) != len(want) {
			t.Fatalf("%s: unexpected length %d", name, len(got))
		}
		for i := range want {
			if got[i].TeamID != want[i] {
				t.Fatalf("%s[%d]=%s want %s", name, i, got[i].TeamID, want[i])
			}
		}
	}
	assertIDs("topAttacks", stats.TopAttacks, "b", "c", "a")
	assertIDs("topDefenses", stats.TopDefenses, "d", "b", "c")
	assertIDs("cleanSheetLeaders", stats.CleanSheetLeaders, "d", "c", "b")

	if stats.TopAttacks[2].FormattedValue != "1.50 GF/G" {
		t.Fatalf("unexpected fractional label: %q", stats.TopAttacks[2].FormattedValue)
	}
}

func TestComputeDivisionStats_NoGames(t *testing.T) {
	t.Parallel()

	stats := ComputeDivisionStats([]Row{{TeamID: "a"}})
	if stats.LeagueAvgGoalsPerGame != 0 {
		t.Fatalf("expected zero average, got %v", stats.LeagueAvgGoalsPerGame)
	}
	if len(stats.TopAttacks) != 0 || len(stats.TopDefenses) != 0 {
		t.Fatalf("expected no averages without games: %+v", stats)
	}
}
