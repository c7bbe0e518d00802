package standing

import (
	"testing"

	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	"github.com/riskibarqy/league-dashboard/internal/domain/player"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
)

func scorerFixture() ([]team.Team, map[string]struct{}, []player.Player) {
	teams := []team.Team{
		{ID: "t1", Name: "Lions", ShortName: "LIO"},
		{ID: "t2", Name: "Tigers"},
	}
	matchIDs := map[string]struct{}{"m1": {}, "m2": {}, "m3": {}}
	players := []player.Player{
		{ID: "p1", TeamID: "t1", Name: "maria lopez garcia"},
		{ID: "p2", TeamID: "t2", Name: "ana"},
		{ID: "p3", TeamID: "t1", Name: "zoe park"},
		{ID: "p4", TeamID: "t9", Name: "outside player"},
	}
	return teams, matchIDs, players
}

func TestComputeTopScorers_Scenario(t *testing.T) {
	t.Parallel()

	teams, matchIDs, players := scorerFixture()
	goals := []match.Goal{
		{MatchID: "m1", TeamID: "t1", PlayerID: "p1"},
		{MatchID: "m1", TeamID: "t1", PlayerID: "p1"},
		{MatchID: "m2", TeamID: "t1", PlayerID: "p1"},
		{MatchID: "m2", TeamID: "t2", PlayerID: "p2"},
	}

	rows := ComputeTopScorers(teams, matchIDs, goals, players)
	if len(rows) != 2 {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	want := ScorerRow{
		Rank: 1, PlayerID: "p1", PlayerName: "Maria G.", TeamID: "t1",
		TeamShortName: "LIO", Goals: 3, MatchesWithGoal: 2,
	}
	if rows[0] != want {
		t.Fatalf("unexpected leader:\nwant %+v\ngot  %+v", want, rows[0])
	}
	if rows[1].PlayerName != "Ana" || rows[1].TeamShortName != "Tigers" || rows[1].Rank != 2 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestComputeTopScorers_ExcludesOwnGoalsAndOrphans(t *testing.T) {
	t.Parallel()

	teams, matchIDs, players := scorerFixture()
	goals := []match.Goal{
		{MatchID: "m1", TeamID: "t1", PlayerID: "p3"},
		{MatchID: "m1", TeamID: "t2", PlayerID: "p3", IsOwnGoal: true},
		{MatchID: "m1", TeamID: "t2", PlayerID: "p3", IsOwnGoal: true},
		{MatchID: "m2", TeamID: "t1"},
		{MatchID: "other-division", TeamID: "t1", PlayerID: "p3"},
		{MatchID: "m3", TeamID: "t9", PlayerID: "p4"},
		{MatchID: "m3", TeamID: "t1", PlayerID: "ghost"},
	}

	rows, skips := ComputeTopScorersReport(teams, matchIDs, goals, players)
	if len(rows) != 1 || rows[0].PlayerID != "p3" || rows[0].Goals != 1 {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	want := ScorerSkips{OwnGoals: 2, Unattributed: 1, ForeignMatch: 1, UnknownPlayer: 2}
	if skips != want {
		t.Fatalf("unexpected skips: want %+v got %+v", want, skips)
	}
	if skips.Orphans() != 3 {
		t.Fatalf("unexpected orphan count: %d", skips.Orphans())
	}
}

func TestComputeTopScorers_RanksAreDenseAndTieBrokenByName(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: "t1", Name: "Lions"}}
	matchIDs := map[string]struct{}{"m1": {}, "m2": {}}
	players := []player.Player{
		{ID: "p1", TeamID: "t1", Name: "Zed Young"},
		{ID: "p2", TeamID: "t1", Name: "Abe Young"},
		{ID: "p3", TeamID: "t1", Name: "Kim"},
	}
	goals := []match.Goal{
		{MatchID: "m1", PlayerID: "p1"},
		{MatchID: "m1", PlayerID: "p2"},
		{MatchID: "m2", PlayerID: "p3"},
		{MatchID: "m2", PlayerID: "p3"},
	}

	rows := ComputeTopScorers(teams, matchIDs, goals, players)
	wantNames := []string{"Kim", "Abe Y.", "Zed Y."}
	for i, row := range rows {
		if row.Rank != i+1 {
			t.Fatalf("row %d has rank %d", i, row.Rank)
		}
		if row.PlayerName != wantNames[i] {
			t.Fatalf("row %d name=%q want %q", i, row.PlayerName, wantNames[i])
		}
		if row.MatchesWithGoal > row.Goals {
			t.Fatalf("matchesWithGoal exceeds goals: %+v", row)
		}
	}
}

func TestComputeTopScorers_EmptyInput(t *testing.T) {
	t.Parallel()

	if rows := ComputeTopScorers(nil, nil, nil, nil); len(rows) != 0 {
		t.Fatalf("expected no rows, got %+v", rows)
	}
}

func TestNotableScorers(t *testing.T) {
	t.Parallel()

	players := map[string]player.Player{
		"p1": {ID: "p1", Name: "sam hill"},
		"p2": {ID: "p2", Name: "lee"},
		"p3": {ID: "p3", Name: "amy ray"},
	}
	goals := []match.Goal{
		{MatchID: "m1", PlayerID: "p1"},
		{MatchID: "m1", PlayerID: "p1"},
		{MatchID: "m1", PlayerID: "p2"},
		{MatchID: "m1", PlayerID: "p2", IsOwnGoal: true},
		{MatchID: "m1", PlayerID: "p3"},
		{MatchID: "m1", PlayerID: "p3"},
	}

	got := NotableScorers(goals, players)
	if len(got) != 2 {
		t.Fatalf("unexpected notable scorers: %+v", got)
	}
	if got[0].PlayerName != "Amy R." || got[1].PlayerName != "Sam H." {
		t.Fatalf("unexpected ordering: %+v", got)
	}
}
