package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/league-dashboard/internal/platform/metrics"
)

func TestStandingService_Standings(t *testing.T) {
	t.Parallel()

	fx := newU12Fixture()
	recorder := &recordingAggregationRecorder{}
	service := fx.standingService(recorder)

	rows, err := service.Standings(context.Background(), "u12")
	if err != nil {
		t.Fatalf("Standings error: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	wantOrder := []string{"lions", "bears", "tigers", "wolves"}
	for i, teamID := range wantOrder {
		if rows[i].TeamID != teamID {
			t.Fatalf("row %d: expected %s, got %s", i, teamID, rows[i].TeamID)
		}
	}

	lions := rows[0]
	if lions.GP != 2 || lions.W != 1 || lions.D != 1 || lions.L != 0 || lions.GF != 3 || lions.GA != 1 || lions.Points != 4 || lions.CleanSheets != 1 {
		t.Fatalf("unexpected lions row: %+v", lions)
	}
	if rows[2].TeamShortName != "Tigers" {
		t.Fatalf("expected name fallback for short name, got %q", rows[2].TeamShortName)
	}
	if wolves := rows[3]; wolves.GP != 0 || wolves.Points != 0 || wolves.AvgGoalsFor != 0 {
		t.Fatalf("unexpected wolves row: %+v", wolves)
	}

	if got := recorder.skipped(aggregateStandings, metrics.SkipUnknownTeam); got != 1 {
		t.Fatalf("expected one skipped match, got %d", got)
	}
}

func TestStandingService_TopScorers(t *testing.T) {
	t.Parallel()

	fx := newU12Fixture()
	recorder := &recordingAggregationRecorder{}
	service := fx.standingService(recorder)

	rows, err := service.TopScorers(context.Background(), "u12", 0)
	if err != nil {
		t.Fatalf("TopScorers error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 scorers, got %d: %+v", len(rows), rows)
	}
	if rows[0].PlayerName != "Maria G." || rows[0].Goals != 3 || rows[0].MatchesWithGoal != 1 || rows[0].TeamShortName != "LIO" {
		t.Fatalf("unexpected leader: %+v", rows[0])
	}
	if rows[1].PlayerName != "Ana" || rows[1].Goals != 2 || rows[1].MatchesWithGoal != 2 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
	if rows[2].PlayerName != "Ben S." || rows[2].Rank != 3 {
		t.Fatalf("unexpected third row: %+v", rows[2])
	}

	cases := map[string]int{
		metrics.SkipOwnGoal:       1,
		metrics.SkipUnattributed:  1,
		metrics.SkipForeignMatch:  0,
		metrics.SkipUnknownPlayer: 1,
	}
	for kind, want := range cases {
		if got := recorder.skipped(aggregateTopScorers, kind); got != want {
			t.Fatalf("skip %s: expected %d, got %d", kind, want, got)
		}
	}
}

func TestStandingService_TopScorersLimit(t *testing.T) {
	t.Parallel()

	service := newU12Fixture().standingService(nil)

	rows, err := service.TopScorers(context.Background(), "u12", 2)
	if err != nil {
		t.Fatalf("TopScorers error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 scorers, got %d", len(rows))
	}
}

func TestStandingService_DivisionStats(t *testing.T) {
	t.Parallel()

	service := newU12Fixture().standingService(nil)

	stats, err := service.DivisionStats(context.Background(), "u12")
	if err != nil {
		t.Fatalf("DivisionStats error: %v", err)
	}
	if stats.LeagueAvgGoalsPerGame != 1.33 {
		t.Fatalf("unexpected league average: %v", stats.LeagueAvgGoalsPerGame)
	}
	if len(stats.TopAttacks) != 3 || stats.TopAttacks[0].TeamID != "lions" || stats.TopAttacks[0].FormattedValue != "1.50 GF/G" {
		t.Fatalf("unexpected top attacks: %+v", stats.TopAttacks)
	}
	if stats.TopDefenses[0].TeamID != "lions" || stats.TopDefenses[2].TeamID != "tigers" {
		t.Fatalf("unexpected top defenses: %+v", stats.TopDefenses)
	}
	for _, item := range stats.TopAttacks {
		if item.TeamID == "wolves" {
			t.Fatalf("team without games must not be ranked for attack")
		}
	}
	if stats.CleanSheetLeaders[0].FormattedValue != "1 CS" {
		t.Fatalf("unexpected clean sheet label: %+v", stats.CleanSheetLeaders[0])
	}
}

func TestStandingService_DivisionStatsRecordsOneTiming(t *testing.T) {
	t.Parallel()

	recorder := &recordingAggregationRecorder{}
	service := newU12Fixture().standingService(recorder)

	if _, err := service.DivisionStats(context.Background(), "u12"); err != nil {
		t.Fatalf("DivisionStats error: %v", err)
	}

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	if len(recorder.observed) != 1 || recorder.observed[0] != aggregateStats {
		t.Fatalf("expected only %q to be timed, got %v", aggregateStats, recorder.observed)
	}
}

func TestStandingService_UnknownDivisionIsEmpty(t *testing.T) {
	t.Parallel()

	service := newU12Fixture().standingService(nil)

	rows, err := service.Standings(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Standings error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(rows))
	}

	scorers, err := service.TopScorers(context.Background(), "missing", 10)
	if err != nil {
		t.Fatalf("TopScorers error: %v", err)
	}
	if len(scorers) != 0 {
		t.Fatalf("expected no scorers, got %d", len(scorers))
	}
}

func TestStandingService_ReadFailureFailsTheCall(t *testing.T) {
	t.Parallel()

	fx := newU12Fixture()
	boom := errors.New("db down")
	fx.matches.err = boom

	_, err := fx.standingService(nil).Standings(context.Background(), "u12")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}

	fx = newU12Fixture()
	fx.players.err = boom
	_, err = fx.standingService(nil).TopScorers(context.Background(), "u12", 0)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped player error, got %v", err)
	}
}
