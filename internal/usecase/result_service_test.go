package usecase

import (
	"context"
	"testing"
)

func TestResultService_LatestResults(t *testing.T) {
	t.Parallel()

	fx := newU12Fixture()
	service := NewResultService(fx.teams, fx.matches, fx.players)

	got, err := service.LatestResults(context.Background(), "u12", 0)
	if err != nil {
		t.Fatalf("LatestResults error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 results, got %d", len(got))
	}
	if got[0].MatchID != "m4" || got[3].MatchID != "m1" {
		t.Fatalf("expected newest first, got %s..%s", got[0].MatchID, got[3].MatchID)
	}

	if got[0].HomeTeam.ShortName != "LIO" || got[0].HomeTeam.Score != 5 {
		t.Fatalf("unexpected home side: %+v", got[0].HomeTeam)
	}
	if got[0].AwayTeam.Name != "Away" || got[0].AwayTeam.ID != "" {
		t.Fatalf("expected fallback away label, got %+v", got[0].AwayTeam)
	}

	opener := got[3]
	if len(opener.NotableScorers) != 1 || opener.NotableScorers[0].PlayerName != "Maria G." || opener.NotableScorers[0].Goals != 3 {
		t.Fatalf("unexpected notable scorers: %+v", opener.NotableScorers)
	}
	if opener.Notes != "Rain delay" {
		t.Fatalf("unexpected notes: %q", opener.Notes)
	}
	if len(got[1].NotableScorers) != 0 {
		t.Fatalf("single-goal scorers are not notable: %+v", got[1].NotableScorers)
	}
}

func TestResultService_LatestResultsLimitAndEmpty(t *testing.T) {
	t.Parallel()

	fx := newU12Fixture()
	service := NewResultService(fx.teams, fx.matches, fx.players)

	got, err := service.LatestResults(context.Background(), "u12", 2)
	if err != nil {
		t.Fatalf("LatestResults error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}

	empty, err := service.LatestResults(context.Background(), "u16", 5)
	if err != nil {
		t.Fatalf("LatestResults error: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
	if fx.matches.goalReads != 1 {
		t.Fatalf("expected goals to be skipped for an empty division, got %d reads", fx.matches.goalReads)
	}
}
