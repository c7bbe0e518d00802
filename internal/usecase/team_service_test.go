package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
	teammock "github.com/riskibarqy/league-dashboard/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func newTeamService(fx u12Fixture) *TeamService {
	return NewTeamService(fx.divisions, fx.teams, fx.matches, fx.players, fx.standingService(nil))
}

func TestTeamService_TeamPage(t *testing.T) {
	t.Parallel()

	page, err := newTeamService(newU12Fixture()).TeamPage(context.Background(), "lions")
	if err != nil {
		t.Fatalf("TeamPage error: %v", err)
	}

	if page.Team.Name != "Lions FC" {
		t.Fatalf("unexpected team: %+v", page.Team)
	}
	if page.Division == nil || page.Division.ID != "u12" {
		t.Fatalf("unexpected division: %+v", page.Division)
	}
	if page.Record == nil || page.Record.W != 1 || page.Record.D != 1 || page.Record.Points != 4 || page.Record.GD != 2 {
		t.Fatalf("unexpected record: %+v", page.Record)
	}

	if len(page.RecentMatches) != 3 {
		t.Fatalf("expected 3 recent matches, got %d", len(page.RecentMatches))
	}
	latest := page.RecentMatches[0]
	if latest.MatchID != "m4" || latest.Opponent.Name != "Opponent" || latest.Outcome != match.OutcomeWin || !latest.IsHome {
		t.Fatalf("unexpected latest match: %+v", latest)
	}
	away := page.RecentMatches[1]
	if away.IsHome || away.Opponent.ShortName != "BEA" || away.Outcome != match.OutcomeDraw {
		t.Fatalf("unexpected away match: %+v", away)
	}

	if len(page.MatchNotes) != 1 || page.MatchNotes[0].Note != "Rain delay" {
		t.Fatalf("unexpected match notes: %+v", page.MatchNotes)
	}
	if len(page.TopScorers) != 1 || page.TopScorers[0].PlayerName != "Maria G." || page.TopScorers[0].Goals != 3 {
		t.Fatalf("unexpected team scorers: %+v", page.TopScorers)
	}
}

func TestTeamService_TeamPageWithoutMatches(t *testing.T) {
	t.Parallel()

	fx := newU12Fixture()
	page, err := newTeamService(fx).TeamPage(context.Background(), "wolves")
	if err != nil {
		t.Fatalf("TeamPage error: %v", err)
	}
	if page.Record == nil || page.Record.Points != 0 {
		t.Fatalf("expected zero record, got %+v", page.Record)
	}
	if len(page.RecentMatches) != 0 || len(page.TopScorers) != 0 || len(page.MatchNotes) != 0 {
		t.Fatalf("expected empty lists, got %+v", page)
	}
}

func TestTeamService_TeamPageNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	fx := newU12Fixture()
	service := NewTeamService(fx.divisions, teamRepo, fx.matches, fx.players, fx.standingService(nil))

	teamRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "nobody").
		Return(team.Team{}, false, nil).
		Once()

	_, err := service.TeamPage(ctx, "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_ListByDivisionUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	fx := newU12Fixture()
	service := NewTeamService(fx.divisions, teamRepo, fx.matches, fx.players, fx.standingService(nil))

	expected := []team.Team{{ID: "lions", DivisionID: "u12", Name: "Lions FC"}}
	teamRepo.
		On("ListByDivision", mock.Anything, "u12").
		Return(expected, nil).
		Once()

	got, err := service.ListByDivision(ctx, "u12")
	if err != nil {
		t.Fatalf("ListByDivision error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "lions" {
		t.Fatalf("unexpected teams: %+v", got)
	}
}
