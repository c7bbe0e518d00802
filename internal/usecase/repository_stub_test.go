package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/division"
	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	"github.com/riskibarqy/league-dashboard/internal/domain/player"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
)

type stubDivisionRepository struct {
	items []division.Division
	err   error
}

func (s *stubDivisionRepository) List(context.Context) ([]division.Division, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]division.Division(nil), s.items...), nil
}

func (s *stubDivisionRepository) GetByID(_ context.Context, divisionID string) (division.Division, bool, error) {
	if s.err != nil {
		return division.Division{}, false, s.err
	}
	for _, item := range s.items {
		if item.ID == divisionID {
			return item, true, nil
		}
	}
	return division.Division{}, false, nil
}

type stubTeamRepository struct {
	items []team.Team
	err   error
}

func (s *stubTeamRepository) ListByDivision(_ context.Context, divisionID string) ([]team.Team, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]team.Team, 0)
	for _, item := range s.items {
		if item.DivisionID == divisionID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubTeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	if s.err != nil {
		return team.Team{}, false, s.err
	}
	for _, item := range s.items {
		if item.ID == teamID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

// stubPlayerRepository implements only the reads; writes are covered with
// mockery mocks.
type stubPlayerRepository struct {
	player.Repository

	items []player.Player
	err   error
}

func (s *stubPlayerRepository) ListByTeams(_ context.Context, teamIDs []string) ([]player.Player, error) {
	if s.err != nil {
		return nil, s.err
	}
	wanted := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = struct{}{}
	}
	out := make([]player.Player, 0)
	for _, item := range s.items {
		if _, ok := wanted[item.TeamID]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubPlayerRepository) ListByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	if s.err != nil {
		return nil, s.err
	}
	wanted := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = struct{}{}
	}
	out := make([]player.Player, 0)
	for _, item := range s.items {
		if _, ok := wanted[item.ID]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// stubMatchRepository implements the reads used by aggregation. It counts
// goal lookups so tests can check that fan-out does not repeat them.
type stubMatchRepository struct {
	match.Repository

	matches   []match.Match
	goals     []match.Goal
	err       error
	goalsErr  error
	mu        sync.Mutex
	goalReads int
}

func (s *stubMatchRepository) ListByDivision(_ context.Context, divisionID string) ([]match.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]match.Match, 0)
	for _, item := range s.matches {
		if item.DivisionID == divisionID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubMatchRepository) ListRecentByDivision(ctx context.Context, divisionID string, limit int) ([]match.Match, error) {
	out, err := s.ListByDivision(ctx, divisionID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchDate.After(out[j].MatchDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubMatchRepository) ListByTeam(ctx context.Context, divisionID, teamID string) ([]match.Match, error) {
	all, err := s.ListRecentByDivision(ctx, divisionID, 0)
	if err != nil {
		return nil, err
	}
	out := make([]match.Match, 0)
	for _, item := range all {
		if item.Involves(teamID) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubMatchRepository) ListGoalsByMatches(_ context.Context, matchIDs []string) ([]match.Goal, error) {
	s.mu.Lock()
	s.goalReads++
	s.mu.Unlock()

	if s.goalsErr != nil {
		return nil, s.goalsErr
	}
	wanted := make(map[string]struct{}, len(matchIDs))
	for _, id := range matchIDs {
		wanted[id] = struct{}{}
	}
	out := make([]match.Goal, 0)
	for _, item := range s.goals {
		if _, ok := wanted[item.MatchID]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

type recordedSkip struct {
	aggregate string
	kind      string
	n         int
}

type recordingAggregationRecorder struct {
	mu         sync.Mutex
	skips      []recordedSkip
	observed   []string
	recomputed []bool
}

func (r *recordingAggregationRecorder) RecordSkipped(aggregate, kind string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n > 0 {
		r.skips = append(r.skips, recordedSkip{aggregate: aggregate, kind: kind, n: n})
	}
}

func (r *recordingAggregationRecorder) ObserveAggregation(aggregate string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observed = append(r.observed, aggregate)
}

func (r *recordingAggregationRecorder) RecordRecompute(success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recomputed = append(r.recomputed, success)
}

func (r *recordingAggregationRecorder) skipped(aggregate, kind string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, item := range r.skips {
		if item.aggregate == aggregate && item.kind == kind {
			total += item.n
		}
	}
	return total
}

type sequenceIDs struct {
	mu   sync.Mutex
	next int
}

func (g *sequenceIDs) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("id-%d", g.next), nil
}

func intPtr(v int) *int {
	return &v
}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 10, 0, 0, 0, time.UTC)
}

// u12Fixture is a four-team division with a couple of data-quality problems:
// a match against a team from another division and goals pointing at records
// outside the division.
type u12Fixture struct {
	divisions *stubDivisionRepository
	teams     *stubTeamRepository
	players   *stubPlayerRepository
	matches   *stubMatchRepository
}

func newU12Fixture() u12Fixture {
	teams := []team.Team{
		{ID: "lions", DivisionID: "u12", Name: "Lions FC", ShortName: "LIO"},
		{ID: "tigers", DivisionID: "u12", Name: "Tigers"},
		{ID: "bears", DivisionID: "u12", Name: "Bears United", ShortName: "BEA"},
		{ID: "wolves", DivisionID: "u12", Name: "Wolves", ShortName: "WOL"},
		{ID: "eagles", DivisionID: "u14", Name: "Eagles", ShortName: "EAG"},
	}
	players := []player.Player{
		{ID: "maria", TeamID: "lions", Name: "maria gonzalez"},
		{ID: "ana", TeamID: "tigers", Name: "Ana"},
		{ID: "ben", TeamID: "bears", Name: "Ben Carter Smith"},
		{ID: "zoe", TeamID: "eagles", Name: "Zoe Park"},
	}
	matches := []match.Match{
		{ID: "m1", DivisionID: "u12", MatchDate: day(1), HomeTeamID: "lions", AwayTeamID: "tigers", HomeScore: 3, AwayScore: 1, Notes: "Rain delay"},
		{ID: "m2", DivisionID: "u12", MatchDate: day(8), HomeTeamID: "bears", AwayTeamID: "lions", HomeScore: 0, AwayScore: 0},
		{ID: "m3", DivisionID: "u12", MatchDate: day(15), HomeTeamID: "tigers", AwayTeamID: "bears", HomeScore: 2, AwayScore: 2},
		{ID: "m4", DivisionID: "u12", MatchDate: day(22), HomeTeamID: "lions", AwayTeamID: "eagles", HomeScore: 5, AwayScore: 0},
		{ID: "m9", DivisionID: "u14", MatchDate: day(2), HomeTeamID: "eagles", AwayTeamID: "hawks", HomeScore: 1, AwayScore: 0},
	}
	goals := []match.Goal{
		{ID: "g1", MatchID: "m1", TeamID: "lions", PlayerID: "maria"},
		{ID: "g2", MatchID: "m1", TeamID: "lions", PlayerID: "maria"},
		{ID: "g3", MatchID: "m1", TeamID: "lions", PlayerID: "maria"},
		{ID: "g4", MatchID: "m1", TeamID: "tigers", PlayerID: "ana"},
		{ID: "g5", MatchID: "m3", TeamID: "tigers", PlayerID: "ana"},
		{ID: "g6", MatchID: "m3", TeamID: "tigers", IsOwnGoal: true, PlayerID: "ben"},
		{ID: "g7", MatchID: "m3", TeamID: "bears", PlayerID: "ben"},
		{ID: "g8", MatchID: "m3", TeamID: "bears"},
		{ID: "g9", MatchID: "m4", TeamID: "lions", PlayerID: "ghost"},
		{ID: "g10", MatchID: "m9", TeamID: "eagles", PlayerID: "zoe"},
	}

	return u12Fixture{
		divisions: &stubDivisionRepository{items: []division.Division{
			{ID: "u12", Name: "Under 12", ShortName: "U12"},
			{ID: "u14", Name: "Under 14"},
		}},
		teams:   &stubTeamRepository{items: teams},
		players: &stubPlayerRepository{items: players},
		matches: &stubMatchRepository{matches: matches, goals: goals},
	}
}

func (f u12Fixture) standingService(recorder AggregationRecorder) *StandingService {
	return NewStandingService(f.teams, f.matches, f.players, recorder, nil)
}
