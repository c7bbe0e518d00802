package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	"github.com/riskibarqy/league-dashboard/internal/domain/player"
	"github.com/riskibarqy/league-dashboard/internal/domain/standing"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
	"github.com/riskibarqy/league-dashboard/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// StandingService computes division tables, scorer leaderboards and derived
// statistics from the current match and goal rows on every call.
type StandingService struct {
	teamRepo   team.Repository
	matchRepo  match.Repository
	playerRepo player.Repository
	skips      skipReporter
	logger     *logging.Logger
}

func NewStandingService(
	teamRepo team.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	recorder AggregationRecorder,
	logger *logging.Logger,
) *StandingService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingService{
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		skips:      newSkipReporter(recorder, logger),
		logger:     logger,
	}
}

func (s *StandingService) Standings(ctx context.Context, divisionID string) ([]standing.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Standings", divisionAttr(divisionID))
	defer span.End()
	defer s.skips.observe(aggregateStandings, time.Now())

	teams, matches, err := s.loadTable(ctx, divisionID)
	if err != nil {
		return nil, err
	}

	return s.standings(ctx, divisionID, teams, matches), nil
}

// TopScorers returns the leaderboard, cut to limit rows when limit > 0.
func (s *StandingService) TopScorers(ctx context.Context, divisionID string, limit int) ([]standing.ScorerRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.TopScorers", divisionAttr(divisionID))
	defer span.End()
	defer s.skips.observe(aggregateTopScorers, time.Now())

	teams, matches, err := s.loadTable(ctx, divisionID)
	if err != nil {
		return nil, err
	}
	goals, players, err := s.loadScoring(ctx, teams, matches)
	if err != nil {
		return nil, err
	}

	return limitScorers(s.topScorers(ctx, divisionID, teams, matches, goals, players), limit), nil
}

func (s *StandingService) DivisionStats(ctx context.Context, divisionID string) (standing.DivisionStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.DivisionStats", divisionAttr(divisionID))
	defer span.End()
	defer s.skips.observe(aggregateStats, time.Now())

	teams, matches, err := s.loadTable(ctx, divisionID)
	if err != nil {
		return standing.DivisionStats{}, err
	}

	return standing.ComputeDivisionStats(s.standings(ctx, divisionID, teams, matches)), nil
}

func (s *StandingService) standings(ctx context.Context, divisionID string, teams []team.Team, matches []match.Match) []standing.Row {
	rows, skips := standing.ComputeStandingsReport(teams, matches)
	s.skips.standings(ctx, divisionID, skips)
	return rows
}

func (s *StandingService) topScorers(
	ctx context.Context,
	divisionID string,
	teams []team.Team,
	matches []match.Match,
	goals []match.Goal,
	players []player.Player,
) []standing.ScorerRow {
	rows, skips := standing.ComputeTopScorersReport(teams, matchIDSet(matches), goals, players)
	s.skips.scorers(ctx, divisionID, skips)
	return rows
}

// loadTable reads the division's teams and matches concurrently. The first
// failed read cancels the other and fails the call.
func (s *StandingService) loadTable(ctx context.Context, divisionID string) ([]team.Team, []match.Match, error) {
	var (
		teams   []team.Team
		matches []match.Match
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		items, err := s.teamRepo.ListByDivision(ctx, divisionID)
		if err != nil {
			return fmt.Errorf("list teams by division: %w", err)
		}
		teams = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.ListByDivision(ctx, divisionID)
		if err != nil {
			return fmt.Errorf("list matches by division: %w", err)
		}
		matches = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, nil, err
	}

	return teams, matches, nil
}

// loadScoring reads the goals of matches and the players of teams
// concurrently.
func (s *StandingService) loadScoring(ctx context.Context, teams []team.Team, matches []match.Match) ([]match.Goal, []player.Player, error) {
	var (
		goals   []match.Goal
		players []player.Player
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.ListGoalsByMatches(ctx, matchIDs(matches))
		if err != nil {
			return fmt.Errorf("list goals by matches: %w", err)
		}
		goals = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.playerRepo.ListByTeams(ctx, teamIDs(teams))
		if err != nil {
			return fmt.Errorf("list players by teams: %w", err)
		}
		players = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, nil, err
	}

	return goals, players, nil
}

func limitScorers(rows []standing.ScorerRow, limit int) []standing.ScorerRow {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

func matchIDs(items []match.Match) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func matchIDSet(items []match.Match) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[item.ID] = struct{}{}
	}
	return out
}

func teamIDs(items []team.Team) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func teamsByID(items []team.Team) map[string]team.Team {
	out := make(map[string]team.Team, len(items))
	for _, item := range items {
		out[item.ID] = item
	}
	return out
}

func playersByID(items []player.Player) map[string]player.Player {
	out := make(map[string]player.Player, len(items))
	for _, item := range items {
		out[item.ID] = item
	}
	return out
}
