package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	"github.com/riskibarqy/league-dashboard/internal/domain/player"
	"github.com/riskibarqy/league-dashboard/internal/domain/standing"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
	"github.com/sourcegraph/conc/pool"
)

const DefaultLatestResultsLimit = 5

type ResultSide struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Score     int    `json:"score"`
}

type LatestResult struct {
	MatchID        string                 `json:"matchId"`
	MatchDate      time.Time              `json:"matchDate"`
	HomeTeam       ResultSide             `json:"homeTeam"`
	AwayTeam       ResultSide             `json:"awayTeam"`
	NotableScorers []standing.PlayerTally `json:"notableScorers"`
	Notes          string                 `json:"notes,omitempty"`
}

type ResultService struct {
	teamRepo   team.Repository
	matchRepo  match.Repository
	playerRepo player.Repository
}

func NewResultService(teamRepo team.Repository, matchRepo match.Repository, playerRepo player.Repository) *ResultService {
	return &ResultService{
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
	}
}

// LatestResults returns the newest matches of a division with players who
// scored at least twice in them.
func (s *ResultService) LatestResults(ctx context.Context, divisionID string, limit int) ([]LatestResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.LatestResults", divisionAttr(divisionID))
	defer span.End()

	if limit <= 0 {
		limit = DefaultLatestResultsLimit
	}

	var (
		matches []match.Match
		teams   []team.Team
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.ListRecentByDivision(ctx, divisionID, limit)
		if err != nil {
			return fmt.Errorf("list recent matches: %w", err)
		}
		matches = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.teamRepo.ListByDivision(ctx, divisionID)
		if err != nil {
			return fmt.Errorf("list teams by division: %w", err)
		}
		teams = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return []LatestResult{}, nil
	}

	goals, err := s.matchRepo.ListGoalsByMatches(ctx, matchIDs(matches))
	if err != nil {
		return nil, fmt.Errorf("list goals by matches: %w", err)
	}
	scorers, err := loadScorers(ctx, s.playerRepo, goals)
	if err != nil {
		return nil, err
	}

	goalsByMatch := make(map[string][]match.Goal, len(matches))
	for _, goal := range goals {
		goalsByMatch[goal.MatchID] = append(goalsByMatch[goal.MatchID], goal)
	}

	byID := teamsByID(teams)
	out := make([]LatestResult, 0, len(matches))
	for _, item := range matches {
		out = append(out, LatestResult{
			MatchID:        item.ID,
			MatchDate:      item.MatchDate,
			HomeTeam:       resultSide(byID, item.HomeTeamID, "Home", item.HomeScore),
			AwayTeam:       resultSide(byID, item.AwayTeamID, "Away", item.AwayScore),
			NotableScorers: standing.NotableScorers(goalsByMatch[item.ID], scorers),
			Notes:          item.Notes,
		})
	}

	return out, nil
}

// loadScorers loads the players credited in goals, whatever team they are on.
func loadScorers(ctx context.Context, repo player.Repository, goals []match.Goal) (map[string]player.Player, error) {
	ids := make([]string, 0, len(goals))
	seen := make(map[string]struct{}, len(goals))
	for _, goal := range goals {
		if goal.IsOwnGoal || goal.PlayerID == "" {
			continue
		}
		if _, ok := seen[goal.PlayerID]; ok {
			continue
		}
		seen[goal.PlayerID] = struct{}{}
		ids = append(ids, goal.PlayerID)
	}
	if len(ids) == 0 {
		return map[string]player.Player{}, nil
	}

	players, err := repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list players by ids: %w", err)
	}
	return playersByID(players), nil
}

func resultSide(teams map[string]team.Team, teamID, fallback string, score int) ResultSide {
	item, ok := teams[teamID]
	if !ok {
		return ResultSide{Name: fallback, ShortName: fallback, Score: score}
	}
	return ResultSide{ID: item.ID, Name: item.Name, ShortName: item.Label(), Score: score}
}
