package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
	"github.com/riskibarqy/league-dashboard/internal/platform/id"
)

const adminMatchListLimit = 20

type GoalInput struct {
	TeamID    string
	PlayerID  string
	Minute    *int
	IsOwnGoal bool
}

// MatchInput is an admin match submission. Scores are pointers so a missing
// score can be told apart from zero.
type MatchInput struct {
	DivisionID string
	MatchDate  string
	HomeTeamID string
	AwayTeamID string
	HomeScore  *int
	AwayScore  *int
	Notes      string
	Goals      []GoalInput
}

type AdminMatch struct {
	Match    match.Match
	HomeTeam ResultSide
	AwayTeam ResultSide
}

type MatchDetail struct {
	Match match.Match
	Goals []match.Goal
}

type MatchService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
	ids       id.Generator
}

func NewMatchService(matchRepo match.Repository, teamRepo team.Repository, ids id.Generator) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		ids:       ids,
	}
}

// ListForAdmin returns the newest matches of a division with team labels.
func (s *MatchService) ListForAdmin(ctx context.Context, divisionID string) ([]AdminMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListForAdmin", divisionAttr(divisionID))
	defer span.End()

	matches, err := s.matchRepo.ListRecentByDivision(ctx, divisionID, adminMatchListLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent matches: %w", err)
	}
	teams, err := s.teamRepo.ListByDivision(ctx, divisionID)
	if err != nil {
		return nil, fmt.Errorf("list teams by division: %w", err)
	}

	byID := teamsByID(teams)
	out := make([]AdminMatch, 0, len(matches))
	for _, item := range matches {
		out = append(out, AdminMatch{
			Match:    item,
			HomeTeam: resultSide(byID, item.HomeTeamID, "Home", item.HomeScore),
			AwayTeam: resultSide(byID, item.AwayTeamID, "Away", item.AwayScore),
		})
	}
	return out, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return MatchDetail{}, notFound("match", matchID)
	}
	goals, err := s.matchRepo.ListGoalsByMatches(ctx, []string{matchID})
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list match goals: %w", err)
	}
	return MatchDetail{Match: item, Goals: goals}, nil
}

func (s *MatchService) Create(ctx context.Context, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	item, err := normalizeMatchInput(input)
	if err != nil {
		return match.Match{}, err
	}
	if item.ID, err = s.ids.NewID(); err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}
	goals, err := s.goalsFor(item.ID, input.Goals)
	if err != nil {
		return match.Match{}, err
	}

	created, err := s.matchRepo.Create(ctx, item, goals)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return created, nil
}

// Update replaces the match row and its full goal list.
func (s *MatchService) Update(ctx context.Context, matchID string, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	if strings.TrimSpace(matchID) == "" {
		return match.Match{}, invalidInput("Match ID is required.")
	}
	item, err := normalizeMatchInput(input)
	if err != nil {
		return match.Match{}, err
	}
	item.ID = matchID
	goals, err := s.goalsFor(matchID, input.Goals)
	if err != nil {
		return match.Match{}, err
	}

	updated, exists, err := s.matchRepo.Update(ctx, item, goals)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	if !exists {
		return match.Match{}, notFound("match", matchID)
	}
	return updated, nil
}

func (s *MatchService) Delete(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	if strings.TrimSpace(matchID) == "" {
		return invalidInput("Match ID is required.")
	}
	deleted, err := s.matchRepo.Delete(ctx, matchID)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if !deleted {
		return notFound("match", matchID)
	}
	return nil
}

// goalsFor drops goals without a team and assigns ids to the rest.
func (s *MatchService) goalsFor(matchID string, inputs []GoalInput) ([]match.Goal, error) {
	out := make([]match.Goal, 0, len(inputs))
	for _, input := range inputs {
		teamID := strings.TrimSpace(input.TeamID)
		if teamID == "" {
			continue
		}
		goalID, err := s.ids.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate goal id: %w", err)
		}
		out = append(out, match.Goal{
			ID:        goalID,
			MatchID:   matchID,
			TeamID:    teamID,
			PlayerID:  strings.TrimSpace(input.PlayerID),
			Minute:    input.Minute,
			IsOwnGoal: input.IsOwnGoal,
		})
	}
	return out, nil
}

func normalizeMatchInput(input MatchInput) (match.Match, error) {
	divisionID := strings.TrimSpace(input.DivisionID)
	homeID := strings.TrimSpace(input.HomeTeamID)
	awayID := strings.TrimSpace(input.AwayTeamID)
	rawDate := strings.TrimSpace(input.MatchDate)

	if divisionID == "" {
		return match.Match{}, invalidInput("Division is required.")
	}
	if rawDate == "" {
		return match.Match{}, invalidInput("Match date is required.")
	}
	if homeID == "" || awayID == "" {
		return match.Match{}, invalidInput("Both home and away teams are required.")
	}
	if homeID == awayID {
		return match.Match{}, invalidInput("Home and away teams must be different.")
	}
	if input.HomeScore == nil || input.AwayScore == nil || *input.HomeScore < 0 || *input.AwayScore < 0 {
		return match.Match{}, invalidInput("Home and away scores must be numbers.")
	}
	matchDate, err := parseMatchDate(rawDate)
	if err != nil {
		return match.Match{}, invalidInput("Match date must be a valid date.")
	}

	return match.Match{
		DivisionID: divisionID,
		MatchDate:  matchDate,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		HomeScore:  *input.HomeScore,
		AwayScore:  *input.AwayScore,
		Notes:      strings.TrimSpace(input.Notes),
	}, nil
}

var matchDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

func parseMatchDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range matchDateLayouts {
		value, err := time.Parse(layout, raw)
		if err == nil {
			return value.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
