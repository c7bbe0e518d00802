package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/division"
	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	"github.com/riskibarqy/league-dashboard/internal/domain/player"
	"github.com/riskibarqy/league-dashboard/internal/domain/standing"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
	"github.com/sourcegraph/conc/pool"
)

const teamPageRecentMatches = 5

type TeamRecord struct {
	TeamID string `json:"teamId"`
	W      int    `json:"w"`
	D      int    `json:"d"`
	L      int    `json:"l"`
	GF     int    `json:"gf"`
	GA     int    `json:"ga"`
	GD     int    `json:"gd"`
	Points int    `json:"points"`
}

type TeamRecentMatch struct {
	MatchID       string     `json:"matchId"`
	MatchDate     time.Time  `json:"matchDate"`
	Opponent      ResultSide `json:"opponent"`
	IsHome        bool       `json:"isHome"`
	TeamScore     int        `json:"teamScore"`
	OpponentScore int        `json:"opponentScore"`
	Outcome       string     `json:"outcome"`
	Notes         string     `json:"notes,omitempty"`
}

type MatchNote struct {
	MatchID   string    `json:"matchId"`
	MatchDate time.Time `json:"matchDate"`
	Note      string    `json:"note"`
}

type TeamPage struct {
	Team          team.Team
	Division      *division.Division
	Record        *TeamRecord
	RecentMatches []TeamRecentMatch
	TopScorers    []standing.PlayerTally
	MatchNotes    []MatchNote
}

type TeamService struct {
	divisionRepo division.Repository
	teamRepo     team.Repository
	matchRepo    match.Repository
	playerRepo   player.Repository
	standings    *StandingService
}

func NewTeamService(
	divisionRepo division.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	standings *StandingService,
) *TeamService {
	return &TeamService{
		divisionRepo: divisionRepo,
		teamRepo:     teamRepo,
		matchRepo:    matchRepo,
		playerRepo:   playerRepo,
		standings:    standings,
	}
}

func (s *TeamService) ListByDivision(ctx context.Context, divisionID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByDivision", divisionAttr(divisionID))
	defer span.End()

	items, err := s.teamRepo.ListByDivision(ctx, divisionID)
	if err != nil {
		return nil, fmt.Errorf("list teams by division: %w", err)
	}
	return items, nil
}

func (s *TeamService) TeamPage(ctx context.Context, teamID string) (TeamPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.TeamPage")
	defer span.End()

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamPage{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamPage{}, notFound("team", teamID)
	}

	divisionID := item.DivisionID
	var (
		div     *division.Division
		rows    []standing.Row
		teams   []team.Team
		matches []match.Match
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		value, ok, err := s.divisionRepo.GetByID(ctx, divisionID)
		if err != nil {
			return fmt.Errorf("get division: %w", err)
		}
		if ok {
			div = &value
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		value, err := s.standings.Standings(ctx, divisionID)
		if err != nil {
			return fmt.Errorf("compute standings: %w", err)
		}
		rows = value
		return nil
	})
	p.Go(func(ctx context.Context) error {
		value, err := s.teamRepo.ListByDivision(ctx, divisionID)
		if err != nil {
			return fmt.Errorf("list teams by division: %w", err)
		}
		teams = value
		return nil
	})
	p.Go(func(ctx context.Context) error {
		value, err := s.matchRepo.ListByTeam(ctx, divisionID, teamID)
		if err != nil {
			return fmt.Errorf("list team matches: %w", err)
		}
		matches = value
		return nil
	})
	if err := p.Wait(); err != nil {
		return TeamPage{}, err
	}

	page := TeamPage{
		Team:          item,
		Division:      div,
		RecentMatches: make([]TeamRecentMatch, 0, teamPageRecentMatches),
		TopScorers:    []standing.PlayerTally{},
		MatchNotes:    []MatchNote{},
	}
	if row, ok := standing.FindRow(rows, teamID); ok {
		page.Record = &TeamRecord{
			TeamID: teamID,
			W:      row.W,
			D:      row.D,
			L:      row.L,
			GF:     row.GF,
			GA:     row.GA,
			GD:     row.GD,
			Points: row.Points,
		}
	}

	byID := teamsByID(teams)
	for _, m := range matches {
		if len(page.RecentMatches) < teamPageRecentMatches {
			page.RecentMatches = append(page.RecentMatches, recentMatchFor(m, teamID, byID))
		}
		if m.Notes != "" {
			page.MatchNotes = append(page.MatchNotes, MatchNote{MatchID: m.ID, MatchDate: m.MatchDate, Note: m.Notes})
		}
	}

	if len(matches) == 0 {
		return page, nil
	}

	goals, err := s.matchRepo.ListGoalsByMatches(ctx, matchIDs(matches))
	if err != nil {
		return TeamPage{}, fmt.Errorf("list goals by matches: %w", err)
	}
	teamGoals := make([]match.Goal, 0, len(goals))
	for _, goal := range goals {
		if goal.TeamID == teamID {
			teamGoals = append(teamGoals, goal)
		}
	}
	scorers, err := loadScorers(ctx, s.playerRepo, teamGoals)
	if err != nil {
		return TeamPage{}, err
	}
	page.TopScorers = standing.TallyScorers(teamGoals, scorers)

	return page, nil
}

func recentMatchFor(m match.Match, teamID string, teams map[string]team.Team) TeamRecentMatch {
	isHome := m.HomeTeamID == teamID
	opponentID := m.HomeTeamID
	if isHome {
		opponentID = m.AwayTeamID
	}
	teamScore, opponentScore := m.ScoresFor(teamID)

	return TeamRecentMatch{
		MatchID:       m.ID,
		MatchDate:     m.MatchDate,
		Opponent:      resultSide(teams, opponentID, "Opponent", opponentScore),
		IsHome:        isHome,
		TeamScore:     teamScore,
		OpponentScore: opponentScore,
		Outcome:       m.Outcome(teamID),
		Notes:         m.Notes,
	}
}
