package httpapi

import (
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/correction"
	"github.com/riskibarqy/league-dashboard/internal/domain/division"
	"github.com/riskibarqy/league-dashboard/internal/domain/headline"
	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	"github.com/riskibarqy/league-dashboard/internal/domain/player"
	"github.com/riskibarqy/league-dashboard/internal/domain/standing"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
	"github.com/riskibarqy/league-dashboard/internal/usecase"
)

type divisionDTO struct {
	ID        string `json:"id"`
	LeagueID  string `json:"leagueId,omitempty"`
	Name      string `json:"name"`
	ShortName string `json:"shortName,omitempty"`
	AgeGroup  string `json:"ageGroup,omitempty"`
}

type activeDivisionDTO struct {
	Division       divisionDTO `json:"division"`
	ShouldRedirect bool        `json:"shouldRedirect"`
}

type teamDTO struct {
	ID         string `json:"id"`
	DivisionID string `json:"divisionId"`
	Name       string `json:"name"`
	ShortName  string `json:"shortName,omitempty"`
	BadgeURL   string `json:"badgeUrl,omitempty"`
}

type playerDTO struct {
	ID       string `json:"id"`
	TeamID   string `json:"teamId"`
	Name     string `json:"name"`
	Number   *int   `json:"number"`
	Position string `json:"position,omitempty"`
}

type goalDTO struct {
	ID        string `json:"id"`
	TeamID    string `json:"teamId"`
	PlayerID  string `json:"playerId,omitempty"`
	Minute    *int   `json:"minute"`
	IsOwnGoal bool   `json:"isOwnGoal"`
}

type matchDTO struct {
	ID         string    `json:"id"`
	DivisionID string    `json:"divisionId"`
	MatchDate  time.Time `json:"matchDate"`
	HomeTeamID string    `json:"homeTeamId"`
	AwayTeamID string    `json:"awayTeamId"`
	HomeScore  int       `json:"homeScore"`
	AwayScore  int       `json:"awayScore"`
	Notes      string    `json:"notes,omitempty"`
	Goals      []goalDTO `json:"goals,omitempty"`
}

type adminMatchDTO struct {
	matchDTO
	HomeTeam usecase.ResultSide `json:"homeTeam"`
	AwayTeam usecase.ResultSide `json:"awayTeam"`
}

type headlineDTO struct {
	ID         string    `json:"id"`
	DivisionID string    `json:"divisionId"`
	MatchID    string    `json:"matchId,omitempty"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
}

type correctionDTO struct {
	ID           string    `json:"id"`
	DivisionID   string    `json:"divisionId,omitempty"`
	DivisionName string    `json:"divisionName,omitempty"`
	TeamID       string    `json:"teamId,omitempty"`
	TeamName     string    `json:"teamName,omitempty"`
	Category     string    `json:"category"`
	ContactName  string    `json:"contactName"`
	ContactEmail string    `json:"contactEmail"`
	ContactRole  string    `json:"contactRole,omitempty"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
}

type teamPageDTO struct {
	Team          teamDTO                   `json:"team"`
	Division      *divisionDTO              `json:"division"`
	Record        *usecase.TeamRecord       `json:"record"`
	RecentMatches []usecase.TeamRecentMatch `json:"recentMatches"`
	TopScorers    []standing.PlayerTally    `json:"topScorers"`
	MatchNotes    []usecase.MatchNote       `json:"matchNotes"`
}

type overviewDTO struct {
	DivisionID    string                 `json:"divisionId"`
	Standings     []standing.Row         `json:"standings"`
	Stats         standing.DivisionStats `json:"stats"`
	TopScorers    []standing.ScorerRow   `json:"topScorers"`
	LatestResults []usecase.LatestResult `json:"latestResults"`
	Headlines     []headlineDTO          `json:"headlines"`
}

func divisionToDTO(v division.Division) divisionDTO {
	return divisionDTO{
		ID:        v.ID,
		LeagueID:  v.LeagueID,
		Name:      v.Name,
		ShortName: v.ShortName,
		AgeGroup:  v.AgeGroup,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:         v.ID,
		DivisionID: v.DivisionID,
		Name:       v.Name,
		ShortName:  v.ShortName,
		BadgeURL:   v.BadgeURL,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:       v.ID,
		TeamID:   v.TeamID,
		Name:     v.Name,
		Number:   v.Number,
		Position: v.Position,
	}
}

func matchToDTO(v match.Match, goals []match.Goal) matchDTO {
	out := matchDTO{
		ID:         v.ID,
		DivisionID: v.DivisionID,
		MatchDate:  v.MatchDate,
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
		Notes:      v.Notes,
	}
	for _, g := range goals {
		out.Goals = append(out.Goals, goalDTO{
			ID:        g.ID,
			TeamID:    g.TeamID,
			PlayerID:  g.PlayerID,
			Minute:    g.Minute,
			IsOwnGoal: g.IsOwnGoal,
		})
	}
	return out
}

func headlineToDTO(v headline.Headline) headlineDTO {
	return headlineDTO{
		ID:         v.ID,
		DivisionID: v.DivisionID,
		MatchID:    v.MatchID,
		Title:      v.Title,
		Body:       v.Body,
		CreatedAt:  v.CreatedAt,
	}
}

func headlinesToDTO(items []headline.Headline) []headlineDTO {
	out := make([]headlineDTO, 0, len(items))
	for _, item := range items {
		out = append(out, headlineToDTO(item))
	}
	return out
}

func correctionToDTO(v correction.Correction) correctionDTO {
	return correctionDTO{
		ID:           v.ID,
		DivisionID:   v.DivisionID,
		DivisionName: v.DivisionName,
		TeamID:       v.TeamID,
		TeamName:     v.TeamName,
		Category:     string(v.Category),
		ContactName:  v.ContactName,
		ContactEmail: v.ContactEmail,
		ContactRole:  v.ContactRole,
		Message:      v.Message,
		Status:       string(v.Status),
		Notes:        v.Notes,
		CreatedAt:    v.CreatedAt,
	}
}

func teamPageToDTO(v usecase.TeamPage) teamPageDTO {
	out := teamPageDTO{
		Team:          teamToDTO(v.Team),
		Record:        v.Record,
		RecentMatches: v.RecentMatches,
		TopScorers:    v.TopScorers,
		MatchNotes:    v.MatchNotes,
	}
	if v.Division != nil {
		d := divisionToDTO(*v.Division)
		out.Division = &d
	}
	return out
}

func overviewToDTO(v usecase.DivisionOverview) overviewDTO {
	return overviewDTO{
		DivisionID:    v.DivisionID,
		Standings:     v.Standings,
		Stats:         v.Stats,
		TopScorers:    v.TopScorers,
		LatestResults: v.LatestResults,
		Headlines:     headlinesToDTO(v.Headlines),
	}
}
