package httpapi

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/league-dashboard/internal/usecase"
)

const (
	defaultLatestResultsLimit = 10
	maxLatestResultsLimit     = 50
)

type goalRequest struct {
	TeamID    string `json:"teamId" validate:"max=64"`
	PlayerID  string `json:"playerId" validate:"max=64"`
	Minute    *int   `json:"minute" validate:"omitempty,min=0,max=200"`
	IsOwnGoal bool   `json:"isOwnGoal"`
}

// matchRequest leaves presence checks to the use case so validation
// messages come out in a fixed order.
type matchRequest struct {
	DivisionID string        `json:"divisionId" validate:"max=64"`
	MatchDate  string        `json:"matchDate" validate:"max=64"`
	HomeTeamID string        `json:"homeTeamId" validate:"max=64"`
	AwayTeamID string        `json:"awayTeamId" validate:"max=64"`
	HomeScore  scoreField    `json:"homeScore"`
	AwayScore  scoreField    `json:"awayScore"`
	Notes      string        `json:"notes" validate:"max=2000"`
	Goals      []goalRequest `json:"goals" validate:"max=200,dive"`
}

// scoreField accepts any JSON value. Anything other than a bare integer
// decodes as missing, which the match validation reports in its usual order.
type scoreField struct {
	value *int
}

func (f *scoreField) UnmarshalJSON(data []byte) error {
	f.value = nil
	n, err := strconv.Atoi(string(bytes.TrimSpace(data)))
	if err != nil {
		return nil
	}
	f.value = &n
	return nil
}

func (req matchRequest) toInput() usecase.MatchInput {
	goals := make([]usecase.GoalInput, 0, len(req.Goals))
	for _, g := range req.Goals {
		goals = append(goals, usecase.GoalInput{
			TeamID:    g.TeamID,
			PlayerID:  g.PlayerID,
			Minute:    g.Minute,
			IsOwnGoal: g.IsOwnGoal,
		})
	}
	return usecase.MatchInput{
		DivisionID: req.DivisionID,
		MatchDate:  req.MatchDate,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		HomeScore:  req.HomeScore.value,
		AwayScore:  req.AwayScore.value,
		Notes:      req.Notes,
		Goals:      goals,
	}
}

// ListLatestResults serves the public results feed. Without divisionId the
// active default division is used.
func (h *Handler) ListLatestResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLatestResults")
	defer span.End()

	limit, err := queryLimit(r, defaultLatestResultsLimit, maxLatestResultsLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	divisionID := strings.TrimSpace(r.URL.Query().Get("divisionId"))
	if divisionID == "" {
		resolved, err := h.divisionService.ResolveActive(ctx, "")
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		divisionID = resolved.Division.ID
	}

	results, err := h.resultService.LatestResults(ctx, divisionID, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list latest results failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, results)
}

func (h *Handler) AdminListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminListMatches")
	defer span.End()

	divisionID := r.PathValue("divisionID")
	matches, err := h.matchService.ListForAdmin(ctx, divisionID)
	if err != nil {
		h.logger.WarnContext(ctx, "admin list matches failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]adminMatchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, adminMatchDTO{
			matchDTO: matchToDTO(m.Match, nil),
			HomeTeam: m.HomeTeam,
			AwayTeam: m.AwayTeam,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AdminGetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminGetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	detail, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(detail.Match, detail.Goals))
}

func (h *Handler) AdminCreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminCreateMatch")
	defer span.End()

	var req matchRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.Create(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "division_id", req.DivisionID, "error", err)
		writeError(ctx, w, err)
		return
	}
	auditAdminWrite(ctx, h.logger, "match.create", created.ID)
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created, nil))
}

func (h *Handler) AdminUpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminUpdateMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	var req matchRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.Update(ctx, matchID, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	auditAdminWrite(ctx, h.logger, "match.update", matchID)
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated, nil))
}

func (h *Handler) AdminDeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminDeleteMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	auditAdminWrite(ctx, h.logger, "match.delete", matchID)
	writeNoContent(w)
}
