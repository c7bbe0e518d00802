package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/league-dashboard/internal/usecase"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
	maxHeadlineLimit        = 50
)

func (h *Handler) ListDivisions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisions")
	defer span.End()

	divisions, err := h.divisionService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list divisions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]divisionDTO, 0, len(divisions))
	for _, d := range divisions {
		items = append(items, divisionToDTO(d))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ResolveActiveDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolveActiveDivision")
	defer span.End()

	requested := strings.TrimSpace(r.URL.Query().Get("divisionId"))
	resolved, err := h.divisionService.ResolveActive(ctx, requested)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve active division failed", "division_id", requested, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, activeDivisionDTO{
		Division:       divisionToDTO(resolved.Division),
		ShouldRedirect: resolved.ShouldRedirect,
	})
}

func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Standings")
	defer span.End()

	divisionID := r.PathValue("divisionID")
	rows, err := h.standingService.Standings(ctx, divisionID)
	if err != nil {
		h.logger.WarnContext(ctx, "compute standings failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Leaderboard")
	defer span.End()

	divisionID := r.PathValue("divisionID")
	limit, err := queryLimit(r, defaultLeaderboardLimit, maxLeaderboardLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.standingService.TopScorers(ctx, divisionID, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "compute leaderboard failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) DivisionStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DivisionStats")
	defer span.End()

	divisionID := r.PathValue("divisionID")
	stats, err := h.standingService.DivisionStats(ctx, divisionID)
	if err != nil {
		h.logger.WarnContext(ctx, "compute division stats failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, stats)
}

func (h *Handler) DivisionOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DivisionOverview")
	defer span.End()

	divisionID := r.PathValue("divisionID")
	overview, err := h.overviewService.Overview(ctx, divisionID)
	if err != nil {
		h.logger.WarnContext(ctx, "build division overview failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(overview))
}

func (h *Handler) ListTeamsByDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByDivision")
	defer span.End()

	divisionID := r.PathValue("divisionID")
	teams, err := h.teamService.ListByDivision(ctx, divisionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListHeadlinesByDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHeadlinesByDivision")
	defer span.End()

	divisionID := r.PathValue("divisionID")
	limit, err := queryLimit(r, usecase.DefaultHeadlineLimit, maxHeadlineLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.headlineService.ListByDivision(ctx, divisionID, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list headlines failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, headlinesToDTO(items))
}

func (h *Handler) GetTeamPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamPage")
	defer span.End()

	teamID := r.PathValue("teamID")
	page, err := h.teamService.TeamPage(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "build team page failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamPageToDTO(page))
}
