package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-dashboard/internal/usecase"
)

type playerRequest struct {
	TeamID   string `json:"teamId" validate:"max=64"`
	Name     string `json:"name" validate:"max=120"`
	Number   *int   `json:"number" validate:"omitempty,min=0,max=999"`
	Position string `json:"position" validate:"max=40"`
}

func (req playerRequest) toInput() usecase.PlayerInput {
	return usecase.PlayerInput{
		TeamID:   req.TeamID,
		Name:     req.Name,
		Number:   req.Number,
		Position: req.Position,
	}
}

func (h *Handler) AdminListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminListPlayers")
	defer span.End()

	divisionID := r.PathValue("divisionID")
	players, err := h.playerService.ListByDivision(ctx, divisionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AdminCreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminCreatePlayer")
	defer span.End()

	var req playerRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	auditAdminWrite(ctx, h.logger, "player.create", created.ID)
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) AdminUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminUpdatePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	var req playerRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.Update(ctx, playerID, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	auditAdminWrite(ctx, h.logger, "player.update", playerID)
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) AdminDeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminDeletePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := h.playerService.Delete(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	auditAdminWrite(ctx, h.logger, "player.delete", playerID)
	writeNoContent(w)
}
