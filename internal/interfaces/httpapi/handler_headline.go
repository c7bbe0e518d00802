package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-dashboard/internal/usecase"
)

type headlineRequest struct {
	DivisionID string `json:"divisionId" validate:"max=64"`
	MatchID    string `json:"matchId" validate:"max=64"`
	Title      string `json:"title" validate:"max=200"`
	Body       string `json:"body" validate:"max=5000"`
}

func (req headlineRequest) toInput() usecase.HeadlineInput {
	return usecase.HeadlineInput{
		DivisionID: req.DivisionID,
		MatchID:    req.MatchID,
		Title:      req.Title,
		Body:       req.Body,
	}
}

func (h *Handler) AdminCreateHeadline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminCreateHeadline")
	defer span.End()

	var req headlineRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.headlineService.Create(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create headline failed", "division_id", req.DivisionID, "error", err)
		writeError(ctx, w, err)
		return
	}
	auditAdminWrite(ctx, h.logger, "headline.create", created.ID)
	writeSuccess(ctx, w, http.StatusCreated, headlineToDTO(created))
}

func (h *Handler) AdminUpdateHeadline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminUpdateHeadline")
	defer span.End()

	headlineID := r.PathValue("headlineID")
	var req headlineRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.headlineService.Update(ctx, headlineID, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update headline failed", "headline_id", headlineID, "error", err)
		writeError(ctx, w, err)
		return
	}
	auditAdminWrite(ctx, h.logger, "headline.update", headlineID)
	writeSuccess(ctx, w, http.StatusOK, headlineToDTO(updated))
}

func (h *Handler) AdminDeleteHeadline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminDeleteHeadline")
	defer span.End()

	headlineID := r.PathValue("headlineID")
	if err := h.headlineService.Delete(ctx, headlineID); err != nil {
		h.logger.WarnContext(ctx, "delete headline failed", "headline_id", headlineID, "error", err)
		writeError(ctx, w, err)
		return
	}
	auditAdminWrite(ctx, h.logger, "headline.delete", headlineID)
	writeNoContent(w)
}
