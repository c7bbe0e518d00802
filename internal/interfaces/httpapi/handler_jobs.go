package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-dashboard/internal/usecase"
)

type recomputeRequest struct {
	DivisionIDs []string `json:"divisionIds" validate:"max=100,dive,required,max=64"`
	MaxWorkers  int      `json:"maxWorkers" validate:"min=0,max=32"`
}

// RunRecomputeJob recomputes standings and scorers for the requested
// divisions, or every division when the body is empty.
func (h *Handler) RunRecomputeJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecomputeJob")
	defer span.End()

	var req recomputeRequest
	if r.ContentLength != 0 {
		if err := h.decodeJSON(ctx, w, r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	result, err := h.recomputeService.RecomputeAll(ctx, usecase.RecomputeInput{
		DivisionIDs: req.DivisionIDs,
		MaxWorkers:  req.MaxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "recompute job failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, result)
}
