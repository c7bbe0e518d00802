package httpapi

import (
	"bytes"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/league-dashboard/internal/usecase"
)

type correctionSubmitRequest struct {
	DivisionID   string `json:"divisionId" validate:"max=64"`
	DivisionName string `json:"divisionName" validate:"max=120"`
	TeamID       string `json:"teamId" validate:"max=64"`
	TeamName     string `json:"teamName" validate:"max=120"`
	Category     string `json:"category" validate:"max=40"`
	ContactName  string `json:"contactName" validate:"max=120"`
	ContactEmail string `json:"contactEmail" validate:"max=254"`
	ContactRole  string `json:"contactRole" validate:"max=60"`
	Message      string `json:"message" validate:"max=5000"`
}

// optionalString tracks whether a field was present, so an explicit null
// can clear a value while an omitted field leaves it alone.
type optionalString struct {
	Set   bool
	Value *string
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}

	var value string
	if err := jsoniter.Unmarshal(data, &value); err != nil {
		return err
	}
	o.Value = &value
	return nil
}

type correctionPatchRequest struct {
	Status string         `json:"status" validate:"max=40"`
	Notes  optionalString `json:"notes"`
}

func (h *Handler) SubmitCorrection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitCorrection")
	defer span.End()

	var req correctionSubmitRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.correctionService.Submit(ctx, usecase.CorrectionInput{
		DivisionID:   req.DivisionID,
		DivisionName: req.DivisionName,
		TeamID:       req.TeamID,
		TeamName:     req.TeamName,
		Category:     req.Category,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactRole:  req.ContactRole,
		Message:      req.Message,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit correction failed", "division_id", req.DivisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	origin := resolveClientOrigin(r)
	h.logger.InfoContext(ctx, "correction submitted",
		"correction_id", created.ID,
		"category", string(created.Category),
		"division_id", created.DivisionID,
		"client_ip", origin.IP,
		"client_country", origin.Country,
	)
	writeSuccess(ctx, w, http.StatusCreated, correctionToDTO(created))
}

func (h *Handler) AdminListCorrections(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminListCorrections")
	defer span.End()

	items, err := h.correctionService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list corrections failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]correctionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, correctionToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AdminUpdateCorrection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminUpdateCorrection")
	defer span.End()

	correctionID := r.PathValue("correctionID")
	var req correctionPatchRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.correctionService.Update(ctx, correctionID, usecase.CorrectionUpdate{
		Status:   req.Status,
		SetNotes: req.Notes.Set,
		Notes:    req.Notes.Value,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update correction failed", "correction_id", correctionID, "error", err)
		writeError(ctx, w, err)
		return
	}
	auditAdminWrite(ctx, h.logger, "correction.update", correctionID)
	writeSuccess(ctx, w, http.StatusOK, correctionToDTO(updated))
}
