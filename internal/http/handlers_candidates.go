package httpx

import (
	"net/http"

	"github.com/dhi-labs/recruit-api/internal/domain/model"
	"github.com/dhi-labs/recruit-api/internal/service"
)

// CandidateHandlers provides HTTP handlers for candidate operations.
type CandidateHandlers struct {
	Svc *service.CandidateService
}

// List handles GET /api/candidates with page/page_size/status/search params.
func (h *CandidateHandlers) List(w http.ResponseWriter, r *http.Request) {
	opts := model.CandidateListOptions{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", model.DefaultCandidatePageSize),
		Status:   r.URL.Query().Get("status"),
		Search:   r.URL.Query().Get("search"),
	}
	opts.Sanitize()

	page, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	if page.Items == nil {
		page.Items = []*model.Candidate{}
	}
	WriteJSON(w, http.StatusOK, page)
}

// Get handles GET /api/candidates/{id}.
func (h *CandidateHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	candidate, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, candidate)
}

// Create handles POST /api/candidates.
func (h *CandidateHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CandidatePayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	candidate, err := h.Svc.Create(r.Context(), &payload)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, candidate)
}

// Update handles PATCH /api/candidates/{id}.
func (h *CandidateHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var payload model.CandidatePayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	candidate, err := h.Svc.Update(r.Context(), id, &payload)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, candidate)
}

// UpdateStatus handles PATCH /api/candidates/{id}/status.
func (h *CandidateHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if !DecodeJSON(w, r, &payload) {
		return
	}

	if err := h.Svc.UpdateStatus(r.Context(), id, payload.Status); err != nil {
		RenderError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Delete handles DELETE /api/candidates/{id}.
func (h *CandidateHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		RenderError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
