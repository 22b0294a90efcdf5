// Package httpx provides the HTTP handlers and router for the recruiting API.
package httpx

import (
	"net/http"

	"github.com/dhi-labs/recruit-api/internal/domain/model"
	"github.com/dhi-labs/recruit-api/internal/service"
)

const (
	defaultApplicationLimit = 1000
	maxApplicationLimit     = 1000
)

// ApplicationHandlers provides HTTP handlers for pipeline applications.
type ApplicationHandlers struct {
	Svc *service.ApplicationService
}

// List handles GET /api/applications.
func (h *ApplicationHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := ParseLimitOffset(r, defaultApplicationLimit, maxApplicationLimit)

	records, err := h.Svc.List(r.Context(), limit)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	if records == nil {
		records = []*model.ApplicationRecord{}
	}
	WriteJSON(w, http.StatusOK, records)
}

// Get handles GET /api/applications/{id}.
func (h *ApplicationHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	record, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, record)
}

// Create handles POST /api/applications.
func (h *ApplicationHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.ApplicationPayload
	if !DecodeJSONLenient(w, r, &payload) {
		return
	}

	record, err := h.Svc.Create(r.Context(), &payload)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, record)
}

// Update handles PUT and PATCH /api/applications/{id}.
func (h *ApplicationHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var payload model.ApplicationPayload
	if !DecodeJSONLenient(w, r, &payload) {
		return
	}

	record, err := h.Svc.Update(r.Context(), id, &payload)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, record)
}

// Delete handles DELETE /api/applications/{id}.
func (h *ApplicationHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		RenderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Options handles GET /api/applications/candidate-options and its aliases:
// the candidate and job dropdown lists used by the application form.
func (h *ApplicationHandlers) Options(w http.ResponseWriter, r *http.Request) {
	opts, err := h.Svc.Options(r.Context())
	if err != nil {
		RenderError(w, r, err)
		return
	}
	if opts.Candidates == nil {
		opts.Candidates = []*model.CandidateOption{}
	}
	if opts.Jobs == nil {
		opts.Jobs = []*model.JobOption{}
	}
	WriteJSON(w, http.StatusOK, opts)
}
