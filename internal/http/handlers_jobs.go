package httpx

import (
	"net/http"

	"github.com/dhi-labs/recruit-api/internal/domain/model"
	"github.com/dhi-labs/recruit-api/internal/service"
)

const (
	defaultJobLimit = 50
	maxJobLimit     = 500
)

// JobHandlers provides HTTP handlers for job opening operations.
type JobHandlers struct {
	Svc *service.JobService
}

// List handles GET /api/jobs with limit/offset params.
func (h *JobHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultJobLimit, maxJobLimit)

	jobs, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	if jobs == nil {
		jobs = []*model.JobView{}
	}
	WriteJSON(w, http.StatusOK, jobs)
}

// Get handles GET /api/jobs/{id}.
func (h *JobHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	job, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// Create handles POST /api/jobs.
func (h *JobHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.JobPayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	job, err := h.Svc.Create(r.Context(), &payload)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, job)
}

// Update handles PUT /api/jobs/{id}.
func (h *JobHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var payload model.JobPayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	job, err := h.Svc.Update(r.Context(), id, &payload)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// UpdateStatus handles PATCH /api/jobs/{id}/status.
func (h *JobHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

// Delete handles DELETE /api/jobs/{id}.
func (h *JobHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
