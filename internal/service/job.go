package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dhi-labs/recruit-api/internal/core"
	"github.com/dhi-labs/recruit-api/internal/domain/model"
	apperrors "github.com/dhi-labs/recruit-api/internal/errors"
)

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	Repo   core.JobRepository
	Logger *slog.Logger
}

// JobService provides business logic for job opening management. Reads are
// returned as JobView so clients get the derived display fields.
type JobService struct {
	repo   core.JobRepository
	logger *slog.Logger
}

// NewJobService constructs a JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	if opts.Repo == nil {
		panic("JobRepository is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &JobService{
		repo:   opts.Repo,
		logger: logger.With("component", "job_service"),
	}
}

// Create validates and stores a job opening.
func (s *JobService) Create(ctx context.Context, payload *model.JobPayload) (*model.JobView, error) {
	if payload == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := payload.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	job, err := s.repo.Create(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	s.logger.InfoContext(ctx, "job created", "id", job.ID, "title", job.JobTitle)
	return job.View(), nil
}

// Get returns one job with derived display fields.
func (s *JobService) Get(ctx context.Context, id int64) (*model.JobView, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job.View(), nil
}

// List returns jobs with pagination, newest first.
func (s *JobService) List(ctx context.Context, limit, offset int) ([]*model.JobView, error) {
	jobs, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	views := make([]*model.JobView, len(jobs))
	for i, j := range jobs {
		views[i] = j.View()
	}
	return views, nil
}

// Update replaces a job's mutable fields.
func (s *JobService) Update(ctx context.Context, id int64, payload *model.JobPayload) (*model.JobView, error) {
	if payload == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := payload.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	job, err := s.repo.Update(ctx, id, payload)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job.View(), nil
}

// UpdateStatus moves a job between lifecycle states without touching the
// rest of the posting.
func (s *JobService) UpdateStatus(ctx context.Context, id int64, status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return apperrors.Validation("Missing status")
	}
	if !model.JobStatus(status).Valid() {
		return apperrors.Validationf("Invalid status %q", status)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("update job status: %w", err)
	}
	if !updated {
		return apperrors.NotFoundf("job %d not found", id)
	}
	s.logger.InfoContext(ctx, "job status updated", "id", id, "status", status)
	return nil
}

// Delete removes a job. Returns NotFound when no row matched.
func (s *JobService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if !deleted {
		return apperrors.NotFoundf("job %d not found", id)
	}
	s.logger.InfoContext(ctx, "job deleted", "id", id)
	return nil
}
