package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dhi-labs/recruit-api/internal/core"
	"github.com/dhi-labs/recruit-api/internal/domain/model"
	apperrors "github.com/dhi-labs/recruit-api/internal/errors"
)

// Validation messages surfaced to API clients on application create.
const (
	msgCandidateRequired = "candidate_id or candidate_name (existing) is required"
	msgJobRequired       = "job_id or (job_title and company) is required"
	msgStatusRequired    = "status is required"
)

// ApplicationServiceOptions groups dependencies for ApplicationService.
type ApplicationServiceOptions struct {
	Repo     core.ApplicationRepository
	Resolver core.ReferenceResolver
	Logger   *slog.Logger
}

// ApplicationService orchestrates pipeline application operations: reference
// resolution on writes, partial updates, and the dropdown option lists.
type ApplicationService struct {
	repo     core.ApplicationRepository
	resolver core.ReferenceResolver
	logger   *slog.Logger
}

// NewApplicationService constructs an ApplicationService.
func NewApplicationService(opts ApplicationServiceOptions) *ApplicationService {
	if opts.Repo == nil {
		panic("ApplicationRepository is required")
	}
	if opts.Resolver == nil {
		panic("ReferenceResolver is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicationService{
		repo:     opts.Repo,
		resolver: opts.Resolver,
		logger:   logger.With("component", "application_service"),
	}
}

// List returns the newest applications, at most limit rows.
func (s *ApplicationService) List(ctx context.Context, limit int) ([]*model.ApplicationRecord, error) {
	records, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return records, nil
}

// Get returns one application row.
func (s *ApplicationService) Get(ctx context.Context, id int64) (*model.ApplicationRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	return record, nil
}

// Create validates the status, resolves the candidate and job references,
// and inserts the application. It returns the stored row from the joined
// view.
func (s *ApplicationService) Create(ctx context.Context, payload *model.ApplicationPayload) (*model.ApplicationRecord, error) {
	if payload == nil {
		return nil, apperrors.Validation("request body is required")
	}

	// Normalize before resolving: a bad status fails fast without touching
	// the directories.
	status, present := payload.StatusValue()
	if !present || status == "" {
		return nil, apperrors.Validation(msgStatusRequired)
	}
	if !status.Valid() {
		return nil, apperrors.Validationf("invalid status %q", string(status))
	}

	candidateID, ok, err := s.resolver.ResolveCandidate(ctx, payload.CandidateRef())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Validation(msgCandidateRequired)
	}

	jobID, ok, err := s.resolver.ResolveJob(ctx, payload.JobRef())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Validation(msgJobRequired)
	}

	row := &model.ApplicationRow{
		CandidateID: candidateID,
		JobID:       jobID,
		Status:      status,
		SourcedBy:   payload.SourcedBy,
		SourcedFrom: payload.SourcedFrom,
		AssignedTo:  payload.AssignedTo,
		AppliedOn:   payload.AppliedOn,
		Interview:   payload.Interview,
		Comments:    payload.Comments,
	}

	id, err := s.repo.Insert(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	s.logger.InfoContext(ctx, "application created", "id", id, "candidate_id", candidateID, "job_id", jobID)

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load created application: %w", err)
	}
	return record, nil
}

// Update applies the supplied fields to an application. References given as
// text are resolved and merged only when a match is found and the payload
// carries no explicit id; an unresolved name leaves the stored reference
// alone. An update with no effective fields returns the current row.
func (s *ApplicationService) Update(ctx context.Context, id int64, payload *model.ApplicationPayload) (*model.ApplicationRecord, error) {
	if payload == nil {
		return nil, apperrors.Validation("request body is required")
	}

	upd := &model.ApplicationUpdate{
		CandidateID: payload.CandidateID,
		JobID:       payload.JobID,
		SourcedBy:   payload.SourcedBy,
		SourcedFrom: payload.SourcedFrom,
		AssignedTo:  payload.AssignedTo,
		AppliedOn:   payload.AppliedOn,
		Interview:   payload.Interview,
		Comments:    payload.Comments,
	}

	if status, present := payload.StatusValue(); present {
		if !status.Valid() {
			return nil, apperrors.Validationf("invalid status %q", string(status))
		}
		upd.Status = &status
	}

	if err := s.mergeResolvedRefs(ctx, payload, upd); err != nil {
		return nil, err
	}

	if upd.Empty() {
		record, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get application: %w", err)
		}
		return record, nil
	}

	touched, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	if !touched {
		return nil, apperrors.NotFoundf("application %d not found", id)
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load updated application: %w", err)
	}
	return record, nil
}

// mergeResolvedRefs fills candidate and job ids from free-text references
// when the payload carries text but no explicit id.
func (s *ApplicationService) mergeResolvedRefs(ctx context.Context, payload *model.ApplicationPayload, upd *model.ApplicationUpdate) error {
	if payload.CandidateID == nil {
		if ref := payload.CandidateRef(); ref.Kind() == model.RefByText {
			id, ok, err := s.resolver.ResolveCandidate(ctx, ref)
			if err != nil {
				return err
			}
			if ok {
				upd.CandidateID = &id
			}
		}
	}
	if payload.JobID == nil {
		if ref := payload.JobRef(); ref.Kind() == model.RefByText {
			id, ok, err := s.resolver.ResolveJob(ctx, ref)
			if err != nil {
				return err
			}
			if ok {
				upd.JobID = &id
			}
		}
	}
	return nil
}

// Delete removes an application. Returns NotFound when no row matched.
func (s *ApplicationService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if !deleted {
		return apperrors.NotFoundf("application %d not found", id)
	}
	s.logger.InfoContext(ctx, "application deleted", "id", id)
	return nil
}

// Options returns the candidate and job dropdown lists.
func (s *ApplicationService) Options(ctx context.Context) (*model.ReferenceOptions, error) {
	candidates, err := s.repo.CandidateOptions(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("candidate options: %w", err)
	}
	jobs, err := s.repo.JobOptions(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("job options: %w", err)
	}
	return &model.ReferenceOptions{Candidates: candidates, Jobs: jobs}, nil
}
