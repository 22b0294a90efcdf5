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

// CandidateServiceOptions groups dependencies for CandidateService.
type CandidateServiceOptions struct {
	Repo   core.CandidateRepository
	Logger *slog.Logger
}

// CandidateService provides business logic for candidate management.
type CandidateService struct {
	repo   core.CandidateRepository
	logger *slog.Logger
}

// NewCandidateService constructs a CandidateService.
func NewCandidateService(opts CandidateServiceOptions) *CandidateService {
	if opts.Repo == nil {
		panic("CandidateRepository is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CandidateService{
		repo:   opts.Repo,
		logger: logger.With("component", "candidate_service"),
	}
}

// Create validates the payload, fills defaults, and stores the candidate.
func (s *CandidateService) Create(ctx context.Context, payload *model.CandidatePayload) (*model.Candidate, error) {
	if payload == nil {
		return nil, apperrors.Validation("request body is required")
	}

	payload.Normalize()
	if missing := payload.MissingRequired(); len(missing) > 0 {
		return nil, apperrors.Validationf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if err := payload.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	candidate, err := s.repo.Create(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("create candidate: %w", err)
	}
	s.logger.InfoContext(ctx, "candidate created", "id", candidate.ID)
	return candidate, nil
}

// Get returns one candidate.
func (s *CandidateService) Get(ctx context.Context, id int64) (*model.Candidate, error) {
	candidate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return candidate, nil
}

// List returns one page of candidates.
func (s *CandidateService) List(ctx context.Context, opts model.CandidateListOptions) (*model.CandidatePage, error) {
	page, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return page, nil
}

// Update applies the supplied fields to a candidate. Unlike create, only
// value ranges are checked; required fields may stay untouched.
func (s *CandidateService) Update(ctx context.Context, id int64, payload *model.CandidatePayload) (*model.Candidate, error) {
	if payload == nil {
		return nil, apperrors.Validation("request body is required")
	}

	payload.Normalize()
	if err := payload.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	candidate, err := s.repo.Update(ctx, id, payload)
	if err != nil {
		return nil, fmt.Errorf("update candidate: %w", err)
	}
	return candidate, nil
}

// UpdateStatus moves a candidate between pipeline stages. Loose UI terms
// ("interviewed", "contacted") are mapped onto the stage enum before the
// write.
func (s *CandidateService) UpdateStatus(ctx context.Context, id int64, status string) error {
	stage := model.MapCandidateStatus(status)
	updated, err := s.repo.UpdateStatus(ctx, id, string(stage))
	if err != nil {
		return fmt.Errorf("update candidate status: %w", err)
	}
	if !updated {
		return apperrors.NotFoundf("candidate %d not found", id)
	}
	s.logger.InfoContext(ctx, "candidate status updated", "id", id, "status", string(stage))
	return nil
}

// Delete removes a candidate. Returns NotFound when no row matched.
func (s *CandidateService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	if !deleted {
		return apperrors.NotFoundf("candidate %d not found", id)
	}
	s.logger.InfoContext(ctx, "candidate deleted", "id", id)
	return nil
}
