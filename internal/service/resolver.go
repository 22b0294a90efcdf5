// Package service implements the business logic of the recruiting API.
// Services depend on the port interfaces in internal/core and never on the
// concrete data layer.
package service

import (
	"context"
	"fmt"

	"github.com/dhi-labs/recruit-api/internal/core"
	"github.com/dhi-labs/recruit-api/internal/domain/model"
)

// Default similarity thresholds for fuzzy reference resolution.
const (
	DefaultCandidateThreshold = 0.45
	DefaultJobThreshold       = 0.50
)

// FuzzyConfig tunes the similarity pass of the resolver.
type FuzzyConfig struct {
	// Probe gates the fuzzy pass; when nil or unavailable only exact matches
	// resolve.
	Probe core.SimilarityProbe
	// CandidateThreshold is the minimum similarity score for a candidate
	// name match. Zero means the default.
	CandidateThreshold float64
	// JobThreshold is the minimum average of the title and company scores.
	// Zero means the default.
	JobThreshold float64
}

// ResolverOptions groups dependencies for Resolver.
type ResolverOptions struct {
	Candidates core.CandidateDirectory
	Jobs       core.JobDirectory
	Fuzzy      FuzzyConfig
}

// Resolver turns free-text candidate and job references into ids. Explicit
// ids pass through untouched; text goes through an exact match first and
// then a trigram similarity match when the database supports it.
type Resolver struct {
	candidates core.CandidateDirectory
	jobs       core.JobDirectory
	fuzzy      FuzzyConfig
}

// NewResolver constructs a Resolver.
func NewResolver(opts ResolverOptions) *Resolver {
	fuzzy := opts.Fuzzy
	if fuzzy.CandidateThreshold <= 0 {
		fuzzy.CandidateThreshold = DefaultCandidateThreshold
	}
	if fuzzy.JobThreshold <= 0 {
		fuzzy.JobThreshold = DefaultJobThreshold
	}
	return &Resolver{
		candidates: opts.Candidates,
		jobs:       opts.Jobs,
		fuzzy:      fuzzy,
	}
}

// ResolveCandidate resolves a candidate reference. An explicit id is trusted
// as given; a dangling id surfaces later as a foreign key violation on
// write. Errors on the exact-match path are infrastructure faults; a failed
// similarity lookup just leaves the reference unresolved.
func (r *Resolver) ResolveCandidate(ctx context.Context, ref model.CandidateRef) (int64, bool, error) {
	switch ref.Kind() {
	case model.RefByID:
		return ref.ID(), true, nil
	case model.RefByText:
	default:
		return 0, false, nil
	}

	id, found, err := r.candidates.FindIDByName(ctx, ref.Name())
	if err != nil {
		return 0, false, fmt.Errorf("resolve candidate: %w", err)
	}
	if found {
		return id, true, nil
	}

	if !r.fuzzyAvailable(ctx) {
		return 0, false, nil
	}
	match, err := r.candidates.BestNameMatch(ctx, ref.Name())
	if err != nil || match == nil {
		return 0, false, nil
	}
	if match.Score >= r.fuzzy.CandidateThreshold {
		return match.ID, true, nil
	}
	return 0, false, nil
}

// ResolveJob resolves a job reference. Text references need both title and
// company; a half-specified pair never resolves.
func (r *Resolver) ResolveJob(ctx context.Context, ref model.JobRef) (int64, bool, error) {
	switch ref.Kind() {
	case model.RefByID:
		return ref.ID(), true, nil
	case model.RefByText:
	default:
		return 0, false, nil
	}
	if !ref.Complete() {
		return 0, false, nil
	}

	id, found, err := r.jobs.FindIDByTitleCompany(ctx, ref.Title(), ref.Company())
	if err != nil {
		return 0, false, fmt.Errorf("resolve job: %w", err)
	}
	if found {
		return id, true, nil
	}

	if !r.fuzzyAvailable(ctx) {
		return 0, false, nil
	}
	match, err := r.jobs.BestTitleCompanyMatch(ctx, ref.Title(), ref.Company())
	if err != nil || match == nil {
		return 0, false, nil
	}
	if match.Average() >= r.fuzzy.JobThreshold {
		return match.ID, true, nil
	}
	return 0, false, nil
}

func (r *Resolver) fuzzyAvailable(ctx context.Context) bool {
	return r.fuzzy.Probe != nil && r.fuzzy.Probe.Available(ctx)
}
