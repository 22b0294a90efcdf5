package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dhi-labs/recruit-api/internal/domain/model"
	"github.com/dhi-labs/recruit-api/internal/mocks"
)

type resolverMocks struct {
	candidates *mocks.MockCandidateDirectory
	jobs       *mocks.MockJobDirectory
	probe      *mocks.MockSimilarityProbe
}

func newTestResolver(t *testing.T) (*Resolver, resolverMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := resolverMocks{
		candidates: mocks.NewMockCandidateDirectory(ctrl),
		jobs:       mocks.NewMockJobDirectory(ctrl),
		probe:      mocks.NewMockSimilarityProbe(ctrl),
	}
	r := NewResolver(ResolverOptions{
		Candidates: m.candidates,
		Jobs:       m.jobs,
		Fuzzy:      FuzzyConfig{Probe: m.probe},
	})
	return r, m
}

func TestResolverCandidateExplicitID(t *testing.T) {
	r, _ := newTestResolver(t)

	// An explicit id is trusted without a lookup; a dangling id is the
	// database's problem at insert time.
	id, ok, err := r.ResolveCandidate(context.Background(), model.CandidateByID(42))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestResolverCandidateUnspecified(t *testing.T) {
	r, _ := newTestResolver(t)

	_, ok, err := r.ResolveCandidate(context.Background(), model.CandidateRef{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolverCandidateExactMatch(t *testing.T) {
	r, m := newTestResolver(t)
	ctx := context.Background()

	m.candidates.EXPECT().FindIDByName(ctx, "Asha Rao").Return(int64(7), true, nil)

	id, ok, err := r.ResolveCandidate(ctx, model.CandidateByName("Asha Rao"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
}

func TestResolverCandidateExactError(t *testing.T) {
	r, m := newTestResolver(t)
	ctx := context.Background()

	dbErr := errors.New("connection reset")
	m.candidates.EXPECT().FindIDByName(ctx, "Asha Rao").Return(int64(0), false, dbErr)

	_, _, err := r.ResolveCandidate(ctx, model.CandidateByName("Asha Rao"))
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestResolverCandidateFuzzyAboveThreshold(t *testing.T) {
	r, m := newTestResolver(t)
	ctx := context.Background()

	m.candidates.EXPECT().FindIDByName(ctx, "asha rao").Return(int64(0), false, nil)
	m.probe.EXPECT().Available(ctx).Return(true)
	m.candidates.EXPECT().BestNameMatch(ctx, "asha rao").
		Return(&model.SimilarityMatch{ID: 7, Score: 0.45}, nil)

	id, ok, err := r.ResolveCandidate(ctx, model.CandidateByName("asha rao"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
}

func TestResolverCandidateFuzzyBelowThreshold(t *testing.T) {
	r, m := newTestResolver(t)
	ctx := context.Background()

	m.candidates.EXPECT().FindIDByName(ctx, "ash").Return(int64(0), false, nil)
	m.probe.EXPECT().Available(ctx).Return(true)
	m.candidates.EXPECT().BestNameMatch(ctx, "ash").
		Return(&model.SimilarityMatch{ID: 7, Score: 0.44}, nil)

	_, ok, err := r.ResolveCandidate(ctx, model.CandidateByName("ash"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolverCandidateFuzzyErrorSwallowed(t *testing.T) {
	r, m := newTestResolver(t)
	ctx := context.Background()

	m.candidates.EXPECT().FindIDByName(ctx, "asha").Return(int64(0), false, nil)
	m.probe.EXPECT().Available(ctx).Return(true)
	m.candidates.EXPECT().BestNameMatch(ctx, "asha").
		Return(nil, errors.New("similarity() does not exist"))

	_, ok, err := r.ResolveCandidate(ctx, model.CandidateByName("asha"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolverCandidateProbeUnavailable(t *testing.T) {
	r, m := newTestResolver(t)
	ctx := context.Background()

	m.candidates.EXPECT().FindIDByName(ctx, "asha").Return(int64(0), false, nil)
	m.probe.EXPECT().Available(ctx).Return(false)

	_, ok, err := r.ResolveCandidate(ctx, model.CandidateByName("asha"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolverCandidateNilProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	candidates := mocks.NewMockCandidateDirectory(ctrl)
	r := NewResolver(ResolverOptions{Candidates: candidates})
	ctx := context.Background()

	candidates.EXPECT().FindIDByName(ctx, "asha").Return(int64(0), false, nil)

	_, ok, err := r.ResolveCandidate(ctx, model.CandidateByName("asha"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolverJobExplicitID(t *testing.T) {
	r, _ := newTestResolver(t)

	id, ok, err := r.ResolveJob(context.Background(), model.JobByID(11))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(11), id)
}

func TestResolverJobIncompleteText(t *testing.T) {
	r, _ := newTestResolver(t)
	ctx := context.Background()

	// Title without company (and the reverse) never resolves and never
	// reaches the directory.
	_, ok, err := r.ResolveJob(ctx, model.JobByText("Backend Engineer", ""))
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = r.ResolveJob(ctx, model.JobByText("", "Initech"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolverJobExactMatch(t *testing.T) {
	r, m := newTestResolver(t)
	ctx := context.Background()

	m.jobs.EXPECT().FindIDByTitleCompany(ctx, "Backend Engineer", "Initech").Return(int64(3), true, nil)

	id, ok, err := r.ResolveJob(ctx, model.JobByText("Backend Engineer", "Initech"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(3), id)
}

func TestResolverJobExactError(t *testing.T) {
	r, m := newTestResolver(t)
	ctx := context.Background()

	dbErr := errors.New("connection reset")
	m.jobs.EXPECT().FindIDByTitleCompany(ctx, "Backend Engineer", "Initech").Return(int64(0), false, dbErr)

	_, _, err := r.ResolveJob(ctx, model.JobByText("Backend Engineer", "Initech"))
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestResolverJobFuzzyAverage(t *testing.T) {
	tests := []struct {
		name    string
		title   float64
		company float64
		want    bool
	}{
		{"average at threshold", 0.60, 0.40, true},
		{"average above threshold", 0.80, 0.70, true},
		{"average below threshold", 0.60, 0.38, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, m := newTestResolver(t)
			ctx := context.Background()

			m.jobs.EXPECT().FindIDByTitleCompany(ctx, "backend eng", "initech").Return(int64(0), false, nil)
			m.probe.EXPECT().Available(ctx).Return(true)
			m.jobs.EXPECT().BestTitleCompanyMatch(ctx, "backend eng", "initech").
				Return(&model.JobSimilarityMatch{ID: 3, TitleScore: tt.title, CompanyScore: tt.company}, nil)

			id, ok, err := r.ResolveJob(ctx, model.JobByText("backend eng", "initech"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, int64(3), id)
			}
		})
	}
}

func TestResolverJobFuzzyNoRows(t *testing.T) {
	r, m := newTestResolver(t)
	ctx := context.Background()

	m.jobs.EXPECT().FindIDByTitleCompany(ctx, "backend eng", "initech").Return(int64(0), false, nil)
	m.probe.EXPECT().Available(ctx).Return(true)
	m.jobs.EXPECT().BestTitleCompanyMatch(ctx, "backend eng", "initech").Return(nil, nil)

	_, ok, err := r.ResolveJob(ctx, model.JobByText("backend eng", "initech"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolverCustomThresholds(t *testing.T) {
	ctrl := gomock.NewController(t)
	candidates := mocks.NewMockCandidateDirectory(ctrl)
	probe := mocks.NewMockSimilarityProbe(ctrl)
	r := NewResolver(ResolverOptions{
		Candidates: candidates,
		Fuzzy:      FuzzyConfig{Probe: probe, CandidateThreshold: 0.9},
	})
	ctx := context.Background()

	candidates.EXPECT().FindIDByName(ctx, "asha").Return(int64(0), false, nil)
	probe.EXPECT().Available(ctx).Return(true)
	candidates.EXPECT().BestNameMatch(ctx, "asha").
		Return(&model.SimilarityMatch{ID: 7, Score: 0.8}, nil)

	_, ok, err := r.ResolveCandidate(ctx, model.CandidateByName("asha"))
	require.NoError(t, err)
	assert.False(t, ok)
}
