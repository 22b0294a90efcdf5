package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dhi-labs/recruit-api/internal/domain/model"
	apperrors "github.com/dhi-labs/recruit-api/internal/errors"
	"github.com/dhi-labs/recruit-api/internal/mocks"
)

func newTestJobService(t *testing.T) (*JobService, *mocks.MockJobRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockJobRepository(ctrl)
	return NewJobService(JobServiceOptions{Repo: repo}), repo
}

func TestJobCreate(t *testing.T) {
	svc, repo := newTestJobService(t)
	ctx := context.Background()

	payload := &model.JobPayload{
		JobTitle:  stringPtr("Backend Engineer"),
		Company:   stringPtr("Initech"),
		SalaryMin: int64Ptr(300000),
	}
	repo.EXPECT().Create(ctx, payload).Return(&model.Job{
		ID:        3,
		JobTitle:  "Backend Engineer",
		Company:   "Initech",
		SalaryMin: int64Ptr(300000),
	}, nil)

	view, err := svc.Create(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(3), view.ID)
	require.NotNil(t, view.SalaryRange)
	assert.Equal(t, "₹ 300000+", *view.SalaryRange)
}

func TestJobCreateMissingTitle(t *testing.T) {
	svc, _ := newTestJobService(t)

	_, err := svc.Create(context.Background(), &model.JobPayload{Company: stringPtr("Initech")})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.EqualError(t, err, "missing job_title")
}

func TestJobCreateMissingCompany(t *testing.T) {
	svc, _ := newTestJobService(t)

	_, err := svc.Create(context.Background(), &model.JobPayload{JobTitle: stringPtr("Backend Engineer")})
	require.Error(t, err)
	assert.EqualError(t, err, "missing company")
}

func TestJobGet(t *testing.T) {
	svc, repo := newTestJobService(t)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, int64(3)).Return(&model.Job{
		ID:     3,
		AgeMin: intPtr(21),
		AgeMax: intPtr(35),
	}, nil)

	view, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, view.AgeRange)
	assert.Equal(t, "21 - 35", *view.AgeRange)
}

func TestJobList(t *testing.T) {
	svc, repo := newTestJobService(t)
	ctx := context.Background()

	repo.EXPECT().List(ctx, 20, 0).Return([]*model.Job{
		{ID: 2, JobTitle: "Backend Engineer"},
		{ID: 1, JobTitle: "Recruiter"},
	}, nil)

	views, err := svc.List(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(2), views[0].ID)
}

func TestJobUpdate(t *testing.T) {
	svc, repo := newTestJobService(t)
	ctx := context.Background()

	payload := &model.JobPayload{
		JobTitle: stringPtr("Backend Engineer"),
		Company:  stringPtr("Initech"),
		Status:   stringPtr("Closed"),
	}
	repo.EXPECT().Update(ctx, int64(3), payload).Return(&model.Job{
		ID: 3, JobTitle: "Backend Engineer", Company: "Initech", Status: stringPtr("Closed"),
	}, nil)

	view, err := svc.Update(ctx, 3, payload)
	require.NoError(t, err)
	assert.Equal(t, "Closed", *view.Status)
}

func TestJobUpdateStatus(t *testing.T) {
	svc, repo := newTestJobService(t)
	ctx := context.Background()

	repo.EXPECT().UpdateStatus(ctx, int64(3), "Hold").Return(true, nil)
	require.NoError(t, svc.UpdateStatus(ctx, 3, " Hold "))
}

func TestJobUpdateStatusValidation(t *testing.T) {
	svc, _ := newTestJobService(t)
	ctx := context.Background()

	err := svc.UpdateStatus(ctx, 3, "  ")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.EqualError(t, err, "Missing status")

	err = svc.UpdateStatus(ctx, 3, "Paused")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestJobUpdateStatusNotFound(t *testing.T) {
	svc, repo := newTestJobService(t)
	ctx := context.Background()

	repo.EXPECT().UpdateStatus(ctx, int64(404), "Closed").Return(false, nil)
	err := svc.UpdateStatus(ctx, 404, "Closed")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobDelete(t *testing.T) {
	svc, repo := newTestJobService(t)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, int64(3)).Return(true, nil)
	require.NoError(t, svc.Delete(ctx, 3))

	repo.EXPECT().Delete(ctx, int64(404)).Return(false, nil)
	err := svc.Delete(ctx, 404)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
