package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhi-labs/recruit-api/internal/domain/model"
	"github.com/dhi-labs/recruit-api/internal/testutil"
)

func TestCandidateRepo_CreateAndGet(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewCandidateRepo(db)

		exp := 3
		created, err := repo.Create(ctx, &model.CandidatePayload{
			FullName:       strPtr("Asha Rao"),
			JobPosition:    strPtr("Sales Executive"),
			Email:          strPtr("asha@example.com"),
			DateOfBirth:    strPtr("1998-04-12"),
			Languages:      []string{"Hindi", "English"},
			WorkExperience: &exp,
			Status:         strPtr("contacted"),
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Asha Rao", created.FullName)
		assert.Equal(t, "Screening", created.Status)
		assert.Equal(t, 3, created.WorkExperience)
		assert.Equal(t, []string{"Hindi", "English"}, created.Languages)
		require.NotNil(t, created.DateOfBirth)
		assert.Equal(t, 1998, created.DateOfBirth.Year())

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)

		_, err = repo.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, ErrCandidateNotFound)
	})
}

func TestCandidateRepo_List(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewCandidateRepo(db)

		names := []string{"Asha Rao", "Vikram Shah", "Meera Iyer"}
		for _, n := range names {
			_, err := repo.Create(ctx, &model.CandidatePayload{FullName: strPtr(n)})
			require.NoError(t, err)
		}
		_, err := repo.Create(ctx, &model.CandidatePayload{
			FullName: strPtr("Ravi Kumar"),
			Status:   strPtr("joined"),
		})
		require.NoError(t, err)

		page, err := repo.List(ctx, model.CandidateListOptions{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, page.Total)
		assert.Len(t, page.Items, 2)
		// Newest first.
		assert.Equal(t, "Ravi Kumar", page.Items[0].FullName)

		joined, err := repo.List(ctx, model.CandidateListOptions{Status: "Joined"})
		require.NoError(t, err)
		assert.Equal(t, 1, joined.Total)

		search, err := repo.List(ctx, model.CandidateListOptions{Search: "rao"})
		require.NoError(t, err)
		assert.Equal(t, 1, search.Total)
	})
}

func TestCandidateRepo_Update(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewCandidateRepo(db)

		created, err := repo.Create(ctx, &model.CandidatePayload{
			FullName: strPtr("Asha Rao"),
			City:     strPtr("Pune"),
		})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, &model.CandidatePayload{
			City:   strPtr("Mumbai"),
			Status: strPtr("interview"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.City)
		assert.Equal(t, "Mumbai", *updated.City)
		assert.Equal(t, "Interview", updated.Status)
		assert.Equal(t, "Asha Rao", updated.FullName)

		// Empty payload returns the current row unchanged.
		same, err := repo.Update(ctx, created.ID, &model.CandidatePayload{})
		require.NoError(t, err)
		assert.Equal(t, "Mumbai", *same.City)

		_, err = repo.Update(ctx, 999999, &model.CandidatePayload{City: strPtr("Delhi")})
		assert.ErrorIs(t, err, ErrCandidateNotFound)
	})
}

func TestCandidateRepo_Delete(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewCandidateRepo(db)

		created, err := repo.Create(ctx, &model.CandidatePayload{FullName: strPtr("Asha Rao")})
		require.NoError(t, err)

		ok, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestCandidateRepo_FindIDByName(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewCandidateRepo(db)

		created, err := repo.Create(ctx, &model.CandidatePayload{FullName: strPtr("Asha Rao")})
		require.NoError(t, err)

		id, found, err := repo.FindIDByName(ctx, "Asha Rao")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, created.ID, id)

		// Exact match is case sensitive.
		_, found, err = repo.FindIDByName(ctx, "asha rao")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestCandidateRepo_BestNameMatch(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()

		if !NewTrigramProbe(db).Available(ctx) {
			t.Skip("pg_trgm not available")
		}

		repo := NewCandidateRepo(db)
		created, err := repo.Create(ctx, &model.CandidatePayload{FullName: strPtr("Asha Rao")})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &model.CandidatePayload{FullName: strPtr("Vikram Shah")})
		require.NoError(t, err)

		match, err := repo.BestNameMatch(ctx, "asha raoo")
		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, created.ID, match.ID)
		assert.Greater(t, match.Score, 0.45)
	})
}
