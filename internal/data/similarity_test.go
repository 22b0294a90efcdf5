package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhi-labs/recruit-api/internal/testutil"
)

func TestTrigramProbeAvailable(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		probe := NewTrigramProbe(db)
		assert.True(t, probe.Available(context.Background()))
		// Cached after the first success.
		assert.True(t, probe.Available(context.Background()))
	})
}

func TestTrigramProbeRetriesAfterTransientFailure(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		probe := NewTrigramProbe(db)

		// A canceled context makes the first probe fail; that outcome must
		// not stick for the process lifetime.
		canceled, cancel := context.WithCancel(context.Background())
		cancel()
		assert.False(t, probe.Available(canceled))

		assert.True(t, probe.Available(context.Background()))
	})
}
