package data

import (
	"context"
	"database/sql"
	"sync"
)

// TrigramProbe checks whether trigram similarity can be used on the
// connected database. It tries to create the pg_trgm extension on demand;
// a failure (no superuser, managed Postgres without the extension) simply
// disables the fuzzy resolution pass.
type TrigramProbe struct {
	DB *sql.DB

	mu        sync.Mutex
	available bool
}

// NewTrigramProbe creates a TrigramProbe over the given pool.
func NewTrigramProbe(db *sql.DB) *TrigramProbe {
	return &TrigramProbe{DB: db}
}

// Available reports whether similarity() queries may be issued. Only a
// successful probe is cached; a failed one (which may be transient, e.g. a
// canceled request context) is retried on the next call.
func (p *TrigramProbe) Available(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.available {
		return true
	}

	if _, err := p.DB.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS pg_trgm`); err != nil {
		return false
	}
	var one int
	if err := p.DB.QueryRowContext(ctx, `SELECT 1 FROM pg_extension WHERE extname = 'pg_trgm'`).Scan(&one); err != nil {
		return false
	}
	p.available = true
	return true
}
