// Package core defines the ports between the service layer and the data
// layer. Services depend on these interfaces, never on the concrete
// Postgres or Redis implementations.
package core

import (
	"context"
	"time"

	"github.com/dhi-labs/recruit-api/internal/domain/model"
)

// ApplicationRepository defines the interface for application data operations.
// List and GetByID read from the joined applications view; the write methods
// operate on the base table.
type ApplicationRepository interface {
	List(ctx context.Context, limit int) ([]*model.ApplicationRecord, error)
	GetByID(ctx context.Context, id int64) (*model.ApplicationRecord, error)
	Insert(ctx context.Context, row *model.ApplicationRow) (int64, error)
	// Update applies the non-nil fields and reports whether a row was touched.
	Update(ctx context.Context, id int64, upd *model.ApplicationUpdate) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)

	CandidateOptions(ctx context.Context, limit int) ([]*model.CandidateOption, error)
	JobOptions(ctx context.Context, limit int) ([]*model.JobOption, error)
}

// CandidateDirectory resolves free-text candidate names to ids. Split from
// CandidateRepository so the reference resolver can be tested without the
// full CRUD surface.
type CandidateDirectory interface {
	// FindIDByName matches the exact stored full_name, case sensitively.
	FindIDByName(ctx context.Context, name string) (int64, bool, error)
	// BestNameMatch returns the highest-scoring trigram match or nil when the
	// table has no rows to score.
	BestNameMatch(ctx context.Context, name string) (*model.SimilarityMatch, error)
}

// JobDirectory resolves free-text title+company pairs to job ids.
type JobDirectory interface {
	FindIDByTitleCompany(ctx context.Context, title, company string) (int64, bool, error)
	BestTitleCompanyMatch(ctx context.Context, title, company string) (*model.JobSimilarityMatch, error)
}

// SimilarityProbe reports whether trigram similarity is available on the
// connected database. Resolvers skip the fuzzy pass when it is not.
type SimilarityProbe interface {
	Available(ctx context.Context) bool
}

// ReferenceResolver turns candidate and job references into concrete ids.
// An unresolvable reference yields ok=false, not an error; errors are
// reserved for infrastructure faults on the exact-match path.
type ReferenceResolver interface {
	ResolveCandidate(ctx context.Context, ref model.CandidateRef) (int64, bool, error)
	ResolveJob(ctx context.Context, ref model.JobRef) (int64, bool, error)
}

// CandidateRepository defines the interface for candidate data operations.
type CandidateRepository interface {
	Create(ctx context.Context, payload *model.CandidatePayload) (*model.Candidate, error)
	GetByID(ctx context.Context, id int64) (*model.Candidate, error)
	List(ctx context.Context, opts model.CandidateListOptions) (*model.CandidatePage, error)
	Update(ctx context.Context, id int64, payload *model.CandidatePayload) (*model.Candidate, error)
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	Create(ctx context.Context, payload *model.JobPayload) (*model.Job, error)
	GetByID(ctx context.Context, id int64) (*model.Job, error)
	List(ctx context.Context, limit, offset int) ([]*model.Job, error)
	Update(ctx context.Context, id int64, payload *model.JobPayload) (*model.Job, error)
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserRepository defines the interface for login account data operations.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}

// SessionStore persists login sessions keyed by opaque session id.
type SessionStore interface {
	Save(ctx context.Context, session *model.Session) error
	// Get returns nil when the session does not exist or has expired.
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
}
