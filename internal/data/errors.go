package data

import "github.com/dhi-labs/recruit-api/internal/core"

// Repository sentinels are defined on the core ports so callers never need
// to import this package to branch on them.
var (
	ErrApplicationNotFound = core.ErrApplicationNotFound
	ErrCandidateNotFound   = core.ErrCandidateNotFound
	ErrJobNotFound         = core.ErrJobNotFound
	ErrUserNotFound        = core.ErrUserNotFound
	ErrUsernameExists      = core.ErrUsernameExists
)
