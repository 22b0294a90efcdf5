package core

import "errors"

// Sentinel errors shared by the repository ports. Implementations return
// these so services can branch without importing the data layer.
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameExists      = errors.New("username already exists")
)
