// Package mocks provides gomock-generated mocks for the core port
// interfaces.
//
// To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=application_repository_mock.go github.com/dhi-labs/recruit-api/internal/core ApplicationRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=candidate_repository_mock.go github.com/dhi-labs/recruit-api/internal/core CandidateRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_repository_mock.go github.com/dhi-labs/recruit-api/internal/core JobRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/dhi-labs/recruit-api/internal/core UserRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_store_mock.go github.com/dhi-labs/recruit-api/internal/core SessionStore

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=resolver_mock.go github.com/dhi-labs/recruit-api/internal/core ReferenceResolver

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=directories_mock.go github.com/dhi-labs/recruit-api/internal/core CandidateDirectory,JobDirectory,SimilarityProbe
