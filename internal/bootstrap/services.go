package bootstrap

import (
	"database/sql"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dhi-labs/recruit-api/config"
	redisadapter "github.com/dhi-labs/recruit-api/internal/adapters/redis"
	"github.com/dhi-labs/recruit-api/internal/data"
	"github.com/dhi-labs/recruit-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Applications *service.ApplicationService
	Candidates   *service.CandidateService
	Jobs         *service.JobService
	Auth         *service.AuthService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient goredis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices wires repositories and services from the shared connections.
func BuildServices(deps ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	applicationRepo := data.NewApplicationRepo(deps.DB)
	candidateRepo := data.NewCandidateRepo(deps.DB)
	jobRepo := data.NewJobRepo(deps.DB)
	userRepo := data.NewUserRepo(deps.DB)
	sessions := redisadapter.NewSessionStore(deps.RedisClient)

	resolver := service.NewResolver(service.ResolverOptions{
		Candidates: candidateRepo,
		Jobs:       jobRepo,
		Fuzzy: service.FuzzyConfig{
			Probe:              data.NewTrigramProbe(deps.DB),
			CandidateThreshold: deps.Config.Resolver.CandidateThreshold,
			JobThreshold:       deps.Config.Resolver.JobThreshold,
		},
	})

	return ServiceContainer{
		Applications: service.NewApplicationService(service.ApplicationServiceOptions{
			Repo:     applicationRepo,
			Resolver: resolver,
			Logger:   logger,
		}),
		Candidates: service.NewCandidateService(service.CandidateServiceOptions{
			Repo:   candidateRepo,
			Logger: logger,
		}),
		Jobs: service.NewJobService(service.JobServiceOptions{
			Repo:   jobRepo,
			Logger: logger,
		}),
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Users:    userRepo,
			Sessions: sessions,
			Config: service.AuthConfig{
				BcryptCost: deps.Config.Auth.BcryptCost,
				SessionTTL: deps.Config.Auth.SessionTTL,
			},
		}),
	}
}
