package httpx

import (
	"log/slog"
	"net/http"

	"github.com/dhi-labs/recruit-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Applications *service.ApplicationService
	Candidates   *service.CandidateService
	Jobs         *service.JobService
	Auth         *service.AuthService
	CookieDomain string
	Logger       *slog.Logger
	// DB backs the /api/health readiness check. Optional.
	DB Pinger
}

// NewRouter creates and configures the HTTP router. All /api routes except
// auth sit behind RequireAuth.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	applicationHandlers := &ApplicationHandlers{Svc: services.Applications}
	candidateHandlers := &CandidateHandlers{Svc: services.Candidates}
	jobHandlers := &JobHandlers{Svc: services.Jobs}
	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /api/health", readinessHandler(services.DB))

	registerAuthRoutes(mux, authHandlers)

	requireAuth := RequireAuth(services.Auth)
	registerApplicationRoutes(mux, applicationHandlers, requireAuth)
	registerCandidateRoutes(mux, candidateHandlers, requireAuth)
	registerJobRoutes(mux, jobHandlers, requireAuth)

	return mux
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/auth/signup", h.Signup)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/check", h.Check)
}

func registerApplicationRoutes(mux *http.ServeMux, h *ApplicationHandlers, auth func(http.Handler) http.Handler) {
	// The literal option patterns take precedence over the {id} wildcard.
	mux.Handle("GET /api/applications", auth(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/applications", auth(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/applications/candidate-options", auth(http.HandlerFunc(h.Options)))
	// Aliases kept for clients that fetch the form dropdowns under the
	// shorter or candidates-prefixed paths.
	mux.Handle("GET /api/applications/options", auth(http.HandlerFunc(h.Options)))
	mux.Handle("GET /api/candidates/options", auth(http.HandlerFunc(h.Options)))
	mux.Handle("GET /api/applications/{id}", auth(http.HandlerFunc(h.Get)))
	mux.Handle("PUT /api/applications/{id}", auth(http.HandlerFunc(h.Update)))
	mux.Handle("PATCH /api/applications/{id}", auth(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/applications/{id}", auth(http.HandlerFunc(h.Delete)))
}

func registerCandidateRoutes(mux *http.ServeMux, h *CandidateHandlers, auth func(http.Handler) http.Handler) {
	mux.Handle("GET /api/candidates", auth(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/candidates", auth(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/candidates/{id}", auth(http.HandlerFunc(h.Get)))
	mux.Handle("PATCH /api/candidates/{id}", auth(http.HandlerFunc(h.Update)))
	mux.Handle("PATCH /api/candidates/{id}/status", auth(http.HandlerFunc(h.UpdateStatus)))
	mux.Handle("DELETE /api/candidates/{id}", auth(http.HandlerFunc(h.Delete)))
}

func registerJobRoutes(mux *http.ServeMux, h *JobHandlers, auth func(http.Handler) http.Handler) {
	mux.Handle("GET /api/jobs", auth(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/jobs", auth(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/jobs/{id}", auth(http.HandlerFunc(h.Get)))
	mux.Handle("PUT /api/jobs/{id}", auth(http.HandlerFunc(h.Update)))
	mux.Handle("PATCH /api/jobs/{id}/status", auth(http.HandlerFunc(h.UpdateStatus)))
	mux.Handle("DELETE /api/jobs/{id}", auth(http.HandlerFunc(h.Delete)))
}
