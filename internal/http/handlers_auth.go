package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dhi-labs/recruit-api/internal/domain/model"
)

// AuthAPI defines the auth service surface the handlers need.
type AuthAPI interface {
	Signup(ctx context.Context, creds *model.Credentials) (*model.User, error)
	Login(ctx context.Context, creds *model.Credentials) (*model.Session, error)
	Logout(ctx context.Context, sessionID string) error
	CheckSession(ctx context.Context, sessionID string) (*model.Session, error)
}

// AuthHandlers provides HTTP handlers for signup, login, and session checks.
type AuthHandlers struct {
	Svc          AuthAPI
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandlers) Signup(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if !DecodeJSON(w, r, &creds) {
		return
	}

	user, err := h.Svc.Signup(r.Context(), &creds)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login. On success it opens a session and sets
// the session cookie.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if !DecodeJSON(w, r, &creds) {
		return
	}

	session, err := h.Svc.Login(r.Context(), &creds)
	if err != nil {
		RenderError(w, r, err)
		return
	}

	h.setSessionCookie(w, r, session)
	WriteJSON(w, http.StatusOK, session)
}

// Logout handles POST /api/auth/logout. The server-side session is dropped
// best-effort; the cookie is always cleared.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), cookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	h.clearSessionCookie(w, r)
	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Check handles GET /api/auth/check: returns the live session for the
// cookie, or 401.
func (h *AuthHandlers) Check(w http.ResponseWriter, r *http.Request) {
	sessionID := ""
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		sessionID = cookie.Value
	}

	session, err := h.Svc.CheckSession(r.Context(), sessionID)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, session)
}

func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, session *model.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandlers) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
