package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dhi-labs/recruit-api/internal/core"
	"github.com/dhi-labs/recruit-api/internal/domain/model"
	apperrors "github.com/dhi-labs/recruit-api/internal/errors"
)

// bcryptInputLimit is the bcrypt input cap; longer passwords are truncated
// so any length passes the hasher.
const bcryptInputLimit = 72

const msgInvalidCredentials = "Invalid username or password"

// AuthConfig tunes credential hashing and session lifetime.
type AuthConfig struct {
	BcryptCost int
	SessionTTL time.Duration
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users    core.UserRepository
	Sessions core.SessionStore
	Config   AuthConfig
}

// AuthService handles account signup and session-based login.
type AuthService struct {
	users    core.UserRepository
	sessions core.SessionStore
	config   AuthConfig
	logger   *slog.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Users == nil {
		panic("UserRepository is required")
	}
	if opts.Sessions == nil {
		panic("SessionStore is required")
	}
	cfg := opts.Config
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 12 * time.Hour
	}
	return &AuthService{
		users:    opts.Users,
		sessions: opts.Sessions,
		config:   cfg,
		logger:   slog.Default().With("component", "auth_service"),
	}
}

// Signup creates a login account with a bcrypt password hash. A taken
// username is reported as a validation error on the username field.
func (s *AuthService) Signup(ctx context.Context, creds *model.Credentials) (*model.User, error) {
	if creds == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := creds.ValidateForSignup(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	username := model.NormalizeUsername(creds.Username)
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(creds.Password), s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, core.ErrUsernameExists) {
			return nil, apperrors.ValidationField("username", "Username already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.logger.InfoContext(ctx, "user signed up", "username", username)
	return user, nil
}

// Login verifies credentials and opens a session. The same Unauthorized
// error covers unknown usernames and wrong passwords.
func (s *AuthService) Login(ctx context.Context, creds *model.Credentials) (*model.Session, error) {
	if creds == nil {
		return nil, apperrors.Unauthorized(msgInvalidCredentials)
	}

	username := model.NormalizeUsername(creds.Username)
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, apperrors.Unauthorized(msgInvalidCredentials)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), truncatePassword(creds.Password)) != nil {
		return nil, apperrors.Unauthorized(msgInvalidCredentials)
	}

	now := time.Now()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		// Login still succeeds when the bookkeeping write fails.
		s.logger.WarnContext(ctx, "touch last login failed", "err", err, "user_id", user.ID)
	}

	session := &model.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresAt: now.Add(s.config.SessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// Logout drops the session. Unknown session ids are ignored.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// CheckSession returns the live session for id, or Unauthorized.
func (s *AuthService) CheckSession(ctx context.Context, sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, apperrors.Unauthorized("Not authenticated")
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return nil, apperrors.Unauthorized("Not authenticated")
	}
	return session, nil
}

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptInputLimit {
		b = b[:bcryptInputLimit]
	}
	return b
}
