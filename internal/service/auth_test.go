package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/dhi-labs/recruit-api/internal/core"
	"github.com/dhi-labs/recruit-api/internal/domain/model"
	apperrors "github.com/dhi-labs/recruit-api/internal/errors"
	"github.com/dhi-labs/recruit-api/internal/mocks"
)

type authMocks struct {
	users    *mocks.MockUserRepository
	sessions *mocks.MockSessionStore
}

func newTestAuthService(t *testing.T, cfg AuthConfig) (*AuthService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := authMocks{
		users:    mocks.NewMockUserRepository(ctrl),
		sessions: mocks.NewMockSessionStore(ctrl),
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.MinCost // keep hashing fast in tests
	}
	svc := NewAuthService(AuthServiceOptions{
		Users:    m.users,
		Sessions: m.sessions,
		Config:   cfg,
	})
	return svc, m
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestSignup(t *testing.T) {
	svc, m := newTestAuthService(t, AuthConfig{})
	ctx := context.Background()

	m.users.EXPECT().Create(ctx, "recruiter", gomock.Any()).DoAndReturn(
		func(_ context.Context, username, passwordHash string) (*model.User, error) {
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("s3cret!")))
			return &model.User{ID: 1, Username: username}, nil
		})

	user, err := svc.Signup(ctx, &model.Credentials{Username: "  Recruiter ", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, "recruiter", user.Username)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc, m := newTestAuthService(t, AuthConfig{})
	ctx := context.Background()

	m.users.EXPECT().Create(ctx, "recruiter", gomock.Any()).Return(nil, core.ErrUsernameExists)

	_, err := svc.Signup(ctx, &model.Credentials{Username: "recruiter", Password: "s3cret!"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "username", apperrors.GetField(err))
	assert.EqualError(t, err, "Username already exists")
}

func TestSignupValidation(t *testing.T) {
	svc, _ := newTestAuthService(t, AuthConfig{})
	ctx := context.Background()

	_, err := svc.Signup(ctx, &model.Credentials{Username: "ab", Password: "s3cret!"})
	require.Error(t, err)
	assert.EqualError(t, err, "username must be 3-64 characters")

	_, err = svc.Signup(ctx, &model.Credentials{Username: "recruiter", Password: "short"})
	require.Error(t, err)
	assert.EqualError(t, err, "password must be 6-256 characters")
}

func TestSignupLongPasswordTruncated(t *testing.T) {
	svc, m := newTestAuthService(t, AuthConfig{})
	ctx := context.Background()

	// bcrypt rejects inputs over 72 bytes; the service truncates instead so
	// signup and login agree on the comparison.
	long := strings.Repeat("a", 100)
	m.users.EXPECT().Create(ctx, "recruiter", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, passwordHash string) (*model.User, error) {
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(long[:72])))
			return &model.User{ID: 1, Username: "recruiter"}, nil
		})

	_, err := svc.Signup(ctx, &model.Credentials{Username: "recruiter", Password: long})
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	svc, m := newTestAuthService(t, AuthConfig{SessionTTL: time.Hour})
	ctx := context.Background()

	user := &model.User{ID: 1, Username: "recruiter", PasswordHash: hashFor(t, "s3cret!")}
	m.users.EXPECT().GetByUsername(ctx, "recruiter").Return(user, nil)
	m.users.EXPECT().TouchLastLogin(ctx, int64(1), gomock.Any()).Return(nil)
	m.sessions.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *model.Session) error {
			assert.NotEmpty(t, s.ID)
			assert.Equal(t, int64(1), s.UserID)
			assert.Equal(t, "recruiter", s.Username)
			assert.WithinDuration(t, time.Now().Add(time.Hour), s.ExpiresAt, 5*time.Second)
			return nil
		})

	session, err := svc.Login(ctx, &model.Credentials{Username: "Recruiter", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, "recruiter", session.Username)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, m := newTestAuthService(t, AuthConfig{})
	ctx := context.Background()

	m.users.EXPECT().GetByUsername(ctx, "ghost").Return(nil, core.ErrUserNotFound)

	_, err := svc.Login(ctx, &model.Credentials{Username: "ghost", Password: "whatever"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.EqualError(t, err, "Invalid username or password")
}

func TestLoginWrongPassword(t *testing.T) {
	svc, m := newTestAuthService(t, AuthConfig{})
	ctx := context.Background()

	user := &model.User{ID: 1, Username: "recruiter", PasswordHash: hashFor(t, "s3cret!")}
	m.users.EXPECT().GetByUsername(ctx, "recruiter").Return(user, nil)

	// Same message as the unknown-user case; the client learns nothing.
	_, err := svc.Login(ctx, &model.Credentials{Username: "recruiter", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.EqualError(t, err, "Invalid username or password")
}

func TestLoginSurvivesTouchFailure(t *testing.T) {
	svc, m := newTestAuthService(t, AuthConfig{})
	ctx := context.Background()

	user := &model.User{ID: 1, Username: "recruiter", PasswordHash: hashFor(t, "s3cret!")}
	m.users.EXPECT().GetByUsername(ctx, "recruiter").Return(user, nil)
	m.users.EXPECT().TouchLastLogin(ctx, int64(1), gomock.Any()).Return(errors.New("write timeout"))
	m.sessions.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	_, err := svc.Login(ctx, &model.Credentials{Username: "recruiter", Password: "s3cret!"})
	require.NoError(t, err)
}

func TestLogout(t *testing.T) {
	svc, m := newTestAuthService(t, AuthConfig{})
	ctx := context.Background()

	m.sessions.EXPECT().Delete(ctx, "sid-1").Return(nil)
	require.NoError(t, svc.Logout(ctx, "sid-1"))

	// Empty session id is a no-op, no store call.
	require.NoError(t, svc.Logout(ctx, ""))
}

func TestCheckSession(t *testing.T) {
	svc, m := newTestAuthService(t, AuthConfig{})
	ctx := context.Background()

	live := &model.Session{ID: "sid-1", UserID: 1, Username: "recruiter"}
	m.sessions.EXPECT().Get(ctx, "sid-1").Return(live, nil)

	session, err := svc.CheckSession(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "recruiter", session.Username)
}

func TestCheckSessionMissing(t *testing.T) {
	svc, m := newTestAuthService(t, AuthConfig{})
	ctx := context.Background()

	m.sessions.EXPECT().Get(ctx, "stale").Return(nil, nil)

	_, err := svc.CheckSession(ctx, "stale")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))

	_, err = svc.CheckSession(ctx, "")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}
