package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 64
	minPasswordLen = 6
	maxPasswordLen = 256
)

// User is a row of the login_users table.
type User struct {
	ID           int64      `json:"id"         db:"id"`
	Username     string     `json:"username"   db:"username"`
	PasswordHash string     `json:"-"          db:"password_hash"`
	CreatedOn    time.Time  `json:"created_on" db:"created_on"`
	LastLogin    *time.Time `json:"last_login" db:"last_login"`
}

// Credentials is the signup/login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NormalizeUsername applies the canonical username form: trimmed, lowercased.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidateForSignup checks length constraints on new accounts.
func (c *Credentials) ValidateForSignup() error {
	username := NormalizeUsername(c.Username)
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return errors.New("username must be 3-64 characters")
	}
	if n := len(c.Password); n < minPasswordLen || n > maxPasswordLen {
		return errors.New("password must be 6-256 characters")
	}
	return nil
}

// Session is a logged-in user's server-side session.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}
