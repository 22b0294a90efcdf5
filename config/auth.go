package config

import "time"

// AuthConfig contains authentication and session configuration.
type AuthConfig struct {
	// SessionTTL is how long a login session stays valid in the session store.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"12h"`

	// BcryptCost is the bcrypt work factor used when hashing new passwords.
	BcryptCost int `env:"AUTH_BCRYPT_COST" envDefault:"12"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 12 * time.Hour
	}
	// bcrypt rejects costs outside [4, 31]; clamp to the library range.
	if a.BcryptCost < 4 {
		a.BcryptCost = 4
	}
	if a.BcryptCost > 31 {
		a.BcryptCost = 31
	}
}
