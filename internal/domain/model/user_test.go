package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "recruiter", NormalizeUsername("  Recruiter \t"))
	assert.Equal(t, "asha.rao", NormalizeUsername("Asha.Rao"))
	assert.Equal(t, "", NormalizeUsername("   "))
}

func TestCredentials_ValidateForSignup(t *testing.T) {
	tests := []struct {
		name    string
		creds   Credentials
		wantErr string
	}{
		{"ok", Credentials{Username: "recruiter", Password: "secret1"}, ""},
		{"username too short after trim", Credentials{Username: " ab ", Password: "secret1"}, "username must be 3-64 characters"},
		{"username too long", Credentials{Username: strings.Repeat("a", 65), Password: "secret1"}, "username must be 3-64 characters"},
		{"password too short", Credentials{Username: "recruiter", Password: "abc"}, "password must be 6-256 characters"},
		{"password too long", Credentials{Username: "recruiter", Password: strings.Repeat("x", 257)}, "password must be 6-256 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.ValidateForSignup()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
