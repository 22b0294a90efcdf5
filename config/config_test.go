package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDBConfig_Sanitize_ClampsPool(t *testing.T) {
	cfg := DBConfig{MaxOpenConns: 0, MaxIdleConns: 50}
	cfg.Sanitize()

	assert.Equal(t, 1, cfg.MaxOpenConns)
	assert.Equal(t, 1, cfg.MaxIdleConns, "idle conns must not exceed open conns")
}

func TestAuthConfig_Sanitize_Defaults(t *testing.T) {
	cfg := AuthConfig{SessionTTL: -time.Minute, BcryptCost: 99}
	cfg.Sanitize()

	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 31, cfg.BcryptCost)
}

func TestResolverConfig_Sanitize(t *testing.T) {
	tests := []struct {
		name string
		in   ResolverConfig
		want ResolverConfig
	}{
		{
			name: "defaults preserved",
			in:   ResolverConfig{CandidateThreshold: 0.45, JobThreshold: 0.50},
			want: ResolverConfig{CandidateThreshold: 0.45, JobThreshold: 0.50},
		},
		{
			name: "zero falls back",
			in:   ResolverConfig{},
			want: ResolverConfig{CandidateThreshold: 0.45, JobThreshold: 0.50},
		},
		{
			name: "above one falls back",
			in:   ResolverConfig{CandidateThreshold: 1.5, JobThreshold: 2},
			want: ResolverConfig{CandidateThreshold: 0.45, JobThreshold: 0.50},
		},
		{
			name: "custom values kept",
			in:   ResolverConfig{CandidateThreshold: 0.3, JobThreshold: 0.7},
			want: ResolverConfig{CandidateThreshold: 0.3, JobThreshold: 0.7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Sanitize()
			assert.InDelta(t, tt.want.CandidateThreshold, tt.in.CandidateThreshold, 1e-9)
			assert.InDelta(t, tt.want.JobThreshold, tt.in.JobThreshold, 1e-9)
		})
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	cfg := AppConfig{}
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
}
