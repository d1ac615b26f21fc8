package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchenko/lexrec/internal/strategy"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10, cfg.PersonalizedCount)
	assert.Equal(t, 10, cfg.ReviewCount)
	assert.Equal(t, 15, cfg.AdaptiveCount)
	assert.Equal(t, 12, cfg.WeaknessCount)
	assert.Equal(t, 1, cfg.MinCount)
	assert.Equal(t, 50, cfg.MaxCount)
	assert.Equal(t, 30*24*time.Hour, cfg.ProfileWindow)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(*Config) {}, false},
		{"zero min count", func(c *Config) { c.MinCount = 0 }, true},
		{"max below min", func(c *Config) { c.MinCount = 10; c.MaxCount = 5 }, true},
		{"zero mode default", func(c *Config) { c.ReviewCount = 0 }, true},
		{"zero profile window", func(c *Config) { c.ProfileWindow = 0 }, true},
		{"zero fetch timeout", func(c *Config) { c.FetchTimeout = 0 }, true},
		{"negative cache ttl", func(c *Config) { c.CacheTTL = -time.Second }, true},
		{"cache disabled", func(c *Config) { c.CacheTTL = 0 }, false},
		{"empty weights", func(c *Config) { c.Weights = nil }, true},
		{"weight above one", func(c *Config) {
			c.Weights = strategy.Weights{strategy.Frequency: 1.5}
		}, true},
		{"negative weight", func(c *Config) {
			c.Weights = strategy.Weights{strategy.Frequency: -0.1}
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
