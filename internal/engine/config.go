package engine

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/marchenko/lexrec/internal/strategy"
)

// Config holds every weight table and threshold the engine uses. It is
// immutable once passed to New; tests inject their own values for
// deterministic behavior.
type Config struct {
	// Count clamping range applied to every request.
	MinCount int `koanf:"min_count" validate:"gte=1"`
	MaxCount int `koanf:"max_count" validate:"gtefield=MinCount"`

	// Per-mode defaults used when a request leaves Count at zero.
	PersonalizedCount int `koanf:"personalized_count" validate:"gte=1"`
	ReviewCount       int `koanf:"review_count" validate:"gte=1"`
	AdaptiveCount     int `koanf:"adaptive_count" validate:"gte=1"`
	WeaknessCount     int `koanf:"weakness_count" validate:"gte=1"`

	// Event windows.
	ProfileWindow time.Duration `koanf:"profile_window" validate:"gt=0"`
	RecentWindow  time.Duration `koanf:"recent_window" validate:"gt=0"`
	AbilityWindow time.Duration `koanf:"ability_window" validate:"gt=0"`

	// MinHistoryEvents is the event count below which estimates fall
	// back to conservative defaults instead of failing.
	MinHistoryEvents int `koanf:"min_history_events" validate:"gte=0"`

	// Weights blend the personalized sub-strategies.
	Weights strategy.Weights `koanf:"-"`

	// CacheTTL bounds how long a result may be served from cache.
	// Zero disables caching.
	CacheTTL time.Duration `koanf:"cache_ttl" validate:"gte=0"`

	// FetchTimeout bounds each adapter data fetch. A slow collaborator
	// fails fast into a degraded result instead of hanging the caller.
	FetchTimeout time.Duration `koanf:"fetch_timeout" validate:"gt=0"`

	// Seed fixes the exploration sampling order. Zero selects a
	// time-based seed at construction.
	Seed int64 `koanf:"seed"`
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		MinCount:          1,
		MaxCount:          50,
		PersonalizedCount: 10,
		ReviewCount:       10,
		AdaptiveCount:     15,
		WeaknessCount:     12,
		ProfileWindow:     30 * 24 * time.Hour,
		RecentWindow:      7 * 24 * time.Hour,
		AbilityWindow:     14 * 24 * time.Hour,
		MinHistoryEvents:  5,
		Weights:           strategy.DefaultWeights(),
		CacheTTL:          5 * time.Minute,
		FetchTimeout:      3 * time.Second,
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid engine config: %w", err)
	}
	if len(c.Weights) == 0 {
		return fmt.Errorf("invalid engine config: empty strategy weights")
	}
	for s, w := range c.Weights {
		if w < 0 || w > 1 {
			return fmt.Errorf("invalid engine config: weight for %s out of [0,1]: %v", s, w)
		}
	}
	return nil
}
