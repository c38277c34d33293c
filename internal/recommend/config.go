// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package recommend

import (
	"fmt"

	"github.com/tomtom215/folio/internal/recommend/algorithms"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Limits defines request defaults.
	Limits LimitsConfig `json:"limits"`

	// Personalization controls the history-driven ranking.
	Personalization PersonalizationConfig `json:"personalization"`

	// Cache controls the result cache.
	Cache CacheConfig `json:"cache"`
}

// LimitsConfig holds the defaults applied to requests that do not set them.
type LimitsConfig struct {
	// DefaultLimit is the result count when none is given.
	// Default: 3. Range: [1, 10].
	DefaultLimit int `json:"default_limit"`

	// DefaultMinScore is the score threshold when none is given.
	// Default: 0.1. Range: [0, 1].
	DefaultMinScore float64 `json:"default_min_score"`

	// DefaultStrategy is the similarity strategy when none is given.
	// Default: mixed.
	DefaultStrategy algorithms.Strategy `json:"default_strategy"`
}

// newRequest builds a request from these defaults and applies opts.
//
//nolint:gocritic // hugeParam: small value receiver keeps defaults immutable
func (l LimitsConfig) newRequest(anchorID string, opts ...Option) Request {
	req := Request{
		AnchorID:      anchorID,
		Strategy:      l.DefaultStrategy,
		Limit:         l.DefaultLimit,
		ExcludeAnchor: true,
		MinScore:      l.DefaultMinScore,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

// PersonalizationConfig contains parameters for history-driven ranking.
type PersonalizationConfig struct {
	// Enabled turns personalization on. When false, personalized requests
	// are served by the non-personalized mixed strategy.
	// Default: true.
	Enabled bool `json:"enabled"`

	// ReadingTimeScale is the reading-time difference, in minutes, at which
	// reading-time affinity reaches zero.
	// Default: 15.
	ReadingTimeScale float64 `json:"reading_time_scale"`

	// ComplexityScale is the complexity difference at which complexity
	// affinity reaches zero.
	// Default: 1.0.
	ComplexityScale float64 `json:"complexity_scale"`
}

// CacheConfig contains result cache settings.
type CacheConfig struct {
	// Enabled turns result caching on.
	// Default: true.
	Enabled bool `json:"enabled"`

	// MaxEntries bounds the cache. Least recently used entries are evicted.
	// Default: 1000.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultLimit:    3,
			DefaultMinScore: 0.1,
			DefaultStrategy: algorithms.StrategyMixed,
		},
		Personalization: PersonalizationConfig{
			Enabled:          true,
			ReadingTimeScale: 15,
			ComplexityScale:  1.0,
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 1000,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limits.DefaultLimit < MinLimit || c.Limits.DefaultLimit > MaxLimit {
		return fmt.Errorf("limits.default_limit must be in [%d, %d], got %d", MinLimit, MaxLimit, c.Limits.DefaultLimit)
	}
	if c.Limits.DefaultMinScore < 0 || c.Limits.DefaultMinScore > 1 {
		return fmt.Errorf("limits.default_min_score must be in [0, 1], got %f", c.Limits.DefaultMinScore)
	}
	if !c.Limits.DefaultStrategy.Valid() {
		return fmt.Errorf("limits.default_strategy: %w: %q", algorithms.ErrUnknownStrategy, c.Limits.DefaultStrategy)
	}

	if c.Personalization.ReadingTimeScale <= 0 {
		return fmt.Errorf("personalization.reading_time_scale must be positive, got %f", c.Personalization.ReadingTimeScale)
	}
	if c.Personalization.ComplexityScale <= 0 {
		return fmt.Errorf("personalization.complexity_scale must be positive, got %f", c.Personalization.ComplexityScale)
	}

	if c.Cache.Enabled && c.Cache.MaxEntries < 1 {
		return fmt.Errorf("cache.max_entries must be positive when cache is enabled, got %d", c.Cache.MaxEntries)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all nested structs contain only value types
	return &Config{
		Limits:          c.Limits,
		Personalization: c.Personalization,
		Cache:           c.Cache,
	}
}
