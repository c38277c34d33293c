// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/folio/internal/recommend"
	"github.com/tomtom215/folio/internal/recommend/algorithms"
)

// Config holds all application configuration.
//
// Loading order (see Load):
//  1. Defaults: built-in values for every setting
//  2. Config file: optional YAML (config.yaml, /etc/folio/config.yaml or CONFIG_PATH)
//  3. Environment variables: override any mapped setting
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
	Corpus    CorpusConfig    `koanf:"corpus"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Events    EventsConfig    `koanf:"events"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development or production
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json or console
	Caller bool   `koanf:"caller"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	DefaultLimit    int     `koanf:"default_limit"`
	DefaultMinScore float64 `koanf:"default_min_score"`
	DefaultStrategy string  `koanf:"default_strategy"`

	CacheEnabled    bool `koanf:"cache_enabled"`
	CacheMaxEntries int  `koanf:"cache_max_entries"`

	PersonalizationEnabled bool    `koanf:"personalization_enabled"`
	ReadingTimeScale       float64 `koanf:"reading_time_scale"`
	ComplexityScale        float64 `koanf:"complexity_scale"`
}

// EngineConfig converts the settings into the engine's configuration.
// The result still has to pass recommend.Config.Validate.
func (r RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		Limits: recommend.LimitsConfig{
			DefaultLimit:    r.DefaultLimit,
			DefaultMinScore: r.DefaultMinScore,
			DefaultStrategy: algorithms.Strategy(r.DefaultStrategy),
		},
		Personalization: recommend.PersonalizationConfig{
			Enabled:          r.PersonalizationEnabled,
			ReadingTimeScale: r.ReadingTimeScale,
			ComplexityScale:  r.ComplexityScale,
		},
		Cache: recommend.CacheConfig{
			Enabled:    r.CacheEnabled,
			MaxEntries: r.CacheMaxEntries,
		},
	}
}

// Corpus backends.
const (
	CorpusBackendBadger = "badger"
	CorpusBackendMemory = "memory"
)

// CorpusConfig selects and configures the article store.
type CorpusConfig struct {
	Backend  string `koanf:"backend"`   // badger or memory
	Path     string `koanf:"path"`      // badger directory, ignored for memory
	SeedFile string `koanf:"seed_file"` // optional JSON array of articles loaded at startup
}

// BreakerConfig configures the circuit breaker around corpus reads.
type BreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// MaxRequests is the number of probe requests allowed while half-open.
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval is the closed-state window after which counts reset.
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration `koanf:"timeout"`

	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32 `koanf:"failure_threshold"`
}

// EventsConfig configures corpus-change events and cache invalidation.
type EventsConfig struct {
	Enabled bool `koanf:"enabled"`

	// BufferSize is the per-subscriber channel buffer of the in-process pub/sub.
	BufferSize int64 `koanf:"buffer_size"`

	// InvalidationScope selects what a change event clears: "category"
	// drops entries depending on the changed categories and their related
	// categories, "all" drops every cached result.
	InvalidationScope string `koanf:"invalidation_scope"`
}

// Cache invalidation scopes.
const (
	InvalidationScopeCategory = "category"
	InvalidationScopeAll      = "all"
)

// SecurityConfig holds HTTP surface protections.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}
