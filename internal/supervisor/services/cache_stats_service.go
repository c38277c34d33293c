// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/folio/internal/recommend"
)

// CacheStatsSource reports result cache statistics. Sampling the engine
// also refreshes its cache entry gauges.
type CacheStatsSource interface {
	GetCacheStats() recommend.CacheStats
}

// CacheStatsService samples cache statistics on a fixed interval.
type CacheStatsService struct {
	source   CacheStatsSource
	interval time.Duration
	logger   zerolog.Logger

	samples chan recommend.CacheStats
}

// NewCacheStatsService creates the service. A non-positive interval
// defaults to 30s.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewCacheStatsService(source CacheStatsSource, interval time.Duration, logger zerolog.Logger) *CacheStatsService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &CacheStatsService{
		source:   source,
		interval: interval,
		logger:   logger.With().Str("service", "cache-stats").Logger(),
	}
}

// Serve implements suture.Service.
func (s *CacheStatsService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sample()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sample()
		}
	}
}

func (s *CacheStatsService) sample() {
	stats := s.source.GetCacheStats()
	s.logger.Debug().
		Int("entries", stats.TotalEntries).
		Int64("hits", stats.Hits).
		Int64("misses", stats.Misses).
		Int64("evictions", stats.Evictions).
		Float64("hit_rate", stats.HitRate()).
		Msg("cache stats sampled")

	if s.samples != nil {
		select {
		case s.samples <- stats:
		default:
		}
	}
}

// String implements fmt.Stringer for supervisor logs.
func (s *CacheStatsService) String() string {
	return "cache-stats"
}
