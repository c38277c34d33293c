// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package config provides centralized configuration management for Folio.

# Configuration Sources

Load layers three sources with Koanf v2, later sources winning:

  - Built-in defaults (defaultConfig)
  - An optional YAML file: CONFIG_PATH, config.yaml, or /etc/folio/config.yaml
  - Environment variables with an explicit name mapping

# Configuration Structure

  - ServerConfig: HTTP listen address, timeouts and environment
  - LoggingConfig: zerolog level, format and caller info
  - RecommendConfig: request defaults, result cache and personalization
  - CorpusConfig: badger or in-memory article store, optional seed file
  - BreakerConfig: circuit breaker around corpus reads
  - EventsConfig: corpus-change events driving cache invalidation
  - SecurityConfig: rate limiting and CORS

# Environment Variables

	HTTP_HOST, HTTP_PORT, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT,
	HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT, ENVIRONMENT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
	RECOMMEND_DEFAULT_LIMIT, RECOMMEND_DEFAULT_MIN_SCORE,
	RECOMMEND_DEFAULT_STRATEGY, RECOMMEND_CACHE_ENABLED,
	RECOMMEND_CACHE_MAX_ENTRIES, RECOMMEND_PERSONALIZATION_ENABLED,
	RECOMMEND_READING_TIME_SCALE, RECOMMEND_COMPLEXITY_SCALE
	CORPUS_BACKEND, CORPUS_PATH, CORPUS_SEED_FILE
	BREAKER_ENABLED, BREAKER_MAX_REQUESTS, BREAKER_INTERVAL,
	BREAKER_TIMEOUT, BREAKER_FAILURE_THRESHOLD
	EVENTS_ENABLED, EVENTS_BUFFER_SIZE, EVENTS_INVALIDATION_SCOPE
	RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS

CORS_ORIGINS is a comma-separated list. Durations use Go syntax ("30s").

# Example

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), corpus, logger)
*/
package config
