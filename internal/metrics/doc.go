// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto at
package initialization, so importing the package is enough to expose them.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Related-article and personalized request outcomes and latency
  - Result cache hits, misses, size and invalidations
  - Article corpus operation latency and errors
  - Corpus change events published and consumed
  - Circuit breaker state transitions

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Usage

Prefer the Record* helpers over touching collectors directly:

	start := time.Now()
	results, err := engine.GetRelated(ctx, id)
	metrics.RecordRecommendation("related", "mixed", metrics.OutcomeSuccess, time.Since(start))
*/
package metrics
