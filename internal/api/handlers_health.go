// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package api

import (
	"context"
	"net/http"
	"time"
)

// healthCheckTimeout bounds the corpus probe in readiness checks.
const healthCheckTimeout = 2 * time.Second

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Uptime        float64 `json:"uptime"`
	CorpusHealthy bool    `json:"corpus_healthy"`
	Articles      int     `json:"articles"`
	CachedResults int     `json:"cached_results"`
}

// Health handles GET /api/v1/health
// Reports "healthy" or "degraded" with corpus and cache details.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	status := HealthStatus{
		Status:        "healthy",
		Version:       Version,
		Uptime:        time.Since(h.startTime).Seconds(),
		CachedResults: h.engine.GetCacheStats().TotalEntries,
	}

	count, err := h.store.Count(ctx)
	if err != nil {
		status.Status = "degraded"
	} else {
		status.CorpusHealthy = true
		status.Articles = count
	}

	NewResponseWriter(w, r).Success(status)
}

// HealthLive handles GET /api/v1/health/live
// Liveness only reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /api/v1/health/ready
// Readiness requires the corpus to answer within the probe timeout.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	count, err := h.store.Count(ctx)
	if err != nil {
		rw.ServiceUnavailable("article corpus unavailable", err)
		return
	}

	rw.Success(map[string]interface{}{
		"ready":    true,
		"articles": count,
	})
}
