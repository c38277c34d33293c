// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/folio/internal/models"
	"github.com/tomtom215/folio/internal/recommend"
)

// GetRelated handles GET /api/v1/articles/{id}/related
// Returns scored related articles for the anchor article.
func (h *Handler) GetRelated(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	opts, err := relatedOptions(r.URL.Query())
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	results, err := h.engine.GetRelated(ctx, chi.URLParam(r, "id"), opts...)
	if err != nil {
		writeEngineError(rw, err)
		return
	}
	if results == nil {
		results = []recommend.ScoredCard{}
	}

	rw.List(results, len(results))
}

// GetPersonalizedRelated handles POST /api/v1/articles/{id}/related/personalized
// Returns related articles ranked against the reader's history.
func (h *Handler) GetPersonalizedRelated(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req PersonalizedRequest
	if err := decodeJSON(r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	cards, err := h.engine.GetPersonalizedRelated(ctx, chi.URLParam(r, "id"), req.History, req.Limit)
	if err != nil {
		writeEngineError(rw, err)
		return
	}
	if cards == nil {
		cards = []models.ArticleCard{}
	}

	rw.List(cards, len(cards))
}

// CacheStatsResponse is the body of GET /api/v1/recommend/cache.
type CacheStatsResponse struct {
	recommend.CacheStats
	HitRate float64 `json:"hit_rate"`
}

// GetCacheStats handles GET /api/v1/recommend/cache
func (h *Handler) GetCacheStats(w http.ResponseWriter, r *http.Request) {
	stats := h.engine.GetCacheStats()
	NewResponseWriter(w, r).Success(CacheStatsResponse{
		CacheStats: stats,
		HitRate:    stats.HitRate(),
	})
}

// ClearCacheResponse is the body of DELETE /api/v1/recommend/cache.
type ClearCacheResponse struct {
	Scope   string `json:"scope"`
	Removed int    `json:"removed"`
}

// ClearCache handles DELETE /api/v1/recommend/cache?kind= or ?category=
// With neither parameter every cached result is removed.
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	q := r.URL.Query()

	kindParam, categoryParam := q.Get("kind"), q.Get("category")
	if kindParam != "" && categoryParam != "" {
		rw.BadRequest("kind and category are mutually exclusive")
		return
	}

	if categoryParam != "" {
		category, ok := models.ParseCategory(categoryParam)
		if !ok {
			rw.BadRequest("unknown category " + categoryParam)
			return
		}
		removed := h.engine.ClearCategory(category)
		rw.Success(ClearCacheResponse{Scope: "category:" + string(category), Removed: removed})
		return
	}

	kind, err := recommend.ParseCacheKind(kindParam)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	removed := h.engine.ClearCache(kind)
	rw.Success(ClearCacheResponse{Scope: kind.String(), Removed: removed})
}
