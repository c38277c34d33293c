// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package recommend

import (
	"github.com/tomtom215/folio/internal/cache"
	"github.com/tomtom215/folio/internal/models"
	"github.com/tomtom215/folio/internal/recommend/algorithms"
)

// Request bounds.
const (
	MinLimit = 1
	MaxLimit = 10
)

// Request describes one related-article query.
type Request struct {
	// AnchorID is the article to find related articles for.
	AnchorID string `json:"anchorId" validate:"required,notblank"`

	// Strategy selects the similarity function.
	Strategy algorithms.Strategy `json:"strategy" validate:"oneof=category tags content mixed"`

	// Limit is the maximum number of results, in [MinLimit, MaxLimit].
	Limit int `json:"limit" validate:"min=1,max=10"`

	// ExcludeAnchor removes the anchor itself from the candidates.
	ExcludeAnchor bool `json:"excludeAnchor"`

	// MinScore drops results scoring below it. Range: [0, 1].
	MinScore float64 `json:"minScore" validate:"gte=0,lte=1"`
}

// Option overrides a request default.
type Option func(*Request)

// WithLimit sets the maximum number of results.
func WithLimit(limit int) Option {
	return func(r *Request) { r.Limit = limit }
}

// WithStrategy sets the similarity strategy.
func WithStrategy(s algorithms.Strategy) Option {
	return func(r *Request) { r.Strategy = s }
}

// WithExcludeAnchor controls whether the anchor may appear in its own results.
func WithExcludeAnchor(exclude bool) Option {
	return func(r *Request) { r.ExcludeAnchor = exclude }
}

// WithMinScore sets the minimum score a result must reach.
func WithMinScore(minScore float64) Option {
	return func(r *Request) { r.MinScore = minScore }
}

// NewRequest builds a request for anchorID with the package defaults
// (limit 3, mixed strategy, anchor excluded, min score 0.1) and applies opts.
func NewRequest(anchorID string, opts ...Option) Request {
	return DefaultConfig().Limits.newRequest(anchorID, opts...)
}

// ScoredCard is one element of a related-article result.
type ScoredCard struct {
	Card  models.ArticleCard `json:"article"`
	Score float64            `json:"score"`
}

// cloneScoredCards deep-copies a result list.
func cloneScoredCards(in []ScoredCard) []ScoredCard {
	if in == nil {
		return nil
	}
	out := make([]ScoredCard, len(in))
	for i, sc := range in {
		out[i] = ScoredCard{Card: sc.Card.Clone(), Score: sc.Score}
	}
	return out
}

// Cards strips the scores from a result list.
func Cards(results []ScoredCard) []models.ArticleCard {
	cards := make([]models.ArticleCard, len(results))
	for i, r := range results {
		cards[i] = r.Card
	}
	return cards
}

// CacheKind selects a result cache partition.
type CacheKind = cache.Kind

// Cache partitions.
const (
	CacheAll          = cache.KindAll
	CachePrimary      = cache.KindPrimary
	CachePersonalized = cache.KindPersonalized
)

// ParseCacheKind resolves a cache kind name. An empty name means CacheAll.
func ParseCacheKind(name string) (CacheKind, error) {
	return cache.ParseKind(name)
}

// CacheStats is a point-in-time view of the result cache.
type CacheStats = cache.Stats
