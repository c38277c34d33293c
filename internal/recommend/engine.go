// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/folio/internal/cache"
	"github.com/tomtom215/folio/internal/logging"
	"github.com/tomtom215/folio/internal/metrics"
	"github.com/tomtom215/folio/internal/models"
	"github.com/tomtom215/folio/internal/recommend/algorithms"
	"github.com/tomtom215/folio/internal/validation"
)

// Corpus is the read-only article source the engine ranks from.
// Implementations must be safe for concurrent use.
type Corpus interface {
	// FindByID returns the article with the given id. The boolean is false
	// when no such article exists; err is reserved for access failures.
	FindByID(ctx context.Context, id string) (models.Article, bool, error)

	// ListAll returns every article in a stable iteration order.
	ListAll(ctx context.Context) ([]models.Article, error)
}

// Corpus operation names carried by FetchError.
const (
	opFindByID = "find_by_id"
	opListAll  = "list_all"
	opScore    = "score"
)

// Engine ranks related articles for an anchor article.
// It is safe for concurrent use and starts no long-lived goroutines.
type Engine struct {
	config *Config
	logger zerolog.Logger
	corpus Corpus

	// results is nil when caching is disabled.
	results *cache.ResultCache[[]ScoredCard]

	// flights collapses concurrent misses for the same cache key.
	flights singleflight.Group

	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// scoredArticle pairs a candidate with its score during ranking.
type scoredArticle struct {
	article *models.Article
	score   float64
}

// primaryKeyParams identifies a primary cache entry. MinScore is deliberately
// absent: the cached list is unfiltered and the threshold is applied on read.
type primaryKeyParams struct {
	AnchorID      string              `json:"anchor_id"`
	Strategy      algorithms.Strategy `json:"strategy"`
	Limit         int                 `json:"limit"`
	ExcludeAnchor bool                `json:"exclude_anchor"`
}

// NewEngine creates a new recommendation engine over corpus.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, corpus Corpus, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if corpus == nil {
		return nil, errors.New("corpus is required")
	}

	e := &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
		corpus: corpus,
	}

	if cfg.Cache.Enabled {
		results, err := cache.New[[]ScoredCard](cfg.Cache.MaxEntries, cloneScoredCards)
		if err != nil {
			return nil, fmt.Errorf("create result cache: %w", err)
		}
		e.results = results
	}

	return e, nil
}

// GetRelated returns the articles most related to anchorID, best first.
// Defaults come from the engine configuration and may be overridden by opts.
func (e *Engine) GetRelated(ctx context.Context, anchorID string, opts ...Option) ([]ScoredCard, error) {
	return e.Related(ctx, e.config.Limits.newRequest(anchorID, opts...))
}

// Related executes a fully specified related-article request.
//
// Errors are *ValidationError for malformed requests, *NotFoundError when the
// anchor does not exist and *FetchError when the corpus fails.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Related(ctx context.Context, req Request) ([]ScoredCard, error) {
	start := time.Now()
	e.requestCount.Add(1)

	results, err := e.related(ctx, req)
	metrics.RecordRecommendation("related", req.Strategy.String(), outcomeOf(err), time.Since(start))
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	return results, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) related(ctx context.Context, req Request) ([]ScoredCard, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	logger := e.createRequestLogger(ctx, req)

	key := cache.Key(cache.KindPrimary, primaryKeyParams{
		AnchorID:      req.AnchorID,
		Strategy:      req.Strategy,
		Limit:         req.Limit,
		ExcludeAnchor: req.ExcludeAnchor,
	})

	if ranked, ok := e.checkCache(cache.KindPrimary, key); ok {
		logger.Debug().Msg("cache hit")
		return filterByMinScore(ranked, req.MinScore), nil
	}

	ranked, shared, err := e.rankOnce(ctx, key, cache.KindPrimary, func(ctx context.Context) ([]ScoredCard, []models.Category, error) {
		return e.rankRelated(ctx, req)
	})
	if err != nil {
		logger.Debug().Err(err).Msg("related articles failed")
		return nil, err
	}

	results := filterByMinScore(ranked, req.MinScore)
	logger.Debug().
		Int("ranked", len(ranked)).
		Int("returned", len(results)).
		Bool("shared", shared).
		Msg("related articles computed")

	return results, nil
}

// rankFunc computes a ranking and the categories it depends on.
type rankFunc func(ctx context.Context) ([]ScoredCard, []models.Category, error)

// rankOnce runs rank at most once per key across concurrent callers and
// caches its result. The shared call keeps ctx values but not its
// cancellation, so one caller giving up never fails the others; each caller
// stops waiting when its own ctx is done. Callers other than the one whose
// call ran receive a copy.
func (e *Engine) rankOnce(ctx context.Context, key string, kind cache.Kind, rank rankFunc) ([]ScoredCard, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, wrapFetch(opScore, err)
	}

	detached := context.WithoutCancel(ctx)
	ch := e.flights.DoChan(key, func() (interface{}, error) {
		ranked, categories, err := rank(detached)
		if err != nil {
			return nil, err
		}
		e.storeCache(key, kind, ranked, categories)
		return ranked, nil
	})

	select {
	case <-ctx.Done():
		return nil, false, wrapFetch(opScore, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Shared, res.Err
		}
		ranked := res.Val.([]ScoredCard) //nolint:errcheck,forcetypeassert // flights only ever stores []ScoredCard
		if res.Shared {
			ranked = cloneScoredCards(ranked)
		}
		return ranked, res.Shared, nil
	}
}

// rankRelated scans the corpus and returns the top Limit candidates under
// the request strategy, together with the categories the result depends on.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) rankRelated(ctx context.Context, req Request) ([]ScoredCard, []models.Category, error) {
	anchor, err := e.findAnchor(ctx, req.AnchorID)
	if err != nil {
		return nil, nil, err
	}

	articles, err := e.listAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	candidates := make([]scoredArticle, 0, len(articles))
	for i := range articles {
		if err := ctx.Err(); err != nil {
			return nil, nil, wrapFetch(opScore, err)
		}

		candidate := &articles[i]
		if req.ExcludeAnchor && candidate.ID == anchor.ID {
			continue
		}

		candidates = append(candidates, scoredArticle{
			article: candidate,
			score:   algorithms.Score(req.Strategy, anchor, *candidate),
		})
	}
	metrics.RecommendCandidatesScored.Observe(float64(len(candidates)))

	ranked := rankAndProject(candidates, req.Limit)
	return ranked, relatedDependencies(req, anchor, ranked), nil
}

// findAnchor resolves an article or reports NotFoundError.
func (e *Engine) findAnchor(ctx context.Context, id string) (models.Article, error) {
	anchor, found, err := e.corpus.FindByID(ctx, id)
	if err != nil {
		return models.Article{}, wrapFetch(opFindByID, err)
	}
	if !found {
		return models.Article{}, &NotFoundError{ArticleID: id}
	}
	return anchor, nil
}

// listAll reads every corpus article.
func (e *Engine) listAll(ctx context.Context) ([]models.Article, error) {
	articles, err := e.corpus.ListAll(ctx)
	if err != nil {
		return nil, wrapFetch(opListAll, err)
	}
	return articles, nil
}

// rankAndProject sorts candidates by descending score, keeping corpus order
// on ties, truncates to limit and projects the survivors to cards.
func rankAndProject(candidates []scoredArticle, limit int) []ScoredCard {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	results := make([]ScoredCard, len(candidates))
	for i, c := range candidates {
		results[i] = ScoredCard{Card: c.article.Card(), Score: c.score}
	}
	return results
}

// filterByMinScore drops the results scoring below minScore. The input is
// sorted descending, so this only ever removes a suffix.
func filterByMinScore(ranked []ScoredCard, minScore float64) []ScoredCard {
	for i, r := range ranked {
		if r.Score < minScore {
			return ranked[:i]
		}
	}
	return ranked
}

// relatedDependencies lists the categories whose changes can alter a primary
// result. Only a full category-strategy list scored above the baseline is
// bounded by categories: a new or edited article can enter it only from the
// anchor's category or a related one, and can leave it only from a listed
// card's category. Every other result is tagged cache.AnyCategory.
//
//nolint:gocritic // hugeParam: req and anchor passed by value for immutability
func relatedDependencies(req Request, anchor models.Article, ranked []ScoredCard) []models.Category {
	if req.Strategy != algorithms.StrategyCategory || len(ranked) < req.Limit {
		return []models.Category{cache.AnyCategory}
	}
	for _, r := range ranked {
		if r.Score <= algorithms.BaselineScore {
			return []models.Category{cache.AnyCategory}
		}
	}

	canonical, _ := anchor.Category.Canonical()
	return dependentCategories(ranked, append(models.RelatedCategories(canonical), anchor.Category)...)
}

// dependentCategories lists the categories a cached result depends on: the
// extra categories and every result card's.
func dependentCategories(results []ScoredCard, extra ...models.Category) []models.Category {
	seen := make(map[models.Category]struct{}, len(results)+len(extra))
	out := make([]models.Category, 0, len(results)+len(extra))

	add := func(c models.Category) {
		if canonical, ok := c.Canonical(); ok {
			c = canonical
		}
		if _, dup := seen[c]; dup || c == "" {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	for _, c := range extra {
		add(c)
	}
	for _, r := range results {
		add(r.Card.Category)
	}
	return out
}

// validateRequest checks request bounds before any corpus access.
func validateRequest(req *Request) error {
	if verr := validation.ValidateStruct(req); verr != nil {
		return &ValidationError{Violations: verr.Violations()}
	}
	return nil
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(ctx context.Context, req Request) zerolog.Logger {
	lc := e.logger.With().
		Str("anchor_id", req.AnchorID).
		Str("strategy", req.Strategy.String()).
		Int("limit", req.Limit)

	if id := logging.RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		lc = lc.Str("correlation_id", id)
	}

	return lc.Logger()
}

// checkCache returns a copy of a cached result, if caching is enabled.
func (e *Engine) checkCache(kind cache.Kind, key string) ([]ScoredCard, bool) {
	if e.results == nil {
		return nil, false
	}

	ranked, ok := e.results.Get(key)
	metrics.RecordCacheLookup(kind.String(), ok)
	return ranked, ok
}

// storeCache stores a result, if caching is enabled.
func (e *Engine) storeCache(key string, kind cache.Kind, ranked []ScoredCard, categories []models.Category) {
	if e.results == nil {
		return
	}
	e.results.Set(key, kind, ranked, categories...)
}

// ClearCache removes cached results of the given kind, or all of them for
// CacheAll. It returns the number of entries removed.
func (e *Engine) ClearCache(kind CacheKind) int {
	if e.results == nil {
		return 0
	}

	removed := e.results.Clear(kind)
	metrics.RecordCacheInvalidation(kind.String(), removed)
	e.logger.Debug().
		Str("kind", kind.String()).
		Int("removed", removed).
		Msg("cache cleared")

	return removed
}

// ClearCategory removes every cached result that depends on category.
// It returns the number of entries removed.
func (e *Engine) ClearCategory(category models.Category) int {
	if e.results == nil {
		return 0
	}

	if canonical, ok := category.Canonical(); ok {
		category = canonical
	}

	removed := e.results.ClearCategory(category)
	metrics.RecordCacheInvalidation("category", removed)
	e.logger.Debug().
		Str("category", string(category)).
		Int("removed", removed).
		Msg("cache cleared by category")

	return removed
}

// GetCacheStats returns per-kind entry counts and hit/miss counters.
func (e *Engine) GetCacheStats() CacheStats {
	if e.results == nil {
		byKind := make(map[string]int, len(cache.Kinds()))
		for _, k := range cache.Kinds() {
			byKind[k.String()] = 0
		}
		return CacheStats{EntriesByKind: byKind}
	}

	stats := e.results.Stats()
	metrics.UpdateCacheEntries(stats.EntriesByKind)
	return stats
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// RequestCount returns the number of requests served since creation.
func (e *Engine) RequestCount() int64 {
	return e.requestCount.Load()
}

// ErrorCount returns the number of requests that failed since creation.
func (e *Engine) ErrorCount() int64 {
	return e.errorCount.Load()
}

// outcomeOf classifies an engine error for metrics.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrValidation):
		return metrics.OutcomeValidation
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrFetch):
		return metrics.OutcomeFetchError
	default:
		return metrics.OutcomeError
	}
}
