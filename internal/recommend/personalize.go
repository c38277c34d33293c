// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package recommend

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/folio/internal/cache"
	"github.com/tomtom215/folio/internal/metrics"
	"github.com/tomtom215/folio/internal/models"
	"github.com/tomtom215/folio/internal/recommend/algorithms"
)

// Personalization fallback reasons.
const (
	fallbackEmptyHistory = "empty_history"
	fallbackDisabled     = "disabled"
	fallbackError        = "error"
)

// personalizedKeyParams identifies a personalized cache entry.
type personalizedKeyParams struct {
	AnchorID string   `json:"anchor_id"`
	History  []string `json:"history"`
	Limit    int      `json:"limit"`
}

// GetPersonalizedRelated ranks articles for a reader who has read history,
// excluding the anchor and everything already read. A limit of 0 uses the
// configured default.
//
// Personalization is best effort. An empty history, or any failure while
// resolving the history or building the reader profile, falls back to
// GetRelated with the mixed strategy. Only errors from that fallback path
// (validation, not found, fetch) are returned.
func (e *Engine) GetPersonalizedRelated(ctx context.Context, anchorID string, history []string, limit int) ([]models.ArticleCard, error) {
	start := time.Now()
	e.requestCount.Add(1)

	cards, err := e.personalized(ctx, anchorID, history, limit)
	metrics.RecordRecommendation("personalized", "profile", outcomeOf(err), time.Since(start))
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	return cards, nil
}

func (e *Engine) personalized(ctx context.Context, anchorID string, history []string, limit int) ([]models.ArticleCard, error) {
	if limit == 0 {
		limit = e.config.Limits.DefaultLimit
	}

	req := e.config.Limits.newRequest(anchorID,
		WithLimit(limit),
		WithStrategy(algorithms.StrategyMixed),
		WithExcludeAnchor(true),
	)
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	logger := e.createRequestLogger(ctx, req)

	ids := normalizeHistory(history)
	if len(ids) == 0 {
		return e.fallback(ctx, req, fallbackEmptyHistory)
	}
	if !e.config.Personalization.Enabled {
		return e.fallback(ctx, req, fallbackDisabled)
	}

	key := cache.Key(cache.KindPersonalized, personalizedKeyParams{
		AnchorID: req.AnchorID,
		History:  ids,
		Limit:    req.Limit,
	})

	if ranked, ok := e.checkCache(cache.KindPersonalized, key); ok {
		logger.Debug().Msg("personalized cache hit")
		return Cards(ranked), nil
	}

	ranked, _, err := e.rankOnce(ctx, key, cache.KindPersonalized, func(ctx context.Context) ([]ScoredCard, []models.Category, error) {
		return e.rankPersonalized(ctx, req, ids)
	})
	if err != nil {
		logger.Warn().
			Err(err).
			Int("history_size", len(ids)).
			Msg("personalization failed, falling back to mixed strategy")
		return e.fallback(ctx, req, fallbackError)
	}

	logger.Debug().
		Int("history_size", len(ids)).
		Int("returned", len(ranked)).
		Msg("personalized articles computed")

	return Cards(ranked), nil
}

// fallback serves a personalized request through the mixed strategy.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) fallback(ctx context.Context, req Request, reason string) ([]models.ArticleCard, error) {
	metrics.PersonalizationFallbacks.WithLabelValues(reason).Inc()

	results, err := e.related(ctx, req)
	if err != nil {
		return nil, err
	}
	return Cards(results), nil
}

// rankPersonalized resolves the history, builds the reader profile and ranks
// the unread candidates against it.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) rankPersonalized(ctx context.Context, req Request, ids []string) ([]ScoredCard, []models.Category, error) {
	anchor, err := e.findAnchor(ctx, req.AnchorID)
	if err != nil {
		return nil, nil, err
	}

	articles, err := e.listAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	read := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		read[id] = struct{}{}
	}

	// Unknown history ids are skipped
	history := make([]models.Article, 0, len(ids))
	for i := range articles {
		if _, ok := read[articles[i].ID]; ok {
			history = append(history, articles[i])
		}
	}

	profile, err := BuildProfile(history)
	if err != nil {
		return nil, nil, err
	}

	candidates := make([]scoredArticle, 0, len(articles))
	for i := range articles {
		if err := ctx.Err(); err != nil {
			return nil, nil, wrapFetch(opScore, err)
		}

		candidate := &articles[i]
		if candidate.ID == anchor.ID {
			continue
		}
		if _, ok := read[candidate.ID]; ok {
			continue
		}

		candidates = append(candidates, scoredArticle{
			article: candidate,
			score:   profile.Score(*candidate, e.config.Personalization),
		})
	}
	metrics.RecommendCandidatesScored.Observe(float64(len(candidates)))

	// Profile scores mix tags and reading time, so any change can reorder them.
	ranked := rankAndProject(candidates, req.Limit)
	return ranked, []models.Category{cache.AnyCategory}, nil
}

// normalizeHistory trims, dedupes and sorts history ids so that the same
// set of reads always maps to the same cache key.
func normalizeHistory(history []string) []string {
	seen := make(map[string]struct{}, len(history))
	ids := make([]string, 0, len(history))
	for _, id := range history {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
