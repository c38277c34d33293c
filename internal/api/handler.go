// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package api

import (
	"context"
	"time"

	"github.com/tomtom215/folio/internal/corpus"
	"github.com/tomtom215/folio/internal/eventprocessor"
	"github.com/tomtom215/folio/internal/models"
	"github.com/tomtom215/folio/internal/recommend"
)

// Version is reported by the health endpoint. It is set at build time.
var Version = "dev"

// defaultRequestTimeout bounds engine and store calls made by handlers.
const defaultRequestTimeout = 10 * time.Second

// Recommender is the engine surface used by the handlers.
type Recommender interface {
	GetRelated(ctx context.Context, anchorID string, opts ...recommend.Option) ([]recommend.ScoredCard, error)
	GetPersonalizedRelated(ctx context.Context, anchorID string, history []string, limit int) ([]models.ArticleCard, error)
	ClearCache(kind recommend.CacheKind) int
	ClearCategory(category models.Category) int
	GetCacheStats() recommend.CacheStats
}

// ChangePublisher announces corpus changes so cached results can be dropped.
type ChangePublisher interface {
	PublishArticleChanged(ctx context.Context, event *eventprocessor.ArticleChangedEvent) error
}

// Handler serves the HTTP endpoints.
type Handler struct {
	engine         Recommender
	store          corpus.Store
	publisher      ChangePublisher
	requestTimeout time.Duration
	startTime      time.Time
}

// NewHandler creates a handler. publisher may be nil, in which case every
// corpus write clears the whole cache.
func NewHandler(engine Recommender, store corpus.Store, publisher ChangePublisher) *Handler {
	return &Handler{
		engine:         engine,
		store:          store,
		publisher:      publisher,
		requestTimeout: defaultRequestTimeout,
		startTime:      time.Now(),
	}
}
