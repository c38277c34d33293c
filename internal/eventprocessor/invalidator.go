// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package eventprocessor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/tomtom215/folio/internal/config"
	"github.com/tomtom215/folio/internal/logging"
	"github.com/tomtom215/folio/internal/metrics"
	"github.com/tomtom215/folio/internal/models"
	"github.com/tomtom215/folio/internal/recommend"
)

const invalidatorHandlerName = "cache_invalidator"

// CacheInvalidator is the part of the engine the invalidator drives.
type CacheInvalidator interface {
	ClearCategory(category models.Category) int
	ClearCache(kind recommend.CacheKind) int
}

// InvalidatorConfig holds router settings for the invalidator.
type InvalidatorConfig struct {
	// Scope is config.InvalidationScopeCategory or config.InvalidationScopeAll.
	Scope string

	CloseTimeout         time.Duration
	RetryMaxRetries      int
	RetryInitialInterval time.Duration
}

// DefaultInvalidatorConfig returns production defaults.
func DefaultInvalidatorConfig() InvalidatorConfig {
	return InvalidatorConfig{
		Scope:                config.InvalidationScopeCategory,
		CloseTimeout:         10 * time.Second,
		RetryMaxRetries:      3,
		RetryInitialInterval: 100 * time.Millisecond,
	}
}

// Invalidator consumes article change events and clears the affected
// cached results. It implements suture.Service.
type Invalidator struct {
	subscriber message.Subscriber
	cache      CacheInvalidator
	cfg        InvalidatorConfig
	logger     watermill.LoggerAdapter

	mu      sync.Mutex
	running chan struct{}

	processed atomic.Int64
	removed   atomic.Int64
}

// NewInvalidator creates an invalidator reading from sub.
func NewInvalidator(sub message.Subscriber, c CacheInvalidator, cfg InvalidatorConfig, logger watermill.LoggerAdapter) (*Invalidator, error) {
	if sub == nil {
		return nil, fmt.Errorf("invalidator: subscriber is required")
	}
	if c == nil {
		return nil, fmt.Errorf("invalidator: cache is required")
	}
	switch cfg.Scope {
	case config.InvalidationScopeCategory, config.InvalidationScopeAll:
	default:
		return nil, fmt.Errorf("invalidator: unknown scope %q", cfg.Scope)
	}
	if logger == nil {
		logger = NewWatermillLogger("invalidator")
	}

	return &Invalidator{
		subscriber: sub,
		cache:      c,
		cfg:        cfg,
		logger:     logger,
		running:    make(chan struct{}),
	}, nil
}

// Serve runs a Watermill router until ctx is canceled. A fresh router is
// built on every call so a supervisor can restart the service.
func (i *Invalidator) Serve(ctx context.Context) error {
	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: i.cfg.CloseTimeout}, i.logger)
	if err != nil {
		return fmt.Errorf("create watermill router: %w", err)
	}

	router.AddMiddleware(middleware.Recoverer)
	retry := middleware.Retry{
		MaxRetries:      i.cfg.RetryMaxRetries,
		InitialInterval: i.cfg.RetryInitialInterval,
		Logger:          i.logger,
	}
	router.AddMiddleware(retry.Middleware)

	router.AddConsumerHandler(invalidatorHandlerName, TopicArticleChanged, i.subscriber, i.handle)

	go func() {
		select {
		case <-router.Running():
			i.markRunning()
		case <-ctx.Done():
		}
	}()

	logging.Info().Str("scope", i.cfg.Scope).Msg("Cache invalidator starting")
	return router.Run(ctx)
}

// String names the service for the supervisor.
func (i *Invalidator) String() string {
	return "cache-invalidator"
}

// Running returns a channel closed once the first router has subscribed.
func (i *Invalidator) Running() <-chan struct{} {
	return i.running
}

func (i *Invalidator) markRunning() {
	i.mu.Lock()
	defer i.mu.Unlock()
	select {
	case <-i.running:
	default:
		close(i.running)
	}
}

// Processed returns the number of events handled.
func (i *Invalidator) Processed() int64 {
	return i.processed.Load()
}

// Removed returns the total number of cache entries cleared.
func (i *Invalidator) Removed() int64 {
	return i.removed.Load()
}

// handle applies one event. Malformed events are logged and acknowledged
// since redelivery cannot fix them.
func (i *Invalidator) handle(msg *message.Message) error {
	ctx := logging.ContextWithCorrelationID(msg.Context(), middleware.MessageCorrelationID(msg))

	event, err := DeserializeEvent(msg.Payload)
	if err != nil {
		metrics.RecordEventProcessed(TopicArticleChanged, err)
		logging.Ctx(ctx).Error().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping malformed article change event")
		return nil
	}

	removed := applyInvalidation(i.cache, i.cfg.Scope, event)
	i.processed.Add(1)
	i.removed.Add(int64(removed))
	metrics.RecordEventProcessed(TopicArticleChanged, nil)

	logging.Ctx(ctx).Debug().
		Str("event_id", event.EventID).
		Str("article_id", event.ArticleID).
		Str("action", string(event.Action)).
		Int("removed", removed).
		Msg("Cache invalidated for article change")
	return nil
}

// applyInvalidation clears the cached results affected by event and
// returns the number of entries removed.
func applyInvalidation(c CacheInvalidator, scope string, event *ArticleChangedEvent) int {
	if scope == config.InvalidationScopeAll {
		return c.ClearCache(recommend.CacheAll)
	}

	removed := 0
	for _, category := range event.AffectedCategories() {
		removed += c.ClearCategory(category)
	}
	return removed
}
