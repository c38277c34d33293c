// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package eventprocessor

import (
	"context"
	"fmt"

	"github.com/tomtom215/folio/internal/config"
	"github.com/tomtom215/folio/internal/logging"
	"github.com/tomtom215/folio/internal/metrics"
)

// DirectPublisher applies invalidation synchronously instead of publishing
// to a bus. It is used when events are disabled.
type DirectPublisher struct {
	cache CacheInvalidator
	scope string
}

// NewDirectPublisher creates a publisher that clears c in the caller's goroutine.
func NewDirectPublisher(c CacheInvalidator, scope string) (*DirectPublisher, error) {
	if c == nil {
		return nil, fmt.Errorf("direct publisher: cache is required")
	}
	switch scope {
	case config.InvalidationScopeCategory, config.InvalidationScopeAll:
	default:
		return nil, fmt.Errorf("direct publisher: unknown scope %q", scope)
	}
	return &DirectPublisher{cache: c, scope: scope}, nil
}

// PublishArticleChanged validates the event and applies it immediately.
func (d *DirectPublisher) PublishArticleChanged(ctx context.Context, event *ArticleChangedEvent) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("validate event: %w", err)
	}

	removed := applyInvalidation(d.cache, d.scope, event)
	metrics.RecordEventProcessed(TopicArticleChanged, nil)

	logging.Ctx(ctx).Debug().
		Str("article_id", event.ArticleID).
		Str("action", string(event.Action)).
		Int("removed", removed).
		Msg("Cache invalidated for article change")
	return nil
}
