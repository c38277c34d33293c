// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package eventprocessor

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/tomtom215/folio/internal/logging"
	"github.com/tomtom215/folio/internal/metrics"
)

// Metadata keys set on published messages.
const (
	MetadataArticleID = "article_id"
	MetadataAction    = "action"
)

// Publisher publishes corpus-change events.
type Publisher struct {
	publisher message.Publisher
	mu        sync.RWMutex
	closed    bool
}

// NewPublisher wraps a Watermill publisher.
func NewPublisher(pub message.Publisher) (*Publisher, error) {
	if pub == nil {
		return nil, ErrNilPublisher
	}
	return &Publisher{publisher: pub}, nil
}

// PublishArticleChanged serializes and publishes an event. The correlation
// id is taken from the event, then from ctx, and generated when neither
// carries one.
func (p *Publisher) PublishArticleChanged(ctx context.Context, event *ArticleChangedEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	if event.CorrelationID == "" {
		event.CorrelationID = logging.CorrelationIDFromContext(ctx)
	}
	if event.CorrelationID == "" {
		event.CorrelationID = logging.GenerateCorrelationID()
	}

	data, err := SerializeEvent(event)
	if err != nil {
		return fmt.Errorf("serialize event: %w", err)
	}

	msg := message.NewMessage(event.EventID, data)
	middleware.SetCorrelationID(event.CorrelationID, msg)
	msg.Metadata.Set(MetadataArticleID, event.ArticleID)
	msg.Metadata.Set(MetadataAction, string(event.Action))

	if err := p.publisher.Publish(TopicArticleChanged, msg); err != nil {
		return fmt.Errorf("publish %s: %w", TopicArticleChanged, err)
	}

	metrics.RecordEventPublished(TopicArticleChanged)
	logging.Ctx(ctx).Debug().
		Str("event_id", event.EventID).
		Str("article_id", event.ArticleID).
		Str("action", string(event.Action)).
		Msg("Article change published")
	return nil
}

// Close stops further publishing. The underlying bus is owned by the caller.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}
