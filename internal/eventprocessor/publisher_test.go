// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package eventprocessor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/folio/internal/config"
	"github.com/tomtom215/folio/internal/logging"
	"github.com/tomtom215/folio/internal/models"
)

func newTestBus(t *testing.T) *gochannel.GoChannel {
	t.Helper()
	bus := NewBus(&config.EventsConfig{BufferSize: 16}, watermill.NopLogger{})
	t.Cleanup(func() { bus.Close() })
	return bus
}

func TestNewPublisher_Nil(t *testing.T) {
	t.Parallel()

	if _, err := NewPublisher(nil); !errors.Is(err, ErrNilPublisher) {
		t.Errorf("NewPublisher(nil) error = %v, want ErrNilPublisher", err)
	}
}

func TestPublisher_PublishArticleChanged(t *testing.T) {
	t.Parallel()

	bus := newTestBus(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := bus.Subscribe(ctx, TopicArticleChanged)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	pub, err := NewPublisher(bus)
	if err != nil {
		t.Fatalf("NewPublisher() error = %v", err)
	}

	event := NewArticleChangedEvent(ActionUpserted, article("a-1", models.CategoryFood), nil)
	publishCtx := logging.ContextWithCorrelationID(ctx, "corr-123")
	if err := pub.PublishArticleChanged(publishCtx, event); err != nil {
		t.Fatalf("PublishArticleChanged() error = %v", err)
	}

	select {
	case msg := <-messages:
		msg.Ack()
		if msg.UUID != event.EventID {
			t.Errorf("message UUID = %s, want event id %s", msg.UUID, event.EventID)
		}
		if got := middleware.MessageCorrelationID(msg); got != "corr-123" {
			t.Errorf("correlation id = %q, want corr-123", got)
		}
		if msg.Metadata.Get(MetadataArticleID) != "a-1" || msg.Metadata.Get(MetadataAction) != string(ActionUpserted) {
			t.Errorf("metadata = %v", msg.Metadata)
		}
		decoded, err := DeserializeEvent(msg.Payload)
		if err != nil || decoded.Category != models.CategoryFood {
			t.Errorf("payload = %+v, %v", decoded, err)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for published message")
	}
}

func TestPublisher_GeneratesCorrelationID(t *testing.T) {
	t.Parallel()

	bus := newTestBus(t)
	pub, _ := NewPublisher(bus)

	event := NewArticleChangedEvent(ActionDeleted, nil, article("a-1", models.CategoryFood))
	if err := pub.PublishArticleChanged(context.Background(), event); err != nil {
		t.Fatalf("PublishArticleChanged() error = %v", err)
	}
	if len(event.CorrelationID) != 8 {
		t.Errorf("CorrelationID = %q, want generated 8-character id", event.CorrelationID)
	}
}

func TestPublisher_RejectsInvalidEvent(t *testing.T) {
	t.Parallel()

	pub, _ := NewPublisher(newTestBus(t))

	var verr *ValidationError
	err := pub.PublishArticleChanged(context.Background(), &ArticleChangedEvent{EventID: "x", Action: ActionUpserted})
	if !errors.As(err, &verr) {
		t.Errorf("PublishArticleChanged(invalid) error = %v, want *ValidationError", err)
	}
}

func TestPublisher_Closed(t *testing.T) {
	t.Parallel()

	pub, _ := NewPublisher(newTestBus(t))
	if err := pub.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	event := NewArticleChangedEvent(ActionUpserted, article("a-1", models.CategoryFood), nil)
	if err := pub.PublishArticleChanged(context.Background(), event); !errors.Is(err, ErrPublisherClosed) {
		t.Errorf("PublishArticleChanged() after Close error = %v, want ErrPublisherClosed", err)
	}
}
