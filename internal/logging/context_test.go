// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

var errTest = errors.New("test error")

func TestGenerateCorrelationID(t *testing.T) {
	t.Parallel()

	id1 := GenerateCorrelationID()
	id2 := GenerateCorrelationID()

	if len(id1) != 8 {
		t.Errorf("expected 8-character correlation ID, got %d", len(id1))
	}
	if id1 == id2 {
		t.Error("expected unique correlation IDs")
	}
}

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	id1 := GenerateRequestID()
	id2 := GenerateRequestID()

	if len(id1) != 36 { // UUID format
		t.Errorf("expected 36-character request ID, got %d", len(id1))
	}
	if id1 == id2 {
		t.Error("expected unique request IDs")
	}
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if CorrelationIDFromContext(ctx) != "" || RequestIDFromContext(ctx) != "" {
		t.Error("expected empty IDs on a bare context")
	}

	ctx = ContextWithCorrelationID(ctx, "abc12345")
	ctx = ContextWithRequestID(ctx, "req-1")

	if got := CorrelationIDFromContext(ctx); got != "abc12345" {
		t.Errorf("CorrelationIDFromContext() = %q, want abc12345", got)
	}
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want req-1", got)
	}

	generated := ContextWithNewCorrelationID(context.Background())
	if len(CorrelationIDFromContext(generated)) != 8 {
		t.Error("ContextWithNewCorrelationID() did not store a generated ID")
	}
}

func TestCtx(t *testing.T) {
	original := Logger()
	defer SetLogger(original)

	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))

	t.Run("adds context IDs", func(t *testing.T) {
		buf.Reset()
		ctx := ContextWithRequestID(ContextWithCorrelationID(context.Background(), "corr0001"), "req-42")

		Ctx(ctx).Info().Msg("with ids")

		output := buf.String()
		if !strings.Contains(output, `"correlation_id":"corr0001"`) {
			t.Errorf("missing correlation_id: %s", output)
		}
		if !strings.Contains(output, `"request_id":"req-42"`) {
			t.Errorf("missing request_id: %s", output)
		}
	})

	t.Run("omits absent IDs", func(t *testing.T) {
		buf.Reset()
		Ctx(context.Background()).Info().Msg("bare")

		output := buf.String()
		if strings.Contains(output, "correlation_id") || strings.Contains(output, "request_id") {
			t.Errorf("unexpected ID fields: %s", output)
		}
	})

	t.Run("CtxWith accepts extra fields", func(t *testing.T) {
		buf.Reset()
		ctx := ContextWithRequestID(context.Background(), "req-7")

		logger := CtxWith(ctx).Str("article_id", "a-1").Logger()
		logger.Info().Msg("extra")

		output := buf.String()
		if !strings.Contains(output, `"request_id":"req-7"`) || !strings.Contains(output, `"article_id":"a-1"`) {
			t.Errorf("missing fields: %s", output)
		}
	})
}
