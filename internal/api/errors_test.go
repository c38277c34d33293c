// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/folio/internal/corpus"
	"github.com/tomtom215/folio/internal/recommend"
	"github.com/tomtom215/folio/internal/recommend/algorithms"
	"github.com/tomtom215/folio/internal/validation"
)

func TestWriteEngineError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{
			name:     "validation",
			err:      &recommend.ValidationError{Violations: []validation.Violation{{Field: "limit", Rule: "min"}}},
			wantCode: http.StatusBadRequest,
			wantErr:  ErrCodeValidationFailed,
		},
		{
			name:     "incomplete article",
			err:      &corpus.IncompleteArticleError{ArticleID: "a", Violations: []validation.Violation{{Field: "title"}}},
			wantCode: http.StatusBadRequest,
			wantErr:  ErrCodeValidationFailed,
		},
		{
			name:     "not found",
			err:      fmt.Errorf("lookup: %w", &recommend.NotFoundError{ArticleID: "a"}),
			wantCode: http.StatusNotFound,
			wantErr:  ErrCodeNotFound,
		},
		{
			name:     "duplicate slug",
			err:      &corpus.DuplicateSlugError{Slug: "s", ExistingID: "b"},
			wantCode: http.StatusConflict,
			wantErr:  ErrCodeConflict,
		},
		{
			name:     "fetch",
			err:      &recommend.FetchError{Op: "list_all", Err: errors.New("io")},
			wantCode: http.StatusServiceUnavailable,
			wantErr:  ErrCodeServiceUnavailable,
		},
		{
			name:     "deadline",
			err:      context.DeadlineExceeded,
			wantCode: http.StatusServiceUnavailable,
			wantErr:  ErrCodeServiceUnavailable,
		},
		{
			name:     "unknown",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantErr:  ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			writeEngineError(NewResponseWriter(w, r), tt.err)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
			var env testEnvelope
			if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if env.Success || env.Error == nil || env.Error.Code != tt.wantErr {
				t.Errorf("error = %+v, want %s", env.Error, tt.wantErr)
			}
		})
	}
}

func TestRelatedOptions_StrategyCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  algorithms.Strategy
	}{
		{"strategy=Mixed", algorithms.StrategyMixed},
		{"strategy=%20TAGS%20", algorithms.StrategyTags},
		{"strategy=random", algorithms.Strategy("random")},
	}

	for _, tt := range tests {
		opts, err := relatedOptions(httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil).URL.Query())
		if err != nil {
			t.Errorf("relatedOptions(%q) error = %v", tt.query, err)
			continue
		}
		if got := recommend.NewRequest("a-1", opts...).Strategy; got != tt.want {
			t.Errorf("relatedOptions(%q) strategy = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestRelatedOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query   string
		wantN   int
		wantErr bool
	}{
		{"", 0, false},
		{"limit=5", 1, false},
		{"strategy=tags&limit=2&exclude_anchor=false&min_score=0.3", 4, false},
		{"limit=2.5", 0, true},
		{"min_score=high", 0, true},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
		opts, err := relatedOptions(r.URL.Query())
		if (err != nil) != tt.wantErr {
			t.Errorf("relatedOptions(%q) error = %v, wantErr %v", tt.query, err, tt.wantErr)
			continue
		}
		if len(opts) != tt.wantN {
			t.Errorf("relatedOptions(%q) returned %d options, want %d", tt.query, len(opts), tt.wantN)
		}
	}
}
