// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package corpus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/folio/internal/config"
	"github.com/tomtom215/folio/internal/models"
)

// flakyCorpus fails while failing is set.
type flakyCorpus struct {
	inner   *Memory
	failing atomic.Bool
	calls   atomic.Int32
	err     error
}

func (f *flakyCorpus) FindByID(ctx context.Context, id string) (models.Article, bool, error) {
	f.calls.Add(1)
	if f.failing.Load() {
		return models.Article{}, false, f.err
	}
	return f.inner.FindByID(ctx, id)
}

func (f *flakyCorpus) ListAll(ctx context.Context) ([]models.Article, error) {
	f.calls.Add(1)
	if f.failing.Load() {
		return nil, f.err
	}
	return f.inner.ListAll(ctx)
}

func testBreakerConfig() *config.BreakerConfig {
	return &config.BreakerConfig{
		Enabled:          true,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          50 * time.Millisecond,
		FailureThreshold: 3,
	}
}

func TestWithBreaker(t *testing.T) {
	t.Parallel()

	inner := NewMemory()

	if got := WithBreaker(inner, &config.BreakerConfig{Enabled: false}); got != inner {
		t.Errorf("WithBreaker(disabled) = %T, want inner corpus", got)
	}
	if got := WithBreaker(inner, nil); got != inner {
		t.Errorf("WithBreaker(nil) = %T, want inner corpus", got)
	}
	if _, ok := WithBreaker(inner, testBreakerConfig()).(*BreakerCorpus); !ok {
		t.Error("WithBreaker(enabled) did not wrap the corpus")
	}
}

func TestBreakerCorpus_PassesThrough(t *testing.T) {
	t.Parallel()

	inner := NewMemory(testArticle("a-1", "s-1", models.CategoryFood))
	b := NewBreakerCorpus(inner, testBreakerConfig())
	ctx := context.Background()

	article, found, err := b.FindByID(ctx, "a-1")
	if err != nil || !found || article.ID != "a-1" {
		t.Errorf("FindByID() = %+v, %v, %v", article, found, err)
	}

	_, found, err = b.FindByID(ctx, "missing")
	if err != nil || found {
		t.Errorf("FindByID(missing) = %v, %v; want not found", found, err)
	}

	all, err := b.ListAll(ctx)
	if err != nil || len(all) != 1 {
		t.Errorf("ListAll() = %v, %v", all, err)
	}

	if b.State() != "closed" {
		t.Errorf("State() = %s, want closed", b.State())
	}
}

func TestBreakerCorpus_OpensAndRecovers(t *testing.T) {
	t.Parallel()

	backendErr := errors.New("disk on fire")
	flaky := &flakyCorpus{inner: NewMemory(testArticle("a-1", "s-1", models.CategoryFood)), err: backendErr}
	flaky.failing.Store(true)

	b := NewBreakerCorpus(flaky, testBreakerConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := b.ListAll(ctx); !errors.Is(err, backendErr) {
			t.Fatalf("call %d error = %v, want backend error", i, err)
		}
	}
	if b.State() != "open" {
		t.Fatalf("State() = %s after 3 failures, want open", b.State())
	}

	callsBefore := flaky.calls.Load()
	if _, _, err := b.FindByID(ctx, "a-1"); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("FindByID() error = %v, want ErrOpenState", err)
	}
	if flaky.calls.Load() != callsBefore {
		t.Error("open breaker forwarded a call to the backend")
	}

	flaky.failing.Store(false)
	time.Sleep(80 * time.Millisecond)

	if _, found, err := b.FindByID(ctx, "a-1"); err != nil || !found {
		t.Fatalf("probe FindByID() = %v, %v", found, err)
	}
	if b.State() != "closed" {
		t.Errorf("State() = %s after successful probe, want closed", b.State())
	}
}

func TestBreakerCorpus_CancellationDoesNotTrip(t *testing.T) {
	t.Parallel()

	b := NewBreakerCorpus(NewMemory(), testBreakerConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 5; i++ {
		if _, err := b.ListAll(ctx); !errors.Is(err, context.Canceled) {
			t.Fatalf("ListAll() error = %v, want context.Canceled", err)
		}
	}
	if b.State() != "closed" {
		t.Errorf("State() = %s after canceled calls, want closed", b.State())
	}
}

func TestStateToString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state gobreaker.State
		str   string
		num   float64
	}{
		{gobreaker.StateClosed, "closed", 0},
		{gobreaker.StateHalfOpen, "half-open", 1},
		{gobreaker.StateOpen, "open", 2},
	}
	for _, tt := range tests {
		if got := stateToString(tt.state); got != tt.str {
			t.Errorf("stateToString(%v) = %s, want %s", tt.state, got, tt.str)
		}
		if got := stateToFloat(tt.state); got != tt.num {
			t.Errorf("stateToFloat(%v) = %v, want %v", tt.state, got, tt.num)
		}
	}
}
