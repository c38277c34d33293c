// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package main

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/folio/internal/config"
	"github.com/tomtom215/folio/internal/eventprocessor"
	"github.com/tomtom215/folio/internal/models"
	"github.com/tomtom215/folio/internal/recommend"
)

type fakeCache struct {
	mu      sync.Mutex
	cleared []models.Category
}

func (f *fakeCache) ClearCategory(c models.Category) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared = append(f.cleared, c)
	return 1
}

func (f *fakeCache) ClearCache(recommend.CacheKind) int { return 0 }

func (f *fakeCache) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cleared)
}

const seedJSON = `[
  {"id":"a1","slug":"a1","title":"A1","content":"x","contentType":"markdown","category":"Programming",
   "author":{"name":"Ada"},"publishedAt":"2026-01-01T00:00:00Z","readingTime":5},
  {"id":"a2","slug":"a2","title":"","content":"x","contentType":"markdown","category":"Programming",
   "author":{"name":"Ada"},"publishedAt":"2026-01-01T00:00:00Z","readingTime":5}
]`

func TestInitCorpus_SeedsMemoryStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(seedJSON), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	store, err := initCorpus(context.Background(), &config.CorpusConfig{
		Backend:  config.CorpusBackendMemory,
		SeedFile: path,
	})
	if err != nil {
		t.Fatalf("initCorpus() error = %v", err)
	}
	defer store.Close()

	// a2 has no title and is skipped.
	count, _ := store.Count(context.Background())
	if count != 1 {
		t.Errorf("Count() = %d, want 1", count)
	}
}

func TestInitCorpus_Errors(t *testing.T) {
	if _, err := initCorpus(context.Background(), &config.CorpusConfig{Backend: "sqlite"}); err == nil {
		t.Error("unknown backend: want error")
	}

	_, err := initCorpus(context.Background(), &config.CorpusConfig{
		Backend:  config.CorpusBackendMemory,
		SeedFile: filepath.Join(t.TempDir(), "missing.json"),
	})
	if err == nil {
		t.Error("missing seed file: want error")
	}
}

func TestInitEvents_Disabled(t *testing.T) {
	cache := &fakeCache{}
	events, err := initEvents(&config.EventsConfig{
		Enabled:           false,
		InvalidationScope: config.InvalidationScopeCategory,
	}, cache)
	if err != nil {
		t.Fatalf("initEvents() error = %v", err)
	}
	defer events.Close()

	if events.invalidator != nil {
		t.Error("invalidator created with events disabled")
	}

	a := models.Article{ID: "a1", Category: models.CategoryTravel}
	if err := events.publisher.PublishArticleChanged(context.Background(),
		eventprocessor.NewArticleChangedEvent(eventprocessor.ActionUpserted, &a, nil)); err != nil {
		t.Fatalf("PublishArticleChanged() error = %v", err)
	}
	if cache.count() == 0 {
		t.Error("direct publisher did not clear cache synchronously")
	}
}

func TestInitEvents_EnabledDeliversToInvalidator(t *testing.T) {
	cache := &fakeCache{}
	events, err := initEvents(&config.EventsConfig{
		Enabled:           true,
		BufferSize:        16,
		InvalidationScope: config.InvalidationScopeCategory,
	}, cache)
	if err != nil {
		t.Fatalf("initEvents() error = %v", err)
	}
	defer events.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = events.invalidator.Serve(ctx) }()

	select {
	case <-events.invalidator.Running():
	case <-time.After(5 * time.Second):
		t.Fatal("invalidator did not start")
	}

	a := models.Article{ID: "a1", Category: models.CategoryTravel}
	if err := events.publisher.PublishArticleChanged(context.Background(),
		eventprocessor.NewArticleChangedEvent(eventprocessor.ActionUpserted, &a, nil)); err != nil {
		t.Fatalf("PublishArticleChanged() error = %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for cache.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if cache.count() == 0 {
		t.Error("invalidator did not clear any category")
	}
}

func TestInitEvents_RejectsUnknownScope(t *testing.T) {
	if _, err := initEvents(&config.EventsConfig{InvalidationScope: "article"}, &fakeCache{}); err == nil {
		t.Error("want error for unknown scope")
	}
}
