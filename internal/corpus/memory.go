// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package corpus

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/folio/internal/metrics"
	"github.com/tomtom215/folio/internal/models"
)

// Memory is an in-memory article store. ListAll returns articles in the
// order they were first inserted; replacing an article keeps its position.
type Memory struct {
	mu     sync.RWMutex
	order  []string
	byID   map[string]models.Article
	bySlug map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory(articles ...models.Article) *Memory {
	m := &Memory{
		byID:   make(map[string]models.Article),
		bySlug: make(map[string]string),
	}
	for i := range articles {
		m.insert(cloneArticle(&articles[i]))
	}
	return m
}

// FindByID returns a copy of the article with the given id.
func (m *Memory) FindByID(ctx context.Context, id string) (models.Article, bool, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		metrics.RecordCorpusOperation(storeMemory, opGet, time.Since(start), err)
		return models.Article{}, false, err
	}

	m.mu.RLock()
	article, ok := m.byID[id]
	m.mu.RUnlock()

	metrics.RecordCorpusOperation(storeMemory, opGet, time.Since(start), nil)
	if !ok {
		return models.Article{}, false, nil
	}
	return cloneArticle(&article), true, nil
}

// ListAll returns copies of every article in insertion order.
func (m *Memory) ListAll(ctx context.Context) ([]models.Article, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		metrics.RecordCorpusOperation(storeMemory, opList, time.Since(start), err)
		return nil, err
	}

	m.mu.RLock()
	out := make([]models.Article, 0, len(m.order))
	for _, id := range m.order {
		article := m.byID[id]
		out = append(out, cloneArticle(&article))
	}
	m.mu.RUnlock()

	metrics.RecordCorpusOperation(storeMemory, opList, time.Since(start), nil)
	return out, nil
}

// Put validates and stores an article.
func (m *Memory) Put(ctx context.Context, article *models.Article) (*models.Article, error) {
	start := time.Now()
	previous, err := m.put(ctx, article)
	metrics.RecordCorpusOperation(storeMemory, opPut, time.Since(start), err)
	return previous, err
}

func (m *Memory) put(ctx context.Context, article *models.Article) (*models.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkComplete(article); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if owner, ok := m.bySlug[article.Slug]; ok && owner != article.ID {
		return nil, &DuplicateSlugError{Slug: article.Slug, ExistingID: owner}
	}

	var previous *models.Article
	if old, ok := m.byID[article.ID]; ok {
		previous = &old
		if old.Slug != article.Slug {
			delete(m.bySlug, old.Slug)
		}
	}

	m.insert(cloneArticle(article))
	return previous, nil
}

// insert stores an article without validation. Caller holds the write lock
// or owns m exclusively.
func (m *Memory) insert(article models.Article) {
	if _, exists := m.byID[article.ID]; !exists {
		m.order = append(m.order, article.ID)
	}
	m.byID[article.ID] = article
	m.bySlug[article.Slug] = article.ID
}

// Delete removes an article.
func (m *Memory) Delete(ctx context.Context, id string) (*models.Article, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		metrics.RecordCorpusOperation(storeMemory, opDelete, time.Since(start), err)
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	old, ok := m.byID[id]
	if !ok {
		metrics.RecordCorpusOperation(storeMemory, opDelete, time.Since(start), nil)
		return nil, nil
	}

	delete(m.byID, id)
	delete(m.bySlug, old.Slug)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	metrics.RecordCorpusOperation(storeMemory, opDelete, time.Since(start), nil)
	return &old, nil
}

// Count returns the number of stored articles.
func (m *Memory) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID), nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}

func cloneArticle(a *models.Article) models.Article {
	out := *a
	if a.Tags != nil {
		out.Tags = make([]string, len(a.Tags))
		copy(out.Tags, a.Tags)
	}
	return out
}
