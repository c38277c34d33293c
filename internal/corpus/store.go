// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package corpus

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/folio/internal/config"
	"github.com/tomtom215/folio/internal/models"
	"github.com/tomtom215/folio/internal/recommend"
	"github.com/tomtom215/folio/internal/validation"
)

// Store is a writable article corpus.
type Store interface {
	recommend.Corpus

	// Put inserts or replaces an article. It returns the previously stored
	// version when one existed so callers can invalidate derived state.
	Put(ctx context.Context, article *models.Article) (previous *models.Article, err error)

	// Delete removes an article and returns it, or nil when it was absent.
	Delete(ctx context.Context, id string) (*models.Article, error)

	// Count returns the number of stored articles.
	Count(ctx context.Context) (int, error)

	Close() error
}

// Store names used as metric labels.
const (
	storeMemory = "memory"
	storeBadger = "badger"
)

// Operation names used as metric labels.
const (
	opGet    = "get"
	opList   = "list"
	opPut    = "put"
	opDelete = "delete"
	opCount  = "count"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrIncompleteArticle = errors.New("incomplete article")
	ErrDuplicateSlug     = errors.New("duplicate slug")
)

// IncompleteArticleError is returned when an article fails completeness
// validation.
type IncompleteArticleError struct {
	ArticleID  string
	Violations []validation.Violation
}

func (e *IncompleteArticleError) Error() string {
	return fmt.Sprintf("article %q is incomplete: %s", e.ArticleID, validation.JoinMessages(e.Violations))
}

// Is matches ErrIncompleteArticle.
func (e *IncompleteArticleError) Is(target error) bool {
	return target == ErrIncompleteArticle
}

// DuplicateSlugError is returned when a slug is already owned by another article.
type DuplicateSlugError struct {
	Slug       string
	ExistingID string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("slug %q already belongs to article %q", e.Slug, e.ExistingID)
}

// Is matches ErrDuplicateSlug.
func (e *DuplicateSlugError) Is(target error) bool {
	return target == ErrDuplicateSlug
}

// checkComplete validates an article before it is written.
func checkComplete(article *models.Article) error {
	if violations := validation.ValidateArticle(article); len(violations) > 0 {
		id := ""
		if article != nil {
			id = article.ID
		}
		return &IncompleteArticleError{ArticleID: id, Violations: violations}
	}
	return nil
}

// Open creates the store selected by cfg.
func Open(cfg *config.CorpusConfig) (Store, error) {
	switch cfg.Backend {
	case config.CorpusBackendMemory:
		return NewMemory(), nil
	case config.CorpusBackendBadger:
		opts := badger.DefaultOptions(cfg.Path)
		opts.Logger = nil // Suppress BadgerDB logs

		db, err := badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("open badger db for articles: %w", err)
		}
		return adoptBadger(db, NewBadgerStore)
	default:
		return nil, fmt.Errorf("unknown corpus backend %q", cfg.Backend)
	}
}

// adoptBadger builds a store over db and closes db when that fails, so the
// directory lock is released.
func adoptBadger(db *badger.DB, build func(*badger.DB) (*BadgerStore, error)) (Store, error) {
	store, err := build(db)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, errors.Join(err, fmt.Errorf("close badger db: %w", closeErr))
		}
		return nil, err
	}
	return store, nil
}
