// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package corpus

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/folio/internal/metrics"
	"github.com/tomtom215/folio/internal/models"
)

// Key prefixes for BadgerDB storage
const (
	articleKeyPrefix = "article:"
	slugKeyPrefix    = "slug:"
)

// BadgerStore is a durable article store backed by BadgerDB.
type BadgerStore struct {
	db    *badger.DB
	count atomic.Int64
}

// NewBadgerStore wraps an open BadgerDB. The store takes ownership of db
// and closes it on Close.
func NewBadgerStore(db *badger.DB) (*BadgerStore, error) {
	s := &BadgerStore{db: db}

	n, err := s.countKeys()
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	s.count.Store(int64(n))
	metrics.CorpusArticles.Set(float64(n))

	return s, nil
}

func articleKey(id string) []byte { return []byte(articleKeyPrefix + id) }
func slugKey(slug string) []byte  { return []byte(slugKeyPrefix + slug) }

// FindByID retrieves an article by id.
func (s *BadgerStore) FindByID(ctx context.Context, id string) (article models.Article, found bool, err error) {
	start := time.Now()
	defer func() { metrics.RecordCorpusOperation(storeBadger, opGet, time.Since(start), err) }()

	if err = ctx.Err(); err != nil {
		return models.Article{}, false, err
	}

	err = s.db.View(func(txn *badger.Txn) error {
		var getErr error
		found, getErr = getArticle(txn, id, &article)
		return getErr
	})
	if err != nil {
		return models.Article{}, false, err
	}
	return article, found, nil
}

// ListAll returns every article ordered by id.
func (s *BadgerStore) ListAll(ctx context.Context) (articles []models.Article, err error) {
	start := time.Now()
	defer func() { metrics.RecordCorpusOperation(storeBadger, opList, time.Since(start), err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	articles = make([]models.Article, 0, s.count.Load())
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(articleKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var article models.Article
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &article)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			articles = append(articles, article)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// Put validates and stores an article, maintaining the slug index.
func (s *BadgerStore) Put(ctx context.Context, article *models.Article) (previous *models.Article, err error) {
	start := time.Now()
	defer func() { metrics.RecordCorpusOperation(storeBadger, opPut, time.Since(start), err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if err = checkComplete(article); err != nil {
		return nil, err
	}

	data, err := json.Marshal(article)
	if err != nil {
		return nil, fmt.Errorf("marshal article: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		owner, ok, err := getSlugOwner(txn, article.Slug)
		if err != nil {
			return err
		}
		if ok && owner != article.ID {
			return &DuplicateSlugError{Slug: article.Slug, ExistingID: owner}
		}

		var old models.Article
		found, err := getArticle(txn, article.ID, &old)
		if err != nil {
			return err
		}
		if found {
			previous = &old
			if old.Slug != article.Slug {
				if err := txn.Delete(slugKey(old.Slug)); err != nil {
					return fmt.Errorf("delete old slug: %w", err)
				}
			}
		}

		if err := txn.Set(articleKey(article.ID), data); err != nil {
			return fmt.Errorf("set article: %w", err)
		}
		if err := txn.Set(slugKey(article.Slug), []byte(article.ID)); err != nil {
			return fmt.Errorf("set slug index: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if previous == nil {
		metrics.CorpusArticles.Set(float64(s.count.Add(1)))
	}
	return previous, nil
}

// Delete removes an article and its slug index entry.
func (s *BadgerStore) Delete(ctx context.Context, id string) (removed *models.Article, err error) {
	start := time.Now()
	defer func() { metrics.RecordCorpusOperation(storeBadger, opDelete, time.Since(start), err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		var old models.Article
		found, err := getArticle(txn, id, &old)
		if err != nil || !found {
			return err
		}

		if err := txn.Delete(articleKey(id)); err != nil {
			return fmt.Errorf("delete article: %w", err)
		}
		if err := txn.Delete(slugKey(old.Slug)); err != nil {
			return fmt.Errorf("delete slug index: %w", err)
		}
		removed = &old
		return nil
	})
	if err != nil {
		return nil, err
	}

	if removed != nil {
		metrics.CorpusArticles.Set(float64(s.count.Add(-1)))
	}
	return removed, nil
}

// Count returns the number of stored articles.
func (s *BadgerStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int(s.count.Load()), nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func (s *BadgerStore) countKeys() (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(articleKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

func getArticle(txn *badger.Txn, id string, dst *models.Article) (bool, error) {
	item, err := txn.Get(articleKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get article: %w", err)
	}

	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, dst)
	}); err != nil {
		return false, fmt.Errorf("decode article %q: %w", id, err)
	}
	return true, nil
}

func getSlugOwner(txn *badger.Txn, slug string) (string, bool, error) {
	item, err := txn.Get(slugKey(slug))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get slug index: %w", err)
	}

	owner, err := item.ValueCopy(nil)
	if err != nil {
		return "", false, fmt.Errorf("read slug index: %w", err)
	}
	return string(owner), true, nil
}
