// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package corpus

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/folio/internal/logging"
	"github.com/tomtom215/folio/internal/models"
)

// LoadSeedFile reads a JSON array of articles.
func LoadSeedFile(path string) ([]models.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var articles []models.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return articles, nil
}

// Seed writes articles into store and returns how many were stored.
// Incomplete articles and duplicate slugs are logged and skipped; any other
// store error aborts seeding.
func Seed(ctx context.Context, store Store, articles []models.Article) (int, error) {
	stored := 0
	for i := range articles {
		article := &articles[i]
		if _, err := store.Put(ctx, article); err != nil {
			if isRejection(err) {
				logging.Warn().Err(err).Str("article_id", article.ID).Int("index", i).Msg("Skipping seed article")
				continue
			}
			return stored, fmt.Errorf("seed article %d (%q): %w", i, article.ID, err)
		}
		stored++
	}

	logging.Info().Int("stored", stored).Int("total", len(articles)).Msg("Corpus seeded")
	return stored, nil
}

// isRejection reports whether err means the article itself was refused.
func isRejection(err error) bool {
	return errors.Is(err, ErrIncompleteArticle) || errors.Is(err, ErrDuplicateSlug)
}
