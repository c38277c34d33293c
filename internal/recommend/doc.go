// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

// Package recommend implements the related-article engine.
//
// # Architecture
//
// Given an anchor article the engine scans the corpus, scores every
// candidate with one of the strategies in the algorithms package and
// returns the best matches as display cards:
//
//   - Category: fixed category relation graph
//   - Tags: Jaccard similarity of lowercased tag sets
//   - Content: Jaccard similarity of title and excerpt tokens
//   - Mixed: weighted blend of the three (default)
//
// A personalization layer ranks candidates against a reader profile built
// from the articles the reader has already read. It falls back to the mixed
// strategy whenever the profile cannot be built.
//
// # Caching
//
// Results are cached in a bounded LRU keyed by anchor, strategy, limit and
// anchor exclusion. The minimum score is not part of the key: the unfiltered
// top list is stored and the threshold is applied on every read. Cached
// values are copied on the way in and on the way out.
//
// Entries live until ClearCache, ClearCategory or capacity eviction.
// Concurrent misses for the same key share one corpus scan.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), corpus, logger)
//	if err != nil {
//	    return err
//	}
//
//	results, err := engine.GetRelated(ctx, "a-1",
//	    recommend.WithStrategy(algorithms.StrategyTags),
//	    recommend.WithLimit(5),
//	)
//
// # Errors
//
// Failures are classified with errors.Is against ErrValidation, ErrNotFound
// and ErrFetch. The concrete types carry the details.
//
// # Thread Safety
//
// The engine is safe for concurrent use. Concurrent misses for the same
// cache key share one corpus scan. That scan ignores the cancellation of
// the caller that started it, so a disconnecting client never fails the
// others waiting on the same key.
package recommend
