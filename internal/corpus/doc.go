// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package corpus provides article storage backends that satisfy the
recommendation engine's read interface.

Backends:

  - Memory: ordered in-memory store. Iteration follows insertion order.
  - BadgerStore: durable BadgerDB store. Articles live under "article:<id>"
    and slugs are indexed under "slug:<slug>". Iteration follows id order.

Both backends reject incomplete articles with *IncompleteArticleError and
duplicate slugs with *DuplicateSlugError.

BreakerCorpus wraps any reader with a sony/gobreaker circuit breaker so a
failing backend is shed quickly instead of stalling every request:

	store, err := corpus.Open(cfg.Corpus)
	reader := corpus.WithBreaker(store, &cfg.Breaker)
	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), reader, logger)

LoadSeedFile and Seed bootstrap a store from a JSON array of articles.
*/
package corpus
