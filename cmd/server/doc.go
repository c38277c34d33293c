// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Command server runs the Folio related-article service.

Startup order:

 1. Configuration: koanf v2 (defaults, optional YAML file, environment)
 2. Logging: zerolog, JSON or console
 3. Corpus: BadgerDB or in-memory store, optionally seeded from CORPUS_SEED_FILE
 4. Engine: recommendation engine over the corpus, behind a circuit breaker
 5. Events: Watermill in-process bus with the cache invalidator, or direct
    invalidation when EVENTS_ENABLED=false
 6. Supervisor tree: suture v4 running the invalidator, cache stats sampling
    and the HTTP server

SIGINT or SIGTERM cancels the root context; the HTTP server drains for
SERVER_SHUTDOWN_TIMEOUT and the corpus is closed last.

Example:

	CORPUS_BACKEND=memory CORPUS_SEED_FILE=./articles.json ./folio
	curl localhost:8080/api/v1/articles/intro-to-go/related?limit=3
*/
package main
