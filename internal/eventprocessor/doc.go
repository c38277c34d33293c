// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package eventprocessor carries corpus-change events from article ingestion to
the recommendation cache.

Components:

  - ArticleChangedEvent: the versioned event schema, serialized with goccy/go-json
  - Bus: an in-process Watermill gochannel pub/sub
  - Publisher: publishes events with UUID message ids and correlation metadata
  - Invalidator: a Watermill router consumer that clears cached results
    affected by a change

Data flow:

	PUT /api/v1/articles/{id}
	    -> corpus.Store.Put
	    -> Publisher.PublishArticleChanged   (topic "articles.changed")
	    -> Invalidator handler
	    -> recommend.Engine.ClearCategory / ClearCache

With the "category" scope the invalidator clears results depending on the
changed article's current and previous categories and their related
categories. With the "all" scope every cached result is dropped.

Delivery is asynchronous. A request served between a store write and the
invalidation may still see the previous result.
*/
package eventprocessor
