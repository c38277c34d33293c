// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package services adapts Folio components to suture's Serve(ctx) error model.

  - HTTPServerService binds a listener and serves HTTP until ctx is
    canceled, then shuts down gracefully.
  - CacheStatsService periodically samples engine cache statistics so the
    cache gauges stay current between requests.

The cache invalidator in package eventprocessor already implements
suture.Service and is added to the tree directly.
*/
package services
