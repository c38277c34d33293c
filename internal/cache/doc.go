// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package cache provides the bounded result cache used by the recommendation
engine.

# Overview

ResultCache is a generic, thread-safe LRU built on hashicorp/golang-lru/v2:
  - Entries are partitioned by Kind (primary or personalized results)
  - Entries are tagged with the article categories they depend on
  - Reads return a deep copy produced by a caller-supplied clone function
  - There is no TTL and no background cleanup goroutine

Entries leave the cache only through Clear (by kind, or everything with
KindAll), ClearCategory, or LRU capacity eviction.

# Usage Example

	c, err := cache.New[[]Result](1000, cloneResults)
	if err != nil {
	    return err
	}

	key := cache.Key(cache.KindPrimary, params)
	if results, ok := c.Get(key); ok {
	    return results
	}

	results := compute()
	c.Set(key, cache.KindPrimary, results, models.CategoryTechnologies)

	// Later, when a Technologies article changes:
	c.ClearCategory(models.CategoryTechnologies)

# Keys

GenerateKey JSON-encodes the key parameters with goccy/go-json and hashes
them with SHA-256, so structurally equal parameters always produce the same
compact key. Key prefixes the hash with the kind name.
*/
package cache
