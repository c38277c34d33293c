// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package models defines the article data shared by the corpus, the
recommendation engine and the HTTP API.

  - Article: a full corpus record, including the body used for text similarity
  - ArticleCard: the projection returned to readers, without the body
  - Category: a label from a closed set of ten, with a fixed relatedness graph

JSON field names use camelCase to match the blog front end (publishedAt,
readingTime, coverImage).

Category names match case-insensitively through ParseCategory and
Canonical; every other comparison uses the canonical spelling.
*/
package models
