// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package validation

import "github.com/tomtom215/folio/internal/models"

// ValidateArticle checks an article for completeness and returns every
// violated rule. A nil or empty result means the article is complete.
//
// Complete articles have a non-empty id, slug, title, content, category,
// author name and publication time, a content type of markdown or html,
// and a positive reading time.
func ValidateArticle(a *models.Article) []Violation {
	if a == nil {
		return []Violation{{Field: "article", Rule: "required", Message: "article is required"}}
	}

	if err := ValidateStruct(a); err != nil {
		return err.Violations()
	}
	return nil
}
