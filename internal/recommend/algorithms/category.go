// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package algorithms

import "github.com/tomtom215/folio/internal/models"

// Category strategy scores.
const (
	SameCategoryScore    = 1.0
	RelatedCategoryScore = 0.6
)

// CategoryScore scores candidate against anchor by category.
// Unknown categories on either side are treated as unrelated.
//
//nolint:gocritic // hugeParam: articles passed by value to keep scoring pure
func CategoryScore(anchor, candidate models.Article) float64 {
	a, okA := anchor.Category.Canonical()
	b, okB := candidate.Category.Canonical()
	if !okA || !okB {
		return BaselineScore
	}

	switch {
	case a == b:
		return SameCategoryScore
	case models.IsRelated(a, b):
		return RelatedCategoryScore
	default:
		return BaselineScore
	}
}
