// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package algorithms

import "github.com/tomtom215/folio/internal/models"

// Mixed strategy weights. They sum to 1.
const (
	MixedCategoryWeight = 0.4
	MixedTagsWeight     = 0.4
	MixedContentWeight  = 0.2
)

// MixedScore blends the category, tags and content scores.
//
//nolint:gocritic // hugeParam: articles passed by value to keep scoring pure
func MixedScore(anchor, candidate models.Article) float64 {
	score := MixedCategoryWeight*CategoryScore(anchor, candidate) +
		MixedTagsWeight*TagsScore(anchor, candidate) +
		MixedContentWeight*ContentScore(anchor, candidate)
	return clamp(score)
}
