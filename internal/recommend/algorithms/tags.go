// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package algorithms

import "github.com/tomtom215/folio/internal/models"

// TagsScore is the Jaccard index of the lowercased tag sets of both
// articles, or BaselineScore when neither has tags.
//
//nolint:gocritic // hugeParam: articles passed by value to keep scoring pure
func TagsScore(anchor, candidate models.Article) float64 {
	a := lowerSet(anchor.Tags)
	b := lowerSet(candidate.Tags)
	if len(a) == 0 && len(b) == 0 {
		return BaselineScore
	}
	return clamp(jaccardSimilarity(a, b))
}
