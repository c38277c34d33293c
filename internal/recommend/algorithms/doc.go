// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

// Package algorithms implements the similarity strategies used to rank
// related articles.
//
// Every strategy is a pure function of two articles returning a score in
// [0, 1]. Strategies never fail: unknown categories and empty inputs degrade
// to a fixed baseline score instead of an error.
//
// # Strategies
//
//   - Category: 1.0 for the same category, 0.6 for a related category
//     (see models.RelatedCategories), 0.1 otherwise.
//   - Tags: Jaccard index over lowercased tag sets, 0.1 when both are empty.
//   - Content: Jaccard index over title and excerpt tokens longer than three
//     runes, 0.1 when both sides have no tokens.
//   - Mixed: 0.4*category + 0.4*tags + 0.2*content.
//
// # Dispatch
//
// Strategy is a closed enum. Score switches over it exhaustively:
//
//	s, err := algorithms.ParseStrategy("tags")
//	if err != nil {
//	    return err // errors.Is(err, algorithms.ErrUnknownStrategy)
//	}
//	score := algorithms.Score(s, anchor, candidate)
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use.
package algorithms
