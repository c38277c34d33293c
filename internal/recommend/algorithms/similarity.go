// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package algorithms

import "strings"

// BaselineScore is returned when there is no data to compare, and for
// unrelated categories. It keeps "no data" distinguishable from "no overlap".
const BaselineScore = 0.1

// jaccardSimilarity computes |A∩B| / |A∪B| over two sets.
// Two empty sets have similarity 0; callers apply their own baseline.
func jaccardSimilarity(setA, setB map[string]struct{}) float64 {
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	// Iterate the smaller set
	if len(setA) > len(setB) {
		setA, setB = setB, setA
	}

	intersection := 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

// lowerSet builds a lowercased set from the given values, skipping blanks.
func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}

// clamp bounds a score to [0, 1].
func clamp(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}
