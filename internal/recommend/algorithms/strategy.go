// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/folio/internal/models"
)

// ErrUnknownStrategy is returned by ParseStrategy for names outside the
// closed strategy set.
var ErrUnknownStrategy = errors.New("unknown similarity strategy")

// Strategy selects the similarity function used to score candidates.
type Strategy string

const (
	// StrategyCategory scores by category identity and relation.
	StrategyCategory Strategy = "category"
	// StrategyTags scores by tag overlap.
	StrategyTags Strategy = "tags"
	// StrategyContent scores by lexical overlap of title and excerpt.
	StrategyContent Strategy = "content"
	// StrategyMixed blends the other three with fixed weights.
	StrategyMixed Strategy = "mixed"
)

// Strategies returns every supported strategy in a stable order.
func Strategies() []Strategy {
	return []Strategy{StrategyCategory, StrategyTags, StrategyContent, StrategyMixed}
}

// String returns the wire name of the strategy.
func (s Strategy) String() string {
	return string(s)
}

// Valid reports whether s is one of the supported strategies.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyCategory, StrategyTags, StrategyContent, StrategyMixed:
		return true
	default:
		return false
	}
}

// ParseStrategy resolves a strategy name, ignoring case and surrounding
// whitespace.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Score computes the similarity of candidate to anchor under the given
// strategy. Unknown strategies score zero; callers validate the strategy
// before scoring.
//
//nolint:gocritic // hugeParam: articles passed by value to keep scoring pure
func Score(s Strategy, anchor, candidate models.Article) float64 {
	switch s {
	case StrategyCategory:
		return CategoryScore(anchor, candidate)
	case StrategyTags:
		return TagsScore(anchor, candidate)
	case StrategyContent:
		return ContentScore(anchor, candidate)
	case StrategyMixed:
		return MixedScore(anchor, candidate)
	default:
		return 0
	}
}
