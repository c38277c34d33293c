// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package algorithms

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tomtom215/folio/internal/models"
)

// MinTokenRunes is the exclusive lower bound on token length. Shorter tokens
// are dropped to suppress stop-word noise.
const MinTokenRunes = 3

// ContentScore is the Jaccard index of the title and excerpt token sets of
// both articles, or BaselineScore when neither yields a token.
//
//nolint:gocritic // hugeParam: articles passed by value to keep scoring pure
func ContentScore(anchor, candidate models.Article) float64 {
	a := contentTokens(anchor)
	b := contentTokens(candidate)
	if len(a) == 0 && len(b) == 0 {
		return BaselineScore
	}
	return clamp(jaccardSimilarity(a, b))
}

// contentTokens builds the lexical bag of words for an article.
//
//nolint:gocritic // hugeParam: see ContentScore
func contentTokens(a models.Article) map[string]struct{} {
	return Tokenize(a.Title + " " + a.Excerpt)
}

// Tokenize lowercases text, splits it on anything that is not a letter or
// digit, and keeps the distinct tokens longer than MinTokenRunes runes.
func Tokenize(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) > MinTokenRunes {
			tokens[f] = struct{}{}
		}
	}
	return tokens
}
