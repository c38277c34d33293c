// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package recommend

import (
	"errors"
	"math"
	"strings"

	"github.com/tomtom215/folio/internal/models"
)

// ErrEmptyProfile is returned by BuildProfile when no history article
// could be resolved.
var ErrEmptyProfile = errors.New("reading history resolved to no articles")

// Personalized score weights. They sum to 1.
const (
	ProfileCategoryWeight    = 0.4
	ProfileTagWeight         = 0.3
	ProfileReadingTimeWeight = 0.2
	ProfileComplexityWeight  = 0.1
)

// Profile summarizes a reader's preferences from the articles they read.
type Profile struct {
	// CategoryFrequency counts history articles per category.
	CategoryFrequency map[models.Category]int `json:"category_frequency"`

	// TagFrequency counts history articles per lowercased tag.
	TagFrequency map[string]int `json:"tag_frequency"`

	// MeanReadingTime is the average reading time in minutes.
	MeanReadingTime float64 `json:"mean_reading_time"`

	// MeanComplexity is the average of Complexity over the history.
	MeanComplexity float64 `json:"mean_complexity"`

	// Size is the number of history articles.
	Size int `json:"size"`

	maxCategoryFreq int
	maxTagFreq      int
}

// Complexity is the complexity proxy of an article: reading time / 10.
func Complexity(readingTime int) float64 {
	return float64(readingTime) / 10
}

// BuildProfile derives a Profile from the resolved history articles.
func BuildProfile(history []models.Article) (*Profile, error) {
	if len(history) == 0 {
		return nil, ErrEmptyProfile
	}

	p := &Profile{
		CategoryFrequency: make(map[models.Category]int),
		TagFrequency:      make(map[string]int),
		Size:              len(history),
	}

	var totalReadingTime, totalComplexity float64
	for i := range history {
		a := &history[i]

		cat := canonicalCategory(a.Category)
		p.CategoryFrequency[cat]++
		if n := p.CategoryFrequency[cat]; n > p.maxCategoryFreq {
			p.maxCategoryFreq = n
		}

		for tag := range lowerTags(a.Tags) {
			p.TagFrequency[tag]++
			if n := p.TagFrequency[tag]; n > p.maxTagFreq {
				p.maxTagFreq = n
			}
		}

		totalReadingTime += float64(a.ReadingTime)
		totalComplexity += Complexity(a.ReadingTime)
	}

	p.MeanReadingTime = totalReadingTime / float64(p.Size)
	p.MeanComplexity = totalComplexity / float64(p.Size)

	return p, nil
}

// Score rates a candidate against the profile in [0, 1].
//
//nolint:gocritic // hugeParam: candidate passed by value to keep scoring pure
func (p *Profile) Score(candidate models.Article, cfg PersonalizationConfig) float64 {
	score := ProfileCategoryWeight*p.categoryMatch(candidate) +
		ProfileTagWeight*p.tagMatch(candidate) +
		ProfileReadingTimeWeight*closeness(float64(candidate.ReadingTime)-p.MeanReadingTime, cfg.ReadingTimeScale) +
		ProfileComplexityWeight*closeness(Complexity(candidate.ReadingTime)-p.MeanComplexity, cfg.ComplexityScale)

	return math.Max(0, math.Min(1, score))
}

// categoryMatch is the candidate category's frequency relative to the most
// frequent category, or 0 when the reader never read that category.
//
//nolint:gocritic // hugeParam: see Score
func (p *Profile) categoryMatch(candidate models.Article) float64 {
	if p.maxCategoryFreq == 0 {
		return 0
	}
	return float64(p.CategoryFrequency[canonicalCategory(candidate.Category)]) / float64(p.maxCategoryFreq)
}

// tagMatch averages the relative frequency of the candidate's tags, or
// returns 0 when the candidate has no tags.
//
//nolint:gocritic // hugeParam: see Score
func (p *Profile) tagMatch(candidate models.Article) float64 {
	tags := lowerTags(candidate.Tags)
	if len(tags) == 0 || p.maxTagFreq == 0 {
		return 0
	}

	var sum float64
	for tag := range tags {
		sum += float64(p.TagFrequency[tag]) / float64(p.maxTagFreq)
	}
	return sum / float64(len(tags))
}

// closeness maps a difference to max(0, 1 - |diff|/scale).
func closeness(diff, scale float64) float64 {
	if scale <= 0 {
		return 0
	}
	return math.Max(0, 1-math.Abs(diff)/scale)
}

// canonicalCategory returns the closed-set spelling of c when it has one.
func canonicalCategory(c models.Category) models.Category {
	if canonical, ok := c.Canonical(); ok {
		return canonical
	}
	return c
}

// lowerTags returns the distinct non-blank lowercased tags.
func lowerTags(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}
