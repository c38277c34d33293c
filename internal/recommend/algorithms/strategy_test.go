// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package algorithms

import (
	"errors"
	"math"
	"testing"

	"github.com/tomtom215/folio/internal/models"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func article(id string, category models.Category, tags ...string) models.Article {
	return models.Article{
		ID:       id,
		Slug:     id,
		Title:    "Article " + id,
		Category: category,
		Tags:     tags,
	}
}

// --- Test: ParseStrategy ---

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{"category", StrategyCategory, false},
		{"tags", StrategyTags, false},
		{"content", StrategyContent, false},
		{"mixed", StrategyMixed, false},
		{"  MIXED ", StrategyMixed, false},
		{"semantic", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStrategy) {
					t.Errorf("ParseStrategy(%q) error = %v, want ErrUnknownStrategy", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrategy(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStrategy(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStrategies_AllValid(t *testing.T) {
	t.Parallel()

	for _, s := range Strategies() {
		if !s.Valid() {
			t.Errorf("strategy %q reported invalid", s)
		}
	}
	if Strategy("bogus").Valid() {
		t.Error("bogus strategy reported valid")
	}
}

// --- Test: CategoryScore ---

func TestCategoryScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b models.Category
		want float64
	}{
		{"identical", models.CategoryTechnologies, models.CategoryTechnologies, 1.0},
		{"related", models.CategoryTechnologies, models.CategoryProgramming, 0.6},
		{"related reverse", models.CategoryProgramming, models.CategoryTechnologies, 0.6},
		{"unrelated", models.CategoryTechnologies, models.CategoryTravel, 0.1},
		{"case insensitive", "technologies", models.CategoryTechnologies, 1.0},
		{"invalid anchor", "Gardening", models.CategoryTechnologies, 0.1},
		{"invalid candidate", models.CategoryFood, "", 0.1},
		{"both invalid and equal", "Gardening", "Gardening", 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CategoryScore(article("a", tt.a), article("b", tt.b))
			if !approxEqual(got, tt.want) {
				t.Errorf("CategoryScore(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// --- Test: TagsScore ---

func TestTagsScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"react", "hooks"}, []string{"react", "hooks"}, 1.0},
		{"case insensitive", []string{"React"}, []string{"react"}, 1.0},
		{"partial", []string{"React", "Hooks"}, []string{"React", "Testing"}, 1.0 / 3.0},
		{"disjoint", []string{"go"}, []string{"rust"}, 0},
		{"both empty", nil, []string{}, 0.1},
		{"one empty", []string{"go"}, nil, 0},
		{"duplicates collapse", []string{"go", "Go", "GO"}, []string{"go"}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TagsScore(article("a", models.CategoryFood, tt.a...), article("b", models.CategoryFood, tt.b...))
			if !approxEqual(got, tt.want) {
				t.Errorf("TagsScore(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// --- Test: MixedScore ---

func TestMixedScore_Weights(t *testing.T) {
	t.Parallel()

	if sum := MixedCategoryWeight + MixedTagsWeight + MixedContentWeight; !approxEqual(sum, 1.0) {
		t.Fatalf("mixed weights sum = %v, want 1.0", sum)
	}

	anchor := models.Article{Category: models.CategoryTechnologies, Tags: []string{"React", "Hooks"}, Title: "React hooks"}
	candidate := models.Article{Category: models.CategoryTechnologies, Tags: []string{"React", "Testing"}, Title: "React testing"}

	want := 0.4*1.0 + 0.4*(1.0/3.0) + 0.2*(1.0/3.0)
	if got := MixedScore(anchor, candidate); !approxEqual(got, want) {
		t.Errorf("MixedScore() = %v, want %v", got, want)
	}
}

func TestMixedScore_RelatedBeatsUnrelated(t *testing.T) {
	t.Parallel()

	anchor := article("anchor", models.CategoryTechnologies, "React", "Hooks")
	a := article("a", models.CategoryTechnologies, "React", "Testing")
	b := article("b", models.CategoryTravel)

	scoreA := MixedScore(anchor, a)
	scoreB := MixedScore(anchor, b)
	if scoreA <= scoreB {
		t.Errorf("MixedScore(A) = %v should exceed MixedScore(B) = %v", scoreA, scoreB)
	}
}

// --- Test: Score dispatch ---

func TestScore_Dispatch(t *testing.T) {
	t.Parallel()

	anchor := article("anchor", models.CategoryScience, "physics")
	candidate := article("c", models.CategoryHealth, "physics", "biology")

	cases := map[Strategy]float64{
		StrategyCategory: CategoryScore(anchor, candidate),
		StrategyTags:     TagsScore(anchor, candidate),
		StrategyContent:  ContentScore(anchor, candidate),
		StrategyMixed:    MixedScore(anchor, candidate),
	}
	for s, want := range cases {
		if got := Score(s, anchor, candidate); !approxEqual(got, want) {
			t.Errorf("Score(%s) = %v, want %v", s, got, want)
		}
	}
	if got := Score("bogus", anchor, candidate); got != 0 {
		t.Errorf("Score(bogus) = %v, want 0", got)
	}
}

func TestScore_BoundsAndSelfSimilarity(t *testing.T) {
	t.Parallel()

	articles := []models.Article{
		{Title: "Understanding React Hooks", Excerpt: "State management", Category: models.CategoryTechnologies, Tags: []string{"React", "Hooks"}},
		{Title: "Street food in Bangkok", Category: models.CategoryFood, Tags: []string{"thai"}},
		{Title: "", Category: "Unknown"},
		{Title: "Lisbon on a budget", Excerpt: "Trams and pastries", Category: models.CategoryTravel},
	}

	for _, s := range Strategies() {
		for i, a := range articles {
			for j, b := range articles {
				got := Score(s, a, b)
				if got < 0 || got > 1 {
					t.Errorf("Score(%s, %d, %d) = %v, out of [0,1]", s, i, j, got)
				}
				if Score(s, a, b) != got {
					t.Errorf("Score(%s, %d, %d) not deterministic", s, i, j)
				}
			}
		}
	}

	self := articles[0]
	for _, s := range Strategies() {
		if got := Score(s, self, self); !approxEqual(got, 1.0) {
			t.Errorf("Score(%s, self, self) = %v, want 1.0", s, got)
		}
	}
}
