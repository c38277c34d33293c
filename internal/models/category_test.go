// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package models

import (
	"testing"
	"time"
)

func TestCategoryGraph_CoversClosedSet(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		if _, ok := categoryGraph[c]; !ok {
			t.Errorf("category %q has no graph entry", c)
		}
	}
	if len(categoryGraph) != len(Categories()) {
		t.Errorf("graph has %d entries, closed set has %d", len(categoryGraph), len(Categories()))
	}
}

func TestCategoryGraph_Symmetric(t *testing.T) {
	t.Parallel()

	for c, related := range categoryGraph {
		for _, r := range related {
			if !IsRelated(r, c) {
				t.Errorf("%s -> %s is not mirrored by %s -> %s", c, r, r, c)
			}
		}
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   Category
		wantOK bool
	}{
		{"Technologies", CategoryTechnologies, true},
		{"technologies", CategoryTechnologies, true},
		{"  TRAVEL ", CategoryTravel, true},
		{"Gardening", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseCategory(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCategory_Canonical(t *testing.T) {
	t.Parallel()

	if c, ok := Category("science").Canonical(); !ok || c != CategoryScience {
		t.Errorf("Canonical(science) = (%q, %v), want (Science, true)", c, ok)
	}
	if _, ok := Category("Nope").Canonical(); ok {
		t.Error("Canonical(Nope) should fail")
	}
}

func TestRelatedCategories_ReturnsCopy(t *testing.T) {
	t.Parallel()

	related := RelatedCategories(CategoryTechnologies)
	if len(related) == 0 {
		t.Fatal("Technologies should have related categories")
	}
	related[0] = "Mutated"
	if RelatedCategories(CategoryTechnologies)[0] == "Mutated" {
		t.Error("RelatedCategories leaked internal slice")
	}
	if got := RelatedCategories("Unknown"); len(got) != 0 {
		t.Errorf("unknown category related = %v, want empty", got)
	}
}

func TestArticle_Card(t *testing.T) {
	t.Parallel()

	published := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	a := Article{
		ID:          "a1",
		Slug:        "react-hooks",
		Title:       "React Hooks",
		Excerpt:     "A tour of hooks",
		Content:     "long body",
		ContentType: ContentTypeMarkdown,
		Category:    CategoryTechnologies,
		Tags:        []string{"React", "Hooks"},
		Author:      Author{Name: "Ada", Avatar: "/ada.png"},
		CoverImage:  "/cover.png",
		PublishedAt: published,
		ReadingTime: 7,
	}

	card := a.Card()
	if card.ID != a.ID || card.Slug != a.Slug || card.Title != a.Title {
		t.Errorf("identity fields not projected: %+v", card)
	}
	if card.Author.Name != "Ada" || !card.PublishedAt.Equal(published) || card.ReadingTime != 7 {
		t.Errorf("display fields not projected: %+v", card)
	}

	card.Tags[0] = "Vue"
	if a.Tags[0] != "React" {
		t.Error("Card() shares tag slice with the article")
	}

	clone := card.Clone()
	clone.Tags[1] = "Signals"
	if card.Tags[1] != "Hooks" {
		t.Error("Clone() shares tag slice with the original card")
	}
}
