// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package recommend

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/folio/internal/metrics"
	"github.com/tomtom215/folio/internal/models"
	"github.com/tomtom215/folio/internal/recommend/algorithms"
)

// personalizedArticles extends the base corpus with a close match for a
// reader of a-2.
func personalizedArticles() []models.Article {
	return append(testArticles(),
		newTestArticle("a-7", models.CategoryTechnologies, "React Testing Library", "Queries and events", 10, "React"),
	)
}

func cardIDs(cards []models.ArticleCard) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

// --- Test: personalized ranking ---

func TestEngine_GetPersonalizedRelated(t *testing.T) {
	t.Parallel()

	corpus := &mockCorpus{articles: personalizedArticles()}
	engine := newTestEngine(t, corpus, nil)

	cards, err := engine.GetPersonalizedRelated(context.Background(), "a-1", []string{"a-2"}, 3)
	if err != nil {
		t.Fatalf("GetPersonalizedRelated() error = %v", err)
	}

	// a-7 matches category, tags and reading time exactly. The rest only
	// earn reading-time and complexity affinity; a-4 (12 min) is closest to
	// the 10 minute mean, then a-3 (6 min).
	want := []string{"a-7", "a-4", "a-3"}
	if got := cardIDs(cards); !reflect.DeepEqual(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
}

func TestEngine_GetPersonalizedRelated_ExcludesAnchorAndHistory(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &mockCorpus{articles: personalizedArticles()}, nil)
	history := []string{"a-2", "a-7", "a-4"}

	cards, err := engine.GetPersonalizedRelated(context.Background(), "a-1", history, 10)
	if err != nil {
		t.Fatalf("GetPersonalizedRelated() error = %v", err)
	}

	if len(cards) != 3 {
		t.Fatalf("len(cards) = %d, want 3 (7 articles minus anchor minus 3 read)", len(cards))
	}
	excluded := map[string]bool{"a-1": true, "a-2": true, "a-7": true, "a-4": true}
	for _, c := range cards {
		if excluded[c.ID] {
			t.Errorf("card %s should have been excluded", c.ID)
		}
	}
}

func TestEngine_GetPersonalizedRelated_DefaultLimit(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &mockCorpus{articles: personalizedArticles()}, nil)

	cards, err := engine.GetPersonalizedRelated(context.Background(), "a-1", []string{"a-2"}, 0)
	if err != nil {
		t.Fatalf("GetPersonalizedRelated() error = %v", err)
	}
	if len(cards) != 3 {
		t.Errorf("len(cards) = %d, want default limit 3", len(cards))
	}
}

// --- Test: fallback ---

func TestEngine_GetPersonalizedRelated_Fallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		history []string
		mutate  func(*Config)
	}{
		{name: "nil history", history: nil},
		{name: "blank history", history: []string{"", "  "}},
		{name: "unknown history ids", history: []string{"nope-1", "nope-2"}},
		{name: "personalization disabled", history: []string{"a-2"}, mutate: func(c *Config) {
			c.Personalization.Enabled = false
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine := newTestEngine(t, &mockCorpus{articles: personalizedArticles()}, tt.mutate)
			ctx := context.Background()

			cards, err := engine.GetPersonalizedRelated(ctx, "a-1", tt.history, 4)
			if err != nil {
				t.Fatalf("GetPersonalizedRelated() error = %v", err)
			}

			mixed, err := engine.GetRelated(ctx, "a-1", WithStrategy(algorithms.StrategyMixed), WithLimit(4))
			if err != nil {
				t.Fatalf("GetRelated() error = %v", err)
			}

			if got, want := cardIDs(cards), cardIDs(Cards(mixed)); !reflect.DeepEqual(got, want) {
				t.Errorf("fallback ids = %v, want mixed ids %v", got, want)
			}
		})
	}
}

func TestEngine_GetPersonalizedRelated_FallbackErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing anchor", func(t *testing.T) {
		t.Parallel()
		engine := newTestEngine(t, &mockCorpus{articles: testArticles()}, nil)
		_, err := engine.GetPersonalizedRelated(context.Background(), "missing-id", []string{"a-2"}, 3)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound from the fallback path", err)
		}
	})

	t.Run("corpus failure", func(t *testing.T) {
		t.Parallel()
		engine := newTestEngine(t, &mockCorpus{articles: testArticles(), listErr: errors.New("boom")}, nil)
		_, err := engine.GetPersonalizedRelated(context.Background(), "a-1", []string{"a-2"}, 3)
		if !errors.Is(err, ErrFetch) {
			t.Errorf("error = %v, want ErrFetch from the fallback path", err)
		}
	})

	t.Run("limit out of range", func(t *testing.T) {
		t.Parallel()
		corpus := &mockCorpus{articles: testArticles()}
		engine := newTestEngine(t, corpus, nil)
		_, err := engine.GetPersonalizedRelated(context.Background(), "a-1", []string{"a-2"}, 11)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("error = %v, want ErrValidation", err)
		}
		if corpus.findCalls.Load() != 0 {
			t.Error("corpus accessed before validation")
		}
	})

	t.Run("empty anchor", func(t *testing.T) {
		t.Parallel()
		engine := newTestEngine(t, &mockCorpus{articles: testArticles()}, nil)
		_, err := engine.GetPersonalizedRelated(context.Background(), "", nil, 3)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("error = %v, want ErrValidation", err)
		}
	})
}

// Not parallel: asserts on shared counters.
func TestEngine_GetPersonalizedRelated_FallbackMetrics(t *testing.T) {
	engine := newTestEngine(t, &mockCorpus{articles: testArticles()}, nil)
	ctx := context.Background()

	empty := metrics.PersonalizationFallbacks.WithLabelValues(fallbackEmptyHistory)
	failed := metrics.PersonalizationFallbacks.WithLabelValues(fallbackError)
	emptyBefore := testutil.ToFloat64(empty)
	failedBefore := testutil.ToFloat64(failed)

	if _, err := engine.GetPersonalizedRelated(ctx, "a-1", nil, 3); err != nil {
		t.Fatalf("GetPersonalizedRelated() error = %v", err)
	}
	if _, err := engine.GetPersonalizedRelated(ctx, "a-1", []string{"unknown"}, 3); err != nil {
		t.Fatalf("GetPersonalizedRelated() error = %v", err)
	}

	if got := testutil.ToFloat64(empty) - emptyBefore; got != 1 {
		t.Errorf("empty_history fallbacks delta = %f, want 1", got)
	}
	if got := testutil.ToFloat64(failed) - failedBefore; got != 1 {
		t.Errorf("error fallbacks delta = %f, want 1", got)
	}
}

// --- Test: personalized caching ---

func TestEngine_GetPersonalizedRelated_CachedByHistorySet(t *testing.T) {
	t.Parallel()

	corpus := &mockCorpus{articles: personalizedArticles()}
	engine := newTestEngine(t, corpus, nil)
	ctx := context.Background()

	first, err := engine.GetPersonalizedRelated(ctx, "a-1", []string{"a-2", "a-4"}, 3)
	if err != nil {
		t.Fatalf("GetPersonalizedRelated() error = %v", err)
	}
	first[0].Tags = append(first[0].Tags, "mutated")

	// Same set of reads, different order and a duplicate.
	second, err := engine.GetPersonalizedRelated(ctx, "a-1", []string{"a-4", " a-2", "a-4"}, 3)
	if err != nil {
		t.Fatalf("GetPersonalizedRelated() error = %v", err)
	}

	if got := corpus.listCalls.Load(); got != 1 {
		t.Errorf("ListAll calls = %d, want 1", got)
	}
	if !reflect.DeepEqual(cardIDs(first), cardIDs(second)) {
		t.Errorf("ids differ: %v vs %v", cardIDs(first), cardIDs(second))
	}
	for _, tag := range second[0].Tags {
		if tag == "mutated" {
			t.Error("cached personalized result corrupted by caller mutation")
		}
	}

	if got := engine.GetCacheStats().EntriesByKind["personalized"]; got != 1 {
		t.Errorf("personalized entries = %d, want 1", got)
	}
}

func TestNormalizeHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"blanks dropped", []string{"", " ", "\t"}, []string{}},
		{"trimmed sorted deduped", []string{" b", "a", "b ", "c", "a"}, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		if got := normalizeHistory(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: normalizeHistory(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

// --- Test: profile ---

func TestBuildProfile(t *testing.T) {
	t.Parallel()

	t.Run("empty history", func(t *testing.T) {
		t.Parallel()
		if _, err := BuildProfile(nil); !errors.Is(err, ErrEmptyProfile) {
			t.Errorf("BuildProfile(nil) error = %v, want ErrEmptyProfile", err)
		}
	})

	t.Run("frequencies and means", func(t *testing.T) {
		t.Parallel()

		history := []models.Article{
			newTestArticle("h-1", models.CategoryTechnologies, "", "", 10, "Go", "go", "Testing"),
			newTestArticle("h-2", "technologies", "", "", 20, "GO"),
			newTestArticle("h-3", models.CategoryFood, "", "", 6),
		}

		p, err := BuildProfile(history)
		if err != nil {
			t.Fatalf("BuildProfile() error = %v", err)
		}

		if p.Size != 3 {
			t.Errorf("Size = %d, want 3", p.Size)
		}
		if got := p.CategoryFrequency[models.CategoryTechnologies]; got != 2 {
			t.Errorf("Technologies frequency = %d, want 2 (case-insensitive)", got)
		}
		if got := p.TagFrequency["go"]; got != 2 {
			t.Errorf("go frequency = %d, want 2 (once per article)", got)
		}
		if got := p.TagFrequency["testing"]; got != 1 {
			t.Errorf("testing frequency = %d, want 1", got)
		}
		if !approxEqual(p.MeanReadingTime, 12) {
			t.Errorf("MeanReadingTime = %f, want 12", p.MeanReadingTime)
		}
		if !approxEqual(p.MeanComplexity, 1.2) {
			t.Errorf("MeanComplexity = %f, want 1.2", p.MeanComplexity)
		}
	})
}

func TestProfile_Score(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig().Personalization
	p, err := BuildProfile([]models.Article{
		newTestArticle("h-1", models.CategoryTechnologies, "", "", 10, "react", "testing"),
		newTestArticle("h-2", models.CategoryTechnologies, "", "", 10, "react"),
		newTestArticle("h-3", models.CategoryDesign, "", "", 10, "figma"),
	})
	if err != nil {
		t.Fatalf("BuildProfile() error = %v", err)
	}

	tests := []struct {
		name      string
		candidate models.Article
		want      float64
	}{
		{
			name:      "perfect match",
			candidate: newTestArticle("c", models.CategoryTechnologies, "", "", 10, "React"),
			want:      1.0,
		},
		{
			name: "half-frequency category and mixed tags",
			// category 1/2, tags (figma 1/2 + unknown 0)/2
			candidate: newTestArticle("c", models.CategoryDesign, "", "", 10, "figma", "unknown"),
			want:      0.4*0.5 + 0.3*0.25 + 0.2 + 0.1,
		},
		{
			name: "unseen category no tags far reading time",
			// rt 40: reading-time closeness 0, complexity |4-1| > 1 so 0
			candidate: newTestArticle("c", models.CategoryTravel, "", "", 40),
			want:      0,
		},
		{
			name: "partial reading time",
			// |13-10|/15 = 0.2, |1.3-1.0|/1 = 0.3
			candidate: newTestArticle("c", models.CategoryTravel, "", "", 13),
			want:      0.2*0.8 + 0.1*0.7,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := p.Score(tt.candidate, cfg)
			if !approxEqual(got, tt.want) {
				t.Errorf("Score() = %f, want %f", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Score() = %f out of [0,1]", got)
			}
		})
	}
}

func TestCloseness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		diff, scale, want float64
	}{
		{0, 15, 1},
		{7.5, 15, 0.5},
		{-7.5, 15, 0.5},
		{30, 15, 0},
		{1, 0, 0},
	}

	for _, tt := range tests {
		if got := closeness(tt.diff, tt.scale); !approxEqual(got, tt.want) {
			t.Errorf("closeness(%f, %f) = %f, want %f", tt.diff, tt.scale, got, tt.want)
		}
	}
}
