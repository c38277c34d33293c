// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package eventprocessor

import (
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/folio/internal/models"
)

// SchemaVersion is the current event schema version.
const SchemaVersion = 1

// TopicArticleChanged is the topic every corpus change is published on.
const TopicArticleChanged = "articles.changed"

// Action is the kind of corpus change.
type Action string

const (
	ActionUpserted Action = "upserted"
	ActionDeleted  Action = "deleted"
)

// ArticleChangedEvent announces that an article was written or removed.
type ArticleChangedEvent struct {
	SchemaVersion int       `json:"schema_version,omitempty"`
	EventID       string    `json:"event_id"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`

	Action    Action `json:"action"`
	ArticleID string `json:"article_id"`

	// Category is the article's category after the change, or before it
	// for deletions.
	Category models.Category `json:"category"`

	// PreviousCategory is set when an update moved the article to a
	// different category.
	PreviousCategory models.Category `json:"previous_category,omitempty"`
}

// NewArticleChangedEvent builds an event for a store write. previous is the
// version replaced by the write, or nil for a new article.
func NewArticleChangedEvent(action Action, current, previous *models.Article) *ArticleChangedEvent {
	e := &ArticleChangedEvent{
		SchemaVersion: SchemaVersion,
		EventID:       uuid.New().String(),
		Timestamp:     time.Now().UTC(),
		Action:        action,
	}

	switch {
	case current != nil:
		e.ArticleID = current.ID
		e.Category = current.Category
		if previous != nil && previous.Category != current.Category {
			e.PreviousCategory = previous.Category
		}
	case previous != nil:
		e.ArticleID = previous.ID
		e.Category = previous.Category
	}

	return e
}

// GetSchemaVersion returns the schema version, defaulting to 1 for events
// written without one.
func (e *ArticleChangedEvent) GetSchemaVersion() int {
	if e.SchemaVersion == 0 {
		return 1
	}
	return e.SchemaVersion
}

// Validate checks required fields.
func (e *ArticleChangedEvent) Validate() error {
	if e.EventID == "" {
		return &ValidationError{Field: "event_id", Message: "required"}
	}
	if e.ArticleID == "" {
		return &ValidationError{Field: "article_id", Message: "required"}
	}
	switch e.Action {
	case ActionUpserted, ActionDeleted:
	default:
		return &ValidationError{Field: "action", Message: "must be upserted or deleted"}
	}
	return nil
}

// AffectedCategories lists the categories whose cached results may be stale
// after this change: the current and previous categories and everything
// related to either, canonicalized and deduplicated.
func (e *ArticleChangedEvent) AffectedCategories() []models.Category {
	seen := make(map[models.Category]struct{})
	var out []models.Category

	add := func(c models.Category) {
		if c == "" {
			return
		}
		if canonical, ok := c.Canonical(); ok {
			c = canonical
		}
		if _, dup := seen[c]; dup {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	for _, c := range []models.Category{e.Category, e.PreviousCategory} {
		if c == "" {
			continue
		}
		add(c)
		canonical, _ := c.Canonical()
		for _, related := range models.RelatedCategories(canonical) {
			add(related)
		}
	}
	return out
}
