// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package models

import (
	"time"
)

// ContentType is the markup format of an article body.
type ContentType string

const (
	// ContentTypeMarkdown marks a Markdown body.
	ContentTypeMarkdown ContentType = "markdown"
	// ContentTypeHTML marks an HTML body.
	ContentTypeHTML ContentType = "html"
)

// Author identifies the writer of an article.
type Author struct {
	// Name is the display name of the author.
	Name string `json:"name" validate:"required"`

	// Avatar is an optional avatar image URL.
	Avatar string `json:"avatar,omitempty"`
}

// Article is a full blog article record as supplied by the corpus.
type Article struct {
	// ID is the opaque unique identifier.
	ID string `json:"id" validate:"required"`

	// Slug is the URL-safe unique identifier.
	Slug string `json:"slug" validate:"required"`

	// Title is the article headline.
	Title string `json:"title" validate:"required"`

	// Excerpt is the short teaser text shown in listings.
	Excerpt string `json:"excerpt,omitempty"`

	// Content is the full article body.
	Content string `json:"content" validate:"required"`

	// ContentType is the markup format of Content.
	ContentType ContentType `json:"contentType" validate:"oneof=markdown html"`

	// Category is a label from the closed category set.
	Category Category `json:"category" validate:"required"`

	// Tags is a set of free-text labels, compared case-insensitively.
	Tags []string `json:"tags,omitempty"`

	// Author is the article writer.
	Author Author `json:"author"`

	// CoverImage is an optional cover image URL.
	CoverImage string `json:"coverImage,omitempty"`

	// PublishedAt is the publication timestamp.
	PublishedAt time.Time `json:"publishedAt" validate:"required"`

	// ReadingTime is the estimated reading time in minutes.
	ReadingTime int `json:"readingTime" validate:"gt=0"`
}

// ArticleCard is the display-only projection of an article returned in
// recommendation results. It never carries the article body.
type ArticleCard struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Category    Category  `json:"category"`
	Tags        []string  `json:"tags,omitempty"`
	Author      Author    `json:"author"`
	CoverImage  string    `json:"coverImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	ReadingTime int       `json:"readingTime"`
}

// Card projects the article onto its display fields.
// The returned card owns its own copy of the tag slice.
//
//nolint:gocritic // hugeParam: value receiver keeps the article immutable
func (a Article) Card() ArticleCard {
	return ArticleCard{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Excerpt:     a.Excerpt,
		Category:    a.Category,
		Tags:        cloneStrings(a.Tags),
		Author:      a.Author,
		CoverImage:  a.CoverImage,
		PublishedAt: a.PublishedAt,
		ReadingTime: a.ReadingTime,
	}
}

// Clone returns a deep copy of the card.
//
//nolint:gocritic // hugeParam: value receiver is intentional for copy semantics
func (c ArticleCard) Clone() ArticleCard {
	c.Tags = cloneStrings(c.Tags)
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
