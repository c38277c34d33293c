// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/folio/internal/eventprocessor"
	"github.com/tomtom215/folio/internal/logging"
	"github.com/tomtom215/folio/internal/models"
	"github.com/tomtom215/folio/internal/recommend"
)

// ArticleWriteResponse is the body returned by article writes.
type ArticleWriteResponse struct {
	ArticleID string                `json:"article_id"`
	Action    eventprocessor.Action `json:"action"`
	Created   bool                  `json:"created,omitempty"`
}

// PutArticle handles PUT /api/v1/articles/{id}
// Inserts or replaces an article and announces the change.
func (h *Handler) PutArticle(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "id")

	var article models.Article
	if err := decodeJSON(r, &article); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if article.ID == "" {
		article.ID = id
	}
	if article.ID != id {
		rw.BadRequest("article id does not match path")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	previous, err := h.store.Put(ctx, &article)
	if err != nil {
		writeEngineError(rw, err)
		return
	}

	h.announce(ctx, eventprocessor.NewArticleChangedEvent(eventprocessor.ActionUpserted, &article, previous))

	resp := ArticleWriteResponse{ArticleID: article.ID, Action: eventprocessor.ActionUpserted}
	if previous == nil {
		resp.Created = true
		rw.Created(resp)
		return
	}
	rw.Success(resp)
}

// DeleteArticle handles DELETE /api/v1/articles/{id}
func (h *Handler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	removed, err := h.store.Delete(ctx, id)
	if err != nil {
		writeEngineError(rw, err)
		return
	}
	if removed == nil {
		writeEngineError(rw, &recommend.NotFoundError{ArticleID: id})
		return
	}

	h.announce(ctx, eventprocessor.NewArticleChangedEvent(eventprocessor.ActionDeleted, nil, removed))

	rw.Success(ArticleWriteResponse{ArticleID: id, Action: eventprocessor.ActionDeleted})
}

// announce publishes a change event. The write has already been stored, so
// a publish failure falls back to clearing every cached result.
func (h *Handler) announce(ctx context.Context, event *eventprocessor.ArticleChangedEvent) {
	if h.publisher != nil {
		err := h.publisher.PublishArticleChanged(ctx, event)
		if err == nil {
			return
		}
		logging.Ctx(ctx).Error().Err(err).
			Str("article_id", event.ArticleID).
			Msg("Failed to publish article change, clearing cache")
	}
	h.engine.ClearCache(recommend.CacheAll)
}
