// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/agrosan/site/internal/catalog"
	"github.com/agrosan/site/internal/model"
	"github.com/agrosan/site/internal/util"
)

// ListNews handles GET /api/admin/news. Unlike the public endpoint it
// includes unpublished drafts.
func (h *Admin) ListNews(w http.ResponseWriter, r *http.Request) {
	news, err := h.store.News()
	if err != nil {
		slog.Error("listing news", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load news")
		return
	}
	writeJSON(w, map[string]any{"news": news})
}

// CreateNews handles POST /api/admin/news.
func (h *Admin) CreateNews(w http.ResponseWriter, r *http.Request) {
	var in model.NewsArticle
	if err := decodeJSON(r, &in); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if in.ID == "" {
		in.ID = util.Slugify(in.Title.Get(model.DefaultLang))
	}
	if !util.IsValidSlug(in.ID) {
		writeJSONError(w, http.StatusBadRequest, "invalid article id")
		return
	}

	news, err := h.store.News()
	if err != nil {
		slog.Error("loading news", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load news")
		return
	}
	for _, n := range news {
		if n.ID == in.ID {
			writeJSONError(w, http.StatusConflict, "article id already exists")
			return
		}
	}

	if !h.prepareNews(&in, w) {
		return
	}
	news = append(news, in)
	if !h.saveNews(news, w) {
		return
	}
	slog.Info("news article created", "id", in.ID)
	writeJSONSuccess(w, map[string]any{"article": in})
}

// UpdateNews handles PUT /api/admin/news/{id}.
func (h *Admin) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in model.NewsArticle
	if err := decodeJSON(r, &in); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	in.ID = id

	news, err := h.store.News()
	if err != nil {
		slog.Error("loading news", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load news")
		return
	}

	idx := -1
	for i, n := range news {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		writeJSONError(w, http.StatusNotFound, "article not found")
		return
	}

	if !h.prepareNews(&in, w) {
		return
	}
	news[idx] = in
	if !h.saveNews(news, w) {
		return
	}
	slog.Info("news article updated", "id", id)
	writeJSONSuccess(w, map[string]any{"article": in})
}

// DeleteNews handles DELETE /api/admin/news/{id}.
func (h *Admin) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	news, err := h.store.News()
	if err != nil {
		slog.Error("loading news", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load news")
		return
	}

	kept := news[:0]
	for _, n := range news {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(news) {
		writeJSONError(w, http.StatusNotFound, "article not found")
		return
	}
	if !h.saveNews(kept, w) {
		return
	}
	slog.Info("news article deleted", "id", id)
	writeJSONSuccess(w, nil)
}

func (h *Admin) prepareNews(n *model.NewsArticle, w http.ResponseWriter) bool {
	n.Title = sanitizeLocalized(n.Title)
	n.Excerpt = sanitizeLocalized(n.Excerpt)
	n.Slug = fillSlugs(n.Slug, n.Title)
	if !validSlugs(n.Slug) {
		writeJSONError(w, http.StatusBadRequest, "slugs may contain only lowercase letters, digits and hyphens")
		return false
	}
	if n.Date.IsZero() {
		n.Date = time.Now().UTC()
	}
	touch(&n.UpdatedAt)
	return true
}

func (h *Admin) saveNews(news []model.NewsArticle, w http.ResponseWriter) bool {
	if err := catalog.Validate(catalog.NewsEntries(news)); err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	if err := h.store.SaveNews(news); err != nil {
		slog.Error("saving news", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to save news")
		return false
	}
	return true
}
