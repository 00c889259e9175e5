// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/agrosan/site/internal/model"
	"github.com/agrosan/site/internal/render"
	"github.com/agrosan/site/internal/store"
	"github.com/agrosan/site/internal/util"
)

// textSanitizer strips all markup from plain text inputs. Markdown bodies
// keep their raw text and are sanitized after rendering instead.
var textSanitizer = bluemonday.StrictPolicy()

// Admin serves the JSON management API behind authentication.
type Admin struct {
	store    *store.Store
	renderer *render.Renderer
}

// NewAdmin creates the admin API handler.
func NewAdmin(st *store.Store, renderer *render.Renderer) *Admin {
	return &Admin{store: st, renderer: renderer}
}

// ClearCache handles POST /api/admin/cache/clear. Template and sitemap
// entries are dropped so content edits become visible immediately.
func (h *Admin) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.ClearCache(r.Context()); err != nil {
		slog.Error("clearing cache", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to clear cache")
		return
	}
	slog.Info("cache cleared by admin")
	writeJSONSuccess(w, nil)
}

// sanitizeLocalized strips markup from every language of a text field.
func sanitizeLocalized(l model.Localized) model.Localized {
	out := make(model.Localized, len(l))
	for lang, v := range l {
		out[lang] = textSanitizer.Sanitize(v)
	}
	return out
}

// fillSlugs derives missing per-language slugs from the localized name.
func fillSlugs(slug, name model.Localized) model.Localized {
	out := make(model.Localized, len(model.Languages))
	for _, l := range model.Languages {
		if s, ok := slug[l.Code]; ok && s != "" {
			out[l.Code] = s
		} else if n, ok := name[l.Code]; ok && n != "" {
			out[l.Code] = util.Slugify(n)
		}
	}
	return out
}

// validSlugs reports whether every provided slug is URL-safe.
func validSlugs(slug model.Localized) bool {
	for _, s := range slug {
		if s != "" && !util.IsValidSlug(s) {
			return false
		}
	}
	return true
}

func touch(t *time.Time) {
	*t = time.Now().UTC()
}
