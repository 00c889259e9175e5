// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler contains the HTTP handlers for the public site, the JSON
// content API and the admin surface.
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/agrosan/site/internal/catalog"
	"github.com/agrosan/site/internal/i18n"
	"github.com/agrosan/site/internal/middleware"
	"github.com/agrosan/site/internal/render"
	"github.com/agrosan/site/internal/router"
	"github.com/agrosan/site/internal/store"
)

// Frontend serves the localized public pages.
type Frontend struct {
	store    *store.Store
	renderer *render.Renderer
}

// NewFrontend creates the public page handler.
func NewFrontend(st *store.Store, renderer *render.Renderer) *Frontend {
	return &Frontend{store: st, renderer: renderer}
}

// Resolver builds a URL resolver over the current content. The catalog is
// rebuilt from the JSON files on every call so slug edits are visible
// without a restart; on a read error it degrades to the fixed page slugs so
// navigation keeps working.
func (h *Frontend) Resolver() *router.Resolver {
	products, err := h.store.Products()
	if err != nil {
		slog.Error("loading products for slug catalog", "error", err)
	}
	news, err := h.store.PublishedNews()
	if err != nil {
		slog.Error("loading news for slug catalog", "error", err)
	}
	return router.New(catalog.New(products, news))
}

// Serve handles every localized page path. Unresolvable paths never 404:
// they redirect to the detected language's home page, and a stale detail
// slug lands on the matching list page.
func (h *Frontend) Serve(w http.ResponseWriter, r *http.Request) {
	res := h.Resolver()
	d := res.Parse(r.URL.Path)
	if d == nil {
		lang := middleware.LangFromContext(r.Context())
		http.Redirect(w, r, "/"+lang+"/", http.StatusFound)
		return
	}

	// The URL names its language explicitly; remember it for future visits
	// to the bare root.
	i18n.SetPrefCookie(w, d.Lang)

	switch d.Kind {
	case router.PageProductDetail:
		if d.ProductID == "" {
			http.Redirect(w, r, res.Build(router.PageProducts, d.Lang, router.Params{}), http.StatusFound)
			return
		}
	case router.PageNewsDetail:
		if _, err := h.store.NewsBySlug(d.NewsSlug, d.Lang); err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				slog.Error("looking up news article", "slug", d.NewsSlug, "error", err)
			}
			http.Redirect(w, r, res.Build(router.PageNews, d.Lang, router.Params{}), http.StatusFound)
			return
		}
	}

	if err := h.renderer.Render(w, r, res, d); err != nil {
		slog.Error("rendering page", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
