// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/agrosan/site/internal/catalog"
	"github.com/agrosan/site/internal/model"
	"github.com/agrosan/site/internal/store"
)

// htmlSanitizer strips dangerous markup from rendered article bodies.
// UGCPolicy allows the safe subset produced by markdown.
var htmlSanitizer = bluemonday.UGCPolicy()

// API serves the public read-only content endpoints the client-side
// renderer consumes.
type API struct {
	store    *store.Store
	frontend *Frontend
}

// NewAPI creates the public content API handler.
func NewAPI(st *store.Store, frontend *Frontend) *API {
	return &API{store: st, frontend: frontend}
}

// Products handles GET /api/products.
func (h *API) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.Products()
	if err != nil {
		slog.Error("listing products", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load products")
		return
	}
	writeJSON(w, map[string]any{"products": products})
}

// Product handles GET /api/products/{id}.
func (h *API) Product(w http.ResponseWriter, r *http.Request) {
	product, err := h.store.ProductByID(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "product not found")
			return
		}
		slog.Error("loading product", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load product")
		return
	}
	writeJSON(w, map[string]any{"product": product})
}

// newsView is a published article with its markdown body rendered to
// sanitized HTML per language.
type newsView struct {
	model.NewsArticle
	BodyHTML model.Localized `json:"body_html"`
}

// News handles GET /api/news.
func (h *API) News(w http.ResponseWriter, r *http.Request) {
	articles, err := h.store.PublishedNews()
	if err != nil {
		slog.Error("listing news", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load news")
		return
	}

	views := make([]newsView, 0, len(articles))
	for _, a := range articles {
		views = append(views, newsView{NewsArticle: a, BodyHTML: renderMarkdown(a.Body)})
	}
	writeJSON(w, map[string]any{"news": views})
}

// NewsArticle handles GET /api/news/{slug}. The slug is matched in any
// language so a client switching languages can refetch with the slug it
// already has.
func (h *API) NewsArticle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	article, err := h.store.NewsBySlug(slug, r.URL.Query().Get("lang"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "article not found")
			return
		}
		slog.Error("loading news article", "slug", slug, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load article")
		return
	}
	writeJSON(w, map[string]any{"article": newsView{NewsArticle: article, BodyHTML: renderMarkdown(article.Body)}})
}

// Content handles GET /api/content/{doc} for the singleton documents.
func (h *API) Content(w http.ResponseWriter, r *http.Request) {
	var (
		doc any
		err error
	)
	name := chi.URLParam(r, "doc")
	switch name {
	case "homepage":
		doc, err = h.store.Homepage()
	case "about":
		doc, err = h.store.About()
	case "contact":
		doc, err = h.store.Contact()
	case "dealers":
		doc, err = h.store.Dealers()
	case "footer":
		doc, err = h.store.Footer()
	case "announcement":
		doc, err = h.store.Announcement()
	default:
		writeJSONError(w, http.StatusNotFound, "unknown content document")
		return
	}
	if err != nil {
		slog.Error("loading content document", "doc", name, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load content")
		return
	}
	writeJSON(w, map[string]any{"content": doc})
}

// slugExport is the catalog snapshot the client-side URL resolver mirrors.
type slugExport struct {
	Languages []string                   `json:"languages"`
	Default   string                     `json:"default"`
	Pages     map[string]model.Localized `json:"pages"`
	Products  map[string]model.Localized `json:"products"`
	News      map[string]model.Localized `json:"news"`
}

// Slugs handles GET /api/slugs. The response carries every localized slug
// so the browser can translate URLs without a round trip per click.
func (h *API) Slugs(w http.ResponseWriter, r *http.Request) {
	cat := h.frontend.Resolver().Catalog()

	export := slugExport{
		Languages: model.LanguageCodes(),
		Default:   model.DefaultLang,
		Pages:     make(map[string]model.Localized),
		Products:  make(map[string]model.Localized),
		News:      make(map[string]model.Localized),
	}
	for _, id := range catalog.PageIDs() {
		export.Pages[id] = localizedSlugs(cat, catalog.KindPage, id)
	}
	for _, e := range cat.Entries(catalog.KindProduct) {
		export.Products[e.ID] = localizedSlugs(cat, catalog.KindProduct, e.ID)
	}
	for _, e := range cat.Entries(catalog.KindNews) {
		export.News[e.ID] = localizedSlugs(cat, catalog.KindNews, e.ID)
	}
	writeJSON(w, export)
}

func localizedSlugs(cat *catalog.Catalog, kind catalog.Kind, id string) model.Localized {
	out := make(model.Localized, len(model.Languages))
	for _, l := range model.Languages {
		out[l.Code] = cat.Slug(kind, id, l.Code)
	}
	return out
}

// renderMarkdown converts every language's markdown body to sanitized HTML.
func renderMarkdown(body model.Localized) model.Localized {
	out := make(model.Localized, len(body))
	for lang, text := range body {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(text), &buf); err != nil {
			slog.Error("rendering markdown", "lang", lang, "error", err)
			continue
		}
		out[lang] = string(htmlSanitizer.SanitizeBytes(buf.Bytes()))
	}
	return out
}
