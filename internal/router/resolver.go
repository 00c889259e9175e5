// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"strings"

	"github.com/agrosan/site/internal/catalog"
	"github.com/agrosan/site/internal/model"
)

// Descriptor is the parsed result of a localized URL. It is transient:
// created per request, consumed by the renderer and link builders, never
// persisted.
type Descriptor struct {
	Lang   string
	Kind   PageKind
	PageID string // page entity ID in the slug catalog

	// DetailSlug is the raw third path segment, if any.
	DetailSlug string

	// ProductID is the resolved product entity ID for product-detail
	// pages. Empty with a non-empty DetailSlug means the slug did not
	// resolve; the serving layer redirects to the product list.
	ProductID string

	// NewsSlug is the raw news detail slug; article lookup happens in the
	// consuming route, not here.
	NewsSlug string
}

// Params carries the entity references needed to build a detail URL.
type Params struct {
	ProductID string
	NewsID    string
	NewsSlug  string
}

// Resolver translates between localized paths and descriptors using a slug
// catalog snapshot.
type Resolver struct {
	cat *catalog.Catalog
}

// New creates a resolver over the given catalog snapshot.
func New(cat *catalog.Catalog) *Resolver {
	return &Resolver{cat: cat}
}

// Catalog returns the underlying slug catalog snapshot.
func (r *Resolver) Catalog() *catalog.Catalog {
	return r.cat
}

// Parse resolves a request path into a descriptor. It returns nil when the
// path is not a well-formed localized URL: unsupported language prefix,
// unknown page slug, or trailing segments no page accepts. Callers treat
// nil as "redirect to the detected language's home page", never as an
// error.
func (r *Resolver) Parse(path string) *Descriptor {
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil
	}

	lang := strings.ToLower(segments[0])
	if !model.IsSupportedLang(lang) {
		return nil
	}
	rest := segments[1:]

	if len(rest) == 0 {
		return &Descriptor{Lang: lang, Kind: PageHome, PageID: catalog.PageHome}
	}

	pageID, consumed, ok := r.cat.MatchPage(rest, lang)
	if !ok {
		return nil
	}
	kind, ok := kindByEntityID(pageID)
	if !ok {
		return nil
	}
	rest = rest[consumed:]

	if len(rest) == 0 {
		return &Descriptor{Lang: lang, Kind: kind, PageID: pageID}
	}

	// One extra segment: a detail slug on a detail-capable page.
	if len(rest) > 1 || !kind.HasDetail() {
		return nil
	}
	detail := rest[0]

	switch kind {
	case PageProducts:
		// Unresolvable product slugs surface as an empty ProductID; the
		// serving layer decides to redirect to the list.
		productID, _ := r.cat.EntityID(catalog.KindProduct, detail, lang)
		return &Descriptor{
			Lang:       lang,
			Kind:       PageProductDetail,
			PageID:     pageID,
			DetailSlug: detail,
			ProductID:  productID,
		}
	case PageNews:
		return &Descriptor{
			Lang:       lang,
			Kind:       PageNewsDetail,
			PageID:     pageID,
			DetailSlug: detail,
			NewsSlug:   detail,
		}
	}
	return nil
}

// Build constructs the localized path for a page. Home is /{lang}/; other
// pages are /{lang}/{pageSlug}. A product or news reference appends the
// detail slug localized for the target language, so cross-language links
// always carry the correctly translated slug rather than a copy of the
// current one.
func (r *Resolver) Build(kind PageKind, lang string, p Params) string {
	if kind.Base() == PageHome {
		return "/" + lang + "/"
	}

	path := "/" + lang + "/" + r.cat.Slug(catalog.KindPage, kind.EntityID(), lang)

	switch kind.Base() {
	case PageProducts:
		if p.ProductID != "" {
			path += "/" + r.cat.Slug(catalog.KindProduct, p.ProductID, lang)
		}
	case PageNews:
		if p.NewsID != "" {
			path += "/" + r.cat.Slug(catalog.KindNews, p.NewsID, lang)
		} else if p.NewsSlug != "" {
			// Re-localize the slug when its article is known; otherwise
			// keep it verbatim rather than produce a broken link.
			if id, ok := r.cat.EntityIDAnyLang(catalog.KindNews, p.NewsSlug); ok {
				path += "/" + r.cat.Slug(catalog.KindNews, id, lang)
			} else {
				path += "/" + p.NewsSlug
			}
		}
	}
	return path
}

// BuildFor rebuilds the equivalent path for a descriptor in the target
// language, preserving the entity reference.
func (r *Resolver) BuildFor(d *Descriptor, lang string) string {
	return r.Build(d.Kind, lang, Params{
		ProductID: d.ProductID,
		NewsSlug:  d.NewsSlug,
	})
}

// splitPath splits a URL path into its non-empty segments.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
