// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render serves page templates with SEO tags and the client
// bootstrap payload injected. Templates are HTML shells; the browser
// fetches content data through the JSON API, so no server-side template
// execution happens here.
package render

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/agrosan/site/internal/cache"
	"github.com/agrosan/site/internal/router"
)

// Renderer loads page templates and injects per-request SEO markup.
type Renderer struct {
	templates fs.FS
	cache     cache.Cache // nil disables template caching
	siteURL   string
}

// Config holds renderer configuration. Cache is optional: pass nil to read
// templates from the filesystem on every request, which is what
// development mode does so markup edits show up without a restart.
type Config struct {
	TemplatesFS fs.FS
	Cache       cache.Cache
	SiteURL     string
}

// New creates a Renderer.
func New(cfg Config) *Renderer {
	return &Renderer{
		templates: cfg.TemplatesFS,
		cache:     cfg.Cache,
		siteURL:   cfg.SiteURL,
	}
}

// templateName maps a page kind to its template file. Detail kinds share
// their base page's template; the switch is total over PageKind so a new
// kind cannot silently fall back.
func templateName(kind router.PageKind) string {
	switch kind.Base() {
	case router.PageHome:
		return "home.html"
	case router.PageProducts:
		return "products.html"
	case router.PageNews:
		return "news.html"
	case router.PageAbout:
		return "about.html"
	case router.PageDealers, router.PageDealersDomestic, router.PageDealersInternational:
		return "dealers.html"
	case router.PageContact:
		return "contact.html"
	}
	return "home.html"
}

// loadTemplate reads a template, consulting the cache when one is
// configured. Cache errors degrade to a direct read; a failed read is a
// hard error that propagates to the 5xx handler.
func (r *Renderer) loadTemplate(ctx context.Context, name string) ([]byte, error) {
	key := "tmpl:" + name

	if r.cache != nil {
		if data, err := r.cache.Get(ctx, key); err == nil {
			return data, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			// Degraded cache backend; fall through to disk.
		}
	}

	data, err := fs.ReadFile(r.templates, name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, key, data, 0)
	}
	return data, nil
}

// Render writes the page for a resolved descriptor: the template for its
// kind with alternate/canonical links, the html lang attribute and the
// page-data script applied.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, res *router.Resolver, d *router.Descriptor) error {
	data, err := r.loadTemplate(req.Context(), templateName(d.Kind))
	if err != nil {
		return err
	}

	html := string(data)
	html = setLangAttr(html, d.Lang)

	head := buildHeadTags(res.Alternates(d, r.siteURL), res.Canonical(d, r.siteURL))
	head += buildPageDataScript(d)
	html = injectBeforeHeadClose(html, head)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = w.Write([]byte(html))
	return err
}

// ClearCache drops all cached templates. Exposed to the admin API so
// template edits can be picked up without a restart in production.
func (r *Renderer) ClearCache(ctx context.Context) error {
	if r.cache == nil {
		return nil
	}
	return r.cache.Clear(ctx)
}
