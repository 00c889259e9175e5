// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/agrosan/site/internal/cache"
	"github.com/agrosan/site/internal/catalog"
	"github.com/agrosan/site/internal/model"
	"github.com/agrosan/site/internal/router"
)

func testTemplates() fstest.MapFS {
	shell := `<html lang="tr"><head><title>Agrosan</title></head><body></body></html>`
	return fstest.MapFS{
		"home.html":     {Data: []byte(shell)},
		"products.html": {Data: []byte(shell)},
		"news.html":     {Data: []byte(shell)},
		"about.html":    {Data: []byte(shell)},
		"dealers.html":  {Data: []byte(shell)},
		"contact.html":  {Data: []byte(shell)},
	}
}

func testResolver() *router.Resolver {
	products := []model.Product{
		{ID: "patlatma", Slug: model.Localized{"tr": "patlatma", "en": "subsoiler", "ru": "glubokorykhlitel"}},
	}
	return router.New(catalog.New(products, nil))
}

func TestRender(t *testing.T) {
	r := New(Config{
		TemplatesFS: testTemplates(),
		SiteURL:     "https://www.agrosan.example",
	})
	res := testResolver()

	d := res.Parse("/en/products/subsoiler")
	if d == nil {
		t.Fatal("Parse(/en/products/subsoiler) = nil")
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/en/products/subsoiler", nil)
	if err := r.Render(rr, req, res, d); err != nil {
		t.Fatalf("Render() = %v", err)
	}

	body := rr.Body.String()
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	for _, want := range []string{
		`<html lang="en">`,
		`hreflang="tr" href="https://www.agrosan.example/tr/urunler/patlatma"`,
		`hreflang="en" href="https://www.agrosan.example/en/products/subsoiler"`,
		`hreflang="ru" href="https://www.agrosan.example/ru/produkty/glubokorykhlitel"`,
		`hreflang="x-default" href="https://www.agrosan.example/tr/urunler/patlatma"`,
		`rel="canonical" href="https://www.agrosan.example/en/products/subsoiler"`,
		`window.__PAGE_DATA__`,
		`"page_id":"products"`,
		`"product_id":"patlatma"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Render() body missing %q", want)
		}
	}
	// Everything must land before the closing head tag.
	headEnd := strings.Index(body, "</head>")
	if headEnd < 0 {
		t.Fatal("no </head> in output")
	}
	if idx := strings.Index(body, "canonical"); idx > headEnd {
		t.Error("canonical link injected outside <head>")
	}
}

func TestRenderTemplateNames(t *testing.T) {
	tests := []struct {
		kind router.PageKind
		want string
	}{
		{router.PageHome, "home.html"},
		{router.PageProducts, "products.html"},
		{router.PageProductDetail, "products.html"},
		{router.PageNews, "news.html"},
		{router.PageNewsDetail, "news.html"},
		{router.PageAbout, "about.html"},
		{router.PageDealers, "dealers.html"},
		{router.PageDealersDomestic, "dealers.html"},
		{router.PageDealersInternational, "dealers.html"},
		{router.PageContact, "contact.html"},
	}
	for _, tt := range tests {
		if got := templateName(tt.kind); got != tt.want {
			t.Errorf("templateName(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestRenderMissingTemplate(t *testing.T) {
	r := New(Config{
		TemplatesFS: fstest.MapFS{},
		SiteURL:     "https://example.com",
	})
	res := testResolver()
	d := res.Parse("/tr/")
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tr/", nil)
	if err := r.Render(rr, req, res, d); err == nil {
		t.Error("Render() = nil error for missing template")
	}
}

func TestTemplateCaching(t *testing.T) {
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	defer func() { _ = c.Close() }()

	templates := testTemplates()
	r := New(Config{TemplatesFS: templates, Cache: c, SiteURL: "https://example.com"})

	data, err := r.loadTemplate(context.Background(), "home.html")
	if err != nil {
		t.Fatalf("loadTemplate() = %v", err)
	}

	// Mutate the backing file; the cached copy must still be served.
	templates["home.html"].Data = []byte("<html><head></head><body>changed</body></html>")
	cached, err := r.loadTemplate(context.Background(), "home.html")
	if err != nil {
		t.Fatalf("loadTemplate() = %v", err)
	}
	if string(cached) != string(data) {
		t.Error("expected cached template, got fresh read")
	}

	// Clearing the cache picks up the new content.
	if err := r.ClearCache(context.Background()); err != nil {
		t.Fatalf("ClearCache() = %v", err)
	}
	fresh, err := r.loadTemplate(context.Background(), "home.html")
	if err != nil {
		t.Fatalf("loadTemplate() = %v", err)
	}
	if !strings.Contains(string(fresh), "changed") {
		t.Error("expected fresh template after ClearCache")
	}
}
