// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/agrosan/site/internal/middleware"
	"github.com/agrosan/site/internal/model"
	"github.com/agrosan/site/internal/render"
	"github.com/agrosan/site/internal/store"
)

// testEnv wires a seeded store, renderer and handlers behind a chi router
// with the same public routes main registers.
type testEnv struct {
	store  *store.Store
	router chi.Router
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("store.New() = %v", err)
	}
	seedTestContent(t, st)

	shell := `<html lang="tr"><head><title>Agrosan</title></head><body></body></html>`
	templates := fstest.MapFS{
		"home.html":     {Data: []byte(shell)},
		"products.html": {Data: []byte(shell)},
		"news.html":     {Data: []byte(shell)},
		"about.html":    {Data: []byte(shell)},
		"dealers.html":  {Data: []byte(shell)},
		"contact.html":  {Data: []byte(shell)},
	}
	renderer := render.New(render.Config{
		TemplatesFS: templates,
		SiteURL:     "https://www.agrosan.example",
	})

	frontend := NewFrontend(st, renderer)
	api := NewAPI(st, frontend)
	admin := NewAdmin(st, renderer)

	r := chi.NewRouter()
	r.Use(middleware.Language)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", api.Products)
		r.Get("/products/{id}", api.Product)
		r.Get("/news", api.News)
		r.Get("/news/{slug}", api.NewsArticle)
		r.Get("/content/{doc}", api.Content)
		r.Get("/slugs", api.Slugs)
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Get("/products", admin.ListProducts)
		r.Post("/products", admin.CreateProduct)
		r.Put("/products/{id}", admin.UpdateProduct)
		r.Delete("/products/{id}", admin.DeleteProduct)
		r.Get("/news", admin.ListNews)
		r.Post("/news", admin.CreateNews)
		r.Put("/news/{id}", admin.UpdateNews)
		r.Delete("/news/{id}", admin.DeleteNews)
		r.Put("/content/{doc}", admin.SaveContent)
	})
	r.Get("/*", frontend.Serve)

	return &testEnv{store: st, router: r}
}

func seedTestContent(t *testing.T, st *store.Store) {
	t.Helper()

	products := []model.Product{
		{
			ID:   "patlatma",
			Name: model.Localized{"tr": "Dipkazan", "en": "Subsoiler", "ru": "Глубокорыхлитель"},
			Slug: model.Localized{"tr": "patlatma", "en": "subsoiler", "ru": "glubokorykhlitel"},
		},
		{
			ID:   "diskaro",
			Name: model.Localized{"tr": "Diskaro", "en": "Disc Harrow", "ru": "Дисковая борона"},
			Slug: model.Localized{"tr": "diskaro", "en": "disc-harrow", "ru": "diskovaya-borona"},
		},
	}
	if err := st.SaveProducts(products); err != nil {
		t.Fatalf("SaveProducts() = %v", err)
	}

	news := []model.NewsArticle{
		{
			ID:    "agritechnica-2025",
			Title: model.Localized{"tr": "Fuardayız", "en": "At the fair"},
			Slug:  model.Localized{"tr": "agritechnica-2025-fuarindayiz", "en": "we-are-at-agritechnica-2025", "ru": "my-na-agritechnica-2025"},
			Body: model.Localized{
				"en": "**Bold** news\n\n<script>alert(1)</script>",
			},
			Date:      time.Date(2025, time.November, 9, 0, 0, 0, 0, time.UTC),
			Published: true,
		},
		{
			ID:        "draft-article",
			Title:     model.Localized{"tr": "Taslak"},
			Slug:      model.Localized{"tr": "taslak"},
			Date:      time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			Published: false,
		},
	}
	if err := st.SaveNews(news); err != nil {
		t.Fatalf("SaveNews() = %v", err)
	}

	if err := st.SaveAbout(model.About{Title: model.Localized{"tr": "Hakkımızda"}}); err != nil {
		t.Fatalf("SaveAbout() = %v", err)
	}
}

// do runs a request through the router and returns the recorder.
func (e *testEnv) do(method, target string, body io.Reader) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// decodeBody unmarshals a JSON response body.
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding response %q: %v", rr.Body.String(), err)
	}
}
