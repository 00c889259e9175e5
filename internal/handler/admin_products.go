// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/agrosan/site/internal/catalog"
	"github.com/agrosan/site/internal/model"
	"github.com/agrosan/site/internal/util"
)

// ListProducts handles GET /api/admin/products.
func (h *Admin) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.Products()
	if err != nil {
		slog.Error("listing products", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load products")
		return
	}
	writeJSON(w, map[string]any{"products": products})
}

// CreateProduct handles POST /api/admin/products.
func (h *Admin) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var in model.Product
	if err := decodeJSON(r, &in); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if in.ID == "" {
		in.ID = util.Slugify(in.Name.Get(model.DefaultLang))
	}
	if !util.IsValidSlug(in.ID) {
		writeJSONError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	products, err := h.store.Products()
	if err != nil {
		slog.Error("loading products", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load products")
		return
	}
	for _, p := range products {
		if p.ID == in.ID {
			writeJSONError(w, http.StatusConflict, "product id already exists")
			return
		}
	}

	if !h.prepareProduct(&in, w) {
		return
	}
	products = append(products, in)
	if !h.saveProducts(products, w) {
		return
	}
	slog.Info("product created", "id", in.ID)
	writeJSONSuccess(w, map[string]any{"product": in})
}

// UpdateProduct handles PUT /api/admin/products/{id}.
func (h *Admin) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in model.Product
	if err := decodeJSON(r, &in); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	in.ID = id

	products, err := h.store.Products()
	if err != nil {
		slog.Error("loading products", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	idx := -1
	for i, p := range products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		writeJSONError(w, http.StatusNotFound, "product not found")
		return
	}

	if !h.prepareProduct(&in, w) {
		return
	}
	products[idx] = in
	if !h.saveProducts(products, w) {
		return
	}
	slog.Info("product updated", "id", id)
	writeJSONSuccess(w, map[string]any{"product": in})
}

// DeleteProduct handles DELETE /api/admin/products/{id}.
func (h *Admin) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	products, err := h.store.Products()
	if err != nil {
		slog.Error("loading products", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		writeJSONError(w, http.StatusNotFound, "product not found")
		return
	}
	if !h.saveProducts(kept, w) {
		return
	}
	slog.Info("product deleted", "id", id)
	writeJSONSuccess(w, nil)
}

// prepareProduct sanitizes text fields, derives missing slugs and stamps
// the update time. Returns false after writing an error response.
func (h *Admin) prepareProduct(p *model.Product, w http.ResponseWriter) bool {
	p.Name = sanitizeLocalized(p.Name)
	p.Summary = sanitizeLocalized(p.Summary)
	p.Slug = fillSlugs(p.Slug, p.Name)
	if !validSlugs(p.Slug) {
		writeJSONError(w, http.StatusBadRequest, "slugs may contain only lowercase letters, digits and hyphens")
		return false
	}
	touch(&p.UpdatedAt)
	return true
}

// saveProducts validates slug uniqueness and persists. Returns false after
// writing an error response.
func (h *Admin) saveProducts(products []model.Product, w http.ResponseWriter) bool {
	if err := catalog.Validate(catalog.ProductEntries(products)); err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Position < products[j].Position
	})
	if err := h.store.SaveProducts(products); err != nil {
		slog.Error("saving products", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to save products")
		return false
	}
	return true
}
