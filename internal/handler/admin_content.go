// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agrosan/site/internal/model"
)

// SaveContent handles PUT /api/admin/content/{doc} for the singleton
// documents. Each document type has its own sanitation pass.
func (h *Admin) SaveContent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "doc")

	var err error
	switch name {
	case "homepage":
		var doc model.Homepage
		if err = decodeJSON(r, &doc); err == nil {
			doc.HeroTitle = sanitizeLocalized(doc.HeroTitle)
			doc.HeroSubtitle = sanitizeLocalized(doc.HeroSubtitle)
			for i := range doc.Slides {
				doc.Slides[i].Title = sanitizeLocalized(doc.Slides[i].Title)
				doc.Slides[i].Subtitle = sanitizeLocalized(doc.Slides[i].Subtitle)
			}
			touch(&doc.UpdatedAt)
			err = h.store.SaveHomepage(doc)
		}
	case "about":
		var doc model.About
		if err = decodeJSON(r, &doc); err == nil {
			doc.Title = sanitizeLocalized(doc.Title)
			touch(&doc.UpdatedAt)
			err = h.store.SaveAbout(doc)
		}
	case "contact":
		var doc model.Contact
		if err = decodeJSON(r, &doc); err == nil {
			doc.Address = sanitizeLocalized(doc.Address)
			touch(&doc.UpdatedAt)
			err = h.store.SaveContact(doc)
		}
	case "dealers":
		var doc model.Dealers
		if err = decodeJSON(r, &doc); err == nil {
			sanitizeDealers(doc.Domestic)
			sanitizeDealers(doc.International)
			touch(&doc.UpdatedAt)
			err = h.store.SaveDealers(doc)
		}
	case "footer":
		var doc model.Footer
		if err = decodeJSON(r, &doc); err == nil {
			doc.Text = sanitizeLocalized(doc.Text)
			touch(&doc.UpdatedAt)
			err = h.store.SaveFooter(doc)
		}
	case "announcement":
		var doc model.Announcement
		if err = decodeJSON(r, &doc); err == nil {
			doc.Text = sanitizeLocalized(doc.Text)
			touch(&doc.UpdatedAt)
			err = h.store.SaveAnnouncement(doc)
		}
	default:
		writeJSONError(w, http.StatusNotFound, "unknown content document")
		return
	}

	if err != nil {
		slog.Error("saving content document", "doc", name, "error", err)
		writeJSONError(w, http.StatusBadRequest, "failed to save content")
		return
	}
	slog.Info("content document saved", "doc", name)
	writeJSONSuccess(w, nil)
}

func sanitizeDealers(dealers []model.Dealer) {
	for i := range dealers {
		dealers[i].Name = textSanitizer.Sanitize(dealers[i].Name)
		dealers[i].City = sanitizeLocalized(dealers[i].City)
		dealers[i].Country = sanitizeLocalized(dealers[i].Country)
	}
}
