// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Product is a machinery product listed on the products page.
// Slug carries the per-language URL segment; an entry missing a language
// falls back to the raw ID when building URLs.
type Product struct {
	ID          string    `json:"id"`
	Name        Localized `json:"name"`
	Slug        Localized `json:"slug"`
	Summary     Localized `json:"summary,omitempty"`
	Description Localized `json:"description,omitempty"`
	Specs       []Spec    `json:"specs,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Featured    bool      `json:"featured,omitempty"`
	Position    int       `json:"position,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// Spec is a single row in a product's technical specification table.
type Spec struct {
	Label Localized `json:"label"`
	Value Localized `json:"value"`
}

// NewsArticle is a news/announcement entry listed on the news page.
type NewsArticle struct {
	ID      string    `json:"id"`
	Title   Localized `json:"title"`
	Slug    Localized `json:"slug"`
	Excerpt Localized `json:"excerpt,omitempty"`
	// Body is markdown; it is rendered to HTML at serve time.
	Body      Localized `json:"body,omitempty"`
	Image     string    `json:"image,omitempty"`
	Date      time.Time `json:"date"`
	Published bool      `json:"published"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
