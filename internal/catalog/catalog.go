// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

// Package catalog maps internal entity identifiers to per-language URL
// slugs and back, for static pages, products and news articles.
package catalog

import (
	"fmt"
	"strings"

	"github.com/agrosan/site/internal/model"
)

// Kind identifies which slug table an entity belongs to.
type Kind int

// Entity kinds.
const (
	KindPage Kind = iota
	KindProduct
	KindNews
)

// String implements fmt.Stringer for log output.
func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindProduct:
		return "product"
	case KindNews:
		return "news"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Entry maps one entity ID to its localized slugs.
type Entry struct {
	ID    string
	Slugs model.Localized
}

// Static page entity IDs.
const (
	PageHome          = "home"
	PageProducts      = "products"
	PageNews          = "news"
	PageAbout         = "about"
	PageDealers       = "dealers"
	PageDealersHome   = "dealers/domestic"
	PageDealersAbroad = "dealers/international"
	PageContact       = "contact"
)

// pageEntries is the fixed page slug table. The home slug is empty by
// design: /{lang}/ is the home URL. Dealer sub-pages use nested
// two-segment slugs and must be matched before their parent.
var pageEntries = []Entry{
	{ID: PageHome, Slugs: model.Localized{"tr": "", "en": "", "ru": ""}},
	{ID: PageProducts, Slugs: model.Localized{"tr": "urunler", "en": "products", "ru": "produkty"}},
	{ID: PageNews, Slugs: model.Localized{"tr": "haberler", "en": "news", "ru": "novosti"}},
	{ID: PageAbout, Slugs: model.Localized{"tr": "hakkimizda", "en": "about", "ru": "o-kompanii"}},
	{ID: PageDealers, Slugs: model.Localized{"tr": "bayiler", "en": "dealers", "ru": "dilery"}},
	{ID: PageDealersHome, Slugs: model.Localized{"tr": "bayiler/yurt-ici", "en": "dealers/domestic", "ru": "dilery/vnutrennie"}},
	{ID: PageDealersAbroad, Slugs: model.Localized{"tr": "bayiler/yurt-disi", "en": "dealers/international", "ru": "dilery/mezhdunarodnye"}},
	{ID: PageContact, Slugs: model.Localized{"tr": "iletisim", "en": "contact", "ru": "kontakty"}},
}

// Catalog holds the three slug tables for one resolution pass. Product and
// news entries are rebuilt from the authoritative lists on every request so
// admin edits take effect without cache invalidation.
type Catalog struct {
	pages    []Entry
	products []Entry
	news     []Entry
}

// New builds a catalog from the current product and news lists.
func New(products []model.Product, news []model.NewsArticle) *Catalog {
	c := &Catalog{
		pages:    pageEntries,
		products: make([]Entry, 0, len(products)),
		news:     make([]Entry, 0, len(news)),
	}
	for _, p := range products {
		c.products = append(c.products, Entry{ID: p.ID, Slugs: p.Slug})
	}
	for _, n := range news {
		c.news = append(c.news, Entry{ID: n.ID, Slugs: n.Slug})
	}
	return c
}

// entries returns the table for the given kind.
func (c *Catalog) entries(kind Kind) []Entry {
	switch kind {
	case KindPage:
		return c.pages
	case KindProduct:
		return c.products
	case KindNews:
		return c.news
	}
	return nil
}

// Entries returns the slug table for a kind. The slice is shared; callers
// must not mutate it.
func (c *Catalog) Entries(kind Kind) []Entry {
	return c.entries(kind)
}

// Slug returns the localized slug for an entity. If the entity or the
// language-specific slug is absent, the entity ID itself is returned, so
// URL building never fails outright.
func (c *Catalog) Slug(kind Kind, id, lang string) string {
	for _, e := range c.entries(kind) {
		if e.ID != id {
			continue
		}
		if s, ok := e.Slugs[lang]; ok {
			return s
		}
		return id
	}
	return id
}

// EntityID reverse-looks-up the entity owning slug in the given language.
// The second return value is false when no entity owns that slug.
func (c *Catalog) EntityID(kind Kind, slug, lang string) (string, bool) {
	for _, e := range c.entries(kind) {
		if e.Slugs[lang] == slug {
			return e.ID, true
		}
	}
	return "", false
}

// EntityIDAnyLang scans all languages of all entries for slug. Used when
// switching languages and the slug's source language is unknown.
func (c *Catalog) EntityIDAnyLang(kind Kind, slug string) (string, bool) {
	for _, e := range c.entries(kind) {
		for _, s := range e.Slugs {
			if s == slug {
				return e.ID, true
			}
		}
	}
	return "", false
}

// MatchPage matches the leading path segments against the page table and
// returns the page ID plus the number of segments consumed. Nested
// two-segment slugs are tried before single-segment ones, so
// "bayiler/yurt-ici" wins over "bayiler" + detail slug "yurt-ici".
func (c *Catalog) MatchPage(segments []string, lang string) (id string, consumed int, ok bool) {
	if len(segments) >= 2 {
		nested := segments[0] + "/" + segments[1]
		if id, ok := c.EntityID(KindPage, nested, lang); ok {
			return id, 2, true
		}
	}
	if len(segments) >= 1 {
		if id, ok := c.EntityID(KindPage, segments[0], lang); ok && id != PageHome {
			return id, 1, true
		}
	}
	return "", 0, false
}

// Validate checks the per-language slug uniqueness invariant for a table.
// Reverse lookup is only well-defined when no two entities share a slug in
// the same language. The admin API runs this before persisting edits.
func Validate(entries []Entry) error {
	for _, lang := range model.LanguageCodes() {
		seen := make(map[string]string, len(entries))
		for _, e := range entries {
			s, ok := e.Slugs[lang]
			if !ok || s == "" {
				continue
			}
			if prev, dup := seen[s]; dup {
				return fmt.Errorf("duplicate %s slug %q shared by %q and %q", lang, s, prev, e.ID)
			}
			seen[s] = e.ID
		}
	}
	return nil
}

// ProductEntries converts a product list to catalog entries for Validate.
func ProductEntries(products []model.Product) []Entry {
	entries := make([]Entry, 0, len(products))
	for _, p := range products {
		entries = append(entries, Entry{ID: p.ID, Slugs: p.Slug})
	}
	return entries
}

// NewsEntries converts a news list to catalog entries for Validate.
func NewsEntries(news []model.NewsArticle) []Entry {
	entries := make([]Entry, 0, len(news))
	for _, n := range news {
		entries = append(entries, Entry{ID: n.ID, Slugs: n.Slug})
	}
	return entries
}

// PageIDs returns the static page entity IDs in table order.
func PageIDs() []string {
	ids := make([]string, 0, len(pageEntries))
	for _, e := range pageEntries {
		ids = append(ids, e.ID)
	}
	return ids
}

// SplitSlug splits a possibly nested page slug into its segments.
func SplitSlug(slug string) []string {
	if slug == "" {
		return nil
	}
	return strings.Split(slug, "/")
}
