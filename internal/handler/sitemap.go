// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/agrosan/site/internal/cache"
	"github.com/agrosan/site/internal/model"
	"github.com/agrosan/site/internal/router"
	"github.com/agrosan/site/internal/seo"
	"github.com/agrosan/site/internal/store"
)

// sitemapCacheKey is where the rendered sitemap lives in the cache.
const sitemapCacheKey = "sitemap:xml"

// Sitemap serves sitemap.xml and robots.txt.
type Sitemap struct {
	store    *store.Store
	frontend *Frontend
	cache    cache.Cache
	siteURL  string
	isDev    bool
}

// NewSitemap creates the sitemap/robots handler.
func NewSitemap(st *store.Store, frontend *Frontend, c cache.Cache, siteURL string, isDev bool) *Sitemap {
	return &Sitemap{store: st, frontend: frontend, cache: c, siteURL: siteURL, isDev: isDev}
}

// ServeSitemap handles GET /sitemap.xml.
func (h *Sitemap) ServeSitemap(w http.ResponseWriter, r *http.Request) {
	data, err := h.cache.Get(r.Context(), sitemapCacheKey)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			slog.Warn("sitemap cache read failed", "error", err)
		}
		data, err = h.Rebuild(r.Context())
		if err != nil {
			slog.Error("building sitemap", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(data)
}

// ServeRobots handles GET /robots.txt. Development instances block all
// crawlers so staging URLs never leak into search indexes.
func (h *Sitemap) ServeRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(seo.BuildRobots(seo.RobotsConfig{
		SiteURL:     h.siteURL,
		DisallowAll: h.isDev,
	})))
}

// Rebuild regenerates the sitemap from the current content and stores it in
// the cache. The cron scheduler calls this periodically; a cache miss
// triggers it inline.
func (h *Sitemap) Rebuild(ctx context.Context) ([]byte, error) {
	res := h.frontend.Resolver()
	b := seo.NewSitemapBuilder()

	for _, kind := range []router.PageKind{
		router.PageHome, router.PageProducts, router.PageNews, router.PageAbout,
		router.PageDealers, router.PageDealersDomestic, router.PageDealersInternational,
		router.PageContact,
	} {
		h.addEntry(b, res, kind, router.Params{}, time.Time{}, seo.ChangeFreqWeekly, pagePriority(kind))
	}

	products, err := h.store.Products()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		h.addEntry(b, res, router.PageProductDetail, router.Params{ProductID: p.ID},
			p.UpdatedAt, seo.ChangeFreqMonthly, "0.8")
	}

	news, err := h.store.PublishedNews()
	if err != nil {
		return nil, err
	}
	for _, n := range news {
		h.addEntry(b, res, router.PageNewsDetail, router.Params{NewsID: n.ID},
			n.Date, seo.ChangeFreqYearly, "0.6")
	}

	data, err := b.Marshal()
	if err != nil {
		return nil, err
	}
	if err := h.cache.Set(ctx, sitemapCacheKey, data, time.Hour); err != nil {
		slog.Warn("sitemap cache write failed", "error", err)
	}
	slog.Debug("sitemap rebuilt", "urls", b.Len())
	return data, nil
}

// addEntry adds one logical page: an entry per language, each annotated
// with every language alternate plus x-default.
func (h *Sitemap) addEntry(b *seo.SitemapBuilder, res *router.Resolver, kind router.PageKind,
	p router.Params, lastMod time.Time, freq seo.ChangeFreq, priority string) {

	alternates := make([]seo.AlternateLink, 0, len(model.Languages)+1)
	for _, l := range model.Languages {
		alternates = append(alternates, seo.Alternate(l.Code, h.siteURL+res.Build(kind, l.Code, p)))
	}
	alternates = append(alternates,
		seo.Alternate(router.XDefault, h.siteURL+res.Build(kind, model.DefaultLang, p)))

	for _, l := range model.Languages {
		b.Add(h.siteURL+res.Build(kind, l.Code, p), lastMod, freq, priority, alternates)
	}
}

func pagePriority(kind router.PageKind) string {
	switch kind {
	case router.PageHome:
		return "1.0"
	case router.PageProducts:
		return "0.9"
	default:
		return "0.7"
	}
}
