// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package router

import "net/url"

// Legacy flat file paths kept for backward compatibility with the
// pre-internationalization site. The table is fixed at compile time.
const (
	legacyIndex         = "/index.html"
	legacyProducts      = "/products.html"
	legacyProductDetail = "/product-detail.html"
	legacyNews          = "/news.html"
	legacyNewsDetail    = "/news-detail.html"
	legacyAbout         = "/about.html"
	legacyDealers       = "/dealers.html"
)

// ResolveLegacy maps a legacy flat path to its modern localized
// equivalent for the detected language. The boolean is false when path is
// not a legacy URL. Matched paths are redirected permanently by the
// middleware; the bare root "/" is not legacy and is negotiated separately.
func (r *Resolver) ResolveLegacy(path string, query url.Values, lang string) (string, bool) {
	switch path {
	case legacyIndex:
		return r.Build(PageHome, lang, Params{}), true
	case legacyProducts:
		return r.Build(PageProducts, lang, Params{}), true
	case legacyProductDetail:
		// With an id the detail URL is built through the catalog; without
		// one the product list is the safest landing page.
		if id := query.Get("id"); id != "" {
			return r.Build(PageProductDetail, lang, Params{ProductID: id}), true
		}
		return r.Build(PageProducts, lang, Params{}), true
	case legacyNews:
		return r.Build(PageNews, lang, Params{}), true
	case legacyNewsDetail:
		// Always the news list, even with an id: the old site never
		// resolved per-article legacy URLs and links in the wild rely on
		// landing somewhere sensible rather than 404ing.
		return r.Build(PageNews, lang, Params{}), true
	case legacyAbout:
		return r.Build(PageAbout, lang, Params{}), true
	case legacyDealers:
		return r.Build(PageDealers, lang, Params{}), true
	}
	return "", false
}
