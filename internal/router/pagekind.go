// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

// Package router parses localized request paths into page descriptors and
// builds localized paths back from them. It is the server-side half of the
// URL contract mirrored by web/static/js/i18n.js.
package router

import (
	"fmt"

	"github.com/agrosan/site/internal/catalog"
)

// PageKind enumerates every routable page. Adding a kind without updating
// the total mapping functions below is a compile-visible gap, not a silent
// fallback.
type PageKind int

// Page kinds.
const (
	PageHome PageKind = iota
	PageProducts
	PageProductDetail
	PageNews
	PageNewsDetail
	PageAbout
	PageDealers
	PageDealersDomestic
	PageDealersInternational
	PageContact
)

// String returns the stable page identifier used in the injected page-data
// payload and by the client-side resolver.
func (k PageKind) String() string {
	switch k {
	case PageHome:
		return "home"
	case PageProducts:
		return "products"
	case PageProductDetail:
		return "product-detail"
	case PageNews:
		return "news"
	case PageNewsDetail:
		return "news-detail"
	case PageAbout:
		return "about"
	case PageDealers:
		return "dealers"
	case PageDealersDomestic:
		return "dealers-domestic"
	case PageDealersInternational:
		return "dealers-international"
	case PageContact:
		return "contact"
	}
	return fmt.Sprintf("PageKind(%d)", int(k))
}

// Base returns the logical list page for detail kinds and the kind itself
// otherwise. Alternate URLs and templates are computed for the base.
func (k PageKind) Base() PageKind {
	switch k {
	case PageProductDetail:
		return PageProducts
	case PageNewsDetail:
		return PageNews
	default:
		return k
	}
}

// EntityID maps a kind to its entry in the page slug catalog. Detail kinds
// share their base page's slug.
func (k PageKind) EntityID() string {
	switch k {
	case PageHome:
		return catalog.PageHome
	case PageProducts, PageProductDetail:
		return catalog.PageProducts
	case PageNews, PageNewsDetail:
		return catalog.PageNews
	case PageAbout:
		return catalog.PageAbout
	case PageDealers:
		return catalog.PageDealers
	case PageDealersDomestic:
		return catalog.PageDealersHome
	case PageDealersInternational:
		return catalog.PageDealersAbroad
	case PageContact:
		return catalog.PageContact
	}
	return catalog.PageHome
}

// kindByEntityID is the inverse of EntityID for list/static pages.
func kindByEntityID(id string) (PageKind, bool) {
	switch id {
	case catalog.PageHome:
		return PageHome, true
	case catalog.PageProducts:
		return PageProducts, true
	case catalog.PageNews:
		return PageNews, true
	case catalog.PageAbout:
		return PageAbout, true
	case catalog.PageDealers:
		return PageDealers, true
	case catalog.PageDealersHome:
		return PageDealersDomestic, true
	case catalog.PageDealersAbroad:
		return PageDealersInternational, true
	case catalog.PageContact:
		return PageContact, true
	}
	return PageHome, false
}

// HasDetail reports whether the kind accepts a third detail path segment.
func (k PageKind) HasDetail() bool {
	return k == PageProducts || k == PageNews
}
