// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/agrosan/site/internal/router"
)

var (
	// htmlTagRegex matches the opening <html ...> tag.
	htmlTagRegex = regexp.MustCompile(`(?i)<html([^>]*)>`)
	// langAttrRegex matches an existing lang attribute inside the tag.
	langAttrRegex = regexp.MustCompile(`(?i)\blang="[^"]*"`)
	// headCloseRegex locates </head> case-insensitively without touching
	// the document, so byte offsets stay valid. Lowercasing a copy first
	// would shift offsets on characters like 'İ' whose lowercase form has
	// a different byte length.
	headCloseRegex = regexp.MustCompile(`(?i)</head>`)
)

// injectBeforeHeadClose inserts markup just before </head>. When the
// marker is missing the injection is silently dropped; a shell without a
// head section still serves, just without SEO tags.
func injectBeforeHeadClose(html, markup string) string {
	loc := headCloseRegex.FindStringIndex(html)
	if loc == nil {
		return html
	}
	return html[:loc[0]] + markup + html[loc[0]:]
}

// setLangAttr rewrites the root element's lang attribute to the resolved
// language, inserting the attribute when absent.
func setLangAttr(html, lang string) string {
	return htmlTagRegex.ReplaceAllStringFunc(html, func(tag string) string {
		if langAttrRegex.MatchString(tag) {
			return langAttrRegex.ReplaceAllString(tag, `lang="`+lang+`"`)
		}
		return strings.Replace(tag, "<html", `<html lang="`+lang+`"`, 1)
	})
}

// buildHeadTags renders one alternate link per entry plus the canonical
// link for the current language.
func buildHeadTags(alts []router.Alternate, canonical string) string {
	var b strings.Builder
	for _, alt := range alts {
		fmt.Fprintf(&b, "\n    <link rel=\"alternate\" hreflang=%q href=%q>", alt.Lang, alt.URL)
	}
	fmt.Fprintf(&b, "\n    <link rel=\"canonical\" href=%q>", canonical)
	return b.String()
}

// pageData is the client bootstrap payload. The page ID uses the slug
// catalog's entity vocabulary, the same IDs the client resolver keys its
// tables by; detail pages carry their base page ID plus an entity
// reference. Nulls mark fields that do not apply to the page so the client
// can trust the shape.
type pageData struct {
	Lang      string  `json:"lang"`
	PageID    string  `json:"page_id"`
	ProductID *string `json:"product_id"`
	NewsSlug  *string `json:"news_slug"`
}

// buildPageDataScript renders the inline script the client resolver reads
// instead of re-parsing the URL.
func buildPageDataScript(d *router.Descriptor) string {
	pd := pageData{
		Lang:   d.Lang,
		PageID: d.PageID,
	}
	if d.ProductID != "" {
		pd.ProductID = &d.ProductID
	}
	if d.NewsSlug != "" {
		pd.NewsSlug = &d.NewsSlug
	}

	// Marshal of a plain struct cannot fail; ignore the error like
	// json.Marshal on known-good shapes elsewhere.
	data, _ := json.Marshal(pd)
	// Escape closing tags so the payload cannot break out of the script block.
	safe := strings.ReplaceAll(string(data), "</", `<\/`)
	return "\n    <script>window.__PAGE_DATA__ = " + safe + ";</script>\n"
}
