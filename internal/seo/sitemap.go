// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds the sitemap and robots documents.
package seo

import (
	"encoding/xml"
	"time"
)

// Sitemap XML namespaces.
const (
	XMLNamespace   = "http://www.sitemaps.org/schemas/sitemap/0.9"
	XHTMLNamespace = "http://www.w3.org/1999/xhtml"
)

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqAlways  ChangeFreq = "always"
	ChangeFreqHourly  ChangeFreq = "hourly"
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
	ChangeFreqNever   ChangeFreq = "never"
)

// AlternateLink is an xhtml:link hreflang annotation on a sitemap URL.
type AlternateLink struct {
	XMLName  xml.Name `xml:"xhtml:link"`
	Rel      string   `xml:"rel,attr"`
	Hreflang string   `xml:"hreflang,attr"`
	Href     string   `xml:"href,attr"`
}

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string          `xml:"loc"`
	LastMod    string          `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq      `xml:"changefreq,omitempty"`
	Priority   string          `xml:"priority,omitempty"`
	Alternates []AlternateLink `xml:"xhtml:link,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName    xml.Name     `xml:"urlset"`
	XMLNS      string       `xml:"xmlns,attr"`
	XMLNSXHTML string       `xml:"xmlns:xhtml,attr,omitempty"`
	URLs       []SitemapURL `xml:"url"`
}

// SitemapBuilder accumulates URL entries and marshals the document.
type SitemapBuilder struct {
	urls []SitemapURL
}

// NewSitemapBuilder creates an empty sitemap builder.
func NewSitemapBuilder() *SitemapBuilder {
	return &SitemapBuilder{urls: make([]SitemapURL, 0)}
}

// Add appends a URL entry with its per-language alternates. alternates is
// a list of (hreflang, href) pairs; pass nil for single-language entries.
func (b *SitemapBuilder) Add(loc string, lastMod time.Time, freq ChangeFreq, priority string, alternates []AlternateLink) {
	u := SitemapURL{
		Loc:        loc,
		ChangeFreq: freq,
		Priority:   priority,
		Alternates: alternates,
	}
	if !lastMod.IsZero() {
		u.LastMod = lastMod.Format(time.RFC3339)
	}
	b.urls = append(b.urls, u)
}

// Alternate builds one hreflang annotation.
func Alternate(hreflang, href string) AlternateLink {
	return AlternateLink{Rel: "alternate", Hreflang: hreflang, Href: href}
}

// Marshal renders the sitemap XML document with its header.
func (b *SitemapBuilder) Marshal() ([]byte, error) {
	doc := Sitemap{
		XMLNS:      XMLNamespace,
		XMLNSXHTML: XHTMLNamespace,
		URLs:       b.urls,
	}
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

// Len returns the number of URL entries added so far.
func (b *SitemapBuilder) Len() int {
	return len(b.urls)
}
