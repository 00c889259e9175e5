// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"
)

func TestSitemapBuilder(t *testing.T) {
	b := NewSitemapBuilder()
	if b.Len() != 0 {
		t.Errorf("new builder Len() = %d", b.Len())
	}

	lastMod := time.Date(2025, time.November, 9, 12, 0, 0, 0, time.UTC)
	b.Add("https://example.com/tr/", time.Time{}, ChangeFreqWeekly, "1.0", []AlternateLink{
		Alternate("tr", "https://example.com/tr/"),
		Alternate("en", "https://example.com/en/"),
		Alternate("x-default", "https://example.com/tr/"),
	})
	b.Add("https://example.com/tr/urunler/patlatma", lastMod, ChangeFreqMonthly, "0.8", nil)

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}

	data, err := b.Marshal()
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, xml.Header) {
		t.Error("missing XML header")
	}
	for _, want := range []string{
		`xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`,
		`xmlns:xhtml="http://www.w3.org/1999/xhtml"`,
		`<loc>https://example.com/tr/</loc>`,
		`<changefreq>weekly</changefreq>`,
		`<priority>1.0</priority>`,
		`<xhtml:link rel="alternate" hreflang="en" href="https://example.com/en/">`,
		`hreflang="x-default"`,
		`<lastmod>2025-11-09T12:00:00Z</lastmod>`,
		`<changefreq>monthly</changefreq>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("sitemap missing %q", want)
		}
	}
	// Entries without a last-modified date must omit the element.
	if strings.Contains(out, "<lastmod></lastmod>") {
		t.Error("empty lastmod element emitted")
	}
}

func TestBuildRobots(t *testing.T) {
	out := BuildRobots(RobotsConfig{SiteURL: "https://example.com/"})

	for _, want := range []string{
		"User-agent: *\n",
		"Disallow: /admin\n",
		"Disallow: /api/admin\n",
		"Allow: /\n",
		"Sitemap: https://example.com/sitemap.xml\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("robots.txt missing %q in:\n%s", want, out)
		}
	}
}

func TestBuildRobotsDisallowAll(t *testing.T) {
	out := BuildRobots(RobotsConfig{SiteURL: "https://example.com", DisallowAll: true})

	if !strings.Contains(out, "Disallow: /\n") {
		t.Errorf("staging robots.txt should disallow everything:\n%s", out)
	}
	if strings.Contains(out, "Sitemap:") {
		t.Error("staging robots.txt should not advertise the sitemap")
	}
}
