// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"strings"
	"testing"

	"github.com/agrosan/site/internal/router"
)

func TestInjectBeforeHeadClose(t *testing.T) {
	html := "<html><head><title>x</title></head><body></body></html>"
	got := injectBeforeHeadClose(html, "<meta>")
	want := "<html><head><title>x</title><meta></head><body></body></html>"
	if got != want {
		t.Errorf("injectBeforeHeadClose() = %q, want %q", got, want)
	}

	// No head section: markup is dropped, page still serves.
	plain := "<html><body></body></html>"
	if got := injectBeforeHeadClose(plain, "<meta>"); got != plain {
		t.Errorf("injectBeforeHeadClose(no head) = %q, want unchanged", got)
	}

	// Case-insensitive marker.
	upper := "<HTML><HEAD></HEAD></HTML>"
	if got := injectBeforeHeadClose(upper, "<meta>"); !strings.Contains(got, "<meta></HEAD>") {
		t.Errorf("injectBeforeHeadClose(upper) = %q", got)
	}
}

// Turkish 'İ' grows by a byte when lowercased, so offsets found on a
// lowercased copy would point into the middle of the preceding markup.
func TestInjectBeforeHeadCloseMultibyteTitle(t *testing.T) {
	html := "<html><head><title>İLETİŞİM</title></head><body></body></html>"
	got := injectBeforeHeadClose(html, "<meta>")
	want := "<html><head><title>İLETİŞİM</title><meta></head><body></body></html>"
	if got != want {
		t.Errorf("injectBeforeHeadClose() = %q, want %q", got, want)
	}
}

func TestSetLangAttr(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		lang  string
		want  string
	}{
		{
			name: "replaces existing attribute",
			html: `<html lang="tr"><head></head></html>`,
			lang: "ru",
			want: `<html lang="ru"><head></head></html>`,
		},
		{
			name: "inserts missing attribute",
			html: `<html><head></head></html>`,
			lang: "en",
			want: `<html lang="en"><head></head></html>`,
		},
		{
			name: "keeps other attributes",
			html: `<html dir="ltr" lang="tr"><head></head></html>`,
			lang: "en",
			want: `<html dir="ltr" lang="en"><head></head></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := setLangAttr(tt.html, tt.lang); got != tt.want {
				t.Errorf("setLangAttr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildHeadTags(t *testing.T) {
	alts := []router.Alternate{
		{Lang: "tr", URL: "https://example.com/tr/urunler"},
		{Lang: "en", URL: "https://example.com/en/products"},
		{Lang: router.XDefault, URL: "https://example.com/tr/urunler"},
	}
	got := buildHeadTags(alts, "https://example.com/en/products")

	for _, want := range []string{
		`hreflang="tr" href="https://example.com/tr/urunler"`,
		`hreflang="en" href="https://example.com/en/products"`,
		`hreflang="x-default" href="https://example.com/tr/urunler"`,
		`rel="canonical" href="https://example.com/en/products"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("buildHeadTags() missing %q in %q", want, got)
		}
	}
}

func TestBuildPageDataScript(t *testing.T) {
	d := &router.Descriptor{
		Lang:      "en",
		Kind:      router.PageProductDetail,
		PageID:    "products",
		ProductID: "patlatma",
	}
	got := buildPageDataScript(d)

	for _, want := range []string{
		`window.__PAGE_DATA__ = `,
		`"lang":"en"`,
		`"page_id":"products"`,
		`"product_id":"patlatma"`,
		`"news_slug":null`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("buildPageDataScript() missing %q in %q", want, got)
		}
	}
}

// The payload must not be able to terminate the script element.
func TestBuildPageDataScriptEscapesClosingTags(t *testing.T) {
	d := &router.Descriptor{
		Lang:     "tr",
		Kind:     router.PageNewsDetail,
		PageID:   "news",
		NewsSlug: "</script><script>alert(1)",
	}
	got := buildPageDataScript(d)

	start := strings.Index(got, "= ")
	end := strings.LastIndex(got, ";</script>")
	if start < 0 || end < 0 {
		t.Fatalf("unexpected script shape: %q", got)
	}
	payload := got[start+2 : end]
	if strings.Contains(payload, "</") {
		t.Errorf("payload contains a literal closing tag: %q", payload)
	}
}
