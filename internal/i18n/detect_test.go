// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		acceptLang string
		cookie     string
		want       string
	}{
		{
			name: "path prefix wins",
			path: "/ru/produkty",
			want: "ru",
		},
		{
			name:       "path prefix beats header",
			path:       "/en/products",
			acceptLang: "ru-RU,ru;q=0.9",
			want:       "en",
		},
		{
			name:       "path prefix beats cookie",
			path:       "/tr/urunler",
			cookie:     "en",
			want:       "tr",
		},
		{
			name:       "header when no prefix",
			path:       "/",
			acceptLang: "ru-RU,en;q=0.5",
			want:       "ru",
		},
		{
			name:       "header quality ordering",
			path:       "/",
			acceptLang: "en;q=0.3,ru;q=0.9",
			want:       "ru",
		},
		{
			name:       "header with region subtag",
			path:       "/",
			acceptLang: "en-GB",
			want:       "en",
		},
		{
			name:       "unsupported header falls to cookie",
			path:       "/",
			acceptLang: "de-DE,fr;q=0.8",
			cookie:     "ru",
			want:       "ru",
		},
		{
			name:   "cookie when nothing else",
			path:   "/",
			cookie: "en",
			want:   "en",
		},
		{
			name:   "unsupported cookie falls to default",
			path:   "/",
			cookie: "de",
			want:   "tr",
		},
		{
			name: "bare default",
			path: "/",
			want: "tr",
		},
		{
			name:       "malformed header is no preference",
			path:       "/",
			acceptLang: ";;;===",
			want:       "tr",
		},
		{
			name: "unsupported path prefix ignored",
			path: "/xx/page",
			want: "tr",
		},
		{
			name: "uppercase path prefix",
			path: "/EN/products",
			want: "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.acceptLang != "" {
				req.Header.Set("Accept-Language", tt.acceptLang)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: PrefCookieName, Value: tt.cookie})
			}
			if got := Detect(req); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/tr/", "tr", true},
		{"/en", "en", true},
		{"/ru/novosti", "ru", true},
		{"/", "", false},
		{"", "", false},
		{"/xx/page", "", false},
		{"/english/page", "", false},
		{"/TR/urunler", "tr", true},
	}

	for _, tt := range tests {
		got, ok := FromPath(tt.path)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FromPath(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
		wantOK bool
	}{
		{"tr", "tr", true},
		{"ru;q=0.9", "ru", true},
		{"en-US,en;q=0.9", "en", true},
		{"ru-RU,en;q=0.5", "ru", true},
		{"de,fr", "", false},
		{"", "", false},
		{"garbage;;;", "", false},
	}

	for _, tt := range tests {
		got, ok := MatchAcceptLanguage(tt.header)
		if ok != tt.wantOK {
			t.Errorf("MatchAcceptLanguage(%q) ok = %v, want %v", tt.header, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("MatchAcceptLanguage(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestSetPrefCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	SetPrefCookie(rr, "ru")

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != PrefCookieName {
		t.Errorf("cookie name = %q, want %q", c.Name, PrefCookieName)
	}
	if c.Value != "ru" {
		t.Errorf("cookie value = %q, want ru", c.Value)
	}
	if c.Path != "/" {
		t.Errorf("cookie path = %q, want /", c.Path)
	}
	if !c.HttpOnly {
		t.Error("cookie should be HttpOnly")
	}
	if c.MaxAge <= 0 {
		t.Error("cookie MaxAge should be positive")
	}
}
