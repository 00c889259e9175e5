// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func TestLocalizedResolve(t *testing.T) {
	l := Localized{"tr": "Ürünler", "en": "Products", "ru": ""}

	tests := []struct {
		name      string
		lang      string
		fallbacks []string
		def       string
		want      string
	}{
		{name: "direct hit", lang: "en", fallbacks: []string{"tr"}, want: "Products"},
		{name: "empty value falls through", lang: "ru", fallbacks: []string{"tr"}, want: "Ürünler"},
		{name: "fallback order", lang: "ru", fallbacks: []string{"en", "tr"}, want: "Products"},
		{name: "missing everywhere uses def", lang: "de", fallbacks: []string{"fr"}, def: "n/a", want: "n/a"},
		{name: "no fallbacks", lang: "de", def: "-", want: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Resolve(tt.lang, tt.fallbacks, tt.def); got != tt.want {
				t.Errorf("Resolve(%q, %v, %q) = %q, want %q", tt.lang, tt.fallbacks, tt.def, got, tt.want)
			}
		})
	}
}

func TestLocalizedResolveNil(t *testing.T) {
	var l Localized
	if got := l.Resolve("tr", []string{"en"}, "def"); got != "def" {
		t.Errorf("nil Resolve = %q, want def", got)
	}
	if got := l.Get("tr"); got != "" {
		t.Errorf("nil Get = %q, want empty", got)
	}
}

func TestLocalizedGet(t *testing.T) {
	l := Localized{"tr": "Haberler", "en": "News"}

	if got := l.Get("en"); got != "News" {
		t.Errorf("Get(en) = %q", got)
	}
	// Missing language falls back to the default language, then empty.
	if got := l.Get("ru"); got != "Haberler" {
		t.Errorf("Get(ru) = %q, want default-language value", got)
	}
	if got := (Localized{"en": "Only"}).Get("ru"); got != "" {
		t.Errorf("Get without default translation = %q, want empty", got)
	}
}

func TestIsSupportedLang(t *testing.T) {
	for _, code := range LanguageCodes() {
		if !IsSupportedLang(code) {
			t.Errorf("IsSupportedLang(%q) = false", code)
		}
	}
	for _, code := range []string{"", "de", "TR", "tur"} {
		if IsSupportedLang(code) {
			t.Errorf("IsSupportedLang(%q) = true", code)
		}
	}
}

func TestDefaultLangIsFirst(t *testing.T) {
	if Languages[0].Code != DefaultLang || !Languages[0].IsDefault {
		t.Errorf("first language = %+v, want default %q", Languages[0], DefaultLang)
	}
}
