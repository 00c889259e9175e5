// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLanguageMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		acceptLang string
		want       string
	}{
		{name: "from path", path: "/ru/novosti", want: "ru"},
		{name: "from header", path: "/", acceptLang: "en-US,en;q=0.9", want: "en"},
		{name: "path beats header", path: "/tr/urunler", acceptLang: "ru", want: "tr"},
		{name: "default", path: "/", want: "tr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = LangFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.acceptLang != "" {
				req.Header.Set("Accept-Language", tt.acceptLang)
			}
			Language(next).ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("LangFromContext() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLangFromContextFallback(t *testing.T) {
	if got := LangFromContext(context.Background()); got != "tr" {
		t.Errorf("LangFromContext(empty ctx) = %q, want tr", got)
	}
}
