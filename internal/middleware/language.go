// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"

	"github.com/agrosan/site/internal/i18n"
	"github.com/agrosan/site/internal/model"
)

// LangKey is the context key under which the detected language code is stored.
const LangKey ContextKey = "lang"

// Language detects the request language and stores it in the request context.
// Detection order: URL prefix, Accept-Language header, preference cookie,
// then the site default.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.Detect(r)
		ctx := context.WithValue(r.Context(), LangKey, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LangFromContext returns the language code stored by Language. It falls
// back to the site default when the middleware did not run.
func LangFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(LangKey).(string); ok && lang != "" {
		return lang
	}
	return model.DefaultLang
}
