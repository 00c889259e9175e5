// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"strings"

	"github.com/agrosan/site/internal/model"
)

// StripTrailingSlash redirects URLs with trailing slashes to their
// non-trailing equivalents (HTTP 301). The bare root "/" and the localized
// home pages "/{lang}/" keep their slash: the language root is the
// canonical home URL.
func StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if path != "/" && strings.HasSuffix(path, "/") && !isLangRoot(path) {
			newURL := strings.TrimSuffix(path, "/")
			if r.URL.RawQuery != "" {
				newURL += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, newURL, http.StatusMovedPermanently)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isLangRoot(path string) bool {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(path, "/"), "/")
	return model.IsSupportedLang(strings.ToLower(trimmed))
}
