// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"strings"

	"github.com/agrosan/site/internal/router"
)

// ResolverProvider yields a URL resolver over the current slug catalog
// snapshot. Called once per redirected request so legacy product links pick
// up slug edits without a restart.
type ResolverProvider func() *router.Resolver

// LegacyRedirect issues permanent redirects for pre-internationalization
// flat file URLs and negotiates the bare root to the detected language's
// home page. API, admin and asset paths pass through untouched.
func LegacyRedirect(provide ResolverProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			path := r.URL.Path
			if skipRedirect(path) {
				next.ServeHTTP(w, r)
				return
			}

			lang := LangFromContext(r.Context())

			// Root carries no language; negotiate and redirect temporarily so
			// a later visit with a different preference is honored.
			if path == "/" {
				http.Redirect(w, r, "/"+lang+"/", http.StatusFound)
				return
			}

			if target, ok := provide().ResolveLegacy(path, r.URL.Query(), lang); ok {
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func skipRedirect(path string) bool {
	for _, prefix := range []string{"/api/", "/admin", "/static/", "/uploads/"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
