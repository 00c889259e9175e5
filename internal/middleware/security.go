// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"strconv"
)

// SecurityHeadersConfig holds configuration for security headers.
type SecurityHeadersConfig struct {
	// IsDevelopment disables HSTS so local HTTP works.
	IsDevelopment bool

	// ContentSecurityPolicy is the CSP header value. Empty disables the
	// header.
	ContentSecurityPolicy string

	// HSTSMaxAge is the max-age for Strict-Transport-Security in seconds.
	// Zero disables HSTS.
	HSTSMaxAge int
}

// DefaultSecurityHeadersConfig returns the policy used by the public site.
// Page content is rendered client-side from same-origin JSON, so the CSP
// only has to admit self plus inline page-data scripts.
func DefaultSecurityHeadersConfig(isDev bool) SecurityHeadersConfig {
	return SecurityHeadersConfig{
		IsDevelopment: isDev,
		HSTSMaxAge:    31536000, // 1 year
		ContentSecurityPolicy: "default-src 'self'; " +
			"script-src 'self' 'unsafe-inline'; " +
			"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; " +
			"font-src 'self' https://fonts.gstatic.com; " +
			"img-src 'self' data:; " +
			"object-src 'none'; base-uri 'self'; form-action 'self'",
	}
}

// SecurityHeaders returns a middleware that adds security headers to
// responses.
func SecurityHeaders(cfg SecurityHeadersConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.ContentSecurityPolicy != "" {
				w.Header().Set("Content-Security-Policy", cfg.ContentSecurityPolicy)
			}
			if !cfg.IsDevelopment && cfg.HSTSMaxAge > 0 {
				w.Header().Set("Strict-Transport-Security",
					"max-age="+strconv.Itoa(cfg.HSTSMaxAge)+"; includeSubDomains")
			}
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "SAMEORIGIN")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			next.ServeHTTP(w, r)
		})
	}
}
