// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mileusna/useragent"
)

// RequestLog logs each request with status, duration and a parsed client
// summary. Static assets and upload fetches are skipped to keep the log
// focused on page and API traffic.
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAssetPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		ua := useragent.Parse(r.UserAgent())
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"ip", ClientIP(r),
			"browser", ua.Name,
			"os", ua.OS,
			"device", deviceType(ua),
		)
	})
}

func isAssetPath(path string) bool {
	return strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/uploads/")
}

func deviceType(ua useragent.UserAgent) string {
	switch {
	case ua.Mobile:
		return "mobile"
	case ua.Tablet:
		return "tablet"
	case ua.Bot:
		return "bot"
	default:
		return "desktop"
	}
}
