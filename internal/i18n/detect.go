// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

// Package i18n resolves the active content language for a request.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/agrosan/site/internal/model"
)

// PrefCookieName is the cookie carrying the visitor's language preference.
const PrefCookieName = "agrosan_lang"

// cookieSecure is set at startup; secure cookies in production only.
var cookieSecure = true

// InitCookies configures language cookie security for the environment.
func InitCookies(isDev bool) {
	cookieSecure = !isDev
}

// matcher matches Accept-Language tags against the supported set.
// language.NewMatcher prefers earlier tags, and ParseAcceptLanguage
// returns tags sorted by descending quality weight, so the highest
// weighted supported language wins.
var (
	supportedTags = buildSupportedTags()
	matcher       = language.NewMatcher(supportedTags)
)

func buildSupportedTags() []language.Tag {
	tags := make([]language.Tag, 0, len(model.Languages))
	for _, l := range model.Languages {
		tags = append(tags, language.MustParse(l.Code))
	}
	return tags
}

// Detect resolves the request language. Priority order: explicit URL
// language prefix, weighted Accept-Language header, persisted cookie
// preference, then the fixed default. It never fails: the result is
// always a supported code.
func Detect(r *http.Request) string {
	if code, ok := FromPath(r.URL.Path); ok {
		return code
	}
	if code, ok := MatchAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		return code
	}
	if cookie, err := r.Cookie(PrefCookieName); err == nil {
		code := strings.ToLower(cookie.Value)
		if model.IsSupportedLang(code) {
			return code
		}
	}
	return model.DefaultLang
}

// FromPath extracts a supported language code from the first path segment.
func FromPath(path string) (string, bool) {
	seg := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(seg, '/'); i >= 0 {
		seg = seg[:i]
	}
	seg = strings.ToLower(seg)
	if model.IsSupportedLang(seg) {
		return seg, true
	}
	return "", false
}

// MatchAcceptLanguage finds the best supported language for an
// Accept-Language header. A malformed or empty header is treated as
// "no preference", never as an error.
func MatchAcceptLanguage(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(supportedTags) {
		return "", false
	}
	return supportedTags[idx].String(), true
}

// SetPrefCookie persists the visitor's language preference.
func SetPrefCookie(w http.ResponseWriter, code string) {
	http.SetCookie(w, &http.Cookie{
		Name:     PrefCookieName,
		Value:    code,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HttpOnly: true,
		Secure:   cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
