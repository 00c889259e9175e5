// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the content data structures persisted as flat
// JSON documents and shared by the router, renderer and admin API.
package model

// Localized is a per-language string value, keyed by language code.
// Documents store every translatable field as a Localized map.
type Localized map[string]string

// Resolve returns the value for lang, falling back through the given
// fallback codes in order, then to the last-resort literal def.
// A single explicit fallback chain replaces ad hoc "x[lang] || x[tr]"
// expressions at call sites.
func (l Localized) Resolve(lang string, fallbacks []string, def string) string {
	if l == nil {
		return def
	}
	if v, ok := l[lang]; ok && v != "" {
		return v
	}
	for _, fb := range fallbacks {
		if v, ok := l[fb]; ok && v != "" {
			return v
		}
	}
	return def
}

// Get returns the value for lang with the standard chain: requested
// language, then the default language, then empty string.
func (l Localized) Get(lang string) string {
	return l.Resolve(lang, []string{DefaultLang}, "")
}
