// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Supported language codes. Turkish is the site default.
const (
	LangTurkish = "tr"
	LangEnglish = "en"
	LangRussian = "ru"

	DefaultLang = LangTurkish
)

// Language represents one of the site's content languages.
type Language struct {
	Code       string `json:"code"`        // ISO 639-1: tr, en, ru
	Name       string `json:"name"`        // Turkish, English, Russian
	NativeName string `json:"native_name"` // Türkçe, English, Русский
	IsDefault  bool   `json:"is_default"`
}

// Languages lists the supported languages in switcher order. The set is
// fixed: content documents carry translations for exactly these codes, and
// the URL resolver only accepts these prefixes.
var Languages = []Language{
	{Code: LangTurkish, Name: "Turkish", NativeName: "Türkçe", IsDefault: true},
	{Code: LangEnglish, Name: "English", NativeName: "English"},
	{Code: LangRussian, Name: "Russian", NativeName: "Русский"},
}

// LanguageCodes returns the supported language codes in order.
func LanguageCodes() []string {
	codes := make([]string, 0, len(Languages))
	for _, l := range Languages {
		codes = append(codes, l.Code)
	}
	return codes
}

// IsSupportedLang reports whether code is one of the supported languages.
func IsSupportedLang(code string) bool {
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}
