// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"strings"

	"github.com/agrosan/site/internal/model"
)

// XDefault is the hreflang marker for the language-neutral default entry.
const XDefault = "x-default"

// Alternate is one entry of the per-language alternate URL set used for
// hreflang and canonical tags.
type Alternate struct {
	Lang string // language code or XDefault
	URL  string // fully qualified
}

// Alternates computes the full alternate URL set for a descriptor: exactly
// one entry per supported language plus the x-default marker pointing at
// the default language's URL. Computed on demand for every render; never
// cached across requests.
func (r *Resolver) Alternates(d *Descriptor, siteURL string) []Alternate {
	siteURL = strings.TrimSuffix(siteURL, "/")

	alts := make([]Alternate, 0, len(model.Languages)+1)
	for _, l := range model.Languages {
		alts = append(alts, Alternate{
			Lang: l.Code,
			URL:  siteURL + r.BuildFor(d, l.Code),
		})
	}
	alts = append(alts, Alternate{
		Lang: XDefault,
		URL:  siteURL + r.BuildFor(d, model.DefaultLang),
	})
	return alts
}

// Canonical returns the descriptor's own fully qualified URL in its
// resolved language.
func (r *Resolver) Canonical(d *Descriptor, siteURL string) string {
	return strings.TrimSuffix(siteURL, "/") + r.BuildFor(d, d.Lang)
}
