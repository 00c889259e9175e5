// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import "strings"

// RobotsConfig holds configuration for robots.txt generation.
type RobotsConfig struct {
	SiteURL     string // Base URL for the sitemap reference
	DisallowAll bool   // Block all crawlers (for staging sites)
}

// BuildRobots generates the robots.txt content.
func BuildRobots(cfg RobotsConfig) string {
	var sb strings.Builder

	sb.WriteString("User-agent: *\n")

	if cfg.DisallowAll {
		sb.WriteString("Disallow: /\n")
		return sb.String()
	}

	for _, path := range []string{"/admin", "/api/admin", "/uploads/tmp"} {
		sb.WriteString("Disallow: ")
		sb.WriteString(path)
		sb.WriteString("\n")
	}
	sb.WriteString("Allow: /\n")

	if cfg.SiteURL != "" {
		sb.WriteString("\nSitemap: ")
		sb.WriteString(strings.TrimSuffix(cfg.SiteURL, "/"))
		sb.WriteString("/sitemap.xml\n")
	}

	return sb.String()
}
