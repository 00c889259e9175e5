// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for language detection,
// legacy redirects, authentication and request plumbing.
package middleware

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string
