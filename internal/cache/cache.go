// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache provides the byte-value cache used for rendered templates
// and the generated sitemap. A memory backend is the default; Redis can be
// configured for multi-instance deployments.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for cache backends. All implementations must be
// thread-safe. Values are []byte so memory and Redis backends are
// interchangeable.
type Cache interface {
	// Get retrieves a value. Returns ErrCacheMiss if absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value. A zero TTL uses the backend default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// Error represents an error type for cache operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrCacheMiss indicates the key was not found or has expired.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheClosed indicates the cache has been closed.
	ErrCacheClosed Error = "cache closed"
)
