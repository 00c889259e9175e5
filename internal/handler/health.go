// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/agrosan/site/internal/cache"
	"github.com/agrosan/site/internal/store"
	"github.com/agrosan/site/internal/version"
)

// Health reports service liveness plus data directory and cache checks.
type Health struct {
	store     *store.Store
	cache     cache.Cache
	version   *version.Info
	startTime time.Time
}

// NewHealth creates the health check handler.
func NewHealth(st *store.Store, c cache.Cache, v *version.Info) *Health {
	return &Health{store: st, cache: c, version: v, startTime: time.Now()}
}

// healthCheck is a single subsystem probe result.
type healthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Check handles GET /health.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	checks := map[string]healthCheck{
		"data":  h.checkData(),
		"cache": h.checkCache(r),
	}

	status := "healthy"
	code := http.StatusOK
	for _, c := range checks {
		if c.Status != "ok" {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}

	w.WriteHeader(code)
	writeJSON(w, map[string]any{
		"status":    status,
		"version":   h.version.Version,
		"uptime":    time.Since(h.startTime).Round(time.Second).String(),
		"timestamp": time.Now().UTC(),
		"checks":    checks,
	})
}

// checkData verifies the data directory is writable, since every admin
// save goes through a temp file there.
func (h *Health) checkData() healthCheck {
	start := time.Now()
	probe := filepath.Join(h.store.Dir(), ".health")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return healthCheck{Status: "error", Message: err.Error()}
	}
	_ = os.Remove(probe)
	return healthCheck{Status: "ok", Latency: time.Since(start).String()}
}

func (h *Health) checkCache(r *http.Request) healthCheck {
	start := time.Now()
	key := "health:probe"
	if err := h.cache.Set(r.Context(), key, []byte("ok"), time.Minute); err != nil {
		return healthCheck{Status: "error", Message: err.Error()}
	}
	if _, err := h.cache.Get(r.Context(), key); err != nil {
		return healthCheck{Status: "error", Message: err.Error()}
	}
	_ = h.cache.Delete(r.Context(), key)
	return healthCheck{Status: "ok", Latency: time.Since(start).String()}
}
