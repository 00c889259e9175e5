// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session configures the admin session manager.
package session

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
)

// New creates a session manager backed by the in-memory store. Sessions
// only exist for the handful of admin users, so the default memstore is
// enough; a restart just logs editors out.
func New(isDev bool) *scs.SessionManager {
	sm := scs.New()

	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev // Secure cookies in production only

	return sm
}
