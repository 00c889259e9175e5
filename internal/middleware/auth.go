// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/agrosan/site/internal/model"
	"github.com/agrosan/site/internal/store"
)

// Context keys for user data.
const ContextKeyUser ContextKey = "user"

// SessionKeyUserEmail stores the authenticated editor's email in the session.
const SessionKeyUserEmail = "user_email"

// LoginPath is where unauthenticated admin requests are sent.
const LoginPath = "/admin/login"

// Auth creates middleware that requires an authenticated session.
// Browser requests are redirected to the login page; JSON API requests get
// a 401 instead, since a redirect would confuse fetch callers.
func Auth(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := sm.GetString(r.Context(), SessionKeyUserEmail)
			if email == "" {
				if wantsJSON(r) {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					w.Write([]byte(`{"error":"authentication required"}`))
					return
				}
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LoadUser creates middleware that loads the current user into the request
// context. Use after Auth; a session pointing at a deleted user is
// destroyed and sent back to login.
func LoadUser(sm *scs.SessionManager, st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := sm.GetString(r.Context(), SessionKeyUserEmail)
			if email == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := st.UserByEmail(email)
			if err != nil {
				_ = sm.Destroy(r.Context())
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser retrieves the current user from the request context.
// Returns nil if no user is in context.
func GetUser(r *http.Request) *model.User {
	user, ok := r.Context().Value(ContextKeyUser).(model.User)
	if !ok {
		return nil
	}
	return &user
}

func wantsJSON(r *http.Request) bool {
	return len(r.URL.Path) >= 5 && r.URL.Path[:5] == "/api/"
}
