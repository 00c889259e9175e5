// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/agrosan/site/internal/auth"
	"github.com/agrosan/site/internal/middleware"
	"github.com/agrosan/site/internal/store"
)

// Auth handles admin login and logout.
type Auth struct {
	store           *store.Store
	sessionManager  *scs.SessionManager
	loginProtection *middleware.LoginProtection
	templates       fs.FS
}

// NewAuth creates the authentication handler. templates must contain
// admin/login.html.
func NewAuth(st *store.Store, sm *scs.SessionManager, lp *middleware.LoginProtection, templates fs.FS) *Auth {
	return &Auth{
		store:           st,
		sessionManager:  sm,
		loginProtection: lp,
		templates:       templates,
	}
}

// LoginForm renders the login page. Authenticated users go straight to the
// dashboard.
func (h *Auth) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.sessionManager.GetString(r.Context(), middleware.SessionKeyUserEmail) != "" {
		http.Redirect(w, r, "/admin/", http.StatusSeeOther)
		return
	}

	page, err := fs.ReadFile(h.templates, "admin/login.html")
	if err != nil {
		slog.Error("loading login page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// Login handles the login form POST.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(strings.ToLower(r.PostFormValue("email")))
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		h.loginFailed(w, r, email, "missing credentials")
		return
	}

	if locked, remaining := h.loginProtection.IsAccountLocked(email); locked {
		slog.Warn("login attempt on locked account", "email", email)
		http.Error(w, fmt.Sprintf("Account temporarily locked. Try again in %s.", remaining.Round(1e9)),
			http.StatusTooManyRequests)
		return
	}

	user, err := h.store.UserByEmail(email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Error("loading user", "error", err)
		}
		// Burn a verification anyway so missing accounts cost the same as
		// wrong passwords.
		_, _ = auth.CheckPassword(password, auth.DummyHash)
		h.loginFailed(w, r, email, "unknown account")
		return
	}

	ok, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil || !ok {
		h.loginFailed(w, r, email, "wrong password")
		return
	}

	// Rotate the session token to prevent fixation.
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		slog.Error("renewing session token", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.sessionManager.Put(r.Context(), middleware.SessionKeyUserEmail, user.Email)
	h.loginProtection.RecordSuccessfulLogin(email)

	slog.Info("user logged in", "email", user.Email)
	http.Redirect(w, r, "/admin/", http.StatusSeeOther)
}

// Logout destroys the session and returns to the login page.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("destroying session", "error", err)
	}
	http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
}

func (h *Auth) loginFailed(w http.ResponseWriter, r *http.Request, email, reason string) {
	slog.Warn("login failed", "email", email, "reason", reason, "ip", middleware.ClientIP(r))
	if email != "" {
		h.loginProtection.RecordFailedAttempt(email)
	}
	http.Redirect(w, r, middleware.LoginPath+"?error=1", http.StatusSeeOther)
}
