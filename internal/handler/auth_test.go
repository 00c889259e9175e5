// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/agrosan/site/internal/auth"
	"github.com/agrosan/site/internal/middleware"
	"github.com/agrosan/site/internal/model"
	"github.com/agrosan/site/internal/session"
	"github.com/agrosan/site/internal/store"
)

const testAdminPassword = "correct-horse-battery-staple"

func newAuthEnv(t *testing.T) http.Handler {
	t.Helper()

	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("store.New() = %v", err)
	}
	hash, err := auth.HashPassword(testAdminPassword)
	if err != nil {
		t.Fatalf("HashPassword() = %v", err)
	}
	if err := st.SaveUsers([]model.User{{Email: "admin@agrosan.example", Name: "Admin", PasswordHash: hash}}); err != nil {
		t.Fatalf("SaveUsers() = %v", err)
	}

	templates := fstest.MapFS{
		"admin/login.html": {Data: []byte("<html><body>login form</body></html>")},
	}
	sm := session.New(true)
	h := NewAuth(st, sm, middleware.NewLoginProtection(), templates)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/login", h.LoginForm)
	mux.HandleFunc("POST /admin/login", h.Login)
	mux.HandleFunc("GET /admin/logout", h.Logout)
	return sm.LoadAndSave(mux)
}

func postLogin(handler http.Handler, email, password string) *httptest.ResponseRecorder {
	form := url.Values{"email": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestLoginSuccess(t *testing.T) {
	handler := newAuthEnv(t)

	rr := postLogin(handler, "Admin@Agrosan.example", testAdminPassword)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/admin/" {
		t.Errorf("Location = %q, want /admin/", loc)
	}
	if len(rr.Result().Cookies()) == 0 {
		t.Error("no session cookie issued")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	handler := newAuthEnv(t)

	rr := postLogin(handler, "admin@agrosan.example", "wrong")
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/admin/login?error=1" {
		t.Errorf("Location = %q", loc)
	}
}

// Unknown accounts get the same redirect as wrong passwords.
func TestLoginUnknownAccount(t *testing.T) {
	handler := newAuthEnv(t)

	rr := postLogin(handler, "nobody@agrosan.example", "whatever")
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/admin/login?error=1" {
		t.Errorf("Location = %q", loc)
	}
}

func TestLoginMissingCredentials(t *testing.T) {
	handler := newAuthEnv(t)

	rr := postLogin(handler, "", "")
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); !strings.Contains(loc, "error=1") {
		t.Errorf("Location = %q", loc)
	}
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	handler := newAuthEnv(t)

	var got429 bool
	for i := 0; i < 7; i++ {
		rr := postLogin(handler, "admin@agrosan.example", "wrong")
		if rr.Code == http.StatusTooManyRequests {
			got429 = true
			break
		}
	}
	if !got429 {
		t.Error("account never locked out")
	}
	// Correct credentials are rejected while locked.
	if rr := postLogin(handler, "admin@agrosan.example", testAdminPassword); rr.Code != http.StatusTooManyRequests {
		t.Errorf("locked account login status = %d, want 429", rr.Code)
	}
}

func TestLoginForm(t *testing.T) {
	handler := newAuthEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "login form") {
		t.Error("login page not served")
	}
}

func TestLogout(t *testing.T) {
	handler := newAuthEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != middleware.LoginPath {
		t.Errorf("Location = %q, want %q", loc, middleware.LoginPath)
	}
}
