// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginProtection combines per-IP rate limiting with per-account lockout
// for the admin login form.
type LoginProtection struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rps      rate.Limit
	burst    int

	attempts   map[string]*loginAttempt
	attemptsMu sync.Mutex

	maxFailedAttempts int
	lockoutDuration   time.Duration
	attemptWindow     time.Duration
}

type loginAttempt struct {
	count       int
	firstFailed time.Time
	lockedUntil time.Time
}

// NewLoginProtection creates login protection with the given limits.
// Defaults: 1 request per 2 seconds with burst 5, lockout after 5 failures
// within 15 minutes.
func NewLoginProtection() *LoginProtection {
	return &LoginProtection{
		limiters:          make(map[string]*rate.Limiter),
		rps:               rate.Limit(0.5),
		burst:             5,
		attempts:          make(map[string]*loginAttempt),
		maxFailedAttempts: 5,
		lockoutDuration:   15 * time.Minute,
		attemptWindow:     15 * time.Minute,
	}
}

func (lp *LoginProtection) limiter(ip string) *rate.Limiter {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	lim, ok := lp.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(lp.rps, lp.burst)
		lp.limiters[ip] = lim
		if len(lp.limiters) > 10000 {
			lp.limiters = map[string]*rate.Limiter{ip: lim}
		}
	}
	return lim
}

// IsAccountLocked reports whether an account is locked and for how much
// longer.
func (lp *LoginProtection) IsAccountLocked(email string) (bool, time.Duration) {
	lp.attemptsMu.Lock()
	defer lp.attemptsMu.Unlock()

	a, ok := lp.attempts[email]
	if !ok {
		return false, 0
	}
	if time.Now().Before(a.lockedUntil) {
		return true, time.Until(a.lockedUntil)
	}
	return false, 0
}

// RecordFailedAttempt records a failed login. Returns true when the account
// is now locked.
func (lp *LoginProtection) RecordFailedAttempt(email string) bool {
	lp.attemptsMu.Lock()
	defer lp.attemptsMu.Unlock()

	now := time.Now()
	a, ok := lp.attempts[email]
	if !ok || now.Sub(a.firstFailed) > lp.attemptWindow {
		lp.attempts[email] = &loginAttempt{count: 1, firstFailed: now}
		return false
	}

	a.count++
	if a.count >= lp.maxFailedAttempts {
		a.lockedUntil = now.Add(lp.lockoutDuration)
		a.count = 0
		slog.Warn("account locked after failed logins", "email", email, "duration", lp.lockoutDuration)
		return true
	}
	return false
}

// RecordSuccessfulLogin clears failure tracking for an account.
func (lp *LoginProtection) RecordSuccessfulLogin(email string) {
	lp.attemptsMu.Lock()
	defer lp.attemptsMu.Unlock()
	delete(lp.attempts, email)
}

// Middleware rate limits login POSTs per client IP.
func (lp *LoginProtection) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			ip := ClientIP(r)
			if !lp.limiter(ip).Allow() {
				slog.Warn("login rate limit exceeded", "ip", ip)
				http.Error(w, "Too many requests. Please wait a moment and try again.",
					http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP extracts the client IP, honoring reverse proxy headers.
func ClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
