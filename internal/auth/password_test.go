// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	password := "correct-horse-battery-staple"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() = %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$") {
		t.Errorf("unexpected hash format: %s", hash)
	}

	ok, err := CheckPassword(password, hash)
	if err != nil {
		t.Fatalf("CheckPassword() = %v", err)
	}
	if !ok {
		t.Error("CheckPassword() = false for correct password")
	}

	ok, err = CheckPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("CheckPassword(wrong) = %v", err)
	}
	if ok {
		t.Error("CheckPassword() = true for wrong password")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() = %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() = %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical, salt not random")
	}
}

func TestCheckPasswordInvalidHash(t *testing.T) {
	invalid := []string{
		"",
		"not-a-hash",
		"$argon2i$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!badsalt!!$aGFzaA",
		"$argon2id$v=19$bad-params$c2FsdA$aGFzaA",
	}
	for _, h := range invalid {
		if _, err := CheckPassword("password", h); err == nil {
			t.Errorf("CheckPassword(%q) = nil error", h)
		}
	}
}

func TestDummyHashNeverMatches(t *testing.T) {
	for _, pw := range []string{"", "password", "admin", "dummy"} {
		ok, err := CheckPassword(pw, DummyHash)
		if err != nil {
			t.Fatalf("CheckPassword(%q, DummyHash) = %v", pw, err)
		}
		if ok {
			t.Errorf("CheckPassword(%q, DummyHash) = true", pw)
		}
	}
}
