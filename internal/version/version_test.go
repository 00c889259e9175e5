// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package version

import "testing"

func TestNew(t *testing.T) {
	info := New("v1.2.0", "abc1234", "2026-08-30T12:00:00Z")

	if info.Version != "v1.2.0" {
		t.Errorf("Version = %q, want v1.2.0", info.Version)
	}
	want := "v1.2.0 (commit: abc1234, built: 2026-08-30T12:00:00Z)"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewDefaults(t *testing.T) {
	info := New("", "", "")

	if got := info.String(); got != "dev (commit: unknown, built: unknown)" {
		t.Errorf("String() = %q", got)
	}
}
