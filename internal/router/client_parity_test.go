// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"os/exec"
	"testing"
)

// The browser resolver must agree with the Go resolver on every shared
// fixture case. The harness loads web/static/js/i18n.js with a seeded
// catalog and replays testdata/urlcases.json through it.
func TestClientResolverParity(t *testing.T) {
	node, err := exec.LookPath("node")
	if err != nil {
		t.Skip("node not installed")
	}

	cmd := exec.Command(node,
		"testdata/i18n_harness.js",
		"../../web/static/js/i18n.js",
		"testdata/urlcases.json",
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("client resolver disagrees with the shared fixtures:\n%s", out)
	}
}
