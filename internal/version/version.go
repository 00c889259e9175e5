// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

// Package version carries the build metadata stamped into the agrosan
// binary with -ldflags.
package version

import "fmt"

// Info describes one build of the server.
type Info struct {
	Version   string // git tag, e.g. "v1.2.3"
	GitCommit string // short commit hash
	BuildTime string // RFC3339 timestamp
}

// New normalizes empty fields to placeholders so a plain `go build`
// without ldflags still reports something readable.
func New(version, commit, buildTime string) *Info {
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	if buildTime == "" {
		buildTime = "unknown"
	}
	return &Info{Version: version, GitCommit: commit, BuildTime: buildTime}
}

// String is the single-line form used by the -version flag and the
// startup log.
func (i *Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", i.Version, i.GitCommit, i.BuildTime)
}
