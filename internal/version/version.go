// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

// Package version reports the snapgen build identity.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/snapgen/cli/internal/version.Version=..."
// by the release build; a plain `go install module@version` build falls back
// to the embedded build info instead.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the one-line version report the version command prints.
func Info() string {
	v, commit, date := resolve()
	return fmt.Sprintf("snapgen version %s (commit: %s, built: %s, go: %s)",
		v, commit, date, runtime.Version())
}

// Short returns just the version string.
func Short() string {
	v, _, _ := resolve()
	return v
}

func resolve() (version, commit, date string) {
	version, commit, date = Version, Commit, Date

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit, date
	}
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "none" && len(s.Value) >= 7 {
				commit = s.Value[:7]
			}
		case "vcs.time":
			if date == "unknown" {
				date = s.Value
			}
		}
	}
	return version, commit, date
}
