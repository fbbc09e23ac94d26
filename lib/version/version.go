// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the semantic version. This is set manually for releases.
var Version = "0.1.0-dev"

// Build describes the VCS state a binary was built from.
type Build struct {
	Commit string
	Dirty  bool
}

// ReadBuild returns the embedded VCS stamp. Missing fields are
// reported as "unknown" and clean.
func ReadBuild() Build {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Build{Commit: "unknown"}
	}
	return buildFromSettings(info.Settings)
}

func buildFromSettings(settings []debug.BuildSetting) Build {
	build := Build{Commit: "unknown"}
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			build.Commit = shortCommit(setting.Value)
		case "vcs.modified":
			build.Dirty = setting.Value == "true"
		}
	}
	return build
}

func shortCommit(revision string) string {
	if len(revision) > 12 {
		return revision[:12]
	}
	return revision
}

// Info returns a formatted version string suitable for --version output.
func Info() string {
	return format(Version, ReadBuild())
}

func format(version string, build Build) string {
	dirty := ""
	if build.Dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s)", version, build.Commit, dirty)
}
