// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build information for --version output.
//
// [Version] is injected at release time via -ldflags -X:
//
//	go build -ldflags "-X github.com/bureau-foundation/manage/lib/version.Version=1.2.0"
//
// The commit and dirty state are read from the VCS stamp the Go
// toolchain embeds in binaries built inside a checkout. Test binaries
// and builds outside a checkout carry no stamp and report "unknown".
package version
