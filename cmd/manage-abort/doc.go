// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// manage-abort reports a fatal error from a shell script in the same
// format Go binaries use, then exits with status 1:
//
//	build || manage-abort "build failed for $target"
//
// prints "Error: build failed for ..." to stderr, with "Error:" in bold
// red when stderr is a color terminal. The color choice comes from
// --color, then the color key of the config file (--config or
// MANAGE_CONFIG), then auto-detection.
//
// Argument and configuration errors exit with status 2 so callers can
// tell a misused helper from the error it was asked to report.
package main
