// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package term supplies the terminal control strings used to style
// fatal error lines: bold, red, and reset.
//
// A [Style] is three opaque strings that callers concatenate verbatim
// around the text they want styled. [ANSI] returns the SGR escape
// sequences and [Plain] returns empty strings for output that must not
// carry escapes (pipes, log files, NO_COLOR terminals).
//
// [ForFile] picks between the two according to a [ColorMode]. In
// [ColorAuto] mode the decision is delegated to termenv's environment
// detection, which accounts for TTY-ness, TERM, NO_COLOR, and
// CLICOLOR_FORCE.
//
// This package has no Bureau-internal dependencies.
package term
