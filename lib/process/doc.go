// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process reports fatal errors and terminates the process.
//
// Every entrypoint in this repository ends the same way on failure:
// one line on stderr of the form
//
//	<bold><red>Error:<reset> <error text>
//
// followed by exit status 1. [Abort] is that operation. It never
// returns to its caller. The style strings come from lib/term and are
// empty when stderr cannot display color.
//
// [Aborter] exposes the three collaborators Abort depends on (output
// writer, style, exit handler) so tests can capture the line and trap
// the exit without spawning a subprocess. A substituted exit handler
// must not return; runtime.Goexit is the usual choice in tests.
//
// [Exit] is the dispatch used at the bottom of main(): it lets a
// command that already printed its own output exit with a chosen code
// via [ExitError], and routes every other error through [Fatal].
package process
