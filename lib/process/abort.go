// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"io"
	"os"

	"github.com/bureau-foundation/manage/lib/term"
)

// FailureExitCode is the status every fatal error terminates with.
const FailureExitCode = 1

// Aborter writes a fatal error line and terminates. The zero value
// writes unstyled output to os.Stderr and calls os.Exit.
type Aborter struct {
	// Output receives the error line. Nil means os.Stderr. If Output
	// has a Flush() error method it is flushed before Exit runs.
	Output io.Writer

	// Style is used as given. The zero Style produces no escapes.
	Style term.Style

	// Exit terminates the process. Nil means os.Exit. A replacement
	// must not return.
	Exit func(code int)
}

// NewAborter returns an Aborter for stderr with the style resolved
// from mode.
func NewAborter(mode term.ColorMode) *Aborter {
	return &Aborter{
		Output: os.Stderr,
		Style:  term.Stderr(mode),
		Exit:   os.Exit,
	}
}

// Abort writes the styled "Error:" line for value in a single write
// and exits with FailureExitCode. It never returns.
//
// Write and flush failures are ignored: there is nowhere left to
// report them. A panic from value's own String or Error method is
// caught by fmt and rendered into the line.
func (aborter *Aborter) Abort(value any) {
	line := Format(aborter.Style, value)

	output := aborter.Output
	if output == nil {
		output = os.Stderr
	}
	_, _ = output.Write([]byte(line))
	if flusher, ok := output.(interface{ Flush() error }); ok {
		_ = flusher.Flush()
	}

	exit := aborter.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(FailureExitCode)
	panic("process: exit handler returned")
}

// Abort reports value on stderr, styled when stderr supports color,
// and exits with status 1.
func Abort(value any) {
	NewAborter(term.ColorAuto).Abort(value)
}
