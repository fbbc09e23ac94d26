// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"fmt"
	"os"

	"github.com/bureau-foundation/manage/lib/term"
)

// Fatal reports err on stderr and exits with code 1. This is the
// standard binary entrypoint error handler, used in main() for errors
// returned from run().
func Fatal(err error) {
	Abort(err)
}

// ExitError signals a non-zero exit code without printing an extra
// error line. A command that has already written its own output
// returns one of these so that main() exits quietly with Code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// exitCoder is satisfied by ExitError and by any other error that
// carries its own exit status.
type exitCoder interface {
	ExitCode() int
}

// Exit terminates the process according to err. A nil error returns
// without exiting. An error carrying an ExitCode() method (anywhere in
// its wrap chain) exits with that code and prints nothing. Any other
// error goes through Fatal.
func Exit(err error) {
	NewAborter(term.ColorAuto).exitWith(err)
}

func (aborter *Aborter) exitWith(err error) {
	if err == nil {
		return
	}
	var coder exitCoder
	if errors.As(err, &coder) {
		exit := aborter.Exit
		if exit == nil {
			exit = os.Exit
		}
		exit(coder.ExitCode())
		panic("process: exit handler returned")
	}
	aborter.Abort(err)
}
