// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/manage/lib/term"
	"github.com/bureau-foundation/manage/lib/testutil"
)

func TestAbortWritesLineAndExits(t *testing.T) {
	var output bytes.Buffer
	code := testutil.TrapExit(t, func(exit func(int)) {
		aborter := &Aborter{Output: &output, Style: term.ANSI(), Exit: exit}
		aborter.Abort("disk full")
	})

	if code != FailureExitCode {
		t.Errorf("exit code = %d, want %d", code, FailureExitCode)
	}
	want := "\x1b[1m\x1b[31mError:\x1b[0m disk full\n"
	if output.String() != want {
		t.Errorf("output = %q, want %q", output.String(), want)
	}
}

func TestAbortErrorValue(t *testing.T) {
	var output bytes.Buffer
	code := testutil.TrapExit(t, func(exit func(int)) {
		aborter := &Aborter{Output: &output, Style: term.ANSI(), Exit: exit}
		aborter.Abort(errors.New("connection refused"))
	})

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.HasSuffix(output.String(), "connection refused\n") {
		t.Errorf("output = %q, want suffix %q", output.String(), "connection refused\n")
	}
}

// recordingWriter counts writes and flushes. When err is set both
// fail with it.
type recordingWriter struct {
	bytes.Buffer
	writes  int
	flushes int
	err     error
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.err != nil {
		return 0, w.err
	}
	return w.Buffer.Write(p)
}

func (w *recordingWriter) Flush() error {
	w.flushes++
	return w.err
}

func TestAbortSingleWriteThenFlushThenExit(t *testing.T) {
	writer := &recordingWriter{}
	var writesAtExit, flushesAtExit int
	code := testutil.TrapExit(t, func(exit func(int)) {
		aborter := &Aborter{
			Output: writer,
			Style:  term.Plain(),
			Exit: func(code int) {
				writesAtExit = writer.writes
				flushesAtExit = writer.flushes
				exit(code)
			},
		}
		aborter.Abort("out of memory")
	})

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if writesAtExit != 1 {
		t.Errorf("writes before exit = %d, want 1", writesAtExit)
	}
	if flushesAtExit != 1 {
		t.Errorf("flushes before exit = %d, want 1", flushesAtExit)
	}
	if writer.String() != "Error: out of memory\n" {
		t.Errorf("output = %q", writer.String())
	}
}

func TestAbortIgnoresWriteFailure(t *testing.T) {
	writer := &recordingWriter{err: errors.New("broken pipe")}
	code := testutil.TrapExit(t, func(exit func(int)) {
		aborter := &Aborter{Output: writer, Exit: exit}
		aborter.Abort("unreported")
	})

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

type panickingStringer struct{}

func (panickingStringer) String() string { panic("boom") }

func TestAbortRenderPanicStillExits(t *testing.T) {
	var output bytes.Buffer
	code := testutil.TrapExit(t, func(exit func(int)) {
		aborter := &Aborter{Output: &output, Exit: exit}
		aborter.Abort(panickingStringer{})
	})

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	line := output.String()
	if !strings.HasPrefix(line, "Error: ") || !strings.Contains(line, "PANIC=String method: boom") {
		t.Errorf("output = %q, want the fmt panic rendering", line)
	}
}

func TestAbortPanicsWhenExitReturns(t *testing.T) {
	var output bytes.Buffer
	var exitCode int
	aborter := &Aborter{
		Output: &output,
		Exit:   func(code int) { exitCode = code },
	}

	defer func() {
		if recovered := recover(); recovered == nil {
			t.Error("Abort returned normally after exit handler returned")
		}
		if exitCode != 1 {
			t.Errorf("exit handler got code %d, want 1", exitCode)
		}
		if output.String() != "Error: still here\n" {
			t.Errorf("output = %q", output.String())
		}
	}()
	aborter.Abort("still here")
}

// Scenarios executed in a child process by TestAbortProcess.
func runAbortScenario(scenario string) {
	switch scenario {
	case "package-auto":
		Abort("disk full")
	case "always":
		NewAborter(term.ColorAlways).Abort("disk full")
	case "never":
		NewAborter(term.ColorNever).Abort("disk full")
	case "zero-aborter":
		(&Aborter{}).Abort("zero value")
	case "fatal":
		Fatal(errors.New("connection refused"))
	case "exit-error":
		Exit(&ExitError{Code: 4})
	case "exit-nil":
		Exit(nil)
	}
}

func TestAbortProcess(t *testing.T) {
	if scenario := testutil.HelperScenario(); scenario != "" {
		runAbortScenario(scenario)
		return
	}

	tests := []struct {
		scenario    string
		environment []string
		wantStderr  string
		wantCode    int
	}{
		// The child's stderr is a pipe, so auto mode resolves to plain.
		{scenario: "package-auto", environment: []string{"CLICOLOR_FORCE="}, wantStderr: "Error: disk full\n", wantCode: 1},
		{scenario: "package-auto", environment: []string{"CLICOLOR_FORCE=", "NO_COLOR=1"}, wantStderr: "Error: disk full\n", wantCode: 1},
		{scenario: "always", wantStderr: "\x1b[1m\x1b[31mError:\x1b[0m disk full\n", wantCode: 1},
		{scenario: "always", environment: []string{"NO_COLOR=1"}, wantStderr: "\x1b[1m\x1b[31mError:\x1b[0m disk full\n", wantCode: 1},
		{scenario: "never", wantStderr: "Error: disk full\n", wantCode: 1},
		{scenario: "zero-aborter", wantStderr: "Error: zero value\n", wantCode: 1},
		{scenario: "fatal", environment: []string{"CLICOLOR_FORCE="}, wantStderr: "Error: connection refused\n", wantCode: 1},
		{scenario: "exit-error", wantStderr: "", wantCode: 4},
		{scenario: "exit-nil", wantStderr: "", wantCode: 0},
	}
	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			result := testutil.RunHelper(t, "TestAbortProcess", test.scenario, test.environment...)
			if result.ExitCode != test.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q)", result.ExitCode, test.wantCode, result.Stderr)
			}
			if string(result.Stderr) != test.wantStderr {
				t.Errorf("stderr = %q, want %q", result.Stderr, test.wantStderr)
			}
		})
	}
}
