// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"runtime"
	"time"
)

// exitTimeout bounds how long TrapExit waits for the body to exit.
const exitTimeout = 5 * time.Second

// TrapExit calls body on a fresh goroutine, passing an exit handler
// that records its code and stops the goroutine. It returns the code
// passed to the handler.
//
//	code := testutil.TrapExit(t, func(exit func(int)) {
//	    aborter := &process.Aborter{Output: &buffer, Exit: exit}
//	    aborter.Abort("disk full")
//	})
func TrapExit(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, body func(exit func(code int))) int {
	t.Helper()

	codes := make(chan int, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		body(func(code int) {
			codes <- code
			runtime.Goexit()
		})
	}()

	select {
	case <-done:
	case <-time.After(exitTimeout): //nolint:realclock test hang prevention
		t.Fatalf("timed out after %v waiting for exit", exitTimeout)
	}

	select {
	case code := <-codes:
		return code
	default:
		t.Fatalf("function returned without calling exit")
	}
	panic("unreachable")
}
