// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for code that
// terminates the process.
//
// [TrapExit] runs a function with a substitute exit handler that
// records the requested status and ends the calling goroutine with
// runtime.Goexit, so an operation that never returns can be tested in
// process. It fails the test if the function returns without exiting
// or does not finish within a fixed timeout.
//
// [RunHelper] re-executes the current test binary restricted to a
// single test, with [HelperScenario] reporting the scenario name in the
// child. This exercises the real os.Exit path and lets the parent
// assert on the child's exact stderr bytes and exit status:
//
//	func TestAbortExits(t *testing.T) {
//	    if testutil.HelperScenario() == "disk-full" {
//	        process.Abort("disk full")
//	    }
//	    result := testutil.RunHelper(t, "TestAbortExits", "disk-full")
//	    ...
//	}
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no Bureau-internal dependencies.
package testutil
