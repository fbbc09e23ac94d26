// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"testing"
)

// helperEnvironment carries the scenario name from RunHelper to the
// child test process.
const helperEnvironment = "MANAGE_TEST_HELPER_SCENARIO"

// HelperResult is the observed outcome of a helper process.
type HelperResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// HelperScenario returns the scenario RunHelper asked this process to
// run, or "" when the test binary was started normally.
func HelperScenario() string {
	return os.Getenv(helperEnvironment)
}

// RunHelper re-executes the test binary running only testName, with
// HelperScenario returning scenario in the child. Extra environment
// entries ("KEY=value") are appended after the parent's environment so
// they take precedence. A non-zero exit is reported through ExitCode,
// not as a test failure.
func RunHelper(t *testing.T, testName, scenario string, environment ...string) HelperResult {
	t.Helper()

	command := exec.Command(os.Args[0], "-test.run=^"+testName+"$")
	command.Env = append(os.Environ(), helperEnvironment+"="+scenario)
	command.Env = append(command.Env, environment...)

	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	err := command.Run()
	var exitError *exec.ExitError
	if err != nil && !errors.As(err, &exitError) {
		t.Fatalf("running helper %s/%s: %v", testName, scenario, err)
	}

	return HelperResult{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: command.ProcessState.ExitCode(),
	}
}
