// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the user's output preferences for manage
// binaries.
//
// Configuration is a single YAML file named by:
//   - the MANAGE_CONFIG environment variable, or
//   - the --config flag passed to the command, which takes precedence.
//
// There is no automatic discovery. When neither names a file the
// built-in [Default] applies, so error reporting works on a machine
// that has never been configured.
package config
