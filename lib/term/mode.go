// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package term

import (
	"fmt"
	"strings"
)

// ColorMode selects whether styled output is produced.
type ColorMode string

const (
	// ColorAuto styles output only when the destination supports it.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles output unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever never styles output.
	ColorNever ColorMode = "never"
)

// ParseColorMode converts a flag or config value to a ColorMode.
// Matching is case-insensitive and ignores surrounding whitespace. The
// empty string means ColorAuto.
func ParseColorMode(value string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always, or never)", value)
	}
}

// String implements pflag.Value.
func (mode ColorMode) String() string {
	return string(mode)
}

// Set implements pflag.Value.
func (mode *ColorMode) Set(value string) error {
	parsed, err := ParseColorMode(value)
	if err != nil {
		return err
	}
	*mode = parsed
	return nil
}

// Type implements pflag.Value.
func (mode *ColorMode) Type() string {
	return "mode"
}
