// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package term

import (
	"os"

	"github.com/muesli/termenv"
)

// Style holds the control strings for bold, red, and reset. Fields are
// opaque: consumers concatenate them without inspecting their contents.
type Style struct {
	Bold  string
	Red   string
	Reset string
}

// ANSI returns the SGR escape sequences: "\x1b[1m", "\x1b[31m", and
// "\x1b[0m". Each attribute is a separate sequence so that the output
// is identical to what a hand-written bold+red+reset produces.
func ANSI() Style {
	return Style{
		Bold:  sgr(termenv.BoldSeq),
		Red:   sgr(termenv.ANSIRed.Sequence(false)),
		Reset: sgr(termenv.ResetSeq),
	}
}

// Plain returns a Style whose strings are all empty.
func Plain() Style {
	return Style{}
}

// Enabled reports whether the style emits any control characters.
func (style Style) Enabled() bool {
	return style.Bold != "" || style.Red != "" || style.Reset != ""
}

// ForFile returns the style to use when writing to file. ColorAlways
// and ColorNever are unconditional. ColorAuto returns ANSI only when
// termenv detects a color-capable profile for the file and NO_COLOR is
// not set.
func ForFile(file *os.File, mode ColorMode) Style {
	switch mode {
	case ColorAlways:
		return ANSI()
	case ColorNever:
		return Plain()
	}
	output := termenv.NewOutput(file)
	if output.EnvNoColor() || output.Profile == termenv.Ascii {
		return Plain()
	}
	return ANSI()
}

// Stderr returns the style for the process's standard error stream.
func Stderr(mode ColorMode) Style {
	return ForFile(os.Stderr, mode)
}

func sgr(sequence string) string {
	return termenv.CSI + sequence + "m"
}
