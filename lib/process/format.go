// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"fmt"

	"github.com/bureau-foundation/manage/lib/term"
)

// Format renders the fatal error line for value, including the
// trailing newline. The value is rendered with fmt.Sprint, so errors
// use Error() and Stringers use String().
func Format(style term.Style, value any) string {
	return style.Bold + style.Red + "Error:" + style.Reset + " " + fmt.Sprint(value) + "\n"
}
