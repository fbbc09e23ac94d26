// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package term

import "testing"

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{input: "", want: ColorAuto},
		{input: "auto", want: ColorAuto},
		{input: "always", want: ColorAlways},
		{input: "never", want: ColorNever},
		{input: "  Always\n", want: ColorAlways},
		{input: "NEVER", want: ColorNever},
		{input: "sometimes", wantErr: true},
		{input: "yes", wantErr: true},
	}
	for _, test := range tests {
		got, err := ParseColorMode(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseColorMode(%q) = %q, want error", test.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColorMode(%q): %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseColorMode(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestColorModeSet(t *testing.T) {
	mode := ColorAuto
	if err := mode.Set("never"); err != nil {
		t.Fatalf("Set(never): %v", err)
	}
	if mode != ColorNever {
		t.Errorf("mode = %q after Set(never)", mode)
	}

	if err := mode.Set("bogus"); err == nil {
		t.Error("Set(bogus) succeeded")
	}
	if mode != ColorNever {
		t.Errorf("failed Set changed mode to %q", mode)
	}
}
