// Copyright 2025 MysticCore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"errors"
	"testing"
)

// allCodes lists every defined Code with its contractual ordinal and display
// string. Both columns are a wire contract and must never change.
var allCodes = []struct {
	code    Code
	ordinal uint32
	display string
}{
	{OK, 0x0000, "OK"},
	{Cancelled, 0x0001, "CANCELLED"},
	{InvalidArgument, 0x0002, "INVALID ARGUMENT"},
	{NotFound, 0x0003, "NOT FOUND"},
	{AlreadyExists, 0x0004, "ALREADY EXISTS"},
	{PermissionDenied, 0x0005, "PERMISSION DENIED"},
	{Unauthenticated, 0x0006, "UNAUTHENTICATED"},
	{OutOfRange, 0x0007, "OUT OF RANGE"},
	{DeadlineExceeded, 0x0008, "DEADLINE EXCEEDED"},
	{ResourceExhausted, 0x0009, "RESOURCE EXHAUSTED"},
	{FailedPrecondition, 0x000A, "FAILED PRECONDITION"},
	{Abort, 0x000B, "ABORT"},
	{Unimplemented, 0x000C, "UNIMPLEMENTED"},
	{Internal, 0x000D, "INTERNAL"},
	{Unavailable, 0x000E, "UNAVAILABLE"},
	{DataLoss, 0x000F, "DATA LOSS"},
}

// TestCodeWireContract pins the ordinal values and display strings.
func TestCodeWireContract(t *testing.T) {
	if len(allCodes) != 16 {
		t.Fatalf("expected 16 codes, have %d", len(allCodes))
	}
	for _, tt := range allCodes {
		t.Run(tt.display, func(t *testing.T) {
			if uint32(tt.code) != tt.ordinal {
				t.Errorf("ordinal: got 0x%04X, want 0x%04X", uint32(tt.code), tt.ordinal)
			}
			if got := tt.code.String(); got != tt.display {
				t.Errorf("String: got %q, want %q", got, tt.display)
			}
		})
	}
}

// TestCodeStringInjective verifies no two codes share a display string.
func TestCodeStringInjective(t *testing.T) {
	seen := make(map[string]Code, len(allCodes))
	for _, tt := range allCodes {
		if prev, dup := seen[tt.code.String()]; dup {
			t.Errorf("codes %d and %d share display string %q", prev, tt.code, tt.code.String())
		}
		seen[tt.code.String()] = tt.code
	}
}

// TestParseRoundTrip verifies Parse(c.String()) == c for every code.
func TestParseRoundTrip(t *testing.T) {
	for _, tt := range allCodes {
		got, err := Parse(tt.code.String())
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.code.String(), err)
			continue
		}
		if got != tt.code {
			t.Errorf("Parse(%q): got %v, want %v", tt.code.String(), got, tt.code)
		}
	}
}

// TestParseCaseInsensitive verifies mixed-case input parses the same as the
// canonical upper-case form.
func TestParseCaseInsensitive(t *testing.T) {
	tests := []struct {
		input    string
		expected Code
	}{
		{"not found", NotFound},
		{"Not Found", NotFound},
		{"nOt FoUnD", NotFound},
		{"ok", OK},
		{"data loss", DataLoss},
		{"Failed Precondition", FailedPrecondition},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q): got %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestParseUnknown verifies unmatched input is an explicit error.
func TestParseUnknown(t *testing.T) {
	for _, input := range []string{"", "NOPE", "NOT_FOUND", "OKAY", "NOT  FOUND"} {
		if _, err := Parse(input); !errors.Is(err, ErrUnknownCode) {
			t.Errorf("Parse(%q): got %v, want ErrUnknownCode", input, err)
		}
	}
}

// TestFromStringLenientUnknownToOKFallback documents the historical lenient
// behavior of the compatibility shim: garbage input maps to OK, a success
// code. New call sites should use Parse instead.
func TestFromStringLenientUnknownToOKFallback(t *testing.T) {
	if got := FromString("definitely not a status"); got != OK {
		t.Errorf("FromString(garbage): got %v, want OK", got)
	}
	if got := FromString("unavailable"); got != Unavailable {
		t.Errorf("FromString(%q): got %v, want Unavailable", "unavailable", got)
	}
}

// TestCodeStringPanicsOutOfRange verifies that formatting an undefined Code
// is treated as a programming error, not mapped to a default.
func TestCodeStringPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("String on an undefined Code should panic")
		}
	}()
	_ = Code(16).String()
}

// TestCodeTextMarshalling exercises the encoding.TextMarshaler pair.
func TestCodeTextMarshalling(t *testing.T) {
	text, err := DeadlineExceeded.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "DEADLINE EXCEEDED" {
		t.Errorf("MarshalText: got %q, want %q", text, "DEADLINE EXCEEDED")
	}

	var c Code
	if err := c.UnmarshalText([]byte("deadline exceeded")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if c != DeadlineExceeded {
		t.Errorf("UnmarshalText: got %v, want DeadlineExceeded", c)
	}

	if err := c.UnmarshalText([]byte("garbage")); !errors.Is(err, ErrUnknownCode) {
		t.Errorf("UnmarshalText(garbage): got %v, want ErrUnknownCode", err)
	}

	if _, err := Code(99).MarshalText(); err == nil {
		t.Error("MarshalText on an undefined Code should error")
	}
}
