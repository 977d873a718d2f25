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

// Package status defines canonical operation-outcome codes, modeled after
// the gRPC status taxonomy, with bidirectional string conversion.
//
// The sixteen codes, their ordinal values, and their display strings are a
// wire contract: ordinals are never renumbered and the display strings
// (upper case, spaces instead of underscores) are reproduced verbatim by
// String and accepted case-insensitively by Parse.
package status

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents the outcome of an operation as one of sixteen canonical
// kinds. Code values are pure: they are created by literal selection or by
// parsing, compared, and formatted, never mutated.
type Code uint32

const (
	// OK indicates the operation completed without any error.
	OK Code = 0x0000

	// Cancelled indicates the operation was cancelled before it completed,
	// typically by the caller.
	Cancelled Code = 0x0001

	// InvalidArgument indicates the caller specified an invalid argument.
	InvalidArgument Code = 0x0002

	// NotFound indicates a requested resource, such as a file or record,
	// was not found.
	NotFound Code = 0x0003

	// AlreadyExists indicates the resource a caller attempted to create
	// already exists.
	AlreadyExists Code = 0x0004

	// PermissionDenied indicates the caller lacks permission for the
	// operation.
	PermissionDenied Code = 0x0005

	// Unauthenticated indicates the request carries no valid credentials.
	Unauthenticated Code = 0x0006

	// OutOfRange indicates the operation attempted an out-of-bounds access.
	OutOfRange Code = 0x0007

	// DeadlineExceeded indicates the operation ran past its deadline.
	DeadlineExceeded Code = 0x0008

	// ResourceExhausted indicates the operation used up all resources
	// allocated to it.
	ResourceExhausted Code = 0x0009

	// FailedPrecondition indicates the operation failed a precondition
	// before it was started.
	FailedPrecondition Code = 0x000A

	// Abort indicates the operation was aborted.
	Abort Code = 0x000B

	// Unimplemented indicates the operation is not implemented.
	Unimplemented Code = 0x000C

	// Internal indicates the operation failed due to an internal error.
	Internal Code = 0x000D

	// Unavailable indicates the operation is currently unavailable.
	Unavailable Code = 0x000E

	// DataLoss indicates unrecoverable data loss or corruption.
	DataLoss Code = 0x000F
)

// names maps each Code, by ordinal, to its canonical display string.
// The ordering is part of the wire contract; never reorder entries.
var names = [...]string{
	OK:                 "OK",
	Cancelled:          "CANCELLED",
	InvalidArgument:    "INVALID ARGUMENT",
	NotFound:           "NOT FOUND",
	AlreadyExists:      "ALREADY EXISTS",
	PermissionDenied:   "PERMISSION DENIED",
	Unauthenticated:    "UNAUTHENTICATED",
	OutOfRange:         "OUT OF RANGE",
	DeadlineExceeded:   "DEADLINE EXCEEDED",
	ResourceExhausted:  "RESOURCE EXHAUSTED",
	FailedPrecondition: "FAILED PRECONDITION",
	Abort:              "ABORT",
	Unimplemented:      "UNIMPLEMENTED",
	Internal:           "INTERNAL",
	Unavailable:        "UNAVAILABLE",
	DataLoss:           "DATA LOSS",
}

// ErrUnknownCode is returned by Parse when the input matches no canonical
// display string.
var ErrUnknownCode = errors.New("status: unknown status code")

// String returns the canonical upper-case display string for c, with spaces
// instead of underscores (for example, "INVALID ARGUMENT").
//
// A Code outside the sixteen defined values is a programming error and
// panics; values outside the set must never be constructed.
func (c Code) String() string {
	if int(c) >= len(names) {
		panic(fmt.Sprintf("status: invalid Code value %d", uint32(c)))
	}
	return names[c]
}

// Parse converts a display string to its Code. The comparison is
// case-insensitive: the input is upper-cased before matching. If the input
// matches no canonical display string, Parse returns ErrUnknownCode.
func Parse(s string) (Code, error) {
	upper := strings.ToUpper(s)
	for i, name := range names {
		if name == upper {
			return Code(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCode, s)
}

// FromString converts a display string to its Code, case-insensitively,
// mapping unrecognized input to OK.
//
// This is a compatibility shim for callers that relied on the historical
// lenient behavior. Mapping garbage input to a success code masks real
// "unknown status" conditions; new call sites should use Parse and handle
// ErrUnknownCode explicitly.
func FromString(s string) Code {
	c, err := Parse(s)
	if err != nil {
		return OK
	}
	return c
}

// MarshalText implements encoding.TextMarshaler using the canonical display
// string.
func (c Code) MarshalText() ([]byte, error) {
	if int(c) >= len(names) {
		return nil, fmt.Errorf("status: invalid Code value %d", uint32(c))
	}
	return []byte(names[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike FromString it is
// strict: unrecognized input is an error, not OK.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
