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

// Package mystic provides portable fixed-width value types with uniform
// behavior across platforms.
//
// The core type is Float32, a wrapper around a 32-bit IEEE 754 float that
// interoperates with any arithmetic type through generic constructors,
// conversions, and free arithmetic functions. Mixed-width arithmetic follows
// a single rule: operands no wider than 32 bits produce a Float32 result,
// while wider operands (int64, float64, ...) promote the computation to the
// wide type so no precision is lost.
//
// Basic usage:
//
//	import "github.com/thedevmystic/MysticCore/mystic"
//
//	w := mystic.NewFloat32(3.5)
//	x := mystic.Add(w, int16(2))      // Float32(5.5)
//	y := mystic.AddWide(w, 2.25)      // float64(5.75)
//
// Debug-only precondition checks (such as the near-zero division guard) are
// compiled in with the "mysticdebug" build tag and elided otherwise; the
// Checked* functions provide the same guards unconditionally as error
// returns.
package mystic

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Arithmetic is a constraint for all numeric types that Float32 can be
// constructed from and converted to.
type Arithmetic interface {
	Integers | Floats
}

// Narrow is a constraint for arithmetic types no wider than 32 bits.
// Arithmetic between a Float32 and a Narrow operand stays in Float32.
type Narrow interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32 | ~float32
}

// Wide is a constraint for arithmetic types wider than 32 bits.
// Arithmetic between a Float32 and a Wide operand is computed in the wide
// type, which preserves precision when mixing with float64 and keeps the
// full range of 64-bit integers.
//
// int and uint are platform-sized in Go; they are pinned to the wide path so
// the result-type rule does not change between platforms.
type Wide interface {
	~int64 | ~uint64 | ~int | ~uint | ~float64
}
