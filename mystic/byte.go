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

package mystic

// Byte is an opaque 8-bit value intended for raw memory and bit
// manipulation. Unlike the built-in byte it does not participate in
// arithmetic; only bitwise operations and explicit integer conversions are
// provided.
type Byte uint8

// ToInteger converts b to any integer type.
func ToInteger[T Integers](b Byte) T {
	return T(b)
}

// ByteFromInteger converts v to a Byte. Values outside 0..255 are a checked
// precondition violation in "mysticdebug" builds; default builds truncate.
func ByteFromInteger[T Integers](v T) Byte {
	// A negative v wraps to a value far above 255, so one unsigned compare
	// covers both bounds.
	check(uint64(v) <= 255, "mystic: integer value exceeds the range of Byte")
	return Byte(v)
}

// And returns the bitwise AND of a and b.
func And(a, b Byte) Byte {
	return a & b
}

// Or returns the bitwise OR of a and b.
func Or(a, b Byte) Byte {
	return a | b
}

// Xor returns the bitwise XOR of a and b.
func Xor(a, b Byte) Byte {
	return a ^ b
}

// Not returns the bitwise complement of b.
func Not(b Byte) Byte {
	return ^b
}

// Shl returns b shifted left by n bits.
func Shl(b Byte, n uint) Byte {
	return b << n
}

// Shr returns b shifted right by n bits.
func Shr(b Byte, n uint) Byte {
	return b >> n
}
