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

import (
	"errors"
	"math"
)

// Float32 represents an IEEE 754 single-precision (binary32) floating-point
// number with a guaranteed 32-bit width on every platform.
//
// Format: Sign (1 bit) | Exponent (8 bits) | Mantissa (23 bits)
//
//	S | EEEEEEEE | MMMMMMMMMMMMMMMMMMMMMMM
//
// Properties:
//   - Total bits: 32
//   - Exponent bits: 8 (bias: 127)
//   - Mantissa bits: 23
//   - Max value: ~3.40e38
//   - Precision: ~7.2 decimal digits
//
// Float32 holds whatever bit pattern it was given, including infinities and
// NaN; no normalization is performed. Values are immutable: every arithmetic
// function returns a new Float32.
type Float32 float32

// Float32 limits.
const (
	// Float32Epsilon is the difference between 1 and the smallest Float32
	// greater than 1. Denominators with magnitude below it are treated as
	// zero by the division guards.
	Float32Epsilon = 0x1p-23

	// Float32MaxValue is the largest finite Float32.
	Float32MaxValue Float32 = math.MaxFloat32

	// Float32MinNormal is the smallest positive normal Float32 (2^-126).
	Float32MinNormal Float32 = 0x1p-126

	// Float32MinValue is the smallest positive denormal Float32 (2^-149).
	Float32MinValue Float32 = 0x1p-149
)

// divByZeroMsg is the trap message for the near-zero division guard.
const divByZeroMsg = "mystic: Float32 division by near-zero denominator"

// ErrDivideByZero is returned by the Checked* division functions when the
// denominator's magnitude is below Float32Epsilon.
var ErrDivideByZero = errors.New("mystic: Float32 division by near-zero denominator")

// NewFloat32 creates a Float32 from any arithmetic value. The conversion is
// a plain narrowing cast: values outside the Float32 range follow IEEE 754
// overflow semantics, and precision loss is the caller's responsibility.
func NewFloat32[T Arithmetic](v T) Float32 {
	return Float32(v)
}

// ConvertTo converts f to any arithmetic type via a plain cast. The caller
// is responsible for any truncation or precision loss.
func ConvertTo[T Arithmetic](f Float32) T {
	return T(f)
}

// Value returns the raw float32 held by f.
func (f Float32) Value() float32 {
	return float32(f)
}

// Float64 converts f to float64. The conversion is exact.
func (f Float32) Float64() float64 {
	return float64(f)
}

// Bits returns the IEEE 754 binary representation of f.
func (f Float32) Bits() uint32 {
	return math.Float32bits(float32(f))
}

// Float32FromBits creates a Float32 from a raw IEEE 754 bit pattern.
func Float32FromBits(bits uint32) Float32 {
	return Float32(math.Float32frombits(bits))
}

// IsNaN returns true if f is a NaN value.
func (f Float32) IsNaN() bool {
	return f != f
}

// IsInf returns true if f is positive or negative infinity.
func (f Float32) IsInf() bool {
	return math.IsInf(float64(f), 0)
}

// IsZero returns true if f is positive or negative zero.
func (f Float32) IsZero() bool {
	return f == 0
}

// IsNegative returns true if the sign bit is set.
func (f Float32) IsNegative() bool {
	return math.Signbit(float64(f))
}

// nearZero reports whether d is within Float32Epsilon of zero.
func nearZero(d float64) bool {
	return math.Abs(d) < Float32Epsilon
}

// Add returns x + y as a Float32. Addition is commutative, so there is no
// separate form for a narrow operand on the left.
func Add[T Narrow](x Float32, y T) Float32 {
	return x + Float32(y)
}

// AddWide returns x + y computed in float64 and converted to y's type.
func AddWide[T Wide](x Float32, y T) T {
	return T(float64(x) + float64(y))
}

// Sub returns x - y as a Float32.
func Sub[T Narrow](x Float32, y T) Float32 {
	return x - Float32(y)
}

// SubWide returns x - y computed in float64 and converted to y's type.
func SubWide[T Wide](x Float32, y T) T {
	return T(float64(x) - float64(y))
}

// SubFrom returns x - y as a Float32, with the narrow operand on the left.
func SubFrom[T Narrow](x T, y Float32) Float32 {
	return Float32(x) - y
}

// SubFromWide returns x - y computed in float64 and converted to x's type,
// with the wide operand on the left.
func SubFromWide[T Wide](x T, y Float32) T {
	return T(float64(x) - float64(y))
}

// Mul returns x * y as a Float32. Multiplication is commutative, so there is
// no separate form for a narrow operand on the left.
func Mul[T Narrow](x Float32, y T) Float32 {
	return x * Float32(y)
}

// MulWide returns x * y computed in float64 and converted to y's type.
func MulWide[T Wide](x Float32, y T) T {
	return T(float64(x) * float64(y))
}

// Div returns x / y as a Float32.
//
// In builds with the "mysticdebug" tag, a denominator with magnitude below
// Float32Epsilon traps. Default builds skip the guard and the division
// yields inf or NaN per IEEE 754. Use CheckedDiv for an unconditional guard.
func Div[T Narrow](x Float32, y T) Float32 {
	check(!nearZero(float64(y)), divByZeroMsg)
	return x / Float32(y)
}

// DivWide returns x / y computed in float64 and converted to y's type.
// The near-zero guard behaves as in Div.
func DivWide[T Wide](x Float32, y T) T {
	check(!nearZero(float64(y)), divByZeroMsg)
	return T(float64(x) / float64(y))
}

// DivFrom returns x / y as a Float32, with the narrow operand on the left.
// The near-zero guard applies to the Float32 denominator.
func DivFrom[T Narrow](x T, y Float32) Float32 {
	check(!nearZero(float64(y)), divByZeroMsg)
	return Float32(x) / y
}

// DivFromWide returns x / y computed in float64 and converted to x's type,
// with the wide operand on the left. The near-zero guard applies to the
// Float32 denominator.
func DivFromWide[T Wide](x T, y Float32) T {
	check(!nearZero(float64(y)), divByZeroMsg)
	return T(float64(x) / float64(y))
}

// CheckedDiv returns x / y as a Float32, or ErrDivideByZero if y's magnitude
// is below Float32Epsilon. The guard runs in every build flavor.
func CheckedDiv[T Narrow](x Float32, y T) (Float32, error) {
	if nearZero(float64(y)) {
		return 0, ErrDivideByZero
	}
	return x / Float32(y), nil
}

// CheckedDivWide returns x / y computed in float64 and converted to y's
// type, or ErrDivideByZero if y's magnitude is below Float32Epsilon.
func CheckedDivWide[T Wide](x Float32, y T) (T, error) {
	if nearZero(float64(y)) {
		var zero T
		return zero, ErrDivideByZero
	}
	return T(float64(x) / float64(y)), nil
}

// CheckedDivFrom returns x / y as a Float32 with the narrow operand on the
// left, or ErrDivideByZero if y's magnitude is below Float32Epsilon.
func CheckedDivFrom[T Narrow](x T, y Float32) (Float32, error) {
	if nearZero(float64(y)) {
		return 0, ErrDivideByZero
	}
	return Float32(x) / y, nil
}

// CheckedDivFromWide returns x / y computed in float64 and converted to x's
// type with the wide operand on the left, or ErrDivideByZero if y's
// magnitude is below Float32Epsilon.
func CheckedDivFromWide[T Wide](x T, y Float32) (T, error) {
	if nearZero(float64(y)) {
		var zero T
		return zero, ErrDivideByZero
	}
	return T(float64(x) / float64(y)), nil
}
