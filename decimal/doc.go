// Package decimal provides an exact base 10 number extended with the special
// values needed to print numeric sequences.
//
// The equation for a finite decimal number is:
//
//	number = value * 10 ^ -scale
//
// Where value is an unscaled, sign carrying integer and scale is the number of
// fractional digits. For example:
//
//	1.23 = 123 * 10^-2
//
// Scale is never negative. A value with trailing zeros (1.50) keeps them; the
// scale is part of the value's identity for rendering but not for comparison.
//
// Special Values
//
// Besides finite numbers an Extended may hold one of:
//
//	| Kind             | Text   | Ordering                               |
//	|------------------|--------|----------------------------------------|
//	| Infinity         | inf    | greater than every other value         |
//	| NegativeInfinity | -inf   | less than every other value            |
//	| NaN              | nan    | unordered, every comparison is false   |
//	| NegativeZero     | -0     | equal to zero                          |
//	|------------------|--------|----------------------------------------|
//
// # Addition
//
// Finite operands are added exactly after aligning both to the larger scale.
// Special values follow IEEE 754 conventions:
//
//	inf + finite  = inf
//	inf + -inf    = nan
//	nan + any     = nan
//	-0 + -0       = -0
//	-0 + x        = x
//
// # Rendering
//
// Text renders a value with a minimum field width and an optional fixed
// number of fractional digits. Finite values and negative zero are padded with
// zeros after the sign, infinities and NaN are padded with spaces. Rounding to
// fewer fractional digits is half to even.
package decimal
