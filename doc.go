// Package seq prints arithmetic sequences of exact decimal numbers.
//
// A sequence is described by FIRST, INCREMENT and LAST operands. Values are
// computed with exact decimal addition, so
//
//	seq 0.1 0.1 0.3
//
// prints 0.1, 0.2 and 0.3 rather than accumulating binary rounding error.
// Operands may be written in decimal, scientific or hexadecimal floating point
// notation and may be inf or -inf.
//
// # Precision
//
// Every value is printed with the same number of fractional digits: the
// larger of the fractional digit counts of FIRST and INCREMENT as written.
// When any operand is a hexadecimal float there is no decimal precision to
// follow and values are printed in compact %g form.
//
// # Termination
//
// With a non-negative increment the sequence ends once a value exceeds LAST,
// with a negative increment once a value drops below LAST. A sequence whose
// FIRST is already past LAST prints nothing, not even the terminator.
package seq
