// Package number parses the numeric operands of seq into exact decimals and
// records the textual properties (integral width, fractional precision) that
// drive how the sequence is printed.
package number

import (
	"strconv"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/seq/decimal"
	"github.com/calebcase/seq/integer"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("number")

// MaxExponent bounds the decimal exponent accepted in scientific notation.
// Larger exponents would require materializing enormous coefficients.
const MaxExponent = 1_000_000

// Parsed is a literal converted to a value along with its textual shape.
type Parsed struct {
	Value decimal.Extended

	// IntegralDigits is the number of characters before the decimal point
	// when the value is written out in plain notation, including a leading
	// minus sign.
	IntegralDigits int

	// Precision is the number of digits after the decimal point, or nil
	// when the literal has no decimal precision (hexadecimal floats).
	Precision *int
}

// One is the implicit operand used for an omitted first or increment.
func One() Parsed {
	return Parsed{
		Value:          decimal.NewFromInt(1),
		IntegralDigits: 1,
		Precision:      intp(0),
	}
}

func intp(i int) *int {
	return &i
}

// Parse converts a literal into a Parsed value. Decimal, scientific and
// hexadecimal floating point notations are accepted, as well as inf,
// infinity and nan in any case with an optional sign. Surrounding
// whitespace is ignored.
//
// A literal spelling NaN parses successfully; callers that cannot iterate
// over NaN must reject it themselves.
func Parse(text string) (p Parsed, err error) {
	defer Error.WrapP(&err)

	s := strings.TrimSpace(text)

	neg, body := cutSign(s)
	if body == "" {
		return p, errs.New("invalid literal: %q", text)
	}

	switch strings.ToLower(body) {
	case "inf", "infinity":
		sign := 1
		if neg {
			sign = -1
		}

		return Parsed{
			Value:     decimal.Inf(sign),
			Precision: intp(0),
		}, nil
	case "nan":
		return Parsed{
			Value:     decimal.NaN(),
			Precision: intp(0),
		}, nil
	}

	if len(body) > 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		p, err = parseHex(neg, body[2:])
	} else {
		p, err = parseDecimal(neg, body)
	}
	if err != nil {
		return p, errs.New("invalid literal %q: %v", text, err)
	}

	return p, nil
}

func cutSign(s string) (neg bool, body string) {
	if s == "" {
		return false, s
	}

	switch s[0] {
	case '-':
		return true, s[1:]
	case '+':
		return false, s[1:]
	}

	return false, s
}

// splitExponent separates a mantissa from an exponent introduced by one of
// the marker bytes.
func splitExponent(s, markers string) (mantissa string, exp int, err error) {
	i := strings.IndexAny(s, markers)
	if i < 0 {
		return s, 0, nil
	}

	exp, err = strconv.Atoi(s[i+1:])
	if err != nil {
		return "", 0, errs.New("invalid exponent %q", s[i+1:])
	}

	return s[:i], exp, nil
}

// splitPoint separates the integral and fractional digits of a mantissa.
func splitPoint(s string) (intPart, fracPart string, err error) {
	intPart, fracPart, _ = strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return "", "", errs.New("no digits")
	}

	return intPart, fracPart, nil
}

func parseDecimal(neg bool, body string) (p Parsed, err error) {
	mantissa, exp, err := splitExponent(body, "eE")
	if err != nil {
		return p, err
	}

	if exp > MaxExponent || exp < -MaxExponent {
		return p, errs.New("exponent %d out of range", exp)
	}

	intPart, fracPart, err := splitPoint(mantissa)
	if err != nil {
		return p, err
	}

	coef, err := integer.Parse(intPart+fracPart, 10)
	if err != nil {
		return p, err
	}

	if neg {
		coef.Neg(coef)
	}

	scale := len(fracPart) - exp
	if coef.Sign() == 0 && neg {
		p.Value = decimal.NegZero()
	} else {
		p.Value = decimal.New(coef, scale)
	}

	p.Precision = intp(max(0, scale))

	p.IntegralDigits = max(1, len(intPart)+exp)
	if neg {
		p.IntegralDigits++
	}

	return p, nil
}
