package number

import (
	"math/big"

	"github.com/calebcase/seq/decimal"
	"github.com/calebcase/seq/integer"
)

// MaxBinaryExponent bounds the magnitude of a hexadecimal float. Values
// beyond it overflow to infinity or underflow to zero, mirroring the range
// of an extended precision float.
const MaxBinaryExponent = 16384

// parseHex converts the digits of a hexadecimal float (after the 0x prefix)
// into an exact decimal. Every mantissa * 2^exp is a terminating decimal
// since 2^-k = 5^k * 10^-k.
func parseHex(neg bool, body string) (p Parsed, err error) {
	mantissa, exp, err := splitExponent(body, "pP")
	if err != nil {
		return p, err
	}

	intPart, fracPart, err := splitPoint(mantissa)
	if err != nil {
		return p, err
	}

	coef, err := integer.Parse(intPart+fracPart, 16)
	if err != nil {
		return p, err
	}

	// Each fractional hex digit is four binary places.
	bexp := exp - 4*len(fracPart)

	switch {
	case coef.Sign() == 0:
		p.Value = zero(neg)
	case bexp+coef.BitLen() > MaxBinaryExponent:
		sign := 1
		if neg {
			sign = -1
		}

		p.Value = decimal.Inf(sign)
	case bexp+coef.BitLen() < -MaxBinaryExponent:
		p.Value = zero(neg)
	default:
		p.Value = binary(neg, coef, bexp)
	}

	p.IntegralDigits = integralDigits(p.Value)

	return p, nil
}

func zero(neg bool) decimal.Extended {
	if neg {
		return decimal.NegZero()
	}

	return decimal.Extended{}
}

// binary returns ±coef * 2^bexp as a decimal with trailing zeros removed.
func binary(neg bool, coef *big.Int, bexp int) decimal.Extended {
	scale := 0

	if bexp >= 0 {
		coef.Lsh(coef, uint(bexp))
	} else {
		coef.Mul(coef, integer.Pow5(-bexp))
		scale = -bexp
	}

	if neg {
		coef.Neg(coef)
	}

	coef, scale = integer.Trim(coef, scale)

	return decimal.New(coef, scale)
}

// integralDigits counts the characters before the decimal point of a value's
// plain rendering, including the sign.
func integralDigits(v decimal.Extended) int {
	switch v.Kind() {
	case decimal.KindFinite:
	case decimal.KindNegativeZero:
		return 2
	default:
		return 0
	}

	unscaled := v.Unscaled()

	n := 1
	if digits := integer.Digits(unscaled); digits > v.Scale() {
		n = digits - v.Scale()
	}

	if unscaled.Sign() < 0 {
		n++
	}

	return n
}
