// Package integer provides the arbitrary precision integer helpers used to
// build and rescale decimal coefficients.
package integer

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

var (
	one  = big.NewInt(1)
	two  = big.NewInt(2)
	five = big.NewInt(5)
	ten  = big.NewInt(10)
)

// pow10s caches the small powers of ten used when aligning scales.
var pow10s = func() (ps [32]*big.Int) {
	p := big.NewInt(1)
	for i := range ps {
		ps[i] = new(big.Int).Set(p)
		p.Mul(p, ten)
	}

	return ps
}()

// Parse converts a run of digits in the given base (10 or 16) into a
// non-negative integer. Signs, prefixes and separators are not accepted.
func Parse(digits string, base int) (i *big.Int, err error) {
	defer Error.WrapP(&err)

	if len(digits) == 0 {
		return nil, errs.New("no digits")
	}

	for j := 0; j < len(digits); j++ {
		if digitValue(digits[j]) >= base {
			return nil, errs.New("invalid base %d digit %q", base, digits[j])
		}
	}

	i, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, errs.New("invalid digits: %q", digits)
	}

	return i, nil
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}

	return 1 << 8
}

// Pow10 returns 10^n. The result must not be modified.
func Pow10(n int) *big.Int {
	if n < 0 {
		panic("integer: negative power of ten")
	}

	if n < len(pow10s) {
		return pow10s[n]
	}

	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// Pow5 returns 5^n.
func Pow5(n int) *big.Int {
	return new(big.Int).Exp(five, big.NewInt(int64(n)), nil)
}

// Digits returns the number of decimal digits in |x|. Zero has one digit.
func Digits(x *big.Int) int {
	if x == nil || x.Sign() == 0 {
		return 1
	}

	n := len(x.Text(10))
	if x.Sign() < 0 {
		n--
	}

	return n
}

// Rescale returns x * 10^n for n >= 0.
func Rescale(x *big.Int, n int) *big.Int {
	if n == 0 {
		return new(big.Int).Set(x)
	}

	return new(big.Int).Mul(x, Pow10(n))
}

// Round returns x / 10^drop rounded half to even. The sign of x is kept on
// the quotient.
func Round(x *big.Int, drop int) *big.Int {
	if drop <= 0 {
		return Rescale(x, -drop)
	}

	neg := x.Sign() < 0
	abs := new(big.Int).Abs(x)

	q, r := new(big.Int).QuoRem(abs, Pow10(drop), new(big.Int))

	// Compare twice the remainder against the divisor to decide the
	// direction; ties go to the even neighbour.
	r.Mul(r, two)
	switch r.Cmp(Pow10(drop)) {
	case 1:
		q.Add(q, one)
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, one)
		}
	}

	if neg {
		q.Neg(q)
	}

	return q
}

// Trim removes trailing decimal zeros from x while scale stays positive. It
// returns the reduced coefficient and scale.
func Trim(x *big.Int, scale int) (*big.Int, int) {
	if x.Sign() == 0 {
		return new(big.Int), 0
	}

	x = new(big.Int).Set(x)
	q, r := new(big.Int), new(big.Int)

	for scale > 0 {
		q.QuoRem(x, ten, r)
		if r.Sign() != 0 {
			break
		}

		x, q = q, x
		scale--
	}

	return x, scale
}
