package decimal

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/calebcase/seq/integer"
)

// Kind tags which variant of Extended is active.
type Kind uint8

// Extended kinds.
const (
	KindFinite Kind = iota
	KindInfinity
	KindNegativeInfinity
	KindNaN
	KindNegativeZero
)

func (k Kind) String() string {
	switch k {
	case KindFinite:
		return "finite"
	case KindInfinity:
		return "infinity"
	case KindNegativeInfinity:
		return "negative infinity"
	case KindNaN:
		return "nan"
	case KindNegativeZero:
		return "negative zero"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Extended is an exact decimal number or one of the special values. The zero
// value is the finite number 0.
//
// Extended values are immutable; operations return new values and never
// modify the coefficients of their operands.
type Extended struct {
	kind  Kind
	value *big.Int
	scale int
}

// New returns the finite number value * 10^-scale. A negative scale is folded
// into the coefficient.
func New(value *big.Int, scale int) Extended {
	v := new(big.Int)
	if value != nil {
		v.Set(value)
	}

	if scale < 0 {
		v.Mul(v, integer.Pow10(-scale))
		scale = 0
	}

	return Extended{
		kind:  KindFinite,
		value: v,
		scale: scale,
	}
}

// NewFromInt returns the finite integer v.
func NewFromInt(v int64) Extended {
	return New(big.NewInt(v), 0)
}

// Inf returns positive infinity if sign >= 0 and negative infinity otherwise.
func Inf(sign int) Extended {
	if sign < 0 {
		return Extended{kind: KindNegativeInfinity}
	}

	return Extended{kind: KindInfinity}
}

// NaN returns the not-a-number value.
func NaN() Extended {
	return Extended{kind: KindNaN}
}

// NegZero returns negative zero.
func NegZero() Extended {
	return Extended{kind: KindNegativeZero}
}

// Kind returns the active variant.
func (d Extended) Kind() Kind {
	return d.kind
}

// Unscaled returns a copy of the unscaled coefficient. It is zero for every
// special value.
func (d Extended) Unscaled() *big.Int {
	if d.kind != KindFinite || d.value == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(d.value)
}

// Scale returns the number of fractional digits of a finite value.
func (d Extended) Scale() int {
	if d.kind != KindFinite {
		return 0
	}

	return d.scale
}

// IsZero reports whether d is zero or negative zero.
func (d Extended) IsZero() bool {
	switch d.kind {
	case KindNegativeZero:
		return true
	case KindFinite:
		return d.value == nil || d.value.Sign() == 0
	}

	return false
}

// IsNaN reports whether d is not-a-number.
func (d Extended) IsNaN() bool {
	return d.kind == KindNaN
}

// IsInf reports whether d is an infinity with the given sign. A sign of 0
// matches either infinity.
func (d Extended) IsInf(sign int) bool {
	switch d.kind {
	case KindInfinity:
		return sign >= 0
	case KindNegativeInfinity:
		return sign <= 0
	}

	return false
}

// Sign returns -1, 0 or +1. Negative zero and NaN report 0.
func (d Extended) Sign() int {
	switch d.kind {
	case KindInfinity:
		return 1
	case KindNegativeInfinity:
		return -1
	case KindFinite:
		if d.value == nil {
			return 0
		}

		return d.value.Sign()
	}

	return 0
}

func (d Extended) coef() *big.Int {
	if d.value == nil {
		return new(big.Int)
	}

	return d.value
}

// align returns the coefficients of two finite values at their common scale.
func align(d, e Extended) (x, y *big.Int, scale int) {
	switch {
	case d.scale > e.scale:
		return d.coef(), integer.Rescale(e.coef(), d.scale-e.scale), d.scale
	case d.scale < e.scale:
		return integer.Rescale(d.coef(), e.scale-d.scale), e.coef(), e.scale
	}

	return d.coef(), e.coef(), d.scale
}

// Add returns d + e.
func (d Extended) Add(e Extended) Extended {
	switch {
	case d.kind == KindNaN || e.kind == KindNaN:
		return NaN()
	case d.kind == KindInfinity:
		if e.kind == KindNegativeInfinity {
			return NaN()
		}

		return d
	case d.kind == KindNegativeInfinity:
		if e.kind == KindInfinity {
			return NaN()
		}

		return d
	case e.kind == KindInfinity || e.kind == KindNegativeInfinity:
		return e
	case d.kind == KindNegativeZero:
		return e
	case e.kind == KindNegativeZero:
		return d
	}

	x, y, scale := align(d, e)

	return Extended{
		kind:  KindFinite,
		value: new(big.Int).Add(x, y),
		scale: scale,
	}
}

func (d Extended) rank() int {
	switch d.kind {
	case KindInfinity:
		return 1
	case KindNegativeInfinity:
		return -1
	}

	return 0
}

// Cmp compares d and e and returns -1, 0 or +1. The boolean is false when the
// values are unordered, which happens whenever either side is NaN.
func (d Extended) Cmp(e Extended) (c int, ok bool) {
	if d.kind == KindNaN || e.kind == KindNaN {
		return 0, false
	}

	dr, er := d.rank(), e.rank()
	switch {
	case dr < er:
		return -1, true
	case dr > er:
		return 1, true
	case dr != 0:
		return 0, true
	}

	// Negative zero has a nil coefficient and compares as zero.
	x, y, _ := align(d, e)

	return x.Cmp(y), true
}

// Less reports whether d < e.
func (d Extended) Less(e Extended) bool {
	c, ok := d.Cmp(e)

	return ok && c < 0
}

// Greater reports whether d > e.
func (d Extended) Greater(e Extended) bool {
	c, ok := d.Cmp(e)

	return ok && c > 0
}

// Float64 returns the float64 nearest to d.
func (d Extended) Float64() float64 {
	switch d.kind {
	case KindInfinity:
		return math.Inf(1)
	case KindNegativeInfinity:
		return math.Inf(-1)
	case KindNaN:
		return math.NaN()
	case KindNegativeZero:
		return math.Copysign(0, -1)
	}

	f, _ := new(big.Rat).SetFrac(d.coef(), integer.Pow10(d.scale)).Float64()

	return f
}

// Text renders d into a field of at least width characters. When prec is
// non-negative exactly prec fractional digits are printed; otherwise finite
// values print all of their digits.
func (d Extended) Text(width, prec int) string {
	var (
		neg    bool
		digits string
	)

	switch d.kind {
	case KindInfinity:
		return padLeft("inf", width, ' ')
	case KindNegativeInfinity:
		return padLeft("-inf", width, ' ')
	case KindNaN:
		return padLeft("nan", width, ' ')
	case KindNegativeZero:
		neg = true
		digits = fixed(new(big.Int), 0, prec)
	default:
		neg = d.coef().Sign() < 0
		digits = fixed(d.coef(), d.scale, prec)
	}

	sign := 0
	if neg {
		sign = 1
	}

	sb := &strings.Builder{}
	sb.Grow(max(width, len(digits)+sign))

	if neg {
		sb.WriteByte('-')
	}

	for i := len(digits) + sign; i < width; i++ {
		sb.WriteByte('0')
	}

	sb.WriteString(digits)

	return sb.String()
}

// fixed returns the unsigned digits of value * 10^-scale with prec fractional
// digits, or with scale fractional digits when prec is negative.
func fixed(value *big.Int, scale, prec int) string {
	if prec < 0 {
		prec = scale
	}

	q := integer.Round(value, scale-prec)
	s := new(big.Int).Abs(q).Text(10)

	if prec == 0 {
		return s
	}

	if len(s) <= prec {
		s = strings.Repeat("0", prec-len(s)+1) + s
	}

	return s[:len(s)-prec] + "." + s[len(s)-prec:]
}

func padLeft(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat(string(pad), width-len(s)) + s
}

// String returns the natural text of d: all digits of a finite value, -0,
// inf, -inf or nan.
func (d Extended) String() string {
	return d.Text(0, -1)
}

// Format implements fmt.Formatter. The verbs %v, %s and %f are supported;
// width, precision and the '-' and '0' flags are honoured.
func (d Extended) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'f', 'F':
	default:
		fmt.Fprintf(state, "%%!%c(decimal.Extended=%s)", verb, d.String())

		return
	}

	prec, ok := state.Precision()
	if !ok {
		prec = -1
	}

	width, _ := state.Width()

	var text string
	switch {
	case state.Flag('-'):
		text = d.Text(0, prec)
		if len(text) < width {
			text += strings.Repeat(" ", width-len(text))
		}
	case state.Flag('0'):
		text = d.Text(width, prec)
	default:
		text = padLeft(d.Text(0, prec), width, ' ')
	}

	_, _ = state.Write([]byte(text))
}
