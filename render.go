package seq

import (
	"strings"

	"github.com/calebcase/seq/decimal"
	"github.com/calebcase/seq/printf"
)

// compact renders values whose operands carried no decimal precision.
var compact = printf.MustParse("%g")

// FieldWidth returns the padded width of every value. Without equal width
// padding values are not padded at all.
func FieldWidth(equalWidth bool, integralDigits int, precision *int) int {
	if !equalWidth {
		return 0
	}

	if precision != nil && *precision > 0 {
		return integralDigits + *precision + 1
	}

	return integralDigits
}

// Render returns the default text of value. With a precision the value is
// printed with exactly that many fractional digits, zero padded to width
// (infinities are space padded). Without one, finite values are printed in
// compact %g form and width is ignored, while the special values are zero
// padded to width after their sign.
func Render(value decimal.Extended, width int, precision *int) string {
	if precision != nil {
		return value.Text(width, *precision)
	}

	if value.Kind() == decimal.KindFinite {
		return compact.Sprint(value.Float64())
	}

	text := value.String()
	if len(text) >= width {
		return text
	}

	sign := ""
	if text[0] == '-' {
		sign, text = "-", text[1:]
	}

	return sign + strings.Repeat("0", width-len(sign)-len(text)) + text
}
