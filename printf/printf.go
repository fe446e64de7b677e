// Package printf renders a single floating point value through a C style
// printf template such as "%.3f" or "value: %08.2e\n".
//
// A template holds literal text and exactly one floating point conversion:
//
//	%[flags][width][.precision][length]verb
//
// Flags are any of "-+ #0'", verbs are one of "aAeEfFgG" and the length
// modifiers "l" and "L" are accepted and ignored. A literal percent sign is
// written as "%%". Backslash escapes in the template are interpreted.
package printf

import (
	"math"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("printf")

// Format is a parsed template.
type Format struct {
	prefix string
	suffix string
	conv   conversion
}

type conversion struct {
	minus bool
	plus  bool
	space bool
	alt   bool
	zero  bool

	width int
	prec  int // -1 when unspecified
	verb  byte
}

// Parse parses a template. It fails when the template does not contain
// exactly one conversion or uses an unsupported directive.
func Parse(template string) (f *Format, err error) {
	defer Error.WrapP(&err)

	text := Unescape(template)

	f = &Format{}
	sb := &strings.Builder{}
	found := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '%' {
			sb.WriteByte(c)

			continue
		}

		if i+1 >= len(text) {
			return nil, errs.New("format %q ends in %%", template)
		}

		if text[i+1] == '%' {
			sb.WriteByte('%')
			i++

			continue
		}

		if found {
			return nil, errs.New("format %q has too many %% directives", template)
		}

		conv, n, err := parseConversion(text[i+1:])
		if err != nil {
			return nil, errs.New("format %q %v", template, err)
		}

		f.prefix = sb.String()
		f.conv = conv
		sb.Reset()
		found = true
		i += n
	}

	if !found {
		return nil, errs.New("format %q has no %% directive", template)
	}

	f.suffix = sb.String()

	return f, nil
}

// MustParse is like Parse but panics on error.
func MustParse(template string) *Format {
	f, err := Parse(template)
	if err != nil {
		panic(err)
	}

	return f
}

// parseConversion parses the directive following a '%' and returns the
// number of bytes consumed.
func parseConversion(s string) (c conversion, n int, err error) {
	c.prec = -1

flags:
	for ; n < len(s); n++ {
		switch s[n] {
		case '-':
			c.minus = true
		case '+':
			c.plus = true
		case ' ':
			c.space = true
		case '#':
			c.alt = true
		case '0':
			c.zero = true
		case '\'':
			// Grouping has no effect without a locale.
		default:
			break flags
		}
	}

	start := n
	for n < len(s) && isDigit(s[n]) {
		n++
	}

	if n > start {
		c.width, err = strconv.Atoi(s[start:n])
		if err != nil {
			return c, n, errs.New("has an invalid width")
		}
	}

	if n < len(s) && s[n] == '.' {
		n++

		start = n
		for n < len(s) && isDigit(s[n]) {
			n++
		}

		c.prec = 0
		if n > start {
			c.prec, err = strconv.Atoi(s[start:n])
			if err != nil {
				return c, n, errs.New("has an invalid precision")
			}
		}
	}

	for n < len(s) && (s[n] == 'l' || s[n] == 'L') {
		n++
	}

	if n >= len(s) {
		return c, n, errs.New("ends in %%")
	}

	switch s[n] {
	case 'a', 'A', 'e', 'E', 'f', 'F', 'g', 'G':
		c.verb = s[n]
	default:
		return c, n, errs.New("has unknown %%%c directive", s[n])
	}

	return c, n + 1, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Sprint renders x through the template.
func (f *Format) Sprint(x float64) string {
	return f.prefix + f.conv.render(x) + f.suffix
}

func (c conversion) upper() bool {
	return c.verb >= 'A' && c.verb <= 'Z'
}

func (c conversion) render(x float64) string {
	neg := math.Signbit(x)
	finite := !math.IsInf(x, 0) && !math.IsNaN(x)

	var body string
	switch {
	case math.IsNaN(x):
		body = "nan"
	case math.IsInf(x, 0):
		body = "inf"
	default:
		body = c.digits(math.Abs(x))
	}

	if c.upper() {
		body = strings.ToUpper(body)
	}

	sign := ""
	switch {
	case neg:
		sign = "-"
	case c.plus:
		sign = "+"
	case c.space:
		sign = " "
	}

	pad := c.width - len(sign) - len(body)
	if pad <= 0 {
		return sign + body
	}

	switch {
	case c.minus:
		return sign + body + strings.Repeat(" ", pad)
	case c.zero && finite:
		zeros := strings.Repeat("0", pad)
		if c.verb == 'a' || c.verb == 'A' {
			// Zeros go between the 0x prefix and the mantissa.
			return sign + body[:2] + zeros + body[2:]
		}

		return sign + zeros + body
	}

	return strings.Repeat(" ", pad) + sign + body
}

// digits formats a finite non-negative value without sign or padding.
func (c conversion) digits(x float64) string {
	prec := c.prec

	switch c.verb {
	case 'f', 'F':
		if prec < 0 {
			prec = 6
		}

		s := strconv.FormatFloat(x, 'f', prec, 64)
		if c.alt && prec == 0 {
			s += "."
		}

		return s
	case 'e', 'E':
		if prec < 0 {
			prec = 6
		}

		s := strconv.FormatFloat(x, 'e', prec, 64)
		if c.alt && prec == 0 {
			s = strings.Replace(s, "e", ".e", 1)
		}

		return s
	case 'g', 'G':
		return c.general(x, prec)
	case 'a', 'A':
		return c.hex(x, prec)
	}

	return ""
}

// general implements %g: P significant digits, exponent form when the
// exponent is below -4 or at least P, trailing zeros removed unless '#'.
func (c conversion) general(x float64, prec int) string {
	switch {
	case prec < 0:
		prec = 6
	case prec == 0:
		prec = 1
	}

	e := strconv.FormatFloat(x, 'e', prec-1, 64)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])

	var s string
	if exp < -4 || exp >= prec {
		s = e
	} else {
		s = strconv.FormatFloat(x, 'f', prec-1-exp, 64)
	}

	if c.alt {
		if !strings.Contains(s, ".") {
			if i := strings.IndexByte(s, 'e'); i >= 0 {
				s = s[:i] + "." + s[i:]
			} else {
				s += "."
			}
		}

		return s
	}

	mantissa, exponent := s, ""
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mantissa, exponent = s[:i], s[i:]
	}

	if strings.Contains(mantissa, ".") {
		mantissa = strings.TrimRight(mantissa, "0")
		mantissa = strings.TrimSuffix(mantissa, ".")
	}

	return mantissa + exponent
}

// hex implements %a with a normalized 0x1.hhhp+d mantissa and the shortest
// exponent.
func (c conversion) hex(x float64, prec int) string {
	s := strconv.FormatFloat(x, 'x', prec, 64)

	i := strings.IndexByte(s, 'p')
	mantissa, exponent := s[:i], s[i+1:]

	if c.alt && !strings.Contains(mantissa, ".") {
		mantissa += "."
	}

	sign := exponent[:1]
	exponent = strings.TrimLeft(exponent[1:], "0")
	if exponent == "" {
		exponent = "0"
	}

	return mantissa + "p" + sign + exponent
}

// Unescape interprets the backslash escapes \\ \" \a \b \f \n \r \t \v and
// octal \NNN. Unknown escapes are kept as written.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	sb := &strings.Builder{}
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)

			continue
		}

		i++

		switch s[i] {
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v, j := 0, i
			for ; j < len(s) && j < i+3 && s[j] >= '0' && s[j] <= '7'; j++ {
				v = v*8 + int(s[j]-'0')
			}

			sb.WriteByte(byte(v))
			i = j - 1
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}

	return sb.String()
}
