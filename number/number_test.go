package number_test

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/seq/decimal"
	"github.com/calebcase/seq/number"
)

func intp(i int) *int {
	return &i
}

func TestParse(t *testing.T) {
	type TC struct {
		name      string
		text      string
		value     string
		kind      decimal.Kind
		integral  int
		precision *int
		Mark      error
	}

	tcs := []TC{
		{name: "integer", text: "5", value: "5", integral: 1, precision: intp(0), Mark: oops.New("unexpected")},
		{name: "plus sign", text: "+5", value: "5", integral: 1, precision: intp(0), Mark: oops.New("unexpected")},
		{name: "negative", text: "-1", value: "-1", integral: 2, precision: intp(0), Mark: oops.New("unexpected")},
		{name: "leading zeros", text: "007", value: "7", integral: 3, precision: intp(0), Mark: oops.New("unexpected")},
		{name: "fraction", text: "0.5", value: "0.5", integral: 1, precision: intp(1), Mark: oops.New("unexpected")},
		{name: "trailing zeros kept", text: "1.50", value: "1.50", integral: 1, precision: intp(2), Mark: oops.New("unexpected")},
		{name: "bare fraction", text: ".25", value: "0.25", integral: 1, precision: intp(2), Mark: oops.New("unexpected")},
		{name: "negative bare fraction", text: "-.5", value: "-0.5", integral: 2, precision: intp(1), Mark: oops.New("unexpected")},
		{name: "trailing point", text: "5.", value: "5", integral: 1, precision: intp(0), Mark: oops.New("unexpected")},
		{name: "exponent", text: "1e2", value: "100", integral: 3, precision: intp(0), Mark: oops.New("unexpected")},
		{name: "exponent upper", text: "1.5E3", value: "1500", integral: 4, precision: intp(0), Mark: oops.New("unexpected")},
		{name: "negative exponent", text: "1e-2", value: "0.01", integral: 1, precision: intp(2), Mark: oops.New("unexpected")},
		{name: "exponent into fraction", text: "123e-1", value: "12.3", integral: 2, precision: intp(1), Mark: oops.New("unexpected")},
		{name: "exponent with plus", text: "2.5e+1", value: "25", integral: 2, precision: intp(0), Mark: oops.New("unexpected")},
		{name: "whitespace", text: " 3 ", value: "3", integral: 1, precision: intp(0), Mark: oops.New("unexpected")},
		{name: "huge", text: "123456789012345678901234567890", value: "123456789012345678901234567890", integral: 30, precision: intp(0), Mark: oops.New("unexpected")},
		{name: "negative zero", text: "-0", value: "-0", kind: decimal.KindNegativeZero, integral: 2, precision: intp(0), Mark: oops.New("unexpected")},
		{name: "negative zero fraction", text: "-0.0", value: "-0", kind: decimal.KindNegativeZero, integral: 2, precision: intp(1), Mark: oops.New("unexpected")},
		{name: "inf", text: "inf", value: "inf", kind: decimal.KindInfinity, precision: intp(0), Mark: oops.New("unexpected")},
		{name: "infinity mixed case", text: "-InFiNiTy", value: "-inf", kind: decimal.KindNegativeInfinity, precision: intp(0), Mark: oops.New("unexpected")},
		{name: "nan", text: "NaN", value: "nan", kind: decimal.KindNaN, precision: intp(0), Mark: oops.New("unexpected")},
		{name: "hex float", text: "0x1.8p3", value: "12", integral: 2, Mark: oops.New("unexpected")},
		{name: "hex fraction", text: "0x.8", value: "0.5", integral: 1, Mark: oops.New("unexpected")},
		{name: "hex integer", text: "0X10", value: "16", integral: 2, Mark: oops.New("unexpected")},
		{name: "hex negative exponent", text: "0x1p-2", value: "0.25", integral: 1, Mark: oops.New("unexpected")},
		{name: "hex negative", text: "-0x1p0", value: "-1", integral: 2, Mark: oops.New("unexpected")},
		{name: "hex negative zero", text: "-0x0p0", value: "-0", kind: decimal.KindNegativeZero, integral: 2, Mark: oops.New("unexpected")},
		{name: "hex overflow", text: "0x1p99999", value: "inf", kind: decimal.KindInfinity, Mark: oops.New("unexpected")},
		{name: "hex underflow", text: "0x1p-99999", value: "0", integral: 1, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			p, err := number.Parse(tc.text)
			require.NoError(t, err, tc.Mark)

			msg := fmt.Sprintf("%s\n%v", spew.Sdump(p), tc.Mark)
			require.Equal(t, tc.kind, p.Value.Kind(), msg)
			require.Equal(t, tc.value, p.Value.String(), msg)
			require.Equal(t, tc.integral, p.IntegralDigits, msg)
			require.Equal(t, tc.precision, p.Precision, msg)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for i, text := range []string{
		"",
		" ",
		"-",
		"+",
		".",
		"abc",
		"1.2.3",
		"1e",
		"1e+",
		"e5",
		"--1",
		"1,5",
		"0x",
		"0xg",
		"0x1p",
		"0x1.8e3p",
		"1e1000001",
		"infinit",
		"nana",
		"1_000",
	} {
		t.Run(fmt.Sprintf("[%d]%q", i, text), func(t *testing.T) {
			_, err := number.Parse(text)
			require.Error(t, err)
			require.True(t, number.Error.Has(err))
			require.Contains(t, err.Error(), "number: ")
		})
	}
}

func TestOne(t *testing.T) {
	one := number.One()
	require.Equal(t, "1", one.Value.String())
	require.Equal(t, 1, one.IntegralDigits)
	require.Equal(t, intp(0), one.Precision)
}

func TestRoundTrip(t *testing.T) {
	for i, text := range []string{"0", "1", "-1", "0.5", "-12.125", "1000000", "3.14159"} {
		t.Run(fmt.Sprintf("[%d]%s", i, text), func(t *testing.T) {
			p, err := number.Parse(text)
			require.NoError(t, err)

			rendered := p.Value.Text(0, *p.Precision)
			require.Equal(t, text, rendered)

			again, err := number.Parse(rendered)
			require.NoError(t, err)
			c, ok := p.Value.Cmp(again.Value)
			require.True(t, ok)
			require.Zero(t, c)
		})
	}
}
