package integer_test

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/seq/integer"
)

func TestParse(t *testing.T) {
	type TC struct {
		name   string
		digits string
		base   int
		value  string
		err    bool
		Mark   error
	}

	tcs := []TC{
		{name: "zero", digits: "0", base: 10, value: "0", Mark: oops.New("unexpected")},
		{name: "leading zeros", digits: "007", base: 10, value: "7", Mark: oops.New("unexpected")},
		{name: "long", digits: "123456789012345678901234567890", base: 10, value: "123456789012345678901234567890", Mark: oops.New("unexpected")},
		{name: "hex lower", digits: "ff", base: 16, value: "255", Mark: oops.New("unexpected")},
		{name: "hex upper", digits: "1A", base: 16, value: "26", Mark: oops.New("unexpected")},
		{name: "empty", digits: "", base: 10, err: true, Mark: oops.New("unexpected")},
		{name: "hex in decimal", digits: "1a", base: 10, err: true, Mark: oops.New("unexpected")},
		{name: "sign", digits: "-1", base: 10, err: true, Mark: oops.New("unexpected")},
		{name: "underscore", digits: "1_000", base: 10, err: true, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			v, err := integer.Parse(tc.digits, tc.base)
			if tc.err {
				require.Error(t, err, tc.Mark)
				require.True(t, integer.Error.Has(err), tc.Mark)

				return
			}

			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.value, v.String(), tc.Mark)
		})
	}
}

func TestPow10(t *testing.T) {
	for _, n := range []int{0, 1, 5, 31, 32, 40} {
		expected, ok := new(big.Int).SetString("1"+strings.Repeat("0", n), 10)
		require.True(t, ok)
		require.Equal(t, 0, expected.Cmp(integer.Pow10(n)), "n=%d", n)
	}

	require.Panics(t, func() { integer.Pow10(-1) })
}

func TestDigits(t *testing.T) {
	require.Equal(t, 1, integer.Digits(nil))
	require.Equal(t, 1, integer.Digits(big.NewInt(0)))
	require.Equal(t, 1, integer.Digits(big.NewInt(9)))
	require.Equal(t, 2, integer.Digits(big.NewInt(10)))
	require.Equal(t, 3, integer.Digits(big.NewInt(-123)))
}

func TestRound(t *testing.T) {
	type TC struct {
		name     string
		value    int64
		drop     int
		expected int64
	}

	tcs := []TC{
		{name: "no-op", value: 125, drop: 0, expected: 125},
		{name: "down", value: 124, drop: 1, expected: 12},
		{name: "up", value: 126, drop: 1, expected: 13},
		{name: "tie to even down", value: 125, drop: 1, expected: 12},
		{name: "tie to even up", value: 135, drop: 1, expected: 14},
		{name: "negative tie", value: -125, drop: 1, expected: -12},
		{name: "negative up", value: -126, drop: 1, expected: -13},
		{name: "to zero", value: 4, drop: 1, expected: 0},
		{name: "many", value: 1999, drop: 3, expected: 2},
		{name: "negative drop", value: 3, drop: -2, expected: 300},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			got := integer.Round(big.NewInt(tc.value), tc.drop)
			require.Equal(t, tc.expected, got.Int64())
		})
	}
}

func TestTrim(t *testing.T) {
	x, scale := integer.Trim(big.NewInt(15000), 4)
	require.Equal(t, int64(15), x.Int64())
	require.Equal(t, 1, scale)

	x, scale = integer.Trim(big.NewInt(1000), 2)
	require.Equal(t, int64(10), x.Int64())
	require.Equal(t, 0, scale)

	x, scale = integer.Trim(big.NewInt(-120), 1)
	require.Equal(t, int64(-12), x.Int64())
	require.Equal(t, 0, scale)

	x, scale = integer.Trim(big.NewInt(0), 3)
	require.Equal(t, int64(0), x.Int64())
	require.Equal(t, 0, scale)
}

func TestRescale(t *testing.T) {
	x := big.NewInt(-7)
	require.Equal(t, "-7000", integer.Rescale(x, 3).String())
	require.Equal(t, "-7", x.String())
	require.Equal(t, "-7", integer.Rescale(x, 0).String())
	require.Equal(t, "625", integer.Pow5(4).String())
}
