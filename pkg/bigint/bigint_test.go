package bigint

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "zero", input: "0", want: "0"},
		{name: "negativeZero", input: "-0", want: "0"},
		{name: "leadingZeros", input: "000120", want: "120"},
		{name: "negativeLeadingZeros", input: "-007", want: "-7"},
		{name: "large", input: "-123456789012345678901234567890", want: "-123456789012345678901234567890"},
		{name: "empty", input: "", wantErr: true},
		{name: "signOnly", input: "-", wantErr: true},
		{name: "plusSign", input: "+5", wantErr: true},
		{name: "fraction", input: "1.5", wantErr: true},
		{name: "letters", input: "12a", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			have, err := Parse(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				require.Equal(t, ErrSyntax, errors.Cause(err))
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, have.String())
		})
	}
}

func TestNew(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 10, -99, math.MaxInt64, math.MinInt64} {
		have := New(v)
		require.Equal(t, strconv.FormatInt(v, 10), have.String())

		back, ok := have.Int64()
		require.True(t, ok)
		require.Equal(t, v, back)
	}

	_, ok := MustParse("9223372036854775808").Int64()
	require.False(t, ok)
	_, ok = MustParse("-9223372036854775809").Int64()
	require.False(t, ok)
}

func TestArithmetic(t *testing.T) {
	testCases := []struct {
		name string
		have func() *Int
		want string
	}{
		{name: "addCarry", have: func() *Int { return MustParse("999").Add(New(1)) }, want: "1000"},
		{name: "subBorrow", have: func() *Int { return MustParse("100").Sub(MustParse("1")) }, want: "99"},
		{name: "subNegativeResult", have: func() *Int { return MustParse("1").Sub(MustParse("100")) }, want: "-99"},
		{name: "subToZero", have: func() *Int { return MustParse("-42").Sub(MustParse("-42")) }, want: "0"},
		{name: "addMixedSigns", have: func() *Int { return MustParse("-1000").Add(MustParse("1")) }, want: "-999"},
		{name: "addNegatives", have: func() *Int { return MustParse("-5").Add(MustParse("-7")) }, want: "-12"},
		{name: "mulSigns", have: func() *Int { return MustParse("-12").Mul(MustParse("12")) }, want: "-144"},
		{name: "mulByZero", have: func() *Int { return MustParse("-12").Mul(New(0)) }, want: "0"},
		{
			name: "mulLarge",
			have: func() *Int { return MustParse("123456789123456789").Mul(MustParse("987654321987654321")) },
			want: "121932631356500531347203169112635269",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.have().String())
		})
	}
}

func TestDiv(t *testing.T) {
	testCases := []struct {
		a, b    string
		want    string
		wantMod string
	}{
		{a: "100", b: "7", want: "14", wantMod: "2"},
		{a: "10", b: "5", want: "2", wantMod: "0"},
		{a: "-100", b: "7", want: "-14", wantMod: "5"},
		{a: "100", b: "-7", want: "-14", wantMod: "2"},
		{a: "-3", b: "7", want: "0", wantMod: "4"},
		{a: "3", b: "7", want: "0", wantMod: "3"},
		{a: "121932631356500531347203169112635269", b: "987654321987654321", want: "123456789123456789", wantMod: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.a+"/"+tc.b, func(t *testing.T) {
			q, err := MustParse(tc.a).Div(MustParse(tc.b))
			require.NoError(t, err)
			require.Equal(t, tc.want, q.String())

			m, err := MustParse(tc.a).Mod(MustParse(tc.b))
			require.NoError(t, err)
			require.Equal(t, tc.wantMod, m.String())
		})
	}

	t.Run("divideByZero", func(t *testing.T) {
		_, err := MustParse("5").Div(MustParse("0"))
		require.Error(t, err)
		require.Equal(t, ErrDivideByZero, errors.Cause(err))

		_, err = MustParse("5").Mod(MustParse("-0"))
		require.Equal(t, ErrDivideByZero, errors.Cause(err))
	})
}

// TestAgreesWithNative compares results against int64 arithmetic for operands
// whose results stay in range.
func TestAgreesWithNative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	values := []int64{0, 1, -1, 9, -10, 99, 1000, -1001, math.MaxInt32, math.MinInt32}
	for i := 0; i < 200; i++ {
		values = append(values, rng.Int63n(1<<31)-1<<30)
	}

	for _, a := range values {
		for _, b := range values[:20] {
			x, y := New(a), New(b)
			require.Equal(t, strconv.FormatInt(a+b, 10), x.Add(y).String(), "%d + %d", a, b)
			require.Equal(t, strconv.FormatInt(a-b, 10), x.Sub(y).String(), "%d - %d", a, b)
			require.Equal(t, strconv.FormatInt(a*b, 10), x.Mul(y).String(), "%d * %d", a, b)

			var want int
			switch {
			case a < b:
				want = -1
			case a > b:
				want = 1
			}
			require.Equal(t, want, x.Cmp(y), "cmp(%d, %d)", a, b)

			if b != 0 {
				q, err := x.Div(y)
				require.NoError(t, err)
				require.Equal(t, strconv.FormatInt(a/b, 10), q.String(), "%d / %d", a, b)
			}
		}
	}
}

func TestAgreesWithNativeNearLimits(t *testing.T) {
	testCases := []struct {
		a, b int64
	}{
		{a: math.MaxInt64 - 5, b: 5},
		{a: math.MaxInt64, b: -math.MaxInt64},
		{a: math.MinInt64 + 7, b: -7},
		{a: math.MinInt64, b: 0},
		{a: math.MinInt64 / 2, b: 2},
		{a: math.MaxInt64 / 3, b: -3},
		{a: math.MaxInt64, b: 1},
		{a: -math.MaxInt64, b: -1},
		{a: 3037000499, b: 3037000499},
		{a: -3037000499, b: 3037000499},
	}

	for _, tc := range testCases {
		a, b := tc.a, tc.b
		x, y := New(a), New(b)

		// operations that overflow int64 have no native result to compare with
		if sum := a + b; (b >= 0) == (sum >= a) {
			require.Equal(t, strconv.FormatInt(sum, 10), x.Add(y).String(), "%d + %d", a, b)
		}
		if diff := a - b; (b >= 0) == (diff <= a) {
			require.Equal(t, strconv.FormatInt(diff, 10), x.Sub(y).String(), "%d - %d", a, b)
		}
		if prod := a * b; a == 0 || (prod/a == b && !(a == -1 && b == math.MinInt64)) {
			require.Equal(t, strconv.FormatInt(prod, 10), x.Mul(y).String(), "%d * %d", a, b)
		}
		if b != 0 {
			q, err := x.Div(y)
			require.NoError(t, err)
			require.Equal(t, strconv.FormatInt(a/b, 10), q.String(), "%d / %d", a, b)
		}
		require.Equal(t, strconv.FormatInt(a, 10), x.String())
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		n := 1 + rng.Intn(60)
		b := make([]byte, n)
		for j := range b {
			b[j] = byte('0' + rng.Intn(10))
		}
		if b[0] == '0' {
			b[0] = '1'
		}

		s := string(b)
		if rng.Intn(2) == 0 {
			s = "-" + s
		}
		require.Equal(t, s, MustParse(s).String())
	}
}

func TestFactorial(t *testing.T) {
	testCases := []struct {
		n    int64
		want string
	}{
		{n: 0, want: "1"},
		{n: 1, want: "1"},
		{n: 3, want: "6"},
		{n: 5, want: "120"},
		{n: 20, want: "2432902008176640000"},
		{n: 21, want: "51090942171709440000"},
		{n: 25, want: "15511210043330985984000000"},
		{n: 30, want: "265252859812191058636308480000000"},
	}

	for _, tc := range testCases {
		t.Run(strconv.FormatInt(tc.n, 10), func(t *testing.T) {
			have, err := Factorial(tc.n)
			require.NoError(t, err)
			require.Equal(t, tc.want, have.String())
		})
	}

	t.Run("hundred", func(t *testing.T) {
		have, err := Factorial(100)
		require.NoError(t, err)
		s := have.String()
		require.Len(t, s, 158)
		require.Equal(t, "93326215443944152681", s[:20])
	})

	t.Run("negative", func(t *testing.T) {
		_, err := Factorial(-1)
		require.Equal(t, ErrNegativeFactorial, errors.Cause(err))
	})
}

func TestShifts(t *testing.T) {
	testCases := []struct {
		x, n    int64
		wantShl int64
		wantShr int64
	}{
		{x: 3, n: 4, wantShl: 48, wantShr: 0},
		{x: 100, n: 2, wantShl: 400, wantShr: 25},
		{x: -7, n: 1, wantShl: -14, wantShr: -4},
		{x: -8, n: 2, wantShl: -32, wantShr: -2},
		{x: 5, n: 0, wantShl: 5, wantShr: 5},
	}

	for _, tc := range testCases {
		have, err := New(tc.x).Shl(New(tc.n))
		require.NoError(t, err)
		require.Equal(t, New(tc.wantShl).String(), have.String())

		have, err = New(tc.x).Shr(New(tc.n))
		require.NoError(t, err)
		require.Equal(t, New(tc.wantShr).String(), have.String())
	}

	_, err := New(1).Shl(New(-1))
	require.Equal(t, ErrShiftCount, errors.Cause(err))
	_, err = New(1).Shr(New(MaxShift + 1))
	require.Equal(t, ErrShiftCount, errors.Cause(err))
}

func TestAssignmentOperators(t *testing.T) {
	x := New(3)
	same, err := x.TimesAssign(New(9))
	require.NoError(t, err)
	require.True(t, same == x)
	require.Equal(t, "27", x.String())

	old, err := x.IncPost()
	require.NoError(t, err)
	require.Equal(t, "27", old.String())
	require.Equal(t, "28", x.String())

	_, err = x.DivAssign(New(0))
	require.Error(t, err)
	require.Equal(t, "28", x.String())

	require.True(t, New(0).Not())
	require.True(t, New(-2).And(New(5)))
	require.False(t, New(0).Or(New(0)))
}
