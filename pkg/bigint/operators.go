package bigint

import (
	"github.com/pkg/errors"
)

// MaxShift bounds the shift count accepted by Shl and Shr.
const MaxShift = 4096

// ErrShiftCount is returned for negative shift counts or counts above MaxShift.
var ErrShiftCount = errors.New("invalid shift count")

var one = New(1)

// The methods below let *Int take part in operator expressions (see package
// operator). Logical operators treat any non-zero value as true. Bitwise
// and/or/xor/complement and the unsigned shift have no meaning for an
// unbounded decimal representation and are not provided.

func (x *Int) Plus(y *Int) (*Int, error)  { return x.Add(y), nil }
func (x *Int) Minus(y *Int) (*Int, error) { return x.Sub(y), nil }
func (x *Int) Times(y *Int) (*Int, error) { return x.Mul(y), nil }

// Shl returns x * 2^y.
func (x *Int) Shl(y *Int) (*Int, error) {
	p, err := pow2(y)
	if err != nil {
		return nil, err
	}
	return x.Mul(p), nil
}

// Shr returns x / 2^y rounded toward negative infinity, like an arithmetic
// right shift on a two's complement integer.
func (x *Int) Shr(y *Int) (*Int, error) {
	p, err := pow2(y)
	if err != nil {
		return nil, err
	}

	q, err := x.Div(p)
	if err != nil {
		return nil, err
	}
	if x.neg && q.Mul(p).Cmp(x) != 0 {
		q = q.Sub(one)
	}
	return q, nil
}

func pow2(count *Int) (*Int, error) {
	n, ok := count.Int64()
	if !ok || n < 0 || n > MaxShift {
		return nil, errors.Wrapf(ErrShiftCount, "%s", count)
	}

	res, base := New(1), New(2)
	for n > 0 {
		if n&1 == 1 {
			res = res.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return res, nil
}

func (x *Int) assign(v *Int, err error) (*Int, error) {
	if err != nil {
		return nil, err
	}
	*x = *v
	return x, nil
}

func (x *Int) PlusAssign(y *Int) (*Int, error)  { return x.assign(x.Add(y), nil) }
func (x *Int) MinusAssign(y *Int) (*Int, error) { return x.assign(x.Sub(y), nil) }
func (x *Int) TimesAssign(y *Int) (*Int, error) { return x.assign(x.Mul(y), nil) }
func (x *Int) DivAssign(y *Int) (*Int, error)   { return x.assign(x.Div(y)) }
func (x *Int) ModAssign(y *Int) (*Int, error)   { return x.assign(x.Mod(y)) }
func (x *Int) ShlAssign(y *Int) (*Int, error)   { return x.assign(x.Shl(y)) }
func (x *Int) ShrAssign(y *Int) (*Int, error)   { return x.assign(x.Shr(y)) }

func (x *Int) UnaryPlus() (*Int, error)  { return x, nil }
func (x *Int) UnaryMinus() (*Int, error) { return x.Neg(), nil }

func (x *Int) IncPre() (*Int, error) { return x.assign(x.Add(one), nil) }
func (x *Int) DecPre() (*Int, error) { return x.assign(x.Sub(one), nil) }

func (x *Int) IncPost() (*Int, error) {
	old := *x
	*x = *x.Add(one)
	return &old, nil
}

func (x *Int) DecPost() (*Int, error) {
	old := *x
	*x = *x.Sub(one)
	return &old, nil
}

func (x *Int) Eq(y *Int) bool        { return x.Cmp(y) == 0 }
func (x *Int) NotEq(y *Int) bool     { return x.Cmp(y) != 0 }
func (x *Int) Less(y *Int) bool      { return x.Cmp(y) < 0 }
func (x *Int) Greater(y *Int) bool   { return x.Cmp(y) > 0 }
func (x *Int) LessEq(y *Int) bool    { return x.Cmp(y) <= 0 }
func (x *Int) GreaterEq(y *Int) bool { return x.Cmp(y) >= 0 }

func (x *Int) And(y *Int) bool { return !x.IsZero() && !y.IsZero() }
func (x *Int) Or(y *Int) bool  { return !x.IsZero() || !y.IsZero() }
func (x *Int) Not() bool       { return x.IsZero() }
