// Package bigint implements arbitrary-precision signed integers stored as
// decimal digits and operated on with schoolbook arithmetic.
package bigint

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrSyntax is returned by Parse for text that is not an optionally signed run of decimal digits.
	ErrSyntax = errors.New("invalid integer syntax")
	// ErrDivideByZero is returned by Div and Mod when the divisor is zero.
	ErrDivideByZero = errors.New("division by zero")
)

// Int is an immutable arbitrary-precision integer. Digits are held most
// significant first, each in [0, 9], with no leading zeros. Zero is always
// represented as a single positive 0 digit.
//
// The compound assignment and increment/decrement operator methods are the
// only methods that modify the receiver.
type Int struct {
	neg    bool
	digits []byte
}

func zero() *Int {
	return &Int{digits: []byte{0}}
}

// normalize builds an Int from a digit slice that may carry leading zeros.
func normalize(neg bool, digits []byte) *Int {
	digits = trim(digits)
	if isZero(digits) {
		neg = false
	}
	return &Int{neg: neg, digits: digits}
}

func trim(d []byte) []byte {
	if len(d) == 0 {
		return []byte{0}
	}
	i := 0
	for i < len(d)-1 && d[i] == 0 {
		i++
	}
	return d[i:]
}

func isZero(d []byte) bool {
	return len(d) == 1 && d[0] == 0
}

// New returns the Int holding v.
func New(v int64) *Int {
	if v == 0 {
		return zero()
	}

	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}

	var buf [20]byte
	p := len(buf)
	for u != 0 {
		p--
		buf[p] = byte(u % 10)
		u /= 10
	}

	digits := make([]byte, len(buf)-p)
	copy(digits, buf[p:])
	return &Int{neg: neg, digits: digits}
}

// Parse reads an optional leading '-' followed by one or more decimal digits.
// Superfluous leading zeros and negative zero are normalized away.
func Parse(s string) (*Int, error) {
	body := s
	neg := strings.HasPrefix(body, "-")
	if neg {
		body = body[1:]
	}

	if body == "" {
		return nil, errors.Wrapf(ErrSyntax, "%q", s)
	}

	digits := make([]byte, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < '0' || c > '9' {
			return nil, errors.Wrapf(ErrSyntax, "%q", s)
		}
		digits[i] = c - '0'
	}

	return normalize(neg, digits), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) *Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// Add returns x+y.
func (x *Int) Add(y *Int) *Int {
	switch {
	case x.neg == y.neg:
		return normalize(x.neg, addDigits(x.digits, y.digits))
	case y.neg:
		return subMagnitudes(x.digits, y.digits)
	default:
		return subMagnitudes(y.digits, x.digits)
	}
}

// Sub returns x-y.
func (x *Int) Sub(y *Int) *Int {
	switch {
	case x.neg != y.neg:
		return normalize(x.neg, addDigits(x.digits, y.digits))
	case x.neg:
		return subMagnitudes(y.digits, x.digits)
	default:
		return subMagnitudes(x.digits, y.digits)
	}
}

// Mul returns x*y.
func (x *Int) Mul(y *Int) *Int {
	return normalize(x.neg != y.neg, mulDigits(x.digits, y.digits))
}

// Div returns the quotient x/y truncated toward zero.
func (x *Int) Div(y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, errors.Wrapf(ErrDivideByZero, "%s / %s", x, y)
	}

	q, _ := divDigits(x.digits, y.digits)
	return normalize(x.neg != y.neg, q), nil
}

// Mod returns the Euclidean remainder of x/y, which lies in [0, |y|).
func (x *Int) Mod(y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, errors.Wrapf(ErrDivideByZero, "%s %% %s", x, y)
	}

	_, r := divDigits(x.digits, y.digits)
	if x.neg && !isZero(r) {
		r = subDigits(y.digits, r)
	}
	return normalize(false, r), nil
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	return normalize(!x.neg, x.digits)
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	return &Int{digits: x.digits}
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x *Int) Cmp(y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}

	c := cmpDigits(x.digits, y.digits)
	if x.neg {
		return -c
	}
	return c
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool {
	return isZero(x.digits)
}

// IsPositive reports whether x >= 0. Zero counts as positive.
func (x *Int) IsPositive() bool {
	return !x.neg
}

// Int64 returns x as an int64 and whether it fits.
func (x *Int) Int64() (int64, bool) {
	if len(x.digits) > 19 {
		return 0, false
	}

	var u uint64
	for _, d := range x.digits {
		u = u*10 + uint64(d)
	}

	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		return int64(-u), true
	}
	if u > 1<<63-1 {
		return 0, false
	}
	return int64(u), true
}

// String renders x as an optional '-' followed by its digits.
func (x *Int) String() string {
	var sb strings.Builder
	sb.Grow(len(x.digits) + 1)
	if x.neg {
		sb.WriteByte('-')
	}
	for _, d := range x.digits {
		sb.WriteByte('0' + d)
	}
	return sb.String()
}

// addDigits returns |a|+|b|.
func addDigits(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}

	// one extra slot absorbs a final carry (99 + 1)
	res := make([]byte, len(a)+1)
	var carry byte
	for i, j := len(a)-1, len(b)-1; i >= 0; i, j = i-1, j-1 {
		n := a[i] + carry
		if j >= 0 {
			n += b[j]
		}
		res[i+1] = n % 10
		carry = n / 10
	}

	res[0] = carry
	if carry == 0 {
		return res[1:]
	}
	return res
}

// subDigits returns |a|-|b|. The caller guarantees |a| >= |b|.
func subDigits(a, b []byte) []byte {
	res := make([]byte, len(a))
	borrow := 0
	for i, j := len(a)-1, len(b)-1; i >= 0; i, j = i-1, j-1 {
		n := int(a[i]) - borrow
		if j >= 0 {
			n -= int(b[j])
		}

		borrow = 0
		if n < 0 {
			n += 10
			borrow = 1
		}
		res[i] = byte(n)
	}
	return trim(res)
}

// subMagnitudes returns |a|-|b| with the sign of the larger magnitude.
func subMagnitudes(a, b []byte) *Int {
	switch cmpDigits(a, b) {
	case 0:
		return zero()
	case 1:
		return normalize(false, subDigits(a, b))
	default:
		return normalize(true, subDigits(b, a))
	}
}

func cmpDigits(a, b []byte) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}

	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func mulDigits(a, b []byte) []byte {
	acc := make([]int, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			n := int(a[i])*int(b[j]) + acc[i+j+1]
			acc[i+j+1] = n % 10
			acc[i+j] += n / 10
		}
	}

	res := make([]byte, len(acc))
	for i, n := range acc {
		res[i] = byte(n)
	}
	return trim(res)
}

// divDigits performs long division of |a| by |b| (b non-zero), returning the
// quotient and remainder magnitudes. Each quotient digit is found by repeatedly
// subtracting b shifted left to that digit's position.
func divDigits(a, b []byte) (quo, rem []byte) {
	if cmpDigits(a, b) < 0 {
		return []byte{0}, a
	}

	shift := len(a) - len(b)
	quo = make([]byte, shift+1)
	rem = a
	for k := 0; k <= shift; k++ {
		shifted := make([]byte, len(b)+shift-k)
		copy(shifted, b)

		for cmpDigits(rem, shifted) >= 0 {
			rem = subDigits(rem, shifted)
			quo[k]++
		}
	}

	return trim(quo), rem
}
