// Package exact evaluates infix arithmetic over arbitrary-precision decimals.
//
// Addition, subtraction and multiplication are exact. Division is carried
// out at a fixed internal scale so intermediate results do not lose digits
// to the output scale, which is only applied to the final value.
package exact

import (
	"fmt"

	"github.com/charithe/exactcalc/pkg/bigint"
	"github.com/charithe/exactcalc/pkg/expr"
	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

const (
	// DefaultDivisionScale is the number of fractional digits kept by '/'.
	DefaultDivisionScale int32 = 34
	// DefaultSqrtPrecision is the number of significant digits kept by '√'.
	DefaultSqrtPrecision uint32 = 34
	// DefaultMaxFactorial is the largest operand accepted by '!'. The product
	// grows quadratically with the operand: 3000! takes a few hundred
	// milliseconds and 10000! several seconds.
	DefaultMaxFactorial int64 = 3000
	// DefaultMaxExponent is the largest exponent magnitude accepted by '^' and '**'.
	DefaultMaxExponent int64 = 10000
	// DefaultAutoScale is the scale tried first when no output scale is requested.
	DefaultAutoScale int32 = 16
)

// maxErrorOperandLen bounds how much of an operand is quoted in an error.
const maxErrorOperandLen = 24

var (
	ErrDivideByZero      = bigint.ErrDivideByZero
	ErrNotIntegral       = errors.New("operand is not an integer")
	ErrNegativeSqrt      = errors.New("square root of a negative number")
	ErrFactorialTooLarge = errors.New("factorial operand too large")
	ErrExponentTooLarge  = errors.New("exponent too large")
	ErrInvalidScale      = errors.New("invalid scale")
)

var priority = expr.DefaultPriority().With(expr.Priority{
	"^":  3,
	"**": 3,
	"√":  3,
	"!":  3,
})

var (
	halfUp    = apd.BaseContext.WithPrecision(0)
	roundDown = apd.BaseContext.WithPrecision(0)
)

func init() {
	halfUp.Rounding = apd.RoundHalfUp
	roundDown.Rounding = apd.RoundDown
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithDivisionScale sets the number of fractional digits kept by '/'.
func WithDivisionScale(scale int32) Option {
	return func(e *Evaluator) {
		e.divisionScale = scale
	}
}

// WithSqrtPrecision sets the number of significant digits kept by '√'.
func WithSqrtPrecision(precision uint32) Option {
	return func(e *Evaluator) {
		e.sqrtPrecision = precision
	}
}

// WithMaxFactorial bounds the operand of '!'.
func WithMaxFactorial(n int64) Option {
	return func(e *Evaluator) {
		e.maxFactorial = n
	}
}

// WithMaxExponent bounds the magnitude of a power's exponent.
func WithMaxExponent(n int64) Option {
	return func(e *Evaluator) {
		e.maxExponent = n
	}
}

// Evaluator evaluates decimal expressions. It holds no mutable state once
// constructed and may be shared between goroutines.
type Evaluator struct {
	divisionScale int32
	sqrtPrecision uint32
	maxFactorial  int64
	maxExponent   int64
	calc          *expr.Calculator[*apd.Decimal]
}

// New returns an Evaluator with the default limits, modified by opts.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		divisionScale: DefaultDivisionScale,
		sqrtPrecision: DefaultSqrtPrecision,
		maxFactorial:  DefaultMaxFactorial,
		maxExponent:   DefaultMaxExponent,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.calc = expr.NewCalculator[*apd.Decimal](priority, parse, e.binary,
		expr.WithUnary[*apd.Decimal](e.unary, "√", "!"))
	return e
}

var std = New()

// Evaluate evaluates expression with the default Evaluator and applies the
// automatic output scale.
func Evaluate(expression string) (*apd.Decimal, error) {
	return std.Evaluate(expression)
}

// EvaluateScale evaluates expression with the default Evaluator and rounds
// the result half-up to scale fractional digits.
func EvaluateScale(expression string, scale int32) (*apd.Decimal, error) {
	return std.EvaluateScale(expression, scale)
}

// Evaluate evaluates expression. A result with a non-zero fraction at scale
// 16 is returned at that scale, anything else is rounded to an integer.
func (e *Evaluator) Evaluate(expression string) (*apd.Decimal, error) {
	v, err := e.calc.Calc(expression)
	if err != nil {
		return nil, err
	}
	return e.AutoScale(v)
}

// EvaluateScale evaluates expression and rounds the result half-up to scale
// fractional digits.
func (e *Evaluator) EvaluateScale(expression string, scale int32) (*apd.Decimal, error) {
	if scale < 0 {
		return nil, errors.Wrapf(ErrInvalidScale, "%d", scale)
	}

	v, err := e.calc.Calc(expression)
	if err != nil {
		return nil, err
	}
	return e.Round(v, scale)
}

// Postfix returns an incremental evaluator for tokens already in postfix
// order. Its raw result still needs Round or AutoScale.
func (e *Evaluator) Postfix() *expr.Evaluator[*apd.Decimal] {
	return e.calc.NewEvaluator()
}

// Round rounds d half-up to scale fractional digits.
func (e *Evaluator) Round(d *apd.Decimal, scale int32) (*apd.Decimal, error) {
	if scale < 0 {
		return nil, errors.Wrapf(ErrInvalidScale, "%d", scale)
	}
	return quantize(halfUp, d, scale)
}

// AutoScale rounds d to 16 fractional digits when any of them is non-zero and
// to an integer otherwise.
func (e *Evaluator) AutoScale(d *apd.Decimal) (*apd.Decimal, error) {
	r, err := quantize(halfUp, d, DefaultAutoScale)
	if err != nil {
		return nil, err
	}

	if !isIntegral(r) {
		return r, nil
	}
	return quantize(halfUp, d, 0)
}

// Format renders d in plain notation without an exponent.
func Format(d *apd.Decimal) string {
	return d.Text('f')
}

func parse(token string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(token)
	if err != nil {
		return nil, errors.Wrapf(expr.ErrMalformed, "invalid number %q", token)
	}
	return d, nil
}

func (e *Evaluator) binary(a *apd.Decimal, symbol string, b *apd.Decimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	var err error

	switch symbol {
	case "+":
		_, err = apd.BaseContext.Add(d, a, b)
	case "-":
		_, err = apd.BaseContext.Sub(d, a, b)
	case "*":
		_, err = apd.BaseContext.Mul(d, a, b)
	case "/":
		return e.quo(a, b)
	case "%":
		return mod(a, b)
	case "^", "**":
		return e.pow(a, b)
	default:
		return nil, errors.Wrapf(expr.ErrUnsupportedOperator, "%q", symbol)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "%s %s %s", brief(a), symbol, brief(b))
	}
	return d, nil
}

func (e *Evaluator) unary(symbol string, a *apd.Decimal) (*apd.Decimal, error) {
	switch symbol {
	case "√":
		return e.sqrt(a)
	case "!":
		return e.factorial(a)
	default:
		return nil, errors.Wrapf(expr.ErrUnsupportedOperator, "%q", symbol)
	}
}

// quo divides a by b, rounding half-up to the division scale. The quotient is
// first truncated with at least one spare digit so that the final rounding
// sees the true remainder.
func (e *Evaluator) quo(a, b *apd.Decimal) (*apd.Decimal, error) {
	if b.IsZero() {
		return nil, errors.Wrapf(ErrDivideByZero, "%s / %s", brief(a), brief(b))
	}
	if a.IsZero() {
		return quantize(halfUp, apd.New(0, 0), e.divisionScale)
	}

	intDigits := adjusted(a) - adjusted(b)
	if intDigits < 0 {
		intDigits = 0
	}

	d := new(apd.Decimal)
	ctx := roundDown.WithPrecision(uint32(intDigits + int64(e.divisionScale) + 3))
	if _, err := ctx.Quo(d, a, b); err != nil {
		return nil, errors.Wrapf(err, "%s / %s", brief(a), brief(b))
	}
	return quantize(halfUp, d, e.divisionScale)
}

func mod(a, b *apd.Decimal) (*apd.Decimal, error) {
	x, err := toInt(a, "%")
	if err != nil {
		return nil, err
	}
	y, err := toInt(b, "%")
	if err != nil {
		return nil, err
	}

	r, err := x.Mod(y)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %% %s", brief(a), brief(b))
	}
	return fromInt(r)
}

// pow raises a to an integral exponent by repeated squaring. A negative
// exponent yields the reciprocal at the division scale.
func (e *Evaluator) pow(a, b *apd.Decimal) (*apd.Decimal, error) {
	if !isIntegral(b) {
		return nil, errors.Wrapf(ErrNotIntegral, "exponent %s", brief(b))
	}

	n, err := integralPart(b).Int64()
	if err != nil || n > e.maxExponent || n < -e.maxExponent {
		return nil, errors.Wrapf(ErrExponentTooLarge, "%s exceeds %d", brief(b), e.maxExponent)
	}

	neg := n < 0
	if neg {
		n = -n
	}

	result, base := apd.New(1, 0), a
	for n > 0 {
		if n&1 == 1 {
			next := new(apd.Decimal)
			if _, err := apd.BaseContext.Mul(next, result, base); err != nil {
				return nil, errors.Wrapf(err, "%s ^ %s", brief(a), brief(b))
			}
			result = next
		}
		n >>= 1
		if n > 0 {
			sq := new(apd.Decimal)
			if _, err := apd.BaseContext.Mul(sq, base, base); err != nil {
				return nil, errors.Wrapf(err, "%s ^ %s", brief(a), brief(b))
			}
			base = sq
		}
	}

	if neg {
		return e.quo(apd.New(1, 0), result)
	}
	return result, nil
}

func (e *Evaluator) sqrt(a *apd.Decimal) (*apd.Decimal, error) {
	if a.Sign() < 0 {
		return nil, errors.Wrapf(ErrNegativeSqrt, "√%s", brief(a))
	}

	ctx := apd.BaseContext.WithPrecision(e.sqrtPrecision)
	ctx.Rounding = apd.RoundHalfEven

	d := new(apd.Decimal)
	if _, err := ctx.Sqrt(d, a); err != nil {
		return nil, errors.Wrapf(err, "√%s", brief(a))
	}
	return d, nil
}

func (e *Evaluator) factorial(a *apd.Decimal) (*apd.Decimal, error) {
	if !isIntegral(a) {
		return nil, errors.Wrapf(ErrNotIntegral, "%s!", brief(a))
	}

	n, err := integralPart(a).Int64()
	if err != nil || n > e.maxFactorial {
		return nil, errors.Wrapf(ErrFactorialTooLarge, "%s! exceeds %d!", brief(a), e.maxFactorial)
	}

	f, err := bigint.Factorial(n)
	if err != nil {
		return nil, errors.Wrapf(err, "%s!", brief(a))
	}
	return fromInt(f)
}

// quantize rounds d to exactly scale fractional digits using ctx's rounding
// mode. The precision is sized to hold every digit of the result.
func quantize(ctx *apd.Context, d *apd.Decimal, scale int32) (*apd.Decimal, error) {
	exp := int64(d.Exponent)
	if exp < 0 {
		exp = -exp
	}

	c := ctx.WithPrecision(uint32(d.NumDigits() + exp + int64(scale) + 2))
	r := new(apd.Decimal)
	if _, err := c.Quantize(r, d, -scale); err != nil {
		return nil, errors.Wrapf(err, "rounding %s to scale %d", brief(d), scale)
	}
	if r.IsZero() {
		r.Negative = false
	}
	return r, nil
}

// adjusted returns the exponent of d's most significant digit.
func adjusted(d *apd.Decimal) int64 {
	return d.NumDigits() + int64(d.Exponent) - 1
}

func isIntegral(d *apd.Decimal) bool {
	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	return frac.IsZero()
}

func integralPart(d *apd.Decimal) *apd.Decimal {
	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	return &integ
}

func toInt(d *apd.Decimal, symbol string) (*bigint.Int, error) {
	if !isIntegral(d) {
		return nil, errors.Wrapf(ErrNotIntegral, "operand %s of %s", brief(d), symbol)
	}
	return bigint.Parse(integralPart(d).Text('f'))
}

// brief renders v for an error message with the middle of long values elided.
func brief(v fmt.Stringer) string {
	s := v.String()
	if len(s) <= maxErrorOperandLen {
		return s
	}
	half := maxErrorOperandLen / 2
	return fmt.Sprintf("%s...%s (%d characters)", s[:half], s[len(s)-half:], len(s))
}

func fromInt(x *bigint.Int) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(x.String())
	if err != nil {
		return nil, errors.Wrapf(err, "converting %s", brief(x))
	}
	return d, nil
}
