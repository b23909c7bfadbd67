package expr

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// ParseFunc turns a number token into an operand.
type ParseFunc[T any] func(token string) (T, error)

// ReduceFunc combines two operands with a binary operator symbol.
type ReduceFunc[T any] func(a T, symbol string, b T) (T, error)

// UnaryFunc applies a unary operator symbol to one operand.
type UnaryFunc[T any] func(symbol string, a T) (T, error)

// Calculator evaluates infix expressions over operands of type T. It holds no
// mutable state and may be shared between goroutines.
type Calculator[T any] struct {
	priority Priority
	parse    ParseFunc[T]
	reduce   ReduceFunc[T]
	unary    UnaryFunc[T]
	unaryOps map[string]bool
}

// Option configures a Calculator.
type Option[T any] func(*Calculator[T])

// WithUnary registers symbols that take a single operand, such as a prefix
// square root or a postfix factorial. They still need an entry in the
// priority table; in postfix order they pop one value instead of two.
func WithUnary[T any](fn UnaryFunc[T], symbols ...string) Option[T] {
	return func(c *Calculator[T]) {
		c.unary = fn
		for _, s := range symbols {
			c.unaryOps[s] = true
		}
	}
}

// NewCalculator returns a Calculator that converts with priority, builds
// operands with parse and combines them with reduce. The calculator keeps its
// own copy of priority.
func NewCalculator[T any](priority Priority, parse ParseFunc[T], reduce ReduceFunc[T], opts ...Option[T]) *Calculator[T] {
	c := &Calculator[T]{
		priority: priority.With(nil),
		parse:    parse,
		reduce:   reduce,
		unaryOps: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calc evaluates an infix expression.
func (c *Calculator[T]) Calc(infix string) (T, error) {
	postfix, err := Suffix(infix, c.priority)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.EvalPostfix(postfix)
}

// EvalPostfix evaluates tokens that are already in postfix order.
func (c *Calculator[T]) EvalPostfix(tokens []string) (T, error) {
	e := c.NewEvaluator()
	for _, tok := range tokens {
		if err := e.Push(tok); err != nil {
			var zero T
			return zero, err
		}
	}
	return e.Result()
}

// NewEvaluator returns an empty incremental postfix evaluator bound to c.
func (c *Calculator[T]) NewEvaluator() *Evaluator[T] {
	return &Evaluator[T]{calc: c}
}

// NewFloatCalculator returns a float64 calculator for + - * / and %.
func NewFloatCalculator() *Calculator[float64] {
	return NewCalculator[float64](defaultPriority, parseFloat, reduceFloat)
}

func parseFloat(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "invalid number %q", token)
	}
	return v, nil
}

func reduceFloat(a float64, symbol string, b float64) (float64, error) {
	switch symbol {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		return a / b, nil
	case "%":
		return math.Mod(a, b), nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedOperator, "%q", symbol)
	}
}
