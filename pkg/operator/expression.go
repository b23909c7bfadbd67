package operator

import (
	"strconv"
	"strings"

	"github.com/charithe/exactcalc/pkg/expr"
	"github.com/pkg/errors"
)

// ErrArgCount is returned when the number of '?' placeholders in an
// expression differs from the number of arguments.
var ErrArgCount = errors.New("wrong argument count")

// calcPriority ranks the binary operators accepted by Eval. Compound
// assignment binds loosest, then bitwise and shift, additive, multiplicative.
var calcPriority = expr.Priority{
	"+=": 1, "-=": 1, "*=": 1, "/=": 1, "%=": 1, "&=": 1, "|=": 1, "^=": 1, "<<=": 1, ">>=": 1, ">>>=": 1,
	"&": 2, "|": 2, "^": 2, "<<": 2, ">>": 2, ">>>": 2,
	"+": 3, "-": 3,
	"*": 4, "/": 4, "%": 4,
}

// cmpPriority extends calcPriority with logical, equality and ordering tiers.
var cmpPriority = expr.Priority{
	"+=": 1, "-=": 1, "*=": 1, "/=": 1, "%=": 1, "&=": 1, "|=": 1, "^=": 1, "<<=": 1, ">>=": 1, ">>>=": 1,
	"&&": 2, "||": 2,
	"&": 3, "|": 3, "^": 3,
	"==": 4, "!=": 4,
	"<": 5, "<=": 5, ">": 5, ">=": 5,
	"<<": 6, ">>": 6, ">>>": 6,
	"+": 7, "-": 7,
	"*": 8, "/": 8, "%": 8,
}

// Eval evaluates a binary expression whose operands are '?' placeholders
// bound, left to right, to args:
//
//	sum, err := operator.Eval("? * (? + ?)", a, b, c)
//
// Compound assignment operators modify their left operand in place when the
// operand type implements them that way.
func Eval[T any](expression string, args ...T) (T, error) {
	infix, err := substitute(expression, len(args))
	if err != nil {
		var zero T
		return zero, err
	}

	calc := expr.NewCalculator[T](
		calcPriority,
		func(token string) (T, error) { return lookup(args, token) },
		Calc[T],
	)
	return calc.Calc(infix)
}

// Compare evaluates a boolean expression over '?' placeholders. Arithmetic
// sub-expressions produce values, comparisons turn values into booleans, and
// && and || combine either two values (through their And/Or slots) or two
// booleans.
func Compare[T any](expression string, args ...T) (bool, error) {
	infix, err := substitute(expression, len(args))
	if err != nil {
		return false, err
	}

	postfix, err := expr.Suffix(infix, cmpPriority)
	if err != nil {
		return false, err
	}

	var stack expr.Stack[mixed[T]]
	for _, tok := range postfix {
		if expr.IsNumber(tok) {
			v, err := lookup(args, tok)
			if err != nil {
				return false, err
			}
			stack.Push(mixed[T]{v: v})
			continue
		}

		if stack.Len() < 2 {
			return false, errors.Wrapf(expr.ErrMalformed, "not enough operands for %s", tok)
		}
		y, _ := stack.Pop()
		x, _ := stack.Pop()

		r, err := compareStep(x, tok, y)
		if err != nil {
			return false, err
		}
		stack.Push(r)
	}

	if stack.Len() != 1 {
		return false, errors.Wrap(expr.ErrMalformed, "incomplete expression: unused operands still in stack")
	}

	r, _ := stack.Pop()
	if !r.isBool {
		return false, errors.Wrap(expr.ErrMalformed, "expression does not produce a boolean")
	}
	return r.b, nil
}

// mixed is an entry of the comparison stack: either an operand value or a boolean.
type mixed[T any] struct {
	v      T
	b      bool
	isBool bool
}

func compareStep[T any](x mixed[T], symbol string, y mixed[T]) (mixed[T], error) {
	switch {
	case !x.isBool && !y.isBool:
		if _, ok := ParseComparison(symbol); ok {
			r, err := Cmp(x.v, symbol, y.v)
			return mixed[T]{b: r, isBool: true}, err
		}
		v, err := Calc(x.v, symbol, y.v)
		return mixed[T]{v: v}, err

	case x.isBool && y.isBool:
		var r bool
		switch symbol {
		case "&&":
			r = x.b && y.b
		case "||":
			r = x.b || y.b
		case "==":
			r = x.b == y.b
		case "!=":
			r = x.b != y.b
		default:
			return mixed[T]{}, errors.Wrapf(expr.ErrMalformed, "operator %s applied to booleans", symbol)
		}
		return mixed[T]{b: r, isBool: true}, nil

	default:
		return mixed[T]{}, errors.Wrapf(expr.ErrMalformed, "operator %s mixes boolean and value operands", symbol)
	}
}

// substitute replaces each '?' with the zero-based index of its argument.
func substitute(expression string, nargs int) (string, error) {
	var sb strings.Builder
	count := 0
	for _, r := range expression {
		if r == '?' {
			sb.WriteString(strconv.Itoa(count))
			count++
			continue
		}
		sb.WriteRune(r)
	}

	if count != nargs {
		return "", errors.Wrapf(ErrArgCount, "%d args, expected %d", nargs, count)
	}
	return sb.String(), nil
}

func lookup[T any](args []T, token string) (T, error) {
	var zero T
	if token == "" || token[0] < '0' || token[0] > '9' {
		return zero, errors.Wrapf(expr.ErrMalformed, "operand %q is not a placeholder", token)
	}

	i, err := strconv.Atoi(token)
	if err != nil || i >= len(args) {
		return zero, errors.Wrapf(expr.ErrMalformed, "operand %q is not a placeholder", token)
	}
	return args[i], nil
}
