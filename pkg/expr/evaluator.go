package expr

import (
	"github.com/pkg/errors"
)

// Evaluator walks a postfix token sequence one token at a time. It is not
// thread-safe and should only be accessed by a single goroutine.
type Evaluator[T any] struct {
	calc  *Calculator[T]
	stack Stack[T]
}

// Push feeds the next postfix token: numbers are parsed and pushed, operator
// symbols pop their operands and push the result.
func (e *Evaluator[T]) Push(token string) error {
	if IsNumber(token) {
		return e.pushOperand(token)
	}
	return e.pushOperator(token)
}

func (e *Evaluator[T]) pushOperand(token string) error {
	v, err := e.calc.parse(token)
	if err != nil {
		return err
	}

	e.stack.Push(v)
	return nil
}

func (e *Evaluator[T]) pushOperator(symbol string) error {
	if e.calc.unaryOps[symbol] {
		a, ok := e.stack.Pop()
		if !ok {
			return errors.Wrapf(ErrMalformed, "not enough operands for %s", symbol)
		}

		v, err := e.calc.unary(symbol, a)
		if err != nil {
			return err
		}
		e.stack.Push(v)
		return nil
	}

	if e.stack.Len() < 2 {
		return errors.Wrapf(ErrMalformed, "not enough operands for %s", symbol)
	}

	b, _ := e.stack.Pop()
	a, _ := e.stack.Pop()
	v, err := e.calc.reduce(a, symbol, b)
	if err != nil {
		return err
	}

	e.stack.Push(v)
	return nil
}

// Depth returns the number of values currently on the stack.
func (e *Evaluator[T]) Depth() int {
	return e.stack.Len()
}

// Result returns the single value left after the last token.
func (e *Evaluator[T]) Result() (T, error) {
	if e.stack.Len() != 1 {
		var zero T
		if e.stack.Len() == 0 {
			return zero, errors.Wrap(ErrMalformed, "empty expression")
		}
		return zero, errors.Wrap(ErrMalformed, "incomplete expression: unused operands still in stack")
	}

	v, _ := e.stack.Pop()
	return v, nil
}
