package expr

import (
	"github.com/pkg/errors"
)

// Priority maps an operator symbol to its precedence. Higher binds tighter and
// equal priorities associate left to right. Parentheses are not entries.
type Priority map[string]int

var defaultPriority = Priority{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
	"%": 2,
}

// DefaultPriority returns a copy of the table for the four arithmetic
// operators and remainder.
func DefaultPriority() Priority {
	return defaultPriority.With(nil)
}

// With returns a copy of p with the entries of extra added or replaced.
func (p Priority) With(extra Priority) Priority {
	out := make(Priority, len(p)+len(extra))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// ToPostfix reorders infix tokens into postfix order with the shunting-yard
// algorithm.
func ToPostfix(tokens []string, priority Priority) ([]string, error) {
	var ops Stack[string]
	out := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		switch {
		case IsNumber(tok):
			out = append(out, tok)

		case tok == "(":
			ops.Push(tok)

		case tok == ")":
			for {
				top, ok := ops.Pop()
				if !ok {
					return nil, errors.Wrap(ErrUnbalancedParens, "unexpected )")
				}
				if top == "(" {
					break
				}
				out = append(out, top)
			}

		default:
			if tok != "" && isDigit(rune(tok[0])) {
				return nil, errors.Wrapf(ErrMalformed, "invalid number %q", tok)
			}

			p, ok := priority[tok]
			if !ok {
				return nil, errors.Wrapf(ErrUnsupportedOperator, "%q", tok)
			}

			for {
				top, ok := ops.Peek()
				if !ok || top == "(" || priority[top] < p {
					break
				}
				ops.Pop()
				out = append(out, top)
			}
			ops.Push(tok)
		}
	}

	for ops.Len() > 0 {
		top, _ := ops.Pop()
		if top == "(" {
			return nil, errors.Wrap(ErrUnbalancedParens, "unclosed (")
		}
		out = append(out, top)
	}

	return out, nil
}

// Suffix tokenizes an infix expression and converts it to postfix order.
func Suffix(infix string, priority Priority) ([]string, error) {
	return ToPostfix(Tokenize(infix), priority)
}
