package expr

import "github.com/pkg/errors"

var (
	// ErrMalformed is returned when a postfix walk runs out of operands or does
	// not end with exactly one value.
	ErrMalformed = errors.New("malformed expression")
	// ErrUnbalancedParens is returned by ToPostfix for a ')' without a matching
	// '(' or an unclosed '('.
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
	// ErrUnsupportedOperator is returned for operator symbols that the priority
	// table or reducer does not know.
	ErrUnsupportedOperator = errors.New("unsupported operator")
)
