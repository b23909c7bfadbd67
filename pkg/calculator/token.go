package calculator

import (
	"strings"

	"github.com/charithe/exactcalc/pkg/expr"
	"github.com/charithe/exactcalc/pkg/v1pb"
	"github.com/pkg/errors"
)

var operatorSymbols = map[v1pb.Operator]string{
	v1pb.ADD:       "+",
	v1pb.SUBTRACT:  "-",
	v1pb.MULTIPLY:  "*",
	v1pb.DIVIDE:    "/",
	v1pb.MODULO:    "%",
	v1pb.POWER:     "^",
	v1pb.SQRT:      "√",
	v1pb.FACTORIAL: "!",
}

// symbolOperators also accepts the alternative spellings "**" and "sqrt".
var symbolOperators = map[string]v1pb.Operator{
	"+":    v1pb.ADD,
	"-":    v1pb.SUBTRACT,
	"*":    v1pb.MULTIPLY,
	"/":    v1pb.DIVIDE,
	"%":    v1pb.MODULO,
	"^":    v1pb.POWER,
	"**":   v1pb.POWER,
	"√":    v1pb.SQRT,
	"sqrt": v1pb.SQRT,
	"!":    v1pb.FACTORIAL,
}

func parseToken(tokenStr string) (*v1pb.Token, error) {
	tokStr := strings.TrimSpace(tokenStr)
	if op, ok := symbolOperators[tokStr]; ok {
		return &v1pb.Token{Operator: op}, nil
	}

	if !expr.IsNumber(tokStr) {
		return nil, errors.Wrapf(expr.ErrMalformed, "invalid token %q", tokenStr)
	}
	return &v1pb.Token{Operand: tokStr}, nil
}

// tokenText turns a wire token back into the postfix text the evaluator reads.
func tokenText(tok *v1pb.Token) (string, error) {
	if tok.GetOperand() != "" {
		if !expr.IsNumber(tok.Operand) {
			return "", errors.Wrapf(expr.ErrMalformed, "invalid operand %q", tok.Operand)
		}
		return tok.Operand, nil
	}

	symbol, ok := operatorSymbols[tok.GetOperator()]
	if !ok {
		return "", errors.Wrapf(expr.ErrUnsupportedOperator, "%s", tok.GetOperator())
	}
	return symbol, nil
}
