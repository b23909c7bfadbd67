package operator

import (
	"fmt"

	"github.com/charithe/exactcalc/pkg/expr"
	"github.com/pkg/errors"
)

// UnsupportedError reports an operator dispatched to a value whose type does
// not implement the operator's slot.
type UnsupportedError struct {
	Op   Op
	Type string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("operator %s (%s) not supported by %s", e.Op, e.Op.Form(), e.Type)
}

func unsupported(op Op, v interface{}) error {
	return &UnsupportedError{Op: op, Type: fmt.Sprintf("%T", v)}
}

func unknownSymbol(symbol, form string) error {
	return errors.Wrapf(expr.ErrUnsupportedOperator, "operator %s (%s)", symbol, form)
}

// Calc evaluates a op b for a binary arithmetic, bitwise, shift or compound
// assignment symbol.
func Calc[T any](a T, symbol string, b T) (T, error) {
	op, ok := ParseBinary(symbol)
	if !ok {
		var zero T
		return zero, unknownSymbol(symbol, "binary")
	}
	return Apply(a, op, b)
}

// CalcPrefix evaluates a unary prefix operator: + - ~ ++ --.
func CalcPrefix[T any](symbol string, a T) (T, error) {
	op, ok := ParsePrefix(symbol)
	if !ok {
		var zero T
		return zero, unknownSymbol(symbol, "unary pre")
	}
	return ApplyPrefix(op, a)
}

// CalcPostfix evaluates a unary postfix operator: ++ --.
func CalcPostfix[T any](a T, symbol string) (T, error) {
	op, ok := ParsePostfix(symbol)
	if !ok {
		var zero T
		return zero, unknownSymbol(symbol, "unary post")
	}
	return ApplyPostfix(a, op)
}

// Cmp evaluates a boolean producing binary operator: == != < > <= >= && ||.
func Cmp[T any](a T, symbol string, b T) (bool, error) {
	op, ok := ParseComparison(symbol)
	if !ok {
		return false, unknownSymbol(symbol, "binary")
	}
	return Test(a, op, b)
}

// CmpPrefix evaluates the logical not operator "!".
func CmpPrefix[T any](symbol string, a T) (bool, error) {
	if symbol != Not.String() {
		return false, unknownSymbol(symbol, "unary pre")
	}
	return TestPrefix(Not, a)
}

// Apply dispatches a binary Op to a.
func Apply[T any](a T, op Op, b T) (T, error) {
	var zero T
	v := interface{}(a)

	switch op {
	case Plus:
		if x, ok := v.(PlusOperand[T]); ok {
			return x.Plus(b)
		}
	case Minus:
		if x, ok := v.(MinusOperand[T]); ok {
			return x.Minus(b)
		}
	case Times:
		if x, ok := v.(TimesOperand[T]); ok {
			return x.Times(b)
		}
	case Div:
		if x, ok := v.(DivOperand[T]); ok {
			return x.Div(b)
		}
	case Mod:
		if x, ok := v.(ModOperand[T]); ok {
			return x.Mod(b)
		}
	case BitAnd:
		if x, ok := v.(BitAndOperand[T]); ok {
			return x.BitAnd(b)
		}
	case BitOr:
		if x, ok := v.(BitOrOperand[T]); ok {
			return x.BitOr(b)
		}
	case BitXor:
		if x, ok := v.(BitXorOperand[T]); ok {
			return x.BitXor(b)
		}
	case Shl:
		if x, ok := v.(ShlOperand[T]); ok {
			return x.Shl(b)
		}
	case Shr:
		if x, ok := v.(ShrOperand[T]); ok {
			return x.Shr(b)
		}
	case UShr:
		if x, ok := v.(UShrOperand[T]); ok {
			return x.UShr(b)
		}
	case PlusAssign:
		if x, ok := v.(PlusAssignOperand[T]); ok {
			return x.PlusAssign(b)
		}
	case MinusAssign:
		if x, ok := v.(MinusAssignOperand[T]); ok {
			return x.MinusAssign(b)
		}
	case TimesAssign:
		if x, ok := v.(TimesAssignOperand[T]); ok {
			return x.TimesAssign(b)
		}
	case DivAssign:
		if x, ok := v.(DivAssignOperand[T]); ok {
			return x.DivAssign(b)
		}
	case ModAssign:
		if x, ok := v.(ModAssignOperand[T]); ok {
			return x.ModAssign(b)
		}
	case BitAndAssign:
		if x, ok := v.(BitAndAssignOperand[T]); ok {
			return x.BitAndAssign(b)
		}
	case BitOrAssign:
		if x, ok := v.(BitOrAssignOperand[T]); ok {
			return x.BitOrAssign(b)
		}
	case BitXorAssign:
		if x, ok := v.(BitXorAssignOperand[T]); ok {
			return x.BitXorAssign(b)
		}
	case ShlAssign:
		if x, ok := v.(ShlAssignOperand[T]); ok {
			return x.ShlAssign(b)
		}
	case ShrAssign:
		if x, ok := v.(ShrAssignOperand[T]); ok {
			return x.ShrAssign(b)
		}
	case UShrAssign:
		if x, ok := v.(UShrAssignOperand[T]); ok {
			return x.UShrAssign(b)
		}
	default:
		return zero, unknownSymbol(op.String(), "binary")
	}

	return zero, unsupported(op, a)
}

// ApplyPrefix dispatches a unary prefix Op to a.
func ApplyPrefix[T any](op Op, a T) (T, error) {
	var zero T
	v := interface{}(a)

	switch op {
	case UnaryPlus:
		if x, ok := v.(UnaryPlusOperand[T]); ok {
			return x.UnaryPlus()
		}
	case UnaryMinus:
		if x, ok := v.(UnaryMinusOperand[T]); ok {
			return x.UnaryMinus()
		}
	case BitNot:
		if x, ok := v.(BitNotOperand[T]); ok {
			return x.BitNot()
		}
	case IncPre:
		if x, ok := v.(IncPreOperand[T]); ok {
			return x.IncPre()
		}
	case DecPre:
		if x, ok := v.(DecPreOperand[T]); ok {
			return x.DecPre()
		}
	default:
		return zero, unknownSymbol(op.String(), "unary pre")
	}

	return zero, unsupported(op, a)
}

// ApplyPostfix dispatches a unary postfix Op to a.
func ApplyPostfix[T any](a T, op Op) (T, error) {
	var zero T
	v := interface{}(a)

	switch op {
	case IncPost:
		if x, ok := v.(IncPostOperand[T]); ok {
			return x.IncPost()
		}
	case DecPost:
		if x, ok := v.(DecPostOperand[T]); ok {
			return x.DecPost()
		}
	default:
		return zero, unknownSymbol(op.String(), "unary post")
	}

	return zero, unsupported(op, a)
}

// Test dispatches a boolean producing binary Op to a.
func Test[T any](a T, op Op, b T) (bool, error) {
	v := interface{}(a)

	switch op {
	case Eq:
		if x, ok := v.(EqOperand[T]); ok {
			return x.Eq(b), nil
		}
	case NotEq:
		if x, ok := v.(NotEqOperand[T]); ok {
			return x.NotEq(b), nil
		}
	case Less:
		if x, ok := v.(LessOperand[T]); ok {
			return x.Less(b), nil
		}
	case Greater:
		if x, ok := v.(GreaterOperand[T]); ok {
			return x.Greater(b), nil
		}
	case LessEq:
		if x, ok := v.(LessEqOperand[T]); ok {
			return x.LessEq(b), nil
		}
	case GreaterEq:
		if x, ok := v.(GreaterEqOperand[T]); ok {
			return x.GreaterEq(b), nil
		}
	case And:
		if x, ok := v.(AndOperand[T]); ok {
			return x.And(b), nil
		}
	case Or:
		if x, ok := v.(OrOperand[T]); ok {
			return x.Or(b), nil
		}
	default:
		return false, unknownSymbol(op.String(), "binary")
	}

	return false, unsupported(op, a)
}

// TestPrefix dispatches the Not Op to a.
func TestPrefix[T any](op Op, a T) (bool, error) {
	if op != Not {
		return false, unknownSymbol(op.String(), "unary pre")
	}

	if x, ok := interface{}(a).(NotOperand); ok {
		return x.Not(), nil
	}
	return false, unsupported(op, a)
}
