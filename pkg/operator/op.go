// Package operator lets any value type take part in expression evaluation by
// implementing per-operator methods, and evaluates '?' placeholder expressions
// over such values.
package operator

// Op identifies one operator slot. Symbols shared between forms ("-" binary
// and unary, "++" prefix and postfix) map to distinct Ops.
type Op int

const (
	Invalid Op = iota

	// binary arithmetic, bitwise and shift
	Plus
	Minus
	Times
	Div
	Mod
	BitAnd
	BitOr
	BitXor
	Shl
	Shr
	UShr

	// compound assignment
	PlusAssign
	MinusAssign
	TimesAssign
	DivAssign
	ModAssign
	BitAndAssign
	BitOrAssign
	BitXorAssign
	ShlAssign
	ShrAssign
	UShrAssign

	// unary prefix
	UnaryPlus
	UnaryMinus
	BitNot
	IncPre
	DecPre

	// unary postfix
	IncPost
	DecPost

	// boolean producing
	Eq
	NotEq
	Less
	Greater
	LessEq
	GreaterEq
	And
	Or
	Not
)

var symbols = [...]string{
	Invalid:      "invalid",
	Plus:         "+",
	Minus:        "-",
	Times:        "*",
	Div:          "/",
	Mod:          "%",
	BitAnd:       "&",
	BitOr:        "|",
	BitXor:       "^",
	Shl:          "<<",
	Shr:          ">>",
	UShr:         ">>>",
	PlusAssign:   "+=",
	MinusAssign:  "-=",
	TimesAssign:  "*=",
	DivAssign:    "/=",
	ModAssign:    "%=",
	BitAndAssign: "&=",
	BitOrAssign:  "|=",
	BitXorAssign: "^=",
	ShlAssign:    "<<=",
	ShrAssign:    ">>=",
	UShrAssign:   ">>>=",
	UnaryPlus:    "+",
	UnaryMinus:   "-",
	BitNot:       "~",
	IncPre:       "++",
	DecPre:       "--",
	IncPost:      "++",
	DecPost:      "--",
	Eq:           "==",
	NotEq:        "!=",
	Less:         "<",
	Greater:      ">",
	LessEq:       "<=",
	GreaterEq:    ">=",
	And:          "&&",
	Or:           "||",
	Not:          "!",
}

// String returns the operator's symbol.
func (op Op) String() string {
	if op < 0 || int(op) >= len(symbols) {
		return "invalid"
	}
	return symbols[op]
}

// Form names the shape an operator is written in.
func (op Op) Form() string {
	switch {
	case op >= Plus && op <= UShrAssign:
		return "binary"
	case op >= UnaryPlus && op <= DecPre:
		return "unary pre"
	case op == IncPost || op == DecPost:
		return "unary post"
	case op >= Eq && op <= Or:
		return "binary"
	case op == Not:
		return "unary pre"
	default:
		return "invalid"
	}
}

var (
	binaryOps     = index(Plus, UShrAssign)
	prefixOps     = index(UnaryPlus, DecPre)
	postfixOps    = index(IncPost, DecPost)
	comparisonOps = index(Eq, Or)
)

func index(from, to Op) map[string]Op {
	m := make(map[string]Op, int(to-from)+1)
	for op := from; op <= to; op++ {
		m[op.String()] = op
	}
	return m
}

// ParseBinary resolves a symbol written between two operands to its
// arithmetic, bitwise, shift or compound assignment Op.
func ParseBinary(symbol string) (Op, bool) {
	op, ok := binaryOps[symbol]
	return op, ok
}

// ParsePrefix resolves a symbol written before a single operand.
func ParsePrefix(symbol string) (Op, bool) {
	op, ok := prefixOps[symbol]
	return op, ok
}

// ParsePostfix resolves a symbol written after a single operand.
func ParsePostfix(symbol string) (Op, bool) {
	op, ok := postfixOps[symbol]
	return op, ok
}

// ParseComparison resolves a boolean producing binary symbol: equality,
// ordering, && and ||.
func ParseComparison(symbol string) (Op, bool) {
	op, ok := comparisonOps[symbol]
	return op, ok
}
