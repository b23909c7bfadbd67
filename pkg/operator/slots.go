package operator

// Each interface below is one operator slot. A type opts into an operator by
// implementing the matching method; T is normally the implementing type
// itself. Dispatching an operator to a value without the method yields an
// *UnsupportedError.
//
// Compound assignment and increment/decrement methods may modify the receiver.
// They return the receiver (or, for postfix forms, its previous value).

type PlusOperand[T any] interface{ Plus(T) (T, error) }
type MinusOperand[T any] interface{ Minus(T) (T, error) }
type TimesOperand[T any] interface{ Times(T) (T, error) }
type DivOperand[T any] interface{ Div(T) (T, error) }
type ModOperand[T any] interface{ Mod(T) (T, error) }
type BitAndOperand[T any] interface{ BitAnd(T) (T, error) }
type BitOrOperand[T any] interface{ BitOr(T) (T, error) }
type BitXorOperand[T any] interface{ BitXor(T) (T, error) }
type ShlOperand[T any] interface{ Shl(T) (T, error) }
type ShrOperand[T any] interface{ Shr(T) (T, error) }
type UShrOperand[T any] interface{ UShr(T) (T, error) }

type PlusAssignOperand[T any] interface{ PlusAssign(T) (T, error) }
type MinusAssignOperand[T any] interface{ MinusAssign(T) (T, error) }
type TimesAssignOperand[T any] interface{ TimesAssign(T) (T, error) }
type DivAssignOperand[T any] interface{ DivAssign(T) (T, error) }
type ModAssignOperand[T any] interface{ ModAssign(T) (T, error) }
type BitAndAssignOperand[T any] interface{ BitAndAssign(T) (T, error) }
type BitOrAssignOperand[T any] interface{ BitOrAssign(T) (T, error) }
type BitXorAssignOperand[T any] interface{ BitXorAssign(T) (T, error) }
type ShlAssignOperand[T any] interface{ ShlAssign(T) (T, error) }
type ShrAssignOperand[T any] interface{ ShrAssign(T) (T, error) }
type UShrAssignOperand[T any] interface{ UShrAssign(T) (T, error) }

type UnaryPlusOperand[T any] interface{ UnaryPlus() (T, error) }
type UnaryMinusOperand[T any] interface{ UnaryMinus() (T, error) }
type BitNotOperand[T any] interface{ BitNot() (T, error) }
type IncPreOperand[T any] interface{ IncPre() (T, error) }
type DecPreOperand[T any] interface{ DecPre() (T, error) }
type IncPostOperand[T any] interface{ IncPost() (T, error) }
type DecPostOperand[T any] interface{ DecPost() (T, error) }

type EqOperand[T any] interface{ Eq(T) bool }
type NotEqOperand[T any] interface{ NotEq(T) bool }
type LessOperand[T any] interface{ Less(T) bool }
type GreaterOperand[T any] interface{ Greater(T) bool }
type LessEqOperand[T any] interface{ LessEq(T) bool }
type GreaterEqOperand[T any] interface{ GreaterEq(T) bool }
type AndOperand[T any] interface{ And(T) bool }
type OrOperand[T any] interface{ Or(T) bool }
type NotOperand interface{ Not() bool }
