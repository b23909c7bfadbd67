package expr

import (
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name string
		expr string
		want []string
	}{
		{
			name: "signedNumberAfterParen",
			expr: "(-1 + 2.5) >> 366",
			want: []string{"(", "-1", "+", "2.5", ")", ">>", "366"},
		},
		{
			name: "leadingSign",
			expr: "-3 * 2",
			want: []string{"-3", "*", "2"},
		},
		{
			name: "binaryMinusAfterParen",
			expr: "(1 + 2) - 3",
			want: []string{"(", "1", "+", "2", ")", "-", "3"},
		},
		{
			name: "signAfterOperator",
			expr: "2*-3",
			want: []string{"2", "*", "-3"},
		},
		{
			name: "doubleMinus",
			expr: "3--2",
			want: []string{"3", "-", "-2"},
		},
		{
			name: "multiCharOperators",
			expr: "1>>>2 ** 3 <<= 4",
			want: []string{"1", ">>>", "2", "**", "3", "<<=", "4"},
		},
		{
			name: "postfixBeforeParen",
			expr: "2 + (3!)",
			want: []string{"2", "+", "(", "3", "!", ")"},
		},
		{
			name: "prefixUnary",
			expr: "√(5 + 20)",
			want: []string{"√", "(", "5", "+", "20", ")"},
		},
		{
			name: "standaloneUnary",
			expr: "2!+√9*√-4",
			want: []string{"2", "!", "+", "√", "9", "*", "√", "-4"},
		},
		{
			name: "minusAfterFactorial",
			expr: "2!-3",
			want: []string{"2", "!", "-", "3"},
		},
		{
			name: "signAfterNotEquals",
			expr: "1 != -3",
			want: []string{"1", "!=", "-3"},
		},
		{
			name: "notEquals",
			expr: "1 != 2!",
			want: []string{"1", "!=", "2", "!"},
		},
		{
			name: "tabsAndNewlines",
			expr: "1\t+\n2",
			want: []string{"1", "+", "2"},
		},
		{
			name: "empty",
			expr: "   ",
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			have := Tokenize(tc.expr)
			if diff := cmp.Diff(tc.want, have); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +have):\n%s", tc.expr, diff)
			}
		})
	}
}

func TestTokenizeIsWhitespaceInsensitive(t *testing.T) {
	exprs := []string{"(1+2)*5", "3!+√4", "-1>>2", "2.5%1"}
	for _, e := range exprs {
		spaced := ""
		for _, r := range e {
			spaced += " " + string(r) + "  "
		}
		require.Equal(t, Tokenize(e), Tokenize(spaced))
		require.Equal(t, Tokenize(e), Tokenize(e))
	}
}

func TestIsNumber(t *testing.T) {
	for _, s := range []string{"0", "12", "-3", "+4", "2.50", "-0.5"} {
		require.True(t, IsNumber(s), s)
	}
	for _, s := range []string{"", "-", ".5", "2.", "1.2.3", "a", ">>", "(", "1e5"} {
		require.False(t, IsNumber(s), s)
	}
}

func TestToPostfix(t *testing.T) {
	testCases := []struct {
		name     string
		tokens   []string
		priority Priority
		want     []string
		wantErr  error
	}{
		{
			name:     "parenthesized",
			tokens:   []string{"(", "1", "+", "2", ")", "*", "5"},
			priority: DefaultPriority(),
			want:     []string{"1", "2", "+", "5", "*"},
		},
		{
			name:     "precedence",
			tokens:   []string{"1", "+", "2", "*", "5"},
			priority: DefaultPriority(),
			want:     []string{"1", "2", "5", "*", "+"},
		},
		{
			name:     "leftAssociative",
			tokens:   []string{"8", "-", "3", "-", "2"},
			priority: DefaultPriority(),
			want:     []string{"8", "3", "-", "2", "-"},
		},
		{
			name:     "unknownOperator",
			tokens:   []string{"1", "^", "2"},
			priority: DefaultPriority(),
			wantErr:  ErrUnsupportedOperator,
		},
		{
			name:     "unexpectedClose",
			tokens:   []string{"1", ")"},
			priority: DefaultPriority(),
			wantErr:  ErrUnbalancedParens,
		},
		{
			name:     "unclosedOpen",
			tokens:   []string{"(", "1", "+", "2"},
			priority: DefaultPriority(),
			wantErr:  ErrUnbalancedParens,
		},
		{
			name:     "badNumber",
			tokens:   []string{"1.2.3", "+", "2"},
			priority: DefaultPriority(),
			wantErr:  ErrMalformed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			have, err := ToPostfix(tc.tokens, tc.priority)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.Equal(t, tc.wantErr, errors.Cause(err))
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, have); diff != "" {
				t.Errorf("ToPostfix mismatch (-want +have):\n%s", diff)
			}
		})
	}
}

func TestFloatCalculator(t *testing.T) {
	calc := NewFloatCalculator()

	testCases := []struct {
		expr       string
		wantResult float64
		wantErr    error
	}{
		{expr: "(1 + 2) * 4", wantResult: 12},
		{expr: "-1 + 2.5", wantResult: 1.5},
		{expr: "10 % 4 * 2", wantResult: 4},
		{expr: "2 * -3", wantResult: -6},
		{expr: "7", wantResult: 7},
		{expr: "", wantErr: ErrMalformed},
		{expr: "1 +", wantErr: ErrMalformed},
		{expr: "(1 + 2", wantErr: ErrUnbalancedParens},
		{expr: "2 ** 3", wantErr: ErrUnsupportedOperator},
	}

	for _, tc := range testCases {
		t.Run(tc.expr, func(t *testing.T) {
			haveResult, err := calc.Calc(tc.expr)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.Equal(t, tc.wantErr, errors.Cause(err))
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantResult, haveResult)
		})
	}
}

// TestPostfixMatchesRecursiveEvaluation checks that the shunting-yard output
// evaluated on a stack agrees with a direct recursive descent over the infix
// tokens.
func TestPostfixMatchesRecursiveEvaluation(t *testing.T) {
	calc := NewFloatCalculator()

	exprs := []string{
		"1 + 2 * 3",
		"(1 + 2) * 3",
		"8 - 3 - 2",
		"8 / 4 / 2",
		"2 * (3 + 4) - 5 / (1 + 1)",
		"((7))",
		"1 - (2 - (3 - (4 - 5)))",
		"9 % 4 + 6 * 2 - 1",
		"-1.5 * (2 + -3) / 4",
	}

	for _, e := range exprs {
		t.Run(e, func(t *testing.T) {
			want := evalRecursive(t, Tokenize(e))
			have, err := calc.Calc(e)
			require.NoError(t, err)
			require.InDelta(t, want, have, 1e-12)
		})
	}
}

// evalRecursive is a textbook recursive descent evaluator:
//
//	expr   = term { ("+"|"-") term }
//	term   = factor { ("*"|"/"|"%") factor }
//	factor = number | "(" expr ")"
func evalRecursive(t *testing.T, tokens []string) float64 {
	t.Helper()

	pos := 0
	var expr, term, factor func() float64

	expr = func() float64 {
		v := term()
		for pos < len(tokens) && (tokens[pos] == "+" || tokens[pos] == "-") {
			op := tokens[pos]
			pos++
			if op == "+" {
				v += term()
			} else {
				v -= term()
			}
		}
		return v
	}

	term = func() float64 {
		v := factor()
		for pos < len(tokens) && (tokens[pos] == "*" || tokens[pos] == "/" || tokens[pos] == "%") {
			op := tokens[pos]
			pos++
			switch rhs := factor(); op {
			case "*":
				v *= rhs
			case "/":
				v /= rhs
			default:
				v = math.Mod(v, rhs)
			}
		}
		return v
	}

	factor = func() float64 {
		tok := tokens[pos]
		pos++
		if tok == "(" {
			v := expr()
			pos++ // ")"
			return v
		}
		v, err := strconv.ParseFloat(tok, 64)
		require.NoError(t, err)
		return v
	}

	v := expr()
	require.Equal(t, len(tokens), pos, "trailing tokens")
	return v
}

func TestEvaluator(t *testing.T) {
	t.Run("pushOperator", func(t *testing.T) {
		rpn := NewFloatCalculator().NewEvaluator()
		require.NoError(t, rpn.Push("10"))
		require.NoError(t, rpn.Push("20"))

		require.NoError(t, rpn.Push("+"))
		// only one operand in stack so the next operator push should fail
		require.Error(t, rpn.Push("-"))
	})

	t.Run("unary", func(t *testing.T) {
		calc := NewCalculator[float64](
			Priority{"+": 1, "neg": 2},
			parseFloat,
			reduceFloat,
			WithUnary[float64](func(symbol string, a float64) (float64, error) { return -a, nil }, "neg"),
		)

		rpn := calc.NewEvaluator()
		for _, tok := range []string{"3", "neg", "5", "+"} {
			require.NoError(t, rpn.Push(tok))
		}
		require.Equal(t, 1, rpn.Depth())

		haveResult, err := rpn.Result()
		require.NoError(t, err)
		require.Equal(t, 2.0, haveResult)

		_, err = calc.EvalPostfix([]string{"neg"})
		require.Equal(t, ErrMalformed, errors.Cause(err))
	})

	t.Run("resultCalculation", func(t *testing.T) {
		testCases := []struct {
			name       string
			tokens     []string
			wantResult float64
			wantErr    bool
		}{
			{
				name:       "add",
				tokens:     []string{"10", "2", "+"},
				wantResult: 12,
			},
			{
				name:       "subtract",
				tokens:     []string{"10", "2", "-"},
				wantResult: 8,
			},
			{
				name:       "multiply_subract_add",
				tokens:     []string{"10", "2", "5", "9", "+", "-", "*"},
				wantResult: -120,
			},
			{
				name:    "unusedOperands",
				tokens:  []string{"5", "5", "5", "+"},
				wantErr: true,
			},
			{
				name:    "empty",
				tokens:  []string{},
				wantErr: true,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				haveResult, err := NewFloatCalculator().EvalPostfix(tc.tokens)
				if tc.wantErr {
					require.Error(t, err)
					require.Equal(t, ErrMalformed, errors.Cause(err))
					return
				}

				require.NoError(t, err)
				require.Equal(t, tc.wantResult, haveResult)
			})
		}
	})
}

func TestPriorityTablesAreCopies(t *testing.T) {
	p := DefaultPriority()
	p["+"] = 9
	delete(p, "*")
	require.Equal(t, 1, DefaultPriority()["+"])
	require.Equal(t, 2, DefaultPriority()["*"])

	ext := DefaultPriority().With(Priority{"^": 3, "+": 5})
	require.Equal(t, 5, ext["+"])
	require.Equal(t, 3, ext["^"])
	require.Equal(t, 1, DefaultPriority()["+"])

	shared := Priority{"+": 1, "*": 2}
	calc := NewCalculator[float64](shared, parseFloat, reduceFloat)
	shared["+"] = 3
	have, err := calc.Calc("2 * 3 + 4")
	require.NoError(t, err)
	require.Equal(t, float64(10), have)
}

func TestStack(t *testing.T) {
	var s Stack[int]
	_, ok := s.Pop()
	require.False(t, ok)

	s.Push(1)
	s.Push(2)
	top, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, 2, top)
	require.Equal(t, 2, s.Len())

	v, _ := s.Pop()
	require.Equal(t, 2, v)
	v, _ = s.Pop()
	require.Equal(t, 1, v)
	require.Equal(t, 0, s.Len())
}
