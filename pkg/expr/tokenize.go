// Package expr converts infix expressions to postfix order and evaluates
// postfix token sequences over a caller-chosen operand type.
package expr

import (
	"strings"
	"unicode"
)

// Tokenize splits an infix expression into numbers, parentheses and operator
// symbols. Whitespace is discarded.
//
// A '-' is kept as the sign of the number that follows it when it starts the
// expression or comes after anything other than a digit, ')' or a factorial
// '!', so "3!-2" subtracts. Every other run
// of characters up to the next digit or parenthesis is one operator, so
// multi-character operators such as ">>>" or "**" need no registration here.
// An operator run also ends before a '-' that signs a number, making "2*-3"
// read as "2", "*", "-3". The square root sign and a factorial '!' not
// followed by '=' always stand alone, so "2!+√9" reads as "2", "!", "+", "√", "9".
func Tokenize(expression string) []string {
	cs := []rune(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expression))

	var tokens []string
	for i := 0; i < len(cs); {
		switch c := cs[i]; {
		case signsNumber(cs, i):
			j := scanNumber(cs, i+1)
			tokens = append(tokens, string(cs[i:j]))
			i = j
		case isDigit(c):
			j := scanNumber(cs, i)
			tokens = append(tokens, string(cs[i:j]))
			i = j
		case c == '(' || c == ')':
			tokens = append(tokens, string(c))
			i++
		default:
			j := i + 1
			for j < len(cs) && !endsRun(cs, j) {
				j++
			}
			tokens = append(tokens, string(cs[i:j]))
			i = j
		}
	}
	return tokens
}

// signsNumber reports whether cs[i] is a '-' acting as the sign of a number.
func signsNumber(cs []rune, i int) bool {
	if cs[i] != '-' || i+1 >= len(cs) || !isDigit(cs[i+1]) {
		return false
	}
	return i == 0 || (!isDigit(cs[i-1]) && cs[i-1] != ')' && cs[i-1] != '!')
}

// endsRun reports whether an operator run that reached cs[j] stops before it.
func endsRun(cs []rune, j int) bool {
	switch prev, c := cs[j-1], cs[j]; {
	case isDigit(c) || c == '(' || c == ')' || c == '√':
		return true
	case prev == '√':
		return true
	case prev == '!' && c != '=':
		return true
	default:
		return signsNumber(cs, j)
	}
}

// scanNumber returns the end of the run of digits and dots starting at i.
func scanNumber(cs []rune, i int) int {
	for i < len(cs) && (isDigit(cs[i]) || cs[i] == '.') {
		i++
	}
	return i
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsNumber reports whether token is an optionally signed decimal number with
// at most one fractional part, such as "12", "-3" or "2.50".
func IsNumber(token string) bool {
	s := token
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if !allDigits(intPart) {
		return false
	}
	return !hasDot || allDigits(fracPart)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
