// Package expr parses and evaluates integer arithmetic expressions. It is
// the canonical workout for the scan engine: alternation picks the
// operators, a delimited group extracts parenthesized sub-expressions, and
// group interiors are re-scanned recursively with a fresh scanner.
package expr

import (
	"fmt"

	"github.com/dhamidi/taz/ascii"
	"github.com/dhamidi/taz/scan"
)

// Eval parses input as an arithmetic expression with the usual precedence
// and evaluates it.
func Eval(input string) (int64, error) {
	s := scan.New([]byte(input))
	value, err := acceptExpression(s)
	if err != nil {
		return 0, err
	}
	if !s.IsEmpty() {
		return 0, fmt.Errorf("%w: trailing input at offset %d", scan.ErrUnexpectedToken, s.Position())
	}
	return value, nil
}

// expression = term { ("+" | "-") term }
func acceptExpression(s *scan.Scanner[byte]) (int64, error) {
	value, err := acceptTerm(s)
	if err != nil {
		return 0, err
	}
	for {
		op, ok := scan.NewRecognizer(s).
			TryOr(ascii.Plus).
			TryOr(ascii.Dash).
			Finish()
		if !ok {
			return value, nil
		}
		rhs, err := acceptTerm(s)
		if err != nil {
			return 0, err
		}
		if op[0] == '+' {
			value += rhs
		} else {
			value -= rhs
		}
	}
}

// term = factor { ("*" | "/") factor }
func acceptTerm(s *scan.Scanner[byte]) (int64, error) {
	value, err := acceptFactor(s)
	if err != nil {
		return 0, err
	}
	for {
		op, ok := scan.NewRecognizer(s).
			TryOr(ascii.Star).
			TryOr(ascii.Slash).
			Finish()
		if !ok {
			return value, nil
		}
		rhs, err := acceptFactor(s)
		if err != nil {
			return 0, err
		}
		if op[0] == '*' {
			value *= rhs
			continue
		}
		if rhs == 0 {
			return 0, fmt.Errorf("%w: division by zero", scan.ErrBadValue)
		}
		value /= rhs
	}
}

// factor = number | "(" expression ")", with surrounding spaces consumed
func acceptFactor(s *scan.Scanner[byte]) (int64, error) {
	ascii.OptionalSpaces(s)
	value, ok := scan.NewAcceptor[byte, int64](s).
		TryOr(acceptNumber).
		TryOr(acceptGroup).
		Finish()
	if !ok {
		return 0, scan.ErrUnexpectedToken
	}
	ascii.OptionalSpaces(s)
	return value, nil
}

func acceptNumber(s *scan.Scanner[byte]) (int64, error) {
	return ascii.Number[int64](s)
}

// acceptGroup extracts a parenthesized group without parsing its contents,
// evaluates the interior with a fresh scanner, and skips the outer scanner
// past the whole group.
func acceptGroup(s *scan.Scanner[byte]) (int64, error) {
	peeked, ok, err := scan.Peek[byte](ascii.Parens, s)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, scan.ErrUnexpectedToken
	}
	inner := scan.New(peeked.Inner())
	value, err := acceptExpression(inner)
	if err != nil {
		return 0, err
	}
	if !inner.IsEmpty() {
		return 0, fmt.Errorf("%w: trailing input in group", scan.ErrUnexpectedToken)
	}
	s.JumpTo(peeked.End())
	return value, nil
}
