package ascii

import (
	"github.com/dhamidi/taz/scan"
)

// GroupKind enumerates the delimited groups of ASCII syntax. Each kind is a
// scan.Peekable[byte]; bracket kinds balance their nesting and all kinds
// treat backslash as the escape.
type GroupKind int

const (
	// Parens is a "(...)" group with balanced nesting.
	Parens GroupKind = iota
	// Brackets is a "[...]" group with balanced nesting.
	Brackets
	// Braces is a "{...}" group with balanced nesting.
	Braces
	// SingleQuotes is a "'...'" group.
	SingleQuotes
	// DoubleQuotes is a `"..."` group.
	DoubleQuotes
)

// Peek implements scan.Peekable.
func (g GroupKind) Peek(s *scan.Scanner[byte]) (scan.PeekResult, error) {
	switch g {
	case Parens:
		return scan.Delimited[byte]{Open: OpenParen, Close: CloseParen, Escape: Backslash}.Peek(s)
	case Brackets:
		return scan.Delimited[byte]{Open: OpenBracket, Close: CloseBracket, Escape: Backslash}.Peek(s)
	case Braces:
		return scan.Delimited[byte]{Open: OpenBrace, Close: CloseBrace, Escape: Backslash}.Peek(s)
	case SingleQuotes:
		return scan.Quoted[byte]{Quote: Quote, Escape: Backslash}.Peek(s)
	case DoubleQuotes:
		return scan.Quoted[byte]{Quote: DoubleQuote, Escape: Backslash}.Peek(s)
	}
	return scan.PeekResult{}, nil
}

func (g GroupKind) String() string {
	switch g {
	case Parens:
		return "parens"
	case Brackets:
		return "brackets"
	case Braces:
		return "braces"
	case SingleQuotes:
		return "single-quotes"
	case DoubleQuotes:
		return "double-quotes"
	}
	return "unknown"
}
