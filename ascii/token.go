package ascii

import (
	"github.com/dhamidi/taz/scan"
)

// Token is a fixed terminal of the byte alphabet. Every Token is a
// scan.Matcher[byte] and can be used anywhere the engine takes a pattern.
type Token int

const (
	OpenParen Token = iota
	CloseParen
	OpenBracket
	CloseBracket
	OpenBrace
	CloseBrace
	Comma
	Semicolon
	Colon
	Space
	GreaterThan
	LessThan
	Exclamation
	Quote
	DoubleQuote
	Equal
	Plus
	Dash
	Slash
	Star
	Percent
	Ampersand
	Pipe
	Caret
	Tilde
	Dot
	Question
	At
	Hash
	Dollar
	Backslash
	Underscore
	Newline
	CarriageReturn
	Tab
	CrLf
)

var tokenBytes = [...][]byte{
	OpenParen:      []byte("("),
	CloseParen:     []byte(")"),
	OpenBracket:    []byte("["),
	CloseBracket:   []byte("]"),
	OpenBrace:      []byte("{"),
	CloseBrace:     []byte("}"),
	Comma:          []byte(","),
	Semicolon:      []byte(";"),
	Colon:          []byte(":"),
	Space:          []byte(" "),
	GreaterThan:    []byte(">"),
	LessThan:       []byte("<"),
	Exclamation:    []byte("!"),
	Quote:          []byte("'"),
	DoubleQuote:    []byte(`"`),
	Equal:          []byte("="),
	Plus:           []byte("+"),
	Dash:           []byte("-"),
	Slash:          []byte("/"),
	Star:           []byte("*"),
	Percent:        []byte("%"),
	Ampersand:      []byte("&"),
	Pipe:           []byte("|"),
	Caret:          []byte("^"),
	Tilde:          []byte("~"),
	Dot:            []byte("."),
	Question:       []byte("?"),
	At:             []byte("@"),
	Hash:           []byte("#"),
	Dollar:         []byte("$"),
	Backslash:      []byte(`\`),
	Underscore:     []byte("_"),
	Newline:        []byte("\n"),
	CarriageReturn: []byte("\r"),
	Tab:            []byte("\t"),
	CrLf:           []byte("\r\n"),
}

var tokenNames = [...]string{
	OpenParen:      "OpenParen",
	CloseParen:     "CloseParen",
	OpenBracket:    "OpenBracket",
	CloseBracket:   "CloseBracket",
	OpenBrace:      "OpenBrace",
	CloseBrace:     "CloseBrace",
	Comma:          "Comma",
	Semicolon:      "Semicolon",
	Colon:          "Colon",
	Space:          "Space",
	GreaterThan:    "GreaterThan",
	LessThan:       "LessThan",
	Exclamation:    "Exclamation",
	Quote:          "Quote",
	DoubleQuote:    "DoubleQuote",
	Equal:          "Equal",
	Plus:           "Plus",
	Dash:           "Dash",
	Slash:          "Slash",
	Star:           "Star",
	Percent:        "Percent",
	Ampersand:      "Ampersand",
	Pipe:           "Pipe",
	Caret:          "Caret",
	Tilde:          "Tilde",
	Dot:            "Dot",
	Question:       "Question",
	At:             "At",
	Hash:           "Hash",
	Dollar:         "Dollar",
	Backslash:      "Backslash",
	Underscore:     "Underscore",
	Newline:        "Newline",
	CarriageReturn: "CarriageReturn",
	Tab:            "Tab",
	CrLf:           "CrLf",
}

// tokenOrder lists every terminal for AcceptToken; CrLf comes before
// CarriageReturn and Newline so the two-byte sequence wins over its prefix.
var tokenOrder = []Token{
	CrLf,
	OpenParen, CloseParen, OpenBracket, CloseBracket, OpenBrace, CloseBrace,
	Comma, Semicolon, Colon, Space,
	GreaterThan, LessThan, Exclamation, Quote, DoubleQuote, Equal,
	Plus, Dash, Slash, Star, Percent, Ampersand, Pipe, Caret, Tilde,
	Dot, Question, At, Hash, Dollar, Backslash, Underscore,
	Newline, CarriageReturn, Tab,
}

// Match implements scan.Matcher.
func (t Token) Match(data []byte) (bool, int) {
	pattern := tokenBytes[t]
	if len(pattern) == 1 {
		return MatchByte(pattern[0], data)
	}
	return MatchPattern(pattern, data)
}

// Size implements scan.Matcher.
func (t Token) Size() int {
	return len(tokenBytes[t])
}

func (t Token) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "Unknown"
	}
	return tokenNames[t]
}

// AcceptToken recognizes whichever terminal sits at the cursor. It is a
// scan.Visitor[byte, Token].
func AcceptToken(s *scan.Scanner[byte]) (Token, error) {
	for _, t := range tokenOrder {
		if _, ok := scan.TryRecognize(t, s); ok {
			return t, nil
		}
	}
	return 0, scan.ErrUnexpectedToken
}
