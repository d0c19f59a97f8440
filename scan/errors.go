package scan

import "errors"

// The closed set of failure kinds. "Pattern not present" is not among them:
// optional recognition reports a boolean, and the alternation engines turn
// exhaustion into a negative result. Errors are reserved for constructs the
// grammar declares mandatory and for input that is structurally broken.
var (
	// ErrUnexpectedEnd reports that more symbols were required than remain.
	ErrUnexpectedEnd = errors.New("unexpected end of input")

	// ErrUnexpectedToken reports that a mandatory pattern was absent.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnterminatedGroup reports a bracket or quote group that never
	// closed before the end of input.
	ErrUnterminatedGroup = errors.New("unterminated group")

	// ErrBadValue reports a consumed view that could not be converted to
	// its target value.
	ErrBadValue = errors.New("bad value")
)
