// Package scan provides the building blocks for writing recursive-descent
// parsers over arbitrary symbol slices: a cursor, a prefix-matching protocol,
// composable visitors, backtracking alternation, delimited-group extraction,
// and separated-list repetition. Results are always sub-slices of the
// original input; nothing is copied.
package scan

// A Scanner reads through a borrowed slice of symbols. It owns no data:
// every extraction is a sub-slice of the original input, which must not be
// mutated while the scanner or any extracted view is alive. Exactly one
// caller holds the scanner at a time; combinators borrow it for the duration
// of one operation and hand it back.
type Scanner[T any] struct {
	data []T
	pos  int
}

// New creates a scanner positioned at the start of data.
func New[T any](data []T) *Scanner[T] {
	return &Scanner[T]{data: data}
}

// Remaining returns the unread portion of the input.
func (s *Scanner[T]) Remaining() []T {
	return s.data[s.pos:]
}

// Data returns the original input given to the scanner.
func (s *Scanner[T]) Data() []T {
	return s.data
}

// Position returns the current cursor offset, usable with JumpTo.
func (s *Scanner[T]) Position() int {
	return s.pos
}

// BumpBy advances the cursor by n symbols. n must not exceed the remaining
// length; since n is always derived from a prior match length, a violation
// is a bug in the caller and panics.
func (s *Scanner[T]) BumpBy(n int) {
	if n < 0 || s.pos+n > len(s.data) {
		panic("scan: bump past end of input")
	}
	s.pos += n
}

// JumpTo moves the cursor to an absolute offset in [0, len(data)], backward
// or forward. Backtracking restores an earlier snapshot; skipping past a
// peeked group jumps ahead.
func (s *Scanner[T]) JumpTo(pos int) {
	if pos < 0 || pos > len(s.data) {
		panic("scan: jump outside input")
	}
	s.pos = pos
}

// Rewind moves the cursor backward by n symbols.
func (s *Scanner[T]) Rewind(n int) {
	if n < 0 || n > s.pos {
		panic("scan: rewind before start of input")
	}
	s.pos -= n
}

// IsEmpty reports whether the whole input has been consumed.
func (s *Scanner[T]) IsEmpty() bool {
	return s.pos == len(s.data)
}
