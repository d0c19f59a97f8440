package scan

// A Recognizer tries flat patterns in declaration order against the position
// where the alternation began. The first pattern that matches wins and is
// final for this site: later TryOr calls are no-ops. A failed alternative
// never moves the cursor, so nothing has been consumed when the next
// alternative is attempted, and when none match the scanner sits exactly
// where the alternation began.
//
// The engine gives no longest-match guarantee: when one candidate is a
// prefix of another, declare the one that should win first.
type Recognizer[T any] struct {
	scanner *Scanner[T]
	view    []T
	matched bool
}

// NewRecognizer captures the scanner for one alternation site.
func NewRecognizer[T any](s *Scanner[T]) *Recognizer[T] {
	return &Recognizer[T]{scanner: s}
}

// TryOr attempts one more alternative unless an earlier one already matched.
func (r *Recognizer[T]) TryOr(m Matcher[T]) *Recognizer[T] {
	if r.matched {
		return r
	}
	if view, ok := TryRecognize(m, r.scanner); ok {
		r.view = view
		r.matched = true
	}
	return r
}

// Finish yields the view consumed by the winning alternative, or ok=false
// when no alternative matched.
func (r *Recognizer[T]) Finish() (view []T, ok bool) {
	return r.view, r.matched
}
