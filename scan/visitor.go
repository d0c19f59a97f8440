package scan

// A Visitor consumes one structured construct from the scanner and produces
// a typed value, or fails. Visitors nest arbitrarily deep: a visitor may
// call Recognize for mandatory sub-patterns, invoke other visitors for
// mandatory sub-structures, or delegate to a Recognizer or Acceptor for
// alternatives.
//
// A visitor is not required to rewind the scanner when it fails. Whichever
// combinator offers alternatives (Acceptor, SeparatedList) restores the
// pre-attempt position itself, no matter how far the failed visitor advanced
// the cursor internally.
type Visitor[T, V any] func(*Scanner[T]) (V, error)

// Expect adapts a mandatory pattern into a visitor producing the consumed
// view.
func Expect[T any](m Matcher[T]) Visitor[T, []T] {
	return func(s *Scanner[T]) ([]T, error) {
		return Recognize(m, s)
	}
}
