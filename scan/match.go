package scan

// A Matcher is a prefix test: it reports whether it matches the start of a
// view and how many symbols the match covers. Match must be free of side
// effects, must tolerate an empty view, and must report the same result for
// the same view every time. Dynamic-length patterns (a run of digits, say)
// compute the length by scanning.
type Matcher[T any] interface {
	Match(data []T) (matched bool, length int)

	// Size returns the minimal number of symbols the pattern can match,
	// or 0 for dynamic-length patterns. Recognize uses it to distinguish
	// exhausted input from an absent pattern.
	Size() int
}
