package scan

// TryRecognize is the default recognition algorithm shared by every Matcher:
// test the pattern against the scanner's remaining view; on a match, advance
// the scanner by the reported length and return the consumed view. On a
// non-match the scanner is left untouched and ok is false — ordinary control
// flow, not a failure.
func TryRecognize[T any](m Matcher[T], s *Scanner[T]) (view []T, ok bool) {
	data := s.Remaining()
	matched, length := m.Match(data)
	if !matched {
		return nil, false
	}
	s.BumpBy(length)
	return data[:length:length], true
}

// Recognize consumes a pattern the grammar requires. A pattern that cannot
// fit in the remaining input yields ErrUnexpectedEnd; a pattern that is
// simply absent yields ErrUnexpectedToken.
func Recognize[T any](m Matcher[T], s *Scanner[T]) ([]T, error) {
	if m.Size() > len(s.Remaining()) {
		return nil, ErrUnexpectedEnd
	}
	view, ok := TryRecognize(m, s)
	if !ok {
		return nil, ErrUnexpectedToken
	}
	return view, nil
}
