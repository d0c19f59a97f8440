package scan

// SeparatedList repeats an element visitor joined by a separator visitor.
// Zero elements is a successful outcome, and so is a list without a trailing
// separator. When a separator has been consumed but no further element
// follows, the scanner is restored to just before that separator so it is
// not left silently consumed. The returned visitor never fails.
func SeparatedList[T, V, S any](element Visitor[T, V], separator Visitor[T, S]) Visitor[T, []V] {
	return func(s *Scanner[T]) ([]V, error) {
		var elements []V
		mark := s.Position()
		for {
			value, err := element(s)
			if err != nil {
				s.JumpTo(mark)
				return elements, nil
			}
			elements = append(elements, value)

			// mark sits before the separator: if the next element
			// fails, the separator must be given back too.
			mark = s.Position()
			if _, err := separator(s); err != nil {
				s.JumpTo(mark)
				return elements, nil
			}
		}
	}
}
