package scan

// Delimited locates a bracket-style group with balanced nesting. The scanner
// must sit exactly at the opening marker, otherwise the peek is a not-found.
// A depth counter goes up on every nested opening marker and down on every
// closing marker; the group ends where depth returns to zero. Nested groups
// stay verbatim inside the inner view.
//
// Escape is optional; when set, the symbol following an escape marker
// carries no structural meaning. Adjacent markers form a legal empty group.
// Input ending before the group closes is ErrUnterminatedGroup, not a
// not-found.
type Delimited[T any] struct {
	Open   Matcher[T]
	Close  Matcher[T]
	Escape Matcher[T]
}

func (d Delimited[T]) Peek(s *Scanner[T]) (PeekResult, error) {
	data := s.Remaining()
	matched, openLen := d.Open.Match(data)
	if !matched {
		return PeekResult{}, nil
	}
	depth := 1
	pos := openLen
	for pos < len(data) {
		if d.Escape != nil {
			if ok, n := d.Escape.Match(data[pos:]); ok {
				pos += n
				if pos < len(data) {
					pos++
				}
				continue
			}
		}
		if ok, n := d.Open.Match(data[pos:]); ok {
			depth++
			pos += n
			continue
		}
		if ok, n := d.Close.Match(data[pos:]); ok {
			depth--
			pos += n
			if depth == 0 {
				return PeekResult{Found: true, End: pos, OpenLen: openLen, CloseLen: n}, nil
			}
			continue
		}
		pos++
	}
	return PeekResult{}, ErrUnterminatedGroup
}

// Quoted locates a quote-style group: the same marker opens and closes it,
// with a one-shot escape. Once the escape marker is seen, the next symbol
// never terminates the group, even when it equals the closing quote; the
// flag resets after that one symbol. The scanner must sit at the opening
// quote. Input ending while the group is still open is ErrUnterminatedGroup.
type Quoted[T any] struct {
	Quote  Matcher[T]
	Escape Matcher[T]
}

func (q Quoted[T]) Peek(s *Scanner[T]) (PeekResult, error) {
	data := s.Remaining()
	matched, openLen := q.Quote.Match(data)
	if !matched {
		return PeekResult{}, nil
	}
	pos := openLen
	escaped := false
	for pos < len(data) {
		if escaped {
			escaped = false
			pos++
			continue
		}
		if q.Escape != nil {
			if ok, n := q.Escape.Match(data[pos:]); ok {
				escaped = true
				pos += n
				continue
			}
		}
		if ok, n := q.Quote.Match(data[pos:]); ok {
			return PeekResult{Found: true, End: pos + n, OpenLen: openLen, CloseLen: n}, nil
		}
		pos++
	}
	return PeekResult{}, ErrUnterminatedGroup
}
