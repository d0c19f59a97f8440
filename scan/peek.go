package scan

// A Peekable locates a construct ahead of the cursor without moving the
// caller's scanner. The delimited-group engine is built on it: a group is
// located and extracted whole, and its contents can then be re-scanned by an
// independent parse pass.
type Peekable[T any] interface {
	Peek(s *Scanner[T]) (PeekResult, error)
}

// A PeekResult describes a located construct relative to the scanner's
// cursor at the time of the peek. End is the offset just past the whole
// construct; OpenLen and CloseLen are the sizes of the enclosing delimiters,
// zero when the construct has none on that side.
type PeekResult struct {
	Found    bool
	End      int
	OpenLen  int
	CloseLen int
}

// A Peeked is a successful peek bound to the input it was taken from. The
// views it hands out alias the scanner's input and share its lifetime.
type Peeked[T any] struct {
	data     []T
	origin   int
	openLen  int
	closeLen int
}

// Inner returns the region strictly between the delimiters. Nested groups
// are included verbatim; for an empty group the view has length zero.
func (p Peeked[T]) Inner() []T {
	return p.data[p.openLen : len(p.data)-p.closeLen]
}

// Raw returns the whole construct, delimiters included.
func (p Peeked[T]) Raw() []T {
	return p.data
}

// End returns the absolute position just past the whole construct. Jumping
// the scanner there continues the outer parse after the group.
func (p Peeked[T]) End() int {
	return p.origin + len(p.data)
}

// Peek attempts to locate peekable at the scanner's current position. The
// scanner never moves: the caller decides whether to re-scan the inner view
// with a fresh scanner, jump past the construct, or both.
func Peek[T any](peekable Peekable[T], s *Scanner[T]) (Peeked[T], bool, error) {
	origin := s.Position()
	result, err := peekable.Peek(s)
	if err != nil || !result.Found {
		return Peeked[T]{}, false, err
	}
	return Peeked[T]{
		data:     s.Data()[origin : origin+result.End],
		origin:   origin,
		openLen:  result.OpenLen,
		closeLen: result.CloseLen,
	}, true, nil
}

// Until locates everything before the first occurrence of a terminator
// pattern, testing the pattern at every forward offset. The terminator is
// excluded from the inner view but included in the construct, so End() lands
// just past it. A terminator that never occurs before the end of input is a
// not-found, unlike UntilEnd.
type Until[T any] struct {
	Terminator Matcher[T]
}

func (u Until[T]) Peek(s *Scanner[T]) (PeekResult, error) {
	data := s.Remaining()
	for offset := 0; offset < len(data); offset++ {
		if matched, length := u.Terminator.Match(data[offset:]); matched {
			return PeekResult{Found: true, End: offset + length, CloseLen: length}, nil
		}
	}
	return PeekResult{}, nil
}

// UntilEnd locates all remaining input. It always succeeds, even on an empty
// remainder.
type UntilEnd[T any] struct{}

func (UntilEnd[T]) Peek(s *Scanner[T]) (PeekResult, error) {
	return PeekResult{Found: true, End: len(s.Remaining())}, nil
}

// Last repeatedly applies an inner peekable and reports the construct
// reaching through its final occurrence, so peeking Until('|') over "a|b|c|"
// spans "a|b|c|" with the closing "|" as delimiter. The whole input must be
// covered by occurrences: a leftover tail after the last one is a not-found.
type Last[T any] struct {
	Element Peekable[T]
}

func (l Last[T]) Peek(s *Scanner[T]) (PeekResult, error) {
	inner := New(s.Remaining())
	var last PeekResult
	for !inner.IsEmpty() {
		result, err := l.Element.Peek(inner)
		if err != nil {
			return PeekResult{}, err
		}
		if !result.Found {
			return PeekResult{}, nil
		}
		inner.BumpBy(result.End)
		last = PeekResult{
			Found:    true,
			End:      inner.Position(),
			OpenLen:  result.OpenLen,
			CloseLen: result.CloseLen,
		}
	}
	return last, nil
}

// A Peeker races several peekables at the same position and keeps the one
// whose construct ends soonest. Typical use: "up to the next newline, or to
// the end of input".
type Peeker[T any] struct {
	scanner   *Scanner[T]
	peekables []Peekable[T]
}

// NewPeeker captures the scanner for one peeking pool.
func NewPeeker[T any](s *Scanner[T]) *Peeker[T] {
	return &Peeker[T]{scanner: s}
}

// Add registers one more candidate.
func (p *Peeker[T]) Add(peekable Peekable[T]) *Peeker[T] {
	p.peekables = append(p.peekables, peekable)
	return p
}

// Peek runs the pool and yields the shortest construct found.
func (p *Peeker[T]) Peek() (Peeked[T], bool, error) {
	var best Peeked[T]
	found := false
	for _, peekable := range p.peekables {
		peeked, ok, err := Peek(peekable, p.scanner)
		if err != nil {
			return Peeked[T]{}, false, err
		}
		if !ok {
			continue
		}
		if !found || len(peeked.Raw()) < len(best.Raw()) {
			best = peeked
			found = true
		}
	}
	return best, found, nil
}
