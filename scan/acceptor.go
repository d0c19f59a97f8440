package scan

// An Acceptor tries full visitors in declaration order, first match wins.
// Branches with distinct result types wrap their value into the common sum
// type V inside the branch closure, so every alternative at the site shares
// one outcome type.
//
// Each branch runs from the position where the alternation began: a failed
// branch has the scanner restored to that snapshot no matter how far the
// branch advanced internally before failing. Any branch error counts as
// "branch did not match"; exhausting all branches is a negative result, not
// an error, and escalation is the caller's decision.
type Acceptor[T, V any] struct {
	scanner *Scanner[T]
	value   V
	matched bool
}

// NewAcceptor captures the scanner for one alternation site.
func NewAcceptor[T, V any](s *Scanner[T]) *Acceptor[T, V] {
	return &Acceptor[T, V]{scanner: s}
}

// TryOr attempts one more branch unless an earlier one already matched.
func (a *Acceptor[T, V]) TryOr(branch Visitor[T, V]) *Acceptor[T, V] {
	if a.matched {
		return a
	}
	mark := a.scanner.Position()
	value, err := branch(a.scanner)
	if err != nil {
		a.scanner.JumpTo(mark)
		return a
	}
	a.value = value
	a.matched = true
	return a
}

// Finish yields the value of the winning branch, or ok=false when no branch
// matched, in which case the scanner is back at the alternation's starting
// position.
func (a *Acceptor[T, V]) Finish() (value V, ok bool) {
	return a.value, a.matched
}
