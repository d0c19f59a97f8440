package scan

// Test fixtures shared across the package tests: a literal byte pattern and
// a digit-run pattern, the two shapes of Matcher the engine has to support.

type lit string

func (l lit) Match(data []byte) (bool, int) {
	if len(l) > len(data) {
		return false, 0
	}
	for i := 0; i < len(l); i++ {
		if data[i] != l[i] {
			return false, 0
		}
	}
	return true, len(l)
}

func (l lit) Size() int { return len(l) }

type digits struct{}

func (digits) Match(data []byte) (bool, int) {
	n := 0
	for n < len(data) && data[n] >= '0' && data[n] <= '9' {
		n++
	}
	return n > 0, n
}

func (digits) Size() int { return 0 }

// acceptInt parses a run of digits into an int.
func acceptInt(s *Scanner[byte]) (int, error) {
	view, err := Recognize[byte](digits{}, s)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, b := range view {
		n = n*10 + int(b-'0')
	}
	return n, nil
}
