// Package ascii provides byte-level leaf recognizers for the scan engine:
// fixed single- and two-byte tokens, digit and text runs, numeric visitors,
// and the usual delimited groups of ASCII syntax.
package ascii

// MatchByte reports whether data starts with b.
func MatchByte(b byte, data []byte) (bool, int) {
	if len(data) == 0 {
		return false, 0
	}
	return data[0] == b, 1
}

// MatchPattern reports whether data starts with pattern, compared without
// regard to ASCII case.
func MatchPattern(pattern, data []byte) (bool, int) {
	if len(pattern) == 0 || len(pattern) > len(data) {
		return false, 0
	}
	for i := range pattern {
		if lower(pattern[i]) != lower(data[i]) {
			return false, 0
		}
	}
	return true, len(pattern)
}

// MatchDigits reports a run of ASCII digits at the start of data.
func MatchDigits(data []byte) (bool, int) {
	n := 0
	for n < len(data) && isDigit(data[n]) {
		n++
	}
	return n > 0, n
}

// MatchText reports a run of bytes at the start of data, stopping at the
// first ASCII punctuation character.
func MatchText(data []byte) (bool, int) {
	n := 0
	for n < len(data) && !isPunct(data[n]) {
		n++
	}
	return n > 0, n
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isPunct(b byte) bool {
	switch {
	case b >= '!' && b <= '/':
		return true
	case b >= ':' && b <= '@':
		return true
	case b >= '[' && b <= '`':
		return true
	case b >= '{' && b <= '~':
		return true
	}
	return false
}
