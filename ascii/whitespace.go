package ascii

import (
	"github.com/dhamidi/taz/scan"
)

// Spaces consumes a run of at least one space and reports its length.
func Spaces(s *scan.Scanner[byte]) (int, error) {
	n := skipSpaces(s)
	if n == 0 {
		return 0, scan.ErrUnexpectedToken
	}
	return n, nil
}

// OptionalSpaces consumes a possibly empty run of spaces. It never fails.
func OptionalSpaces(s *scan.Scanner[byte]) (int, error) {
	return skipSpaces(s), nil
}

func skipSpaces(s *scan.Scanner[byte]) int {
	n := 0
	for {
		if _, ok := scan.TryRecognize(Space, s); !ok {
			return n
		}
		n++
	}
}
