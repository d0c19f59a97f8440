package ascii

import (
	"github.com/dhamidi/taz/scan"
)

// TextRun matches a run of bytes up to the next ASCII punctuation character.
type TextRun struct{}

func (TextRun) Match(data []byte) (bool, int) { return MatchText(data) }
func (TextRun) Size() int                     { return 0 }

// Text consumes a run of non-punctuation bytes and returns it as a view of
// the input.
func Text(s *scan.Scanner[byte]) ([]byte, error) {
	return scan.Recognize(TextRun{}, s)
}
