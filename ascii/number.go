package ascii

import (
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/dhamidi/taz/scan"
)

// DigitRun matches a run of ASCII digits. The run's length is computed by
// scanning, so Size is zero.
type DigitRun struct{}

func (DigitRun) Match(data []byte) (bool, int) { return MatchDigits(data) }
func (DigitRun) Size() int                     { return 0 }

// Number consumes a run of digits and converts it to an integer type. A run
// whose value does not fit the target type is ErrBadValue with the strconv
// cause attached.
func Number[N constraints.Integer](s *scan.Scanner[byte]) (N, error) {
	view, err := scan.Recognize(DigitRun{}, s)
	if err != nil {
		return 0, err
	}
	var zero N
	target := reflect.TypeOf(zero)
	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value, err := strconv.ParseInt(string(view), 10, target.Bits())
		if err != nil {
			return 0, fmt.Errorf("%w: %v", scan.ErrBadValue, err)
		}
		return N(value), nil
	default:
		value, err := strconv.ParseUint(string(view), 10, target.Bits())
		if err != nil {
			return 0, fmt.Errorf("%w: %v", scan.ErrBadValue, err)
		}
		return N(value), nil
	}
}
