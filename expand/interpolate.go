package expand

import (
	"strconv"

	"github.com/paulmach/orb"

	"github.com/openplaces/placeindex/geometry"
)

// Parity selects which numbers an old-style interpolation generates.
type Parity string

const (
	ParityOdd  Parity = "odd"
	ParityEven Parity = "even"
	ParityAll  Parity = "all"
)

// maxRangeWidth bounds how many numbers a single range may span. Wider
// ranges are almost certainly mistagged and are dropped silently.
const maxRangeWidth = 1000

// AddOldStyleInterpolation expands an old-style (parity-based) range along
// the given line. Both first and last are left out: old-style ranges start
// and end on distinct OSM house-number objects that are indexed on their
// own. For odd and even parity the start is shifted so that the generated
// numbers land on the requested side.
//
// An invalid range (last <= first, or spanning more than 1000 numbers)
// contributes nothing and returns nil. A degenerate line returns the
// *geometry.GeometryError unchanged.
func (r *Result) AddOldStyleInterpolation(first, last int64, parity Parity, line orb.LineString) error {
	if !validRange(first, last) {
		return nil
	}

	idx, err := geometry.NewLengthIndexedLine(line)
	if err != nil {
		return err
	}
	si := idx.StartIndex()
	lstep := (idx.EndIndex() - si) / float64(last-first)

	var num, step int64 = 1, 2
	switch parity {
	case ParityOdd:
		if first%2 == 1 {
			num++
		}
	case ParityEven:
		if first%2 == 0 {
			num++
		}
	default:
		step = 1
	}

	for ; first+num < last; num += step {
		r.put(strconv.FormatInt(first+num, 10), idx.ExtractPoint(si+lstep*float64(num)))
	}
	return nil
}

// AddNewStyleInterpolation expands a new-style (step-based) range along the
// given line. Unlike the old-style variant, last is included: new-style
// ranges describe the full row of houses themselves. This inclusive/
// exclusive asymmetry between the two modes is deliberate.
//
// The same range sanity bound applies as for old-style ranges; a step below
// 1 also contributes nothing.
func (r *Result) AddNewStyleInterpolation(first, last, step int64, line orb.LineString) error {
	if !validRange(first, last) || step < 1 {
		return nil
	}

	idx, err := geometry.NewLengthIndexedLine(line)
	if err != nil {
		return err
	}
	si := idx.StartIndex()
	lstep := (idx.EndIndex() - si) / float64(last-first)

	for num := int64(1); first+num <= last; num += step {
		r.put(strconv.FormatInt(first+num, 10), idx.ExtractPoint(si+lstep*float64(num)))
	}
	return nil
}

func validRange(first, last int64) bool {
	return last > first && last-first <= maxRangeWidth
}
