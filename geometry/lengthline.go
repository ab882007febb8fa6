package geometry

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// GeometryError reports a geometry that cannot be linearly referenced.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return "geometry error: " + e.Reason
}

// LengthIndexedLine maps cumulative arc-length offsets along a polyline to
// points on it. Segment lengths are computed once at construction; queries
// are a binary search plus one linear interpolation.
//
// Distances are planar, in the units of the line's coordinate space. The
// callers in this module only ever reference positions relative to the
// line's own total length, so the choice of metric cancels out.
type LengthIndexedLine struct {
	line orb.LineString
	cum  []float64 // cum[i] is the arc length from line[0] to line[i]
}

// NewLengthIndexedLine indexes the given polyline by arc length. It returns
// a *GeometryError if the line has fewer than two vertices or zero total
// length; there is no position on a degenerate line to extract.
func NewLengthIndexedLine(line orb.LineString) (*LengthIndexedLine, error) {
	if len(line) < 2 {
		return nil, &GeometryError{Reason: fmt.Sprintf("polyline needs at least 2 vertices, got %d", len(line))}
	}

	cum := make([]float64, len(line))
	for i := 1; i < len(line); i++ {
		cum[i] = cum[i-1] + planar.Distance(line[i-1], line[i])
	}
	if cum[len(cum)-1] == 0 {
		return nil, &GeometryError{Reason: "polyline has zero length"}
	}

	return &LengthIndexedLine{line: line, cum: cum}, nil
}

// StartIndex returns the arc-length offset of the start of the line.
// It is always 0 and exists so callers can write offset arithmetic
// symmetrically with EndIndex.
func (l *LengthIndexedLine) StartIndex() float64 {
	return 0
}

// EndIndex returns the total arc length of the line.
func (l *LengthIndexedLine) EndIndex() float64 {
	return l.cum[len(l.cum)-1]
}

// ExtractPoint returns the point at the given cumulative arc-length offset.
// Offsets outside [StartIndex, EndIndex] are clamped to the endpoints.
func (l *LengthIndexedLine) ExtractPoint(index float64) orb.Point {
	last := len(l.cum) - 1
	if index <= 0 {
		return l.line[0]
	}
	if index >= l.cum[last] {
		return l.line[last]
	}

	// Smallest i with cum[i] >= index; i > 0 because index > 0.
	i := sort.SearchFloat64s(l.cum, index)
	if l.cum[i] == index {
		return l.line[i]
	}

	// cum[i-1] < index < cum[i], so the segment has positive length even
	// when the line contains repeated vertices elsewhere.
	t := (index - l.cum[i-1]) / (l.cum[i] - l.cum[i-1])
	a, b := l.line[i-1], l.line[i]
	return orb.Point{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
	}
}
