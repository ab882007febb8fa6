// Package geometry provides linear referencing over polyline geometries.
//
// The only primitive the rest of the module needs is "point at a given
// arc-length offset along a polyline". LengthIndexedLine implements exactly
// that: it computes the cumulative segment lengths of an orb.LineString once
// at construction and then answers offset queries by interpolating within
// the containing segment.
//
// Offsets are raw cumulative arc lengths in the units of the line's own
// coordinate space, not normalized 0-1 fractions. Callers derive them from
// StartIndex and EndIndex:
//
//	line, err := geometry.NewLengthIndexedLine(way)
//	if err != nil {
//	    // degenerate geometry
//	}
//	step := (line.EndIndex() - line.StartIndex()) / 10
//	p := line.ExtractPoint(line.StartIndex() + 3*step)
//
// Degenerate polylines (fewer than two vertices, or zero total length) are
// rejected at construction with a *GeometryError; ExtractPoint never
// produces NaN coordinates.
package geometry
