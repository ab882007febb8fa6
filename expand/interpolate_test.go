package expand

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/paulmach/orb"

	"github.com/openplaces/placeindex/document"
	"github.com/openplaces/placeindex/geometry"
)

// testLine is 10 units long and flat, so interpolated x positions can be
// checked directly.
var testLine = orb.LineString{{0, 0}, {10, 0}}

func interpolationDoc() document.Document {
	return document.Document{PlaceID: 9, Class: "place", Type: "houses"}
}

func assertNumbers(t *testing.T, r *Result, want []string) {
	t.Helper()
	got := housenumbers(r.Documents())
	if len(want) == 0 {
		if r.Len() != 0 {
			t.Fatalf("house numbers = %v, want none", got)
		}
		return
	}
	if !equalStrings(got, want) {
		t.Fatalf("house numbers = %v, want %v", got, want)
	}
}

func TestOldStyleInterpolation_EvenParity(t *testing.T) {
	// first even, so the start offset shifts by one and the generated
	// numbers are all even. Endpoints 10 and 20 are excluded.
	r := New(interpolationDoc())
	if err := r.AddOldStyleInterpolation(10, 20, ParityEven, testLine); err != nil {
		t.Fatalf("AddOldStyleInterpolation failed: %v", err)
	}

	assertNumbers(t, r, []string{"12", "14", "16", "18"})

	// lstep = 10/(20-10) = 1, so number 10+n sits at x = n.
	for _, d := range r.Documents() {
		n, _ := strconv.Atoi(d.Housenumber)
		wantX := float64(n - 10)
		if math.Abs(d.Centroid[0]-wantX) > 1e-9 || math.Abs(d.Centroid[1]) > 1e-9 {
			t.Errorf("number %s at %v, want (%v,0)", d.Housenumber, d.Centroid, wantX)
		}
	}
}

func TestOldStyleInterpolation_OddParity(t *testing.T) {
	r := New(interpolationDoc())
	if err := r.AddOldStyleInterpolation(1, 11, ParityOdd, testLine); err != nil {
		t.Fatalf("AddOldStyleInterpolation failed: %v", err)
	}

	assertNumbers(t, r, []string{"3", "5", "7", "9"})
}

func TestOldStyleInterpolation_ParityCorrection(t *testing.T) {
	tests := []struct {
		name   string
		first  int64
		last   int64
		parity Parity
		want   []string
	}{
		{"odd parity, even first", 2, 10, ParityOdd, []string{"3", "5", "7", "9"}},
		{"odd parity, odd first", 1, 9, ParityOdd, []string{"3", "5", "7"}},
		{"even parity, odd first", 1, 9, ParityEven, []string{"2", "4", "6", "8"}},
		{"even parity, even first", 2, 10, ParityEven, []string{"4", "6", "8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(interpolationDoc())
			if err := r.AddOldStyleInterpolation(tt.first, tt.last, tt.parity, testLine); err != nil {
				t.Fatalf("AddOldStyleInterpolation failed: %v", err)
			}
			assertNumbers(t, r, tt.want)
		})
	}
}

func TestOldStyleInterpolation_AllParityExcludesBothEndpoints(t *testing.T) {
	r := New(interpolationDoc())
	if err := r.AddOldStyleInterpolation(1, 5, ParityAll, testLine); err != nil {
		t.Fatalf("AddOldStyleInterpolation failed: %v", err)
	}

	// Exactly last-first-1 numbers: first+1 .. last-1.
	assertNumbers(t, r, []string{"2", "3", "4"})
}

func TestNewStyleInterpolation(t *testing.T) {
	r := New(interpolationDoc())
	if err := r.AddNewStyleInterpolation(100, 110, 5, testLine); err != nil {
		t.Fatalf("AddNewStyleInterpolation failed: %v", err)
	}

	assertNumbers(t, r, []string{"101", "106"})

	docs := r.Documents()
	if math.Abs(docs[0].Centroid[0]-1) > 1e-9 {
		t.Errorf("101 at x=%v, want 1", docs[0].Centroid[0])
	}
	if math.Abs(docs[1].Centroid[0]-6) > 1e-9 {
		t.Errorf("106 at x=%v, want 6", docs[1].Centroid[0])
	}
}

func TestNewStyleInterpolation_StepOneCoversFullRange(t *testing.T) {
	// With step 1 exactly last-first numbers come out: first+1 .. last,
	// last included. Old-style "all" over the same range stops at last-1 —
	// the two conventions deliberately disagree about the upper endpoint.
	r := New(interpolationDoc())
	if err := r.AddNewStyleInterpolation(1, 5, 1, testLine); err != nil {
		t.Fatalf("AddNewStyleInterpolation failed: %v", err)
	}
	assertNumbers(t, r, []string{"2", "3", "4", "5"})

	old := New(interpolationDoc())
	if err := old.AddOldStyleInterpolation(1, 5, ParityAll, testLine); err != nil {
		t.Fatalf("AddOldStyleInterpolation failed: %v", err)
	}
	if old.Len() != r.Len()-1 {
		t.Errorf("old-style produced %d numbers, new-style %d; want old = new-1", old.Len(), r.Len())
	}
}

func TestInterpolation_InvalidRangesAreSilentNoOps(t *testing.T) {
	tests := []struct {
		name  string
		first int64
		last  int64
	}{
		{"reversed", 50, 40},
		{"equal", 40, 40},
		{"too wide", 0, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(interpolationDoc())
			if err := r.AddOldStyleInterpolation(tt.first, tt.last, ParityAll, testLine); err != nil {
				t.Errorf("old-style returned error for invalid range: %v", err)
			}
			if err := r.AddNewStyleInterpolation(tt.first, tt.last, 1, testLine); err != nil {
				t.Errorf("new-style returned error for invalid range: %v", err)
			}
			if r.Len() != 0 {
				t.Errorf("invalid range added %d entries", r.Len())
			}
		})
	}
}

func TestInterpolation_InvalidRangeSkipsGeometry(t *testing.T) {
	// The range check comes first: a bad range with degenerate geometry is
	// still a silent no-op, not a geometry error.
	r := New(interpolationDoc())
	if err := r.AddOldStyleInterpolation(50, 40, ParityAll, orb.LineString{}); err != nil {
		t.Errorf("invalid range surfaced geometry error: %v", err)
	}
}

func TestInterpolation_WidestAcceptedRange(t *testing.T) {
	r := New(interpolationDoc())
	if err := r.AddNewStyleInterpolation(0, 1000, 1, testLine); err != nil {
		t.Fatalf("AddNewStyleInterpolation failed: %v", err)
	}
	if r.Len() != 1000 {
		t.Errorf("range 0..1000 step 1 produced %d numbers, want 1000", r.Len())
	}
}

func TestNewStyleInterpolation_NonPositiveStep(t *testing.T) {
	r := New(interpolationDoc())
	if err := r.AddNewStyleInterpolation(1, 10, 0, testLine); err != nil {
		t.Errorf("step 0 returned error: %v", err)
	}
	if err := r.AddNewStyleInterpolation(1, 10, -2, testLine); err != nil {
		t.Errorf("negative step returned error: %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("non-positive step added %d entries", r.Len())
	}
}

func TestInterpolation_DegenerateGeometry(t *testing.T) {
	r := New(interpolationDoc())

	err := r.AddOldStyleInterpolation(1, 11, ParityOdd, orb.LineString{{5, 5}, {5, 5}})
	var gerr *geometry.GeometryError
	if !errors.As(err, &gerr) {
		t.Errorf("old-style: expected *geometry.GeometryError, got %v", err)
	}

	err = r.AddNewStyleInterpolation(1, 11, 2, orb.LineString{})
	if !errors.As(err, &gerr) {
		t.Errorf("new-style: expected *geometry.GeometryError, got %v", err)
	}

	if r.Len() != 0 {
		t.Errorf("degenerate geometry added %d entries", r.Len())
	}
}

func TestInterpolation_CollisionLastWriteWins(t *testing.T) {
	// An explicit number that also falls inside an interpolated range is
	// overwritten with the interpolated position, not duplicated.
	base := interpolationDoc()
	base.Centroid = orb.Point{99, 99}

	r := New(base)
	r.AddHousenumbersFromString("12")
	if err := r.AddOldStyleInterpolation(10, 20, ParityEven, testLine); err != nil {
		t.Fatalf("AddOldStyleInterpolation failed: %v", err)
	}

	docs := r.Documents()
	if len(docs) != 4 {
		t.Fatalf("got %d documents, want 4", len(docs))
	}
	if docs[0].Housenumber != "12" {
		t.Fatalf("first document is %s, want the re-added 12", docs[0].Housenumber)
	}
	if docs[0].Centroid == (orb.Point{99, 99}) {
		t.Error("interpolation did not overwrite the explicit number's position")
	}
}
