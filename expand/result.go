package expand

import (
	"strings"

	"github.com/paulmach/orb"

	"github.com/openplaces/placeindex/document"
)

// addressNumberKeys are the address attributes that may carry explicit house
// numbers, in processing order. A number appearing under more than one key
// is simply re-added; the later field wins.
var addressNumberKeys = []string{"housenumber", "streetnumber", "conscriptionnumber"}

// Result accumulates house numbers for one base document and materializes
// the final per-number documents.
type Result struct {
	doc document.Document

	// Insertion-ordered number -> position map. Re-adding a number keeps
	// its original position in the order but overwrites the point.
	numbers  []string
	position map[string]orb.Point
}

// New creates a Result for the given base document.
func New(doc document.Document) *Result {
	return &Result{
		doc:      doc,
		position: make(map[string]orb.Point),
	}
}

// BaseDocument returns the unexpanded base document.
func (r *Result) BaseDocument() document.Document {
	return r.doc
}

// Len returns the number of accumulated house numbers.
func (r *Result) Len() int {
	return len(r.numbers)
}

// IsUsefulForIndex reports whether the record should be indexed at all:
// either expansion produced at least one house number, or the base document
// is useful in its own right.
func (r *Result) IsUsefulForIndex() bool {
	return len(r.numbers) > 0 || r.doc.IsUsefulForIndex()
}

// AddHousenumbersFromString adds house numbers from a free-text field. The
// field may hold a single number or several separated by semicolons; each
// is positioned at the base document's centroid. Empty input is a no-op.
// Re-adding a known number overwrites its position (last write wins).
func (r *Result) AddHousenumbersFromString(str string) {
	if str == "" {
		return
	}
	for _, part := range strings.Split(str, ";") {
		if h := strings.TrimSpace(part); h != "" {
			r.put(h, r.doc.Centroid)
		}
	}
}

// AddHousenumbersFromAddress adds house numbers from the record's address
// attributes. The housenumber, streetnumber and conscriptionnumber fields
// are processed in that fixed order; they are merged into one number set,
// with later fields overwriting shared numbers. Nil input is a no-op.
func (r *Result) AddHousenumbersFromAddress(address map[string]string) {
	if address == nil {
		return
	}
	for _, key := range addressNumberKeys {
		r.AddHousenumbersFromString(address[key])
	}
}

// Documents materializes the output documents. With no accumulated numbers
// it returns the base document alone, unmodified. Otherwise it returns one
// independent copy per number, in insertion order, with house number and
// centroid overridden. Calling it again yields the same result.
func (r *Result) Documents() []document.Document {
	if len(r.numbers) == 0 {
		return []document.Document{r.doc.Copy()}
	}

	docs := make([]document.Document, 0, len(r.numbers))
	for _, num := range r.numbers {
		docs = append(docs, r.doc.CopyWithHousenumber(num, r.position[num]))
	}
	return docs
}

func (r *Result) put(num string, at orb.Point) {
	if _, seen := r.position[num]; !seen {
		r.numbers = append(r.numbers, num)
	}
	r.position[num] = at
}
