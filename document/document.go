package document

import (
	"maps"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Document is one address or POI record prepared for indexing.
//
// The search core only ever touches Housenumber and Centroid; everything
// else is carried through to the index untouched.
type Document struct {
	// PlaceID is the source database's primary key for this record.
	PlaceID int64

	// Object identifies the originating OSM object (node, way or relation).
	Object osm.FeatureID

	// Class and Type are the classifying OSM tag pair, e.g. "place"/"house"
	// or "highway"/"residential".
	Class string
	Type  string

	// Name holds localized names keyed by name tag ("name", "name:de", ...).
	Name map[string]string

	// Housenumber is set on fanned-out copies; it is empty on base
	// documents, whose candidate numbers live in the expansion layer.
	Housenumber string

	// Address holds the record's address attributes ("street", "city",
	// "housenumber", ...). Opaque to the expansion core.
	Address map[string]string

	Postcode    string
	CountryCode string

	// Centroid is the record's representative point. Fanned-out copies get
	// the interpolated position of their house number instead.
	Centroid orb.Point

	Rank       int
	Importance float64
}

// Copy returns a deep value copy of the document. The copy owns its own
// Name and Address maps.
func (d Document) Copy() Document {
	d.Name = maps.Clone(d.Name)
	d.Address = maps.Clone(d.Address)
	return d
}

// CopyWithHousenumber returns an independent copy of the document with the
// house number and centroid overridden. This is the fan-out primitive: each
// generated house number becomes one such copy.
func (d Document) CopyWithHousenumber(num string, at orb.Point) Document {
	c := d.Copy()
	c.Housenumber = num
	c.Centroid = at
	return c
}

// IsUsefulForIndex reports whether the document deserves an index entry on
// its own, before any house-number expansion. Interpolation ways
// (place=houses) are excluded: they only become useful through the numbers
// generated from them.
func (d Document) IsUsefulForIndex() bool {
	if d.Class == "place" && d.Type == "houses" {
		return false
	}
	return d.Housenumber != "" || len(d.Name) > 0
}

// UID returns a stable identifier for the document in the index. Copies
// produced for different house numbers of the same record get distinct IDs.
func (d Document) UID() string {
	id := strconv.FormatInt(d.PlaceID, 10)
	if d.Housenumber != "" {
		id += ":" + d.Housenumber
	}
	return id
}
