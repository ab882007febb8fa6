package nominatim

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/lib/pq/hstore"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/paulmach/osm"

	"github.com/openplaces/placeindex/document"
	"github.com/openplaces/placeindex/expand"
	"github.com/openplaces/placeindex/geometry"
)

func scanPlace(rows *sql.Rows) (*expand.Result, error) {
	var (
		doc         document.Document
		osmType     string
		osmID       int64
		housenumber sql.NullString
		postcode    sql.NullString
		country     sql.NullString
		importance  sql.NullFloat64
		name        hstore.Hstore
		address     hstore.Hstore
	)

	err := rows.Scan(
		&doc.PlaceID, &osmType, &osmID, &doc.Class, &doc.Type,
		&name, &housenumber, &postcode, &address, &country,
		&doc.Rank, &importance, ewkb.Scanner(&doc.Centroid),
	)
	if err != nil {
		return nil, err
	}

	doc.Object, err = featureID(osmType, osmID)
	if err != nil {
		return nil, fmt.Errorf("place %d: %w", doc.PlaceID, err)
	}
	doc.Name = hstoreMap(name)
	doc.Address = hstoreMap(address)
	doc.Postcode = postcode.String
	doc.CountryCode = country.String
	doc.Importance = importance.Float64

	res := expand.New(doc)
	res.AddHousenumbersFromString(housenumber.String)
	res.AddHousenumbersFromAddress(doc.Address)
	return res, nil
}

func scanInterpolation(rows *sql.Rows) (*expand.Result, error) {
	var (
		doc      document.Document
		osmID    int64
		first    int64
		last     int64
		kind     string
		address  hstore.Hstore
		postcode sql.NullString
		country  sql.NullString
		line     orb.LineString
	)

	err := rows.Scan(
		&doc.PlaceID, &osmID, &first, &last, &kind,
		&address, &postcode, &country, ewkb.Scanner(&line),
	)
	if err != nil {
		return nil, err
	}

	// Interpolation rows always come from ways.
	doc.Object = osm.WayID(osmID).FeatureID()
	doc.Class, doc.Type = "place", "houses"
	doc.Address = hstoreMap(address)
	doc.Postcode = postcode.String
	doc.CountryCode = country.String

	idx, err := geometry.NewLengthIndexedLine(line)
	if err != nil {
		return nil, fmt.Errorf("interpolation %d: %w", doc.PlaceID, err)
	}
	doc.Centroid = idx.ExtractPoint(idx.EndIndex() / 2)

	res := expand.New(doc)
	if step, ok := stepWidth(kind); ok {
		err = res.AddNewStyleInterpolation(first, last, step, line)
	} else {
		err = res.AddOldStyleInterpolation(first, last, expand.Parity(kind), line)
	}
	if err != nil {
		return nil, fmt.Errorf("interpolation %d: %w", doc.PlaceID, err)
	}
	return res, nil
}

// stepWidth parses the interpolationtype tag as a new-style step width.
// Parity words (odd, even, all) report ok=false and select the old-style
// expansion instead.
func stepWidth(kind string) (int64, bool) {
	step, err := strconv.ParseInt(kind, 10, 64)
	if err != nil {
		return 0, false
	}
	return step, true
}

func featureID(osmType string, ref int64) (osm.FeatureID, error) {
	switch osmType {
	case "N":
		return osm.NodeID(ref).FeatureID(), nil
	case "W":
		return osm.WayID(ref).FeatureID(), nil
	case "R":
		return osm.RelationID(ref).FeatureID(), nil
	default:
		return 0, fmt.Errorf("unknown osm_type %q", osmType)
	}
}

func hstoreMap(h hstore.Hstore) map[string]string {
	if len(h.Map) == 0 {
		return nil
	}
	out := make(map[string]string, len(h.Map))
	for k, v := range h.Map {
		if v.Valid {
			out[k] = v.String
		}
	}
	return out
}
