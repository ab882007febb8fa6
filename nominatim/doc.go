// Package nominatim reads address records from a Nominatim database and
// turns them into expandable results.
//
// Two tables matter. placex holds every imported OSM object together with
// its names, address attributes and centroid; these become base documents
// whose explicit house numbers (the housenumber column plus the
// housenumber, streetnumber and conscriptionnumber address attributes) are
// collected onto the result. location_property_osmline holds house-number
// interpolation ways; their interpolationtype tag is either a parity word
// (odd, even, all — old-style) or a decimal step width (new-style), and the
// range is expanded along the way's line geometry.
//
// Geometries are scanned straight from PostGIS columns via
// orb/encoding/ewkb; the name and address hstore columns via lib/pq's
// hstore support.
//
// Rows that cannot be decoded are logged and skipped — broken geometry and
// mistagged ranges are expected noise in OSM extracts. Query-level errors
// are returned to the caller.
package nominatim
