// Package expand turns one address record into the set of documents that
// actually get indexed.
//
// A Result wraps a base document.Document together with an accumulating
// house-number map. Numbers come from two sources:
//
//   - explicit house-number strings on the record itself (the "housenumber",
//     "streetnumber" and "conscriptionnumber" address attributes), all
//     positioned at the base document's centroid, and
//   - interpolation ranges, where a way carries only the first and last
//     number of a row of houses and the numbers in between are generated
//     along the way's geometry.
//
// # Interpolation conventions
//
// OSM has two conventions for interpolation ranges. Old-style ranges carry a
// parity ("odd", "even" or "all"); the endpoints are separate OSM objects
// that are indexed on their own, so old-style expansion excludes both first
// and last. New-style ranges carry a numeric step instead, and the last
// number is included. The asymmetry between the two modes is long-standing
// source behavior and is kept here deliberately; the package tests pin it
// down.
//
// Ranges are sanity-bounded: a range is expanded only if last > first and it
// spans at most 1000 numbers. Anything else is treated as mistagged source
// data and contributes nothing, without error.
//
// # Materialization
//
// Documents returns one value-copy of the base document per accumulated
// number, with house number and centroid overridden. The map is insertion
// ordered, so materialization order is deterministic. An empty map yields
// the base document itself, unmodified.
//
// Result is not safe for concurrent use; each instance belongs to the
// processing of exactly one input record.
package expand
