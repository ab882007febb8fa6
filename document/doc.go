// Package document defines the address document model shared by the rest of
// the module.
//
// A Document is the canonical representation of one address or POI record as
// it will be submitted to the search index: an OSM object identity, a
// classifying key/value pair, localized names, address attributes, and a
// centroid. The expansion layer fans a single base document out into many
// per-housenumber copies; to keep those copies independently indexable,
// Document is a value type and all copies are deep value copies that share
// no mutable substructure.
//
// # Usefulness
//
// Not every record that comes out of an OSM extract deserves an index entry
// of its own. IsUsefulForIndex is the document's own verdict — it holds a
// house number or has at least one name. The expansion layer combines it
// with "produced at least one house number" to decide whether a record is
// indexed at all.
package document
