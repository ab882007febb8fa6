// Package pipeline wires a record source, the expansion core and an index
// sink into one import run.
//
// A Source yields expanded results (the nominatim.Connector is the real
// one; tests use in-memory fakes). The pipeline filters out records that
// are not worth indexing, fans each remaining record out into its final
// documents and hands them to the Sink, which index.Importer implements.
//
// Records are independent of each other, so several pipelines over disjoint
// sources may run concurrently without coordination; a single Pipeline
// value, however, is meant for one Run at a time.
package pipeline
