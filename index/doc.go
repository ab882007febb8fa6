// Package index submits address documents to a bleve search index.
//
// This is the infrastructure edge of the module: the expansion core hands it
// fully materialized document.Document values and the Importer takes care of
// serialization into the index's document shape, batching, and index
// lifecycle. Every document is indexed independently; the documents fanned
// out from one input record form no transactional group.
//
// # Usage
//
// Create an importer, feed it documents, finish:
//
//	imp, err := index.NewImporter(index.Options{Path: "/var/lib/placeindex"})
//	if err != nil {
//	    // ...
//	}
//	for _, doc := range docs {
//	    if err := imp.Add(doc); err != nil {
//	        // ...
//	    }
//	}
//	if err := imp.Finish(); err != nil {
//	    // ...
//	}
//
// An empty Path creates a memory-only index, which is what the tests use.
//
// # Metrics
//
// The importer exports prometheus counters for documents submitted and
// batches flushed under the placeindex_ prefix.
package index
