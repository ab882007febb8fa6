package index

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	documentsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "placeindex_documents_submitted_total",
		Help: "Total number of address documents submitted to the index",
	})
	batchesFlushed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "placeindex_batches_flushed_total",
		Help: "Total number of index batches flushed",
	})
)
