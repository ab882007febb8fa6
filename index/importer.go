package index

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/blevesearch/bleve/v2"

	"github.com/openplaces/placeindex/document"
)

// ErrFinished is returned by Importer methods after Finish has been called.
var ErrFinished = errors.New("importer already finished")

// defaultBatchSize is the number of documents buffered before a flush.
const defaultBatchSize = 1000

// Options configures an Importer.
type Options struct {
	// Path is the on-disk location of the bleve index. An existing index at
	// that path is opened and appended to; otherwise a new one is created.
	// Empty means a memory-only index.
	Path string

	// BatchSize overrides how many documents are buffered before a flush.
	// Zero means the default of 1000.
	BatchSize int

	// Logger receives progress and error logs. Nil means slog.Default().
	Logger *slog.Logger
}

// Importer writes address documents to a bleve index in batches.
// It is not safe for concurrent use; run one importer per index.
type Importer struct {
	idx       bleve.Index
	batch     *bleve.Batch
	batchSize int
	pending   int
	submitted uint64
	log       *slog.Logger
}

// NewImporter opens (or creates) the target index and returns an importer
// ready to accept documents.
func NewImporter(opts Options) (*Importer, error) {
	var (
		idx bleve.Index
		err error
	)
	if opts.Path == "" {
		idx, err = bleve.NewMemOnly(buildIndexMapping())
	} else {
		idx, err = bleve.Open(opts.Path)
		if errors.Is(err, bleve.ErrorIndexPathDoesNotExist) {
			idx, err = bleve.New(opts.Path, buildIndexMapping())
		}
	}
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Importer{
		idx:       idx,
		batch:     idx.NewBatch(),
		batchSize: batchSize,
		log:       log,
	}, nil
}

// Add buffers one document for indexing, flushing the current batch when it
// is full.
func (im *Importer) Add(doc document.Document) error {
	if im.idx == nil {
		return ErrFinished
	}
	if err := im.batch.Index(doc.UID(), newIndexDoc(doc)); err != nil {
		return fmt.Errorf("index document %s: %w", doc.UID(), err)
	}
	im.pending++
	documentsSubmitted.Inc()
	if im.pending >= im.batchSize {
		return im.Flush()
	}
	return nil
}

// Flush writes any buffered documents to the index.
func (im *Importer) Flush() error {
	if im.idx == nil {
		return ErrFinished
	}
	if im.pending == 0 {
		return nil
	}
	if err := im.idx.Batch(im.batch); err != nil {
		return fmt.Errorf("flush batch: %w", err)
	}
	im.submitted += uint64(im.pending)
	batchesFlushed.Inc()
	im.log.Debug("flushed batch", "documents", im.pending, "total", im.submitted)
	im.batch.Reset()
	im.pending = 0
	return nil
}

// Finish flushes buffered documents and closes the index. The importer
// cannot be used afterwards.
func (im *Importer) Finish() error {
	if im.idx == nil {
		return ErrFinished
	}
	if err := im.Flush(); err != nil {
		return err
	}
	im.log.Info("import finished", "documents", im.submitted)
	err := im.idx.Close()
	im.idx = nil
	if err != nil {
		return fmt.Errorf("close index: %w", err)
	}
	return nil
}

// DocCount returns the number of documents currently visible in the index.
// Buffered but unflushed documents are not counted.
func (im *Importer) DocCount() (uint64, error) {
	if im.idx == nil {
		return 0, ErrFinished
	}
	return im.idx.DocCount()
}

// Search runs a query against the underlying index. Mainly useful for
// verification after an import.
func (im *Importer) Search(req *bleve.SearchRequest) (*bleve.SearchResult, error) {
	if im.idx == nil {
		return nil, ErrFinished
	}
	return im.idx.Search(req)
}
