package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openplaces/placeindex/document"
	"github.com/openplaces/placeindex/expand"
)

// Error values for pipeline construction.
var (
	ErrNoSource = errors.New("pipeline: no source configured")
	ErrNoSink   = errors.New("pipeline: no sink configured")
)

// Source streams expanded address results, one per input record.
type Source interface {
	Places(ctx context.Context, fn func(*expand.Result) error) error
	Interpolations(ctx context.Context, fn func(*expand.Result) error) error
}

// Sink receives the fanned-out documents. *index.Importer implements it.
type Sink interface {
	Add(doc document.Document) error
}

// Options configures a Pipeline.
type Options struct {
	// Source provides the records. Required.
	Source Source

	// Sink receives the output documents. Required.
	Sink Sink

	// Logger receives progress logs. Nil means slog.Default().
	Logger *slog.Logger
}

// Stats summarizes one import run.
type Stats struct {
	// Records is the number of input records seen.
	Records uint64
	// Documents is the number of documents handed to the sink.
	Documents uint64
	// Skipped is the number of records dropped as not useful for the index.
	Skipped uint64
}

// Pipeline drives one import: source records are expanded into documents
// and submitted to the sink.
type Pipeline struct {
	src   Source
	sink  Sink
	log   *slog.Logger
	stats Stats
}

// New validates the options and builds a pipeline.
func New(opts Options) (*Pipeline, error) {
	if opts.Source == nil {
		return nil, ErrNoSource
	}
	if opts.Sink == nil {
		return nil, ErrNoSink
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{src: opts.Source, sink: opts.Sink, log: log}, nil
}

// Run drains the source: first plain places, then interpolation ways. It
// stops on the first sink or source error.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.src.Places(ctx, p.submit); err != nil {
		return fmt.Errorf("import places: %w", err)
	}
	if err := p.src.Interpolations(ctx, p.submit); err != nil {
		return fmt.Errorf("import interpolations: %w", err)
	}

	p.log.Info("import complete",
		"records", p.stats.Records,
		"documents", p.stats.Documents,
		"skipped", p.stats.Skipped)
	return nil
}

// Stats returns the counters of the run so far.
func (p *Pipeline) Stats() Stats {
	return p.stats
}

func (p *Pipeline) submit(res *expand.Result) error {
	p.stats.Records++
	if !res.IsUsefulForIndex() {
		p.stats.Skipped++
		return nil
	}
	for _, doc := range res.Documents() {
		if err := p.sink.Add(doc); err != nil {
			return err
		}
		p.stats.Documents++
	}
	return nil
}
