package textprep

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/phuslu/log"
	"golang.org/x/sync/errgroup"
)

// BatchConfig holds configuration options for the batch pipeline.
type BatchConfig struct {
	// Workers is the maximum number of documents processed concurrently.
	// Values below 1 fall back to the default.
	// Default: runtime.GOMAXPROCS(0)
	Workers int

	// Logger receives structured batch events: batch id, document count,
	// chunk count, duration.
	// Default: a logger that discards its output
	Logger log.Logger
}

// DefaultBatchConfig returns sensible default configuration.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		Workers: runtime.GOMAXPROCS(0),
		Logger: log.Logger{
			Level:  log.InfoLevel,
			Writer: &log.ConsoleWriter{Writer: io.Discard},
		},
	}
}

// Pipeline cleans and splits document collections in parallel.
type Pipeline struct {
	config BatchConfig
}

// NewPipeline creates a pipeline with default configuration.
func NewPipeline() *Pipeline {
	return &Pipeline{
		config: DefaultBatchConfig(),
	}
}

// NewPipelineWithConfig creates a pipeline with custom configuration.
// Zero or invalid fields take their defaults.
func NewPipelineWithConfig(config BatchConfig) *Pipeline {
	if config.Workers < 1 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Logger.Writer == nil {
		config.Logger = DefaultBatchConfig().Logger
	}
	return &Pipeline{config: config}
}

// CleanAndSplit runs Clean and RecursiveCharacterSplitter over every
// document, processing documents in parallel, and returns all chunks in
// one flat slice ordered by source document: the chunks of docs[i] appear
// contiguously and before those of docs[i+1], no matter which worker
// finishes first. Input documents are never modified; each worker
// operates on its own copy, so repeated calls give stable results. The
// first failure aborts the batch and no partial results are returned.
func (p *Pipeline) CleanAndSplit(docs []*Document, chunkSize int) ([]*Document, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	batchID := uuid.NewString()
	start := time.Now()
	p.config.Logger.Info().
		Str("batch_id", batchID).
		Int("documents", len(docs)).
		Int("chunk_size", chunkSize).
		Int("workers", p.config.Workers).
		Msg("batch clean and split started")

	results := make([][]*Document, len(docs))
	var g errgroup.Group
	g.SetLimit(p.config.Workers)

	for i, doc := range docs {
		// Pre-Go-1.22 range variables are shared across iterations; copy
		// them so each worker closure sees its own document and index.
		i, doc := i, doc
		g.Go(func() error {
			if doc == nil {
				return fmt.Errorf("document %d is nil", i)
			}
			cleaned := doc.Clone()
			cleaned.Clean()
			chunks, err := cleaned.RecursiveCharacterSplitter(chunkSize)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			results[i] = chunks
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []*Document
	for _, chunks := range results {
		out = append(out, chunks...)
	}

	p.config.Logger.Info().
		Str("batch_id", batchID).
		Int("documents", len(docs)).
		Int("chunks", len(out)).
		Dur("duration", time.Since(start)).
		Msg("batch clean and split finished")

	return out, nil
}

// CleanAndSplitDocs cleans every document and splits it into overlapping
// chunks of at most chunkSize characters, processing documents in
// parallel with default configuration. See [Pipeline.CleanAndSplit] for
// the ordering and error contract.
func CleanAndSplitDocs(docs []*Document, chunkSize int) ([]*Document, error) {
	return NewPipeline().CleanAndSplit(docs, chunkSize)
}
