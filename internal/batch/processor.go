package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Default batch processing configuration.
const (
	// DefaultBatchSize is the default number of items per batch.
	DefaultBatchSize = 50

	// MinBatchSize is the minimum allowed batch size.
	MinBatchSize = 1

	// MaxBatchSize is the maximum allowed batch size.
	MaxBatchSize = 1000

	// DefaultConcurrency is the batch concurrency used by Map when the
	// caller passes a non-positive limit.
	DefaultConcurrency = 4
)

// Common batch processing errors.
var (
	ErrInvalidBatchSize = errors.New("batch size must be between 1 and 1000")
	ErrNilCallback      = errors.New("batch callback cannot be nil")
)

// Callback processes one batch. offset is the index of batch[0] within the
// full item slice.
type Callback[T any] func(ctx context.Context, batch []T, offset int) error

// ProgressCallback is invoked after each batch completes.
type ProgressCallback func(snapshot ProgressSnapshot)

// Processor splits items into fixed-size batches and runs a callback on
// each, sequentially or with bounded concurrency.
type Processor[T any] struct {
	batchSize  int
	onProgress ProgressCallback

	// mu serializes progress callbacks.
	mu sync.Mutex
}

// NewProcessor creates a processor with the given batch size.
func NewProcessor[T any](batchSize int) (*Processor[T], error) {
	if batchSize < MinBatchSize || batchSize > MaxBatchSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}
	return &Processor[T]{batchSize: batchSize}, nil
}

// NewProcessorWithDefaults creates a processor with DefaultBatchSize.
func NewProcessorWithDefaults[T any]() *Processor[T] {
	return &Processor[T]{batchSize: DefaultBatchSize}
}

// WithProgressCallback sets a progress callback for the processor.
func (p *Processor[T]) WithProgressCallback(callback ProgressCallback) *Processor[T] {
	p.onProgress = callback
	return p
}

// BatchSize returns the configured batch size.
func (p *Processor[T]) BatchSize() int {
	return p.batchSize
}

// Process runs callback over each batch in order, stopping at the first
// error. An empty slice is a no-op.
func (p *Processor[T]) Process(ctx context.Context, items []T, callback Callback[T]) error {
	if callback == nil {
		return ErrNilCallback
	}

	bounds := p.Bounds(len(items))
	progress := NewProgress(len(items), len(bounds), p.batchSize)

	for i, b := range bounds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := callback(ctx, items[b[0]:b[1]], b[0]); err != nil {
			return fmt.Errorf("batch %d failed: %w", i, err)
		}
		p.report(progress, b[1]-b[0])
	}
	return nil
}

// ProcessConcurrent runs callback over batches with at most maxConcurrency
// in flight. The first error cancels the remaining batches and is returned.
func (p *Processor[T]) ProcessConcurrent(
	ctx context.Context,
	items []T,
	callback Callback[T],
	maxConcurrency int,
) error {
	if callback == nil {
		return ErrNilCallback
	}
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	bounds := p.Bounds(len(items))
	progress := NewProgress(len(items), len(bounds), p.batchSize)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	for i, b := range bounds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := callback(gctx, items[b[0]:b[1]], b[0]); err != nil {
				return fmt.Errorf("batch %d failed: %w", i, err)
			}
			p.report(progress, b[1]-b[0])
			return nil
		})
	}

	return g.Wait()
}

// Bounds returns the [start, end) index pairs of each batch.
func (p *Processor[T]) Bounds(totalItems int) [][2]int {
	if totalItems <= 0 {
		return nil
	}
	n := (totalItems + p.batchSize - 1) / p.batchSize
	bounds := make([][2]int, n)
	for i := range n {
		start := i * p.batchSize
		bounds[i] = [2]int{start, min(start+p.batchSize, totalItems)}
	}
	return bounds
}

func (p *Processor[T]) report(progress *Progress, processed int) {
	progress.AddProcessed(processed)
	if p.onProgress == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onProgress(progress.Snapshot())
}

// Map applies fn to every item using a processor of the given batch size
// and returns the results in input order. Batches run concurrently up to
// maxConcurrency (DefaultConcurrency when non-positive).
func Map[T, R any](
	ctx context.Context,
	p *Processor[T],
	items []T,
	maxConcurrency int,
	fn func(ctx context.Context, item T) (R, error),
) ([]R, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultConcurrency
	}

	out := make([]R, len(items))
	err := p.ProcessConcurrent(ctx, items, func(ctx context.Context, batch []T, offset int) error {
		for i, item := range batch {
			r, err := fn(ctx, item)
			if err != nil {
				return err
			}
			out[offset+i] = r
		}
		return nil
	}, maxConcurrency)
	if err != nil {
		return nil, err
	}
	return out, nil
}
