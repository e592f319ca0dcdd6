// Package worker provides a worker pool for evaluating move queries in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/VrushabBayas/chessboard/internal/query"
)

// WorkItem represents a query to be evaluated.
type WorkItem struct {
	Query query.Query
	Index int // Original index for re-ordering
}

// ProcessResult represents the result of evaluating a query.
type ProcessResult struct {
	Result query.Result
	Index  int
}

// Evaluate runs the item's query through the dispatch facade.
func Evaluate(item WorkItem) ProcessResult {
	return ProcessResult{Result: query.Evaluate(item.Query), Index: item.Index}
}

// Pool manages a pool of workers for parallel query evaluation.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan WorkItem
	resultChan chan ProcessResult
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- Evaluate(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// EvaluateAll evaluates queries on a fresh pool and returns the results
// in input order. When ctx is cancelled before every query is answered the
// pool is stopped, unanswered entries are left zero and ctx.Err() is
// returned.
func EvaluateAll(ctx context.Context, queries []query.Query, opts ...PoolOption) ([]query.Result, error) {
	p := NewPool(opts...)
	if ctx.Err() != nil {
		p.Stop()
	}
	stop := context.AfterFunc(ctx, p.Stop)
	defer stop()
	p.Start()

	go func() {
		defer p.Close()
		for i, q := range queries {
			if p.IsStopped() {
				return
			}
			p.Submit(WorkItem{Query: q, Index: i})
		}
	}()

	results := make([]query.Result, len(queries))
	answered := 0
	for r := range p.Results() {
		results[r.Index] = r.Result
		answered++
	}
	if answered < len(queries) {
		return results, ctx.Err()
	}
	return results, nil
}
