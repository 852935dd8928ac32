// Package worker replays move scripts in parallel.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-arbiter-go/internal/parser"
	"github.com/lgbarn/chess-arbiter-go/internal/processing"
)

// WorkItem is a script waiting to be replayed.
type WorkItem struct {
	Script *parser.Script
	Index  int // position in the input, used to restore order
}

// ProcessResult is the outcome of replaying one script.
type ProcessResult struct {
	Script *parser.Script
	Index  int
	Replay *processing.Replay // nil when Error is set before replay started
	Error  error
}

// ProcessFunc handles a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// ReplayFunc adapts a Replayer to a ProcessFunc.
func ReplayFunc(r *processing.Replayer) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		replay, err := r.Replay(item.Script)
		return ProcessResult{
			Script: item.Script,
			Index:  item.Index,
			Replay: replay,
			Error:  err,
		}
	}
}

// Pool runs a fixed number of workers over a shared queue.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
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

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a new worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
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
			continue // drain without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new items.
// Items already queued are drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once every worker has returned.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, feeds it scripts and returns the results in input
// order. Cancelling ctx stops the pool; results for scripts not yet
// replayed are then missing and ctx.Err() is returned.
func (p *Pool) Run(ctx context.Context, scripts []*parser.Script) ([]ProcessResult, error) {
	p.Start()

	go func() {
		defer p.Close()
		for i, s := range scripts {
			select {
			case <-ctx.Done():
				p.Stop()
				return
			case p.workChan <- WorkItem{Script: s, Index: i}:
			}
		}
	}()

	results := make([]ProcessResult, 0, len(scripts))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	return results, ctx.Err()
}
