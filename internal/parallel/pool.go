// Package parallel provides the fork-join worker pool used by the
// renderer to fill disjoint row bands of a framebuffer concurrently.
//
// Render bands are uniform-cost enough that a single shared queue keeps
// all workers busy; there is no work stealing. Each task writes only
// its own slice of the target, so ExecuteAll needs no synchronization
// beyond the completion join.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size pool of worker goroutines executing submitted
// tasks from a shared queue.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	tasks   chan task
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// task pairs a work function with the WaitGroup tracking its batch.
type task struct {
	fn    func()
	batch *sync.WaitGroup
}

// New creates a pool with the given number of workers and starts them.
// If workers is zero or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan task, workers*2),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop of each worker goroutine.
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			// Drain queued tasks so ExecuteAll callers are never left
			// waiting on a batch.
			for {
				select {
				case t := <-p.tasks:
					t.run()
				default:
					return
				}
			}
		case t := <-p.tasks:
			t.run()
		}
	}
}

func (t task) run() {
	defer t.batch.Done()
	t.fn()
}

// ExecuteAll runs every function in work on the pool and blocks until
// all of them have completed. If the pool has been closed, the work is
// executed inline on the calling goroutine instead of being dropped.
func (p *Pool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var batch sync.WaitGroup
	batch.Add(len(work))

	for _, fn := range work {
		t := task{fn: fn, batch: &batch}
		select {
		case p.tasks <- t:
		case <-p.done:
			t.run()
		}
	}

	batch.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// Close stops the workers after draining queued tasks. Close is safe to
// call multiple times; after Close, ExecuteAll degrades to inline
// execution.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}
