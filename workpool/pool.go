package workpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Task is a unit of queued work. Tasks carry no arguments and report no
// result; anything they produce is written through captured references.
type Task func()

// Pool is a fixed-size worker pool over a mutex-guarded FIFO queue.
//
// A task counts as outstanding from Submit until the moment it returns,
// so IsWorking only reports false once every submitted task has fully
// completed, not merely been dequeued. Tasks may Submit further tasks.
//
// The zero value is not usable; construct with New.
type Pool struct {
	mu    sync.Mutex
	queue []Task
	head  int

	outstanding atomic.Int64
	done        atomic.Bool
	wg          sync.WaitGroup
	workers     int
}

// New constructs a Pool with the given number of worker goroutines.
// workers <= 0 selects NumCPU−1, minimum 1.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU() - 1
		if workers < 1 {
			workers = 1
		}
	}
	p := &Pool{workers: workers}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// Submit enqueues t. It never blocks.
func (p *Pool) Submit(t Task) {
	p.mu.Lock()
	p.queue = append(p.queue, t)
	p.mu.Unlock()
	p.outstanding.Add(1)
}

// QueueLen reports how many tasks are queued but not yet started.
func (p *Pool) QueueLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue) - p.head
}

// RunOne pops and runs a single queued task on the calling goroutine,
// returning true if a task ran. With an empty queue it yields the
// processor and returns false, so callers can spin politely.
func (p *Pool) RunOne() bool {
	p.mu.Lock()
	if p.head == len(p.queue) {
		p.mu.Unlock()
		runtime.Gosched()
		return false
	}
	t := p.queue[p.head]
	p.queue[p.head] = nil
	p.head++
	if p.head == len(p.queue) {
		p.queue = p.queue[:0]
		p.head = 0
	}
	p.mu.Unlock()

	t()
	p.outstanding.Add(-1)
	return true
}

// IsWorking reports whether any submitted task has not yet completed.
func (p *Pool) IsWorking() bool { return p.outstanding.Load() != 0 }

// Drain runs queued tasks on the calling goroutine until every submitted
// task — including tasks submitted while draining — has completed. The
// caller helps the workers rather than blocking on them, which is what
// makes recursive submission from inside tasks safe.
func (p *Pool) Drain() {
	for p.IsWorking() {
		p.RunOne()
	}
}

// Close stops the workers and waits for them to exit. Queued tasks that
// never ran are dropped; call Drain first when completion matters.
func (p *Pool) Close() {
	p.done.Store(true)
	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for !p.done.Load() {
		p.RunOne()
	}
}
