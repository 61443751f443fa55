// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"runtime"
	"sync"

	"github.com/google/uuid"
)

// Result is the outcome of one job run by a Worker. Exactly one of Data and
// Err is set.
type Result struct {
	ID   uuid.UUID
	Data []byte
	Err  error
}

type job struct {
	id  uuid.UUID
	req Request
	out chan Result
}

// Worker runs generation jobs on background goroutines. Requests are handed
// over by value: the caller must not modify the channel arrays of a
// submitted request.
type Worker struct {
	jobs chan job
	done chan struct{}

	mtx    sync.RWMutex
	closed bool

	wg sync.WaitGroup
}

// NewWorker starts n goroutines. n < 1 uses GOMAXPROCS.
func NewWorker(n int) *Worker {
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}

	w := &Worker{
		jobs: make(chan job, n),
		done: make(chan struct{}),
	}

	w.wg.Add(n)
	for range n {
		go w.loop()
	}
	return w
}

// Submit queues req and returns a channel receiving its single Result. The
// channel is closed without a value when the worker shuts down before the
// job runs. There is no way to cancel a submitted job.
func (w *Worker) Submit(req Request) <-chan Result {
	j := job{id: uuid.New(), req: req, out: make(chan Result, 1)}

	w.mtx.RLock()
	defer w.mtx.RUnlock()

	if w.closed {
		close(j.out)
		return j.out
	}

	w.jobs <- j
	return j.out
}

// Close stops the worker and waits for running jobs. Queued jobs that
// have not started are dropped.
func (w *Worker) Close() {
	w.mtx.Lock()
	if w.closed {
		w.mtx.Unlock()
		return
	}
	w.closed = true
	close(w.done)
	w.mtx.Unlock()

	w.wg.Wait()
}

func (w *Worker) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			w.drain()
			return
		case j := <-w.jobs:
			// select picks at random when both are ready
			select {
			case <-w.done:
				close(j.out)
				w.drain()
				return
			default:
			}
			w.run(j)
		}
	}
}

func (w *Worker) drain() {
	for {
		select {
		case j := <-w.jobs:
			close(j.out)
		default:
			return
		}
	}
}

func (w *Worker) run(j job) {
	defer close(j.out)

	wf, err := generate(j.req)
	if err != nil {
		j.out <- Result{ID: j.id, Err: err}
		return
	}
	j.out <- Result{ID: j.id, Data: wf.data}
}
