// Package taskq fans homogeneous jobs out to a fixed pool of worker
// goroutines.
package taskq

import "sync"

// Q carries items to a pool of workers all running the same function.
type Q[T any] struct {
	c      chan T
	wg     sync.WaitGroup
	worker func(T)
}

// New starts a pool of workers servicing a queue of the given depth.
func New[T any](workers, depth int, worker func(T)) *Q[T] {
	if worker == nil {
		panic("taskq: nil worker")
	}
	if workers <= 0 {
		panic("taskq: need at least one worker")
	}

	q := &Q[T]{
		c:      make(chan T, depth),
		worker: worker,
	}
	for n := 0; n < workers; n++ {
		go func() {
			for it := range q.c {
				q.run(it)
			}
		}()
	}
	return q
}

func (q *Q[T]) run(it T) {
	defer q.wg.Done()
	q.worker(it)
}

// Submit queues one item. Workers may submit follow-up items themselves,
// provided the queue depth covers every item outstanding at once: with the
// queue full and every worker blocked in Submit, the pool cannot drain.
func (q *Q[T]) Submit(it T) {
	q.wg.Add(1)
	q.c <- it
}

// Wait blocks until every submitted item has been worked.
func (q *Q[T]) Wait() {
	q.wg.Wait()
}

// Close releases the workers once the queue drains. Submit must not be
// called after Close.
func (q *Q[T]) Close() {
	close(q.c)
}
