// Package queue serializes external geocoder lookups. At most one task is
// active at any time and a fixed minimum delay elapses after a task settles
// before the next one starts, to stay under third-party rate limits.
package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jbnu-feel/feelgeo/internal/models"
)

// ErrShutDown is returned to enqueued tasks when the queue stops before
// they were executed.
var ErrShutDown = errors.New("queue is shut down")

// TaskFunc performs a single external lookup.
type TaskFunc func(ctx context.Context) (*models.Coordinates, error)

// Outcome is the settled result of a task.
type Outcome struct {
	Coords *models.Coordinates // Coords is the lookup result, nil when unknown.
	Err    error               // Err is the lookup failure, if any.
}

type task struct {
	fn   TaskFunc
	done chan Outcome
}

// Queue executes tasks strictly one at a time in FIFO arrival order.
// Construct with New and start the dispatcher with Run; the queue has an
// explicit lifecycle tied to the application context.
type Queue struct {
	interval time.Duration

	mu     sync.Mutex
	tasks  []*task
	closed bool

	wake chan struct{}
}

// New creates a Queue with the given minimum inter-task delay.
func New(interval time.Duration) *Queue {
	return &Queue{
		interval: interval,
		wake:     make(chan struct{}, 1),
	}
}

// Enqueue appends a task and returns a channel that yields its outcome
// once it has been executed. Tasks cannot be cancelled after enqueueing;
// a caller that loses interest simply ignores the channel.
func (q *Queue) Enqueue(fn TaskFunc) <-chan Outcome {
	t := &task{fn: fn, done: make(chan Outcome, 1)}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		t.done <- Outcome{Err: ErrShutDown}
		return t.done
	}
	q.tasks = append(q.tasks, t)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}

	return t.done
}

// Len returns the number of tasks waiting for execution.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Run dispatches tasks until the context is cancelled. Exactly one task is
// in flight at any time; after a task settles, Run waits the configured
// interval before starting the next one. On cancellation all remaining
// tasks settle with ErrShutDown.
func (q *Queue) Run(ctx context.Context) {
	for {
		t := q.pop()
		if t == nil {
			select {
			case <-ctx.Done():
				q.shutdown()
				return
			case <-q.wake:
			}
			continue
		}

		coords, err := t.fn(ctx)
		t.done <- Outcome{Coords: coords, Err: err}

		timer := time.NewTimer(q.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			q.shutdown()
			return
		case <-timer.C:
		}
	}
}

// pop removes and returns the oldest waiting task, or nil.
func (q *Queue) pop() *task {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		return nil
	}
	t := q.tasks[0]
	q.tasks = q.tasks[1:]
	return t
}

// shutdown marks the queue closed and settles all waiting tasks.
func (q *Queue) shutdown() {
	q.mu.Lock()
	pending := q.tasks
	q.tasks = nil
	q.closed = true
	q.mu.Unlock()

	for _, t := range pending {
		t.done <- Outcome{Err: ErrShutDown}
	}
}
