package queue

import (
	"context"
	"sync"
	"time"
)

const defaultMemoryCapacity = 256

// MemoryQueue is a channel-backed Queue for local runs and tests. It honors
// the same contract as the Redis queue, including the bounded Dequeue poll.
type MemoryQueue struct {
	jobs chan Job
	dead chan Job

	closeOnce sync.Once
	done      chan struct{}
}

func NewMemoryQueue(capacity int) *MemoryQueue {
	if capacity <= 0 {
		capacity = defaultMemoryCapacity
	}
	return &MemoryQueue{
		jobs: make(chan Job, capacity),
		dead: make(chan Job, capacity),
		done: make(chan struct{}),
	}
}

func (q *MemoryQueue) Enqueue(ctx context.Context, job Job) error {
	if err := job.Validate(); err != nil {
		return err
	}
	if job.EnqueuedAt.IsZero() {
		job.EnqueuedAt = time.Now().UTC()
	}
	select {
	case q.jobs <- job:
		return nil
	case <-q.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryQueue) Dequeue(ctx context.Context) (Job, error) {
	timer := time.NewTimer(dequeueBlock)
	defer timer.Stop()
	select {
	case job := <-q.jobs:
		return job, nil
	case <-timer.C:
		return Job{}, ErrEmpty
	case <-q.done:
		return Job{}, ErrClosed
	case <-ctx.Done():
		return Job{}, ctx.Err()
	}
}

func (q *MemoryQueue) PushDead(ctx context.Context, job Job) error {
	select {
	case q.dead <- job:
		return nil
	case <-q.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dead drains and returns the dead-letter list accumulated so far.
func (q *MemoryQueue) Dead() []Job {
	var out []Job
	for {
		select {
		case job := <-q.dead:
			out = append(out, job)
		default:
			return out
		}
	}
}

// Len reports the number of jobs currently waiting.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}

func (q *MemoryQueue) Close() error {
	q.closeOnce.Do(func() { close(q.done) })
	return nil
}
