// Package queue defines the résumé ingestion job queue: producers enqueue
// jobs, the consumer pool dequeues them, and jobs that exhaust their retry
// budget are pushed to a dead-letter list for manual inspection.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Job is one unit of ingestion work. Attempts counts deliveries so far and
// travels inside the payload; a re-enqueued retry carries attempts+1.
type Job struct {
	UserID      uuid.UUID `json:"user_id"`
	DocumentRef string    `json:"document_ref"`
	Attempts    int       `json:"attempts"`
	EnqueuedAt  time.Time `json:"enqueued_at"`
}

func (j Job) Validate() error {
	if j.UserID == uuid.Nil {
		return fmt.Errorf("job user_id is required")
	}
	if j.DocumentRef == "" {
		return fmt.Errorf("job document_ref is required")
	}
	return nil
}

func (j Job) Marshal() ([]byte, error) {
	return json.Marshal(j)
}

func UnmarshalJob(data []byte) (Job, error) {
	var j Job
	if err := json.Unmarshal(data, &j); err != nil {
		return Job{}, fmt.Errorf("decode job payload: %w", err)
	}
	if err := j.Validate(); err != nil {
		return Job{}, err
	}
	return j, nil
}

// ErrEmpty is returned by Dequeue when no job arrived within the poll
// window. Callers should loop.
var ErrEmpty = errors.New("queue is empty")

// ErrClosed is returned once the queue is shut down.
var ErrClosed = errors.New("queue is closed")

// Queue is the job transport contract. Dequeue blocks up to an
// implementation-defined poll window and returns ErrEmpty on expiry.
type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Dequeue(ctx context.Context) (Job, error)
	PushDead(ctx context.Context, job Job) error
	Close() error
}
