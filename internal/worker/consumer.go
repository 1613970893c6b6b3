// Package worker runs the fixed-size consumer pool and the retry policy.
// Each job runs to completion on one worker; there is no intra-job
// parallelism.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/kunle-oseni/resume-ingest/internal/common"
	"github.com/kunle-oseni/resume-ingest/internal/queue"
)

// Processor runs one dequeued job end to end.
type Processor interface {
	Process(ctx context.Context, job queue.Job) error
}

type Consumer struct {
	q       queue.Queue
	proc    Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration
	maxTry  int

	wg       sync.WaitGroup
	once     sync.Once
	stopOnce sync.Once
	stop     chan struct{}
}

type Option func(*Consumer)

func WithWorkers(n int) Option {
	return func(c *Consumer) {
		if n > 0 {
			c.workers = n
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(c *Consumer) {
		if d > 0 {
			c.timeout = d
		}
	}
}
func WithMaxAttempts(n int) Option {
	return func(c *Consumer) {
		if n > 0 {
			c.maxTry = n
		}
	}
}

func NewConsumer(q queue.Queue, proc Processor, logger *slog.Logger, opts ...Option) *Consumer {
	c := &Consumer{
		q:       q,
		proc:    proc,
		logger:  logger,
		workers: 3,
		timeout: 3 * time.Minute,
		maxTry:  3,
		stop:    make(chan struct{}),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Start launches the worker pool. Workers poll the queue until Shutdown.
func (c *Consumer) Start(ctx context.Context) {
	c.once.Do(func() {
		for i := 0; i < c.workers; i++ {
			c.wg.Add(1)
			go func(workerID int) {
				defer c.wg.Done()
				c.logger.Info("worker started", "worker_id", workerID)
				c.run(ctx, workerID)
				c.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (c *Consumer) run(ctx context.Context, workerID int) {
	for {
		select {
		case <-c.stop:
			return
		case <-ctx.Done():
			return
		default:
		}

		job, err := c.q.Dequeue(ctx)
		if err != nil {
			switch {
			case errors.Is(err, queue.ErrEmpty):
				continue
			case errors.Is(err, queue.ErrClosed), errors.Is(err, context.Canceled):
				return
			default:
				c.logger.Error("dequeue failed", "worker_id", workerID, "error", err)
				continue
			}
		}
		c.handle(ctx, workerID, job)
	}
}

// handle runs one job with a per-job timeout and applies the retry policy:
// every failure re-enqueues with attempts+1 until the budget is spent, then
// the job is pushed to the dead-letter list exactly once. Permanent errors
// get the same budget; the classification is logged for operators but the
// pipeline cannot always distinguish reliably, so it never short-circuits.
func (c *Consumer) handle(ctx context.Context, workerID int, job queue.Job) {
	jobCtx := common.WithRequestID(ctx, uuid.NewString())
	jobCtx = common.WithUserID(jobCtx, job.UserID.String())
	jobCtx, cancel := common.WithTimeout(jobCtx, c.timeout)
	err := c.proc.Process(jobCtx, job)
	cancel()

	if err == nil {
		return
	}

	delivered := job.Attempts + 1
	if delivered >= c.maxTry {
		c.logger.Error("job exhausted retry budget", "worker_id", workerID,
			"user_id", job.UserID, "document_ref", job.DocumentRef,
			"attempts", delivered, "retryable", common.Retryable(err), "error", err)
		c.bury(ctx, job, delivered)
		return
	}

	retry := job
	retry.Attempts = delivered
	if err := c.q.Enqueue(ctx, retry); err != nil {
		c.logger.Error("re-enqueue failed, dead-lettering instead", "worker_id", workerID,
			"user_id", job.UserID, "document_ref", job.DocumentRef, "error", err)
		c.bury(ctx, job, delivered)
		return
	}
	c.logger.Warn("job scheduled for retry", "worker_id", workerID,
		"user_id", job.UserID, "document_ref", job.DocumentRef,
		"attempts", delivered, "retryable", common.Retryable(err), "error", err)
}

func (c *Consumer) bury(ctx context.Context, job queue.Job, delivered int) {
	dead := job
	dead.Attempts = delivered
	if err := c.q.PushDead(ctx, dead); err != nil {
		c.logger.Error("dead-letter push failed", "user_id", job.UserID,
			"document_ref", job.DocumentRef, "error", err)
	}
}

// Shutdown stops the pool and waits for in-flight jobs, bounded by ctx.
func (c *Consumer) Shutdown(ctx context.Context) {
	c.stopOnce.Do(func() { close(c.stop) })

	done := make(chan struct{})
	go func() { defer close(done); c.wg.Wait() }()

	select {
	case <-ctx.Done():
		c.logger.Warn("shutdown interrupted by context")
	case <-done:
		c.logger.Info("consumer drained, shutdown complete")
	}
}
