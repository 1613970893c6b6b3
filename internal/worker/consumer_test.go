package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunle-oseni/resume-ingest/internal/common"
	"github.com/kunle-oseni/resume-ingest/internal/queue"
)

type stubProcessor struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *stubProcessor) Process(ctx context.Context, job queue.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *stubProcessor) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func waitDead(t *testing.T, q *queue.MemoryQueue, n int) []queue.Job {
	t.Helper()
	var dead []queue.Job
	require.Eventually(t, func() bool {
		dead = append(dead, q.Dead()...)
		return len(dead) >= n
	}, 10*time.Second, 20*time.Millisecond)
	return dead
}

func startConsumer(t *testing.T, q *queue.MemoryQueue, proc Processor) *Consumer {
	t.Helper()
	c := NewConsumer(q, proc, slog.Default(),
		WithWorkers(2),
		WithProcessTimeout(time.Second),
		WithMaxAttempts(3),
	)
	c.Start(context.Background())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		c.Shutdown(ctx)
	})
	return c
}

func TestConsumerProcessesJobOnce(t *testing.T) {
	q := queue.NewMemoryQueue(8)
	defer q.Close()
	proc := &stubProcessor{}
	startConsumer(t, q, proc)

	job := queue.Job{UserID: uuid.New(), DocumentRef: "resumes/jane.pdf"}
	require.NoError(t, q.Enqueue(context.Background(), job))

	require.Eventually(t, func() bool { return proc.count() == 1 }, 5*time.Second, 20*time.Millisecond)

	// no retries, nothing dead-lettered
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, proc.count())
	assert.Empty(t, q.Dead())
}

func TestConsumerRetriesThenDeadLetters(t *testing.T) {
	q := queue.NewMemoryQueue(8)
	defer q.Close()
	proc := &stubProcessor{err: fmt.Errorf("%w: transient upstream", common.ErrExtraction)}
	startConsumer(t, q, proc)

	job := queue.Job{UserID: uuid.New(), DocumentRef: "resumes/jane.pdf"}
	require.NoError(t, q.Enqueue(context.Background(), job))

	dead := waitDead(t, q, 1)
	require.Len(t, dead, 1)
	assert.Equal(t, 3, dead[0].Attempts)
	assert.Equal(t, job.DocumentRef, dead[0].DocumentRef)
	assert.Equal(t, 3, proc.count())
}

// A permanent error gets the same attempt budget as a transient one: the
// pipeline cannot always tell them apart, so the job is delivered until the
// bound exhausts it into the dead-letter list.
func TestConsumerPermanentFailureExhaustsAttempts(t *testing.T) {
	q := queue.NewMemoryQueue(8)
	defer q.Close()
	proc := &stubProcessor{err: fmt.Errorf("%w: 404", common.ErrUserNotFound)}
	startConsumer(t, q, proc)

	job := queue.Job{UserID: uuid.New(), DocumentRef: "resumes/jane.pdf"}
	require.NoError(t, q.Enqueue(context.Background(), job))

	dead := waitDead(t, q, 1)
	require.Len(t, dead, 1)
	assert.Equal(t, 3, dead[0].Attempts)
	assert.Equal(t, job.DocumentRef, dead[0].DocumentRef)
	assert.Equal(t, 3, proc.count())
}
