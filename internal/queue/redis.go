package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kunle-oseni/resume-ingest/internal/common"
)

// dequeueBlock bounds each BRPOP so consumers notice shutdown promptly.
const dequeueBlock = 5 * time.Second

// RedisQueue backs the job queue with two Redis lists: the main queue and
// the dead-letter list. Enqueue is LPUSH, Dequeue is BRPOP.
type RedisQueue struct {
	client   *redis.Client
	queueKey string
	deadKey  string
	log      *slog.Logger
}

func NewRedisQueue(ctx context.Context, cfg common.RedisConfig, logger *slog.Logger) (*RedisQueue, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return &RedisQueue{
		client:   client,
		queueKey: cfg.QueueKey,
		deadKey:  cfg.DeadKey,
		log:      logger.With("queue", "redis", "key", cfg.QueueKey),
	}, nil
}

func (q *RedisQueue) Enqueue(ctx context.Context, job Job) error {
	if err := job.Validate(); err != nil {
		return err
	}
	if job.EnqueuedAt.IsZero() {
		job.EnqueuedAt = time.Now().UTC()
	}
	payload, err := job.Marshal()
	if err != nil {
		return fmt.Errorf("encode job payload: %w", err)
	}
	if err := q.client.LPush(ctx, q.queueKey, payload).Err(); err != nil {
		return fmt.Errorf("lpush %s: %w", q.queueKey, err)
	}
	q.log.Debug("queue.enqueue",
		"user_id", job.UserID, "document_ref", job.DocumentRef, "attempts", job.Attempts)
	return nil
}

func (q *RedisQueue) Dequeue(ctx context.Context) (Job, error) {
	res, err := q.client.BRPop(ctx, dequeueBlock, q.queueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Job{}, ErrEmpty
		}
		if errors.Is(err, redis.ErrClosed) {
			return Job{}, ErrClosed
		}
		return Job{}, fmt.Errorf("brpop %s: %w", q.queueKey, err)
	}
	// BRPOP returns [key, value]
	if len(res) != 2 {
		return Job{}, fmt.Errorf("brpop %s: unexpected reply length %d", q.queueKey, len(res))
	}

	job, err := UnmarshalJob([]byte(res[1]))
	if err != nil {
		// The payload is already off the main list; park it on the
		// dead-letter list verbatim so it can be inspected.
		if derr := q.client.LPush(ctx, q.deadKey, res[1]).Err(); derr != nil {
			q.log.Error("queue.dead_letter_push_failed", "error", derr)
		}
		q.log.Warn("queue.malformed_payload", "error", err)
		return Job{}, ErrEmpty
	}
	return job, nil
}

func (q *RedisQueue) PushDead(ctx context.Context, job Job) error {
	payload, err := job.Marshal()
	if err != nil {
		return fmt.Errorf("encode dead job payload: %w", err)
	}
	if err := q.client.LPush(ctx, q.deadKey, payload).Err(); err != nil {
		return fmt.Errorf("lpush %s: %w", q.deadKey, err)
	}
	q.log.Warn("queue.dead_letter",
		"user_id", job.UserID, "document_ref", job.DocumentRef, "attempts", job.Attempts)
	return nil
}

func (q *RedisQueue) Close() error {
	return q.client.Close()
}
