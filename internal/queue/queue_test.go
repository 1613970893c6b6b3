package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobValidate(t *testing.T) {
	valid := Job{UserID: uuid.New(), DocumentRef: "resumes/jane.pdf"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, Job{DocumentRef: "resumes/jane.pdf"}.Validate())
	assert.Error(t, Job{UserID: uuid.New()}.Validate())
}

func TestJobPayloadRoundTrip(t *testing.T) {
	in := Job{UserID: uuid.New(), DocumentRef: "resumes/jane.pdf", Attempts: 2, EnqueuedAt: time.Now().UTC().Truncate(time.Second)}
	payload, err := in.Marshal()
	require.NoError(t, err)

	out, err := UnmarshalJob(payload)
	require.NoError(t, err)
	assert.Equal(t, in.UserID, out.UserID)
	assert.Equal(t, in.DocumentRef, out.DocumentRef)
	assert.Equal(t, 2, out.Attempts)
}

func TestUnmarshalJobRejectsInvalidPayload(t *testing.T) {
	_, err := UnmarshalJob([]byte(`{"document_ref": ""}`))
	assert.Error(t, err)

	_, err = UnmarshalJob([]byte(`not json`))
	assert.Error(t, err)
}

func TestMemoryQueueFIFO(t *testing.T) {
	q := NewMemoryQueue(8)
	defer q.Close()
	ctx := context.Background()

	first := Job{UserID: uuid.New(), DocumentRef: "a.pdf"}
	second := Job{UserID: uuid.New(), DocumentRef: "b.pdf"}
	require.NoError(t, q.Enqueue(ctx, first))
	require.NoError(t, q.Enqueue(ctx, second))

	got, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.DocumentRef, got.DocumentRef)
	assert.False(t, got.EnqueuedAt.IsZero())

	got, err = q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.DocumentRef, got.DocumentRef)
}

func TestMemoryQueueClose(t *testing.T) {
	q := NewMemoryQueue(1)
	require.NoError(t, q.Close())
	require.NoError(t, q.Close()) // idempotent

	_, err := q.Dequeue(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, q.Enqueue(context.Background(), Job{UserID: uuid.New(), DocumentRef: "a.pdf"}), ErrClosed)
}

func TestMemoryQueueDeadLetter(t *testing.T) {
	q := NewMemoryQueue(8)
	defer q.Close()

	job := Job{UserID: uuid.New(), DocumentRef: "a.pdf", Attempts: 3}
	require.NoError(t, q.PushDead(context.Background(), job))

	dead := q.Dead()
	require.Len(t, dead, 1)
	assert.Equal(t, 3, dead[0].Attempts)
}
