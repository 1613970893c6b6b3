package server

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kunle-oseni/resume-ingest/constants"
	ingestpb "github.com/kunle-oseni/resume-ingest/gen/proto/ingest/v1"
	"github.com/kunle-oseni/resume-ingest/internal/queue"
	"github.com/kunle-oseni/resume-ingest/internal/repository"
	"github.com/kunle-oseni/resume-ingest/internal/testutil"
)

func newTestServer(t *testing.T) (*IngestionServer, *queue.MemoryQueue, uuid.UUID) {
	t.Helper()
	client := testutil.OpenEnt(t)
	logger := slog.Default()

	u, err := client.User.Create().SetEmail("jane.doe@example.com").Save(context.Background())
	require.NoError(t, err)

	q := queue.NewMemoryQueue(8)
	t.Cleanup(func() { _ = q.Close() })

	srv := NewIngestionServer(q,
		repository.NewUserRepository(client, logger),
		repository.NewReadinessRepository(client, logger),
		logger)
	return srv, q, u.ID
}

func TestEnqueueResume(t *testing.T) {
	srv, q, userID := newTestServer(t)

	resp, err := srv.EnqueueResume(context.Background(), &ingestpb.EnqueueResumeRequest{
		UserId:      userID.String(),
		DocumentRef: "resumes/r1.pdf",
	})
	require.NoError(t, err)
	assert.True(t, resp.GetEnqueued())

	job, err := q.Dequeue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, userID, job.UserID)
	assert.Equal(t, "resumes/r1.pdf", job.DocumentRef)
	assert.Equal(t, 0, job.Attempts)
}

func TestEnqueueResumeValidation(t *testing.T) {
	srv, _, userID := newTestServer(t)
	ctx := context.Background()

	_, err := srv.EnqueueResume(ctx, &ingestpb.EnqueueResumeRequest{UserId: "not-a-uuid", DocumentRef: "r1.pdf"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = srv.EnqueueResume(ctx, &ingestpb.EnqueueResumeRequest{UserId: userID.String()})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = srv.EnqueueResume(ctx, &ingestpb.EnqueueResumeRequest{UserId: userID.String(), DocumentRef: "r1.exe"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = srv.EnqueueResume(ctx, &ingestpb.EnqueueResumeRequest{UserId: uuid.NewString(), DocumentRef: "r1.pdf"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGetReadinessDefaultsToIncomplete(t *testing.T) {
	srv, _, userID := newTestServer(t)

	resp, err := srv.GetReadiness(context.Background(), &ingestpb.GetReadinessRequest{UserId: userID.String()})
	require.NoError(t, err)
	assert.Equal(t, string(constants.ReadinessIncomplete), resp.GetStatus())
}
