// Package server exposes the ingestion surface over gRPC.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kunle-oseni/resume-ingest/constants"
	ingestpb "github.com/kunle-oseni/resume-ingest/gen/proto/ingest/v1"
	"github.com/kunle-oseni/resume-ingest/internal/common"
	"github.com/kunle-oseni/resume-ingest/internal/queue"
	"github.com/kunle-oseni/resume-ingest/internal/repository"
)

type IngestionServer struct {
	ingestpb.UnimplementedIngestionServiceServer
	q         queue.Queue
	users     repository.UserRepository
	readiness repository.ReadinessRepository
	logger    *slog.Logger
}

func NewIngestionServer(
	q queue.Queue,
	users repository.UserRepository,
	readiness repository.ReadinessRepository,
	logger *slog.Logger,
) *IngestionServer {
	return &IngestionServer{
		q:         q,
		users:     users,
		readiness: readiness,
		logger:    logger,
	}
}

// EnqueueResume validates the request against the user table and pushes a
// fresh job onto the queue. Processing is asynchronous; callers poll
// GetReadiness for the outcome.
func (s *IngestionServer) EnqueueResume(ctx context.Context, req *ingestpb.EnqueueResumeRequest) (*ingestpb.EnqueueResumeResponse, error) {
	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, common.InvalidArgumentError("user_id must be a valid UUID")
	}
	if req.GetDocumentRef() == "" {
		return nil, common.InvalidArgumentError("document_ref is required")
	}
	ext := constants.NormalizeExt(filepath.Ext(req.GetDocumentRef()))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, common.InvalidArgumentError(
			"document_ref must point to one of: " + strings.Join(constants.DocumentFormats, ", "))
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		s.logger.Error("enqueue.user_lookup_failed", "user_id", userID, "error", err)
		return nil, common.InternalError("user lookup failed")
	}
	if !exists {
		return nil, common.NotFoundError(fmt.Sprintf("user %s not found", userID))
	}

	job := queue.Job{UserID: userID, DocumentRef: req.GetDocumentRef()}
	if err := s.q.Enqueue(ctx, job); err != nil {
		s.logger.Error("enqueue.failed", "user_id", userID, "document_ref", req.GetDocumentRef(), "error", err)
		return nil, common.InternalError("enqueue failed")
	}

	s.logger.Info("enqueue.accepted", "user_id", userID, "document_ref", req.GetDocumentRef())
	return &ingestpb.EnqueueResumeResponse{Enqueued: true}, nil
}

func (s *IngestionServer) GetReadiness(ctx context.Context, req *ingestpb.GetReadinessRequest) (*ingestpb.GetReadinessResponse, error) {
	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, common.InvalidArgumentError("user_id must be a valid UUID")
	}

	st, err := s.readiness.StatusForUser(ctx, userID)
	if err != nil {
		s.logger.Error("readiness.lookup_failed", "user_id", userID, "error", err)
		return nil, common.InternalError("readiness lookup failed")
	}
	return &ingestpb.GetReadinessResponse{Status: string(st)}, nil
}
