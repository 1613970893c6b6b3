// Package pipeline runs one ingestion job end to end: fetch the document,
// extract its text, structure the text, and commit the result.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/kunle-oseni/resume-ingest/internal/common"
	"github.com/kunle-oseni/resume-ingest/internal/extract"
	"github.com/kunle-oseni/resume-ingest/internal/queue"
	"github.com/kunle-oseni/resume-ingest/internal/repository"
	"github.com/kunle-oseni/resume-ingest/internal/resume"
	"github.com/kunle-oseni/resume-ingest/internal/storage"
)

type Processor struct {
	store     storage.ObjectStore
	text      extract.TextExtractor
	extractor resume.Extractor
	ingester  *repository.Ingester
	logger    *slog.Logger
}

func NewProcessor(
	store storage.ObjectStore,
	text extract.TextExtractor,
	extractor resume.Extractor,
	ingester *repository.Ingester,
	logger *slog.Logger,
) *Processor {
	return &Processor{
		store:     store,
		text:      text,
		extractor: extractor,
		ingester:  ingester,
		logger:    logger,
	}
}

// Process runs every stage for one job. Stage errors carry the pipeline
// error taxonomy so the caller can decide between retry and dead-letter.
func (p *Processor) Process(ctx context.Context, job queue.Job) error {
	start := time.Now()
	log := p.logger.With(
		"request_id", common.RequestIDFromContext(ctx),
		"user_id", job.UserID,
		"document_ref", job.DocumentRef,
		"attempts", job.Attempts)
	log.Info("pipeline.job.start")

	data, err := p.store.Get(ctx, job.DocumentRef)
	if err != nil {
		log.Error("pipeline.fetch.failed", "error", err)
		return err
	}

	text, err := p.text.Extract(ctx, job.DocumentRef, data)
	if err != nil {
		log.Error("pipeline.text_extract.failed", "error", err)
		return err
	}

	profile, err := p.extractor.Extract(ctx, text.Text)
	if err != nil {
		log.Error("pipeline.structure.failed", "error", err)
		return err
	}

	profileID, err := p.ingester.Ingest(ctx, job.UserID, profile)
	if err != nil {
		log.Error("pipeline.ingest.failed", "error", err)
		return err
	}

	log.Info("pipeline.job.completed",
		"profile_id", profileID,
		"format", text.Format,
		"elapsed_ms", time.Since(start).Milliseconds())
	return nil
}
