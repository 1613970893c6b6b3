package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunle-oseni/resume-ingest/constants"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profile"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profilereadiness"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profileskill"
	"github.com/kunle-oseni/resume-ingest/internal/common"
	"github.com/kunle-oseni/resume-ingest/internal/extract"
	"github.com/kunle-oseni/resume-ingest/internal/parser"
	"github.com/kunle-oseni/resume-ingest/internal/queue"
	"github.com/kunle-oseni/resume-ingest/internal/repository"
	"github.com/kunle-oseni/resume-ingest/internal/storage"
	"github.com/kunle-oseni/resume-ingest/internal/testutil"
)

const onePageResume = `Jane Doe

jane.doe@example.com

Education
State University, B.Sc, 2016-2020

Experience
Software Engineer @ Acme Corp Jan 2020 - Mar 2022
• Built data pipelines

Skills
Languages: Python, Go
`

func TestProcessEndToEnd(t *testing.T) {
	ctx := context.Background()
	client := testutil.OpenEnt(t)
	logger := slog.Default()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "r1.txt"), []byte(onePageResume), 0o644))
	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	user, err := client.User.Create().SetEmail("jane.doe@example.com").Save(ctx)
	require.NoError(t, err)

	proc := NewProcessor(
		store,
		extract.NewDocumentExtractor(logger),
		parser.NewEngine(logger),
		repository.NewIngester(client, logger),
		logger,
	)

	job := queue.Job{UserID: user.ID, DocumentRef: "r1.txt"}
	require.NoError(t, proc.Process(ctx, job))

	p := client.Profile.Query().Where(profile.UserID(user.ID)).OnlyX(ctx)

	status := client.ProfileReadiness.Query().
		Where(profilereadiness.ProfileID(p.ID)).
		OnlyX(ctx).Status
	assert.Equal(t, string(constants.ReadinessComplete), status)

	assert.Equal(t, 2, client.ProfileSkill.Query().Where(profileskill.ProfileID(p.ID)).CountX(ctx))
	assert.Equal(t, 1, p.QueryExperiences().CountX(ctx))
}

func TestProcessFetchFailureIsRetryable(t *testing.T) {
	ctx := context.Background()
	client := testutil.OpenEnt(t)
	logger := slog.Default()

	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	user, err := client.User.Create().Save(ctx)
	require.NoError(t, err)

	proc := NewProcessor(
		store,
		extract.NewDocumentExtractor(logger),
		parser.NewEngine(logger),
		repository.NewIngester(client, logger),
		logger,
	)

	err = proc.Process(ctx, queue.Job{UserID: user.ID, DocumentRef: "missing.txt"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrFetch)
	assert.True(t, common.Retryable(err))
}

func TestProcessUnknownUserIsPermanent(t *testing.T) {
	ctx := context.Background()
	client := testutil.OpenEnt(t)
	logger := slog.Default()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "r1.txt"), []byte(onePageResume), 0o644))
	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	proc := NewProcessor(
		store,
		extract.NewDocumentExtractor(logger),
		parser.NewEngine(logger),
		repository.NewIngester(client, logger),
		logger,
	)

	err = proc.Process(ctx, queue.Job{UserID: uuid.New(), DocumentRef: "r1.txt"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUserNotFound)
	assert.False(t, common.Retryable(err))
}
