package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunle-oseni/resume-ingest/internal/common"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "resumes/u1/r1.txt", []byte("Jane Doe")))

	data, err := store.Get(ctx, "resumes/u1/r1.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("Jane Doe"), data)
}

func TestLocalStoreMissingKey(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "missing.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrFetch)
	assert.True(t, common.Retryable(err))
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "../../etc/passwd")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrFetch)
}

func TestLocalStoreRequiresExistingDir(t *testing.T) {
	_, err := NewLocalStore("/nonexistent/path/for/sure")
	assert.Error(t, err)
}
