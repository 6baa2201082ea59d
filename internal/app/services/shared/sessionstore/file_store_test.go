package sessionstore

import (
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/exceptions"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFileStore(t *testing.T, key string) (*fileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	return NewFileStore(path, key, zap.NewNop()).(*fileStore), path
}

func TestFileStore_LoadWithoutFileIsAbsent(t *testing.T) {
	store, _ := newTestFileStore(t, "token")

	credential, found, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.True(t, credential.IsEmpty())
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	store, path := newTestFileStore(t, "token")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, models.NewCredential("abc.def.ghi")))

	credential, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc.def.ghi", credential.Value)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	store, _ := newTestFileStore(t, "token")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, models.NewCredential("first")))
	require.NoError(t, store.Save(ctx, models.NewCredential("second")))

	credential, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", credential.Value)
}

func TestFileStore_SaveRejectsEmptyCredential(t *testing.T) {
	store, _ := newTestFileStore(t, "token")

	err := store.Save(context.Background(), models.NewCredential(""))
	require.Error(t, err)
	assert.True(t, exceptions.IsKind(err, exceptions.KindStorage))
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	store, path := newTestFileStore(t, "token")
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Save(ctx, models.NewCredential("abc")))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	_, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_KeysShareOneFile(t *testing.T) {
	first, path := newTestFileStore(t, "token")
	second := NewFileStore(path, "staff-token", zap.NewNop())
	ctx := context.Background()

	require.NoError(t, first.Save(ctx, models.NewCredential("patient")))
	require.NoError(t, second.Save(ctx, models.NewCredential("staff")))
	require.NoError(t, first.Clear(ctx))

	_, found, err := first.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	credential, found, err := second.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "staff", credential.Value)
}

func TestFileStore_CorruptedFileIsStorageFailure(t *testing.T) {
	store, path := newTestFileStore(t, "token")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, found, err := store.Load(context.Background())
	require.Error(t, err)
	assert.False(t, found)
	assert.True(t, exceptions.IsKind(err, exceptions.KindStorage))
}

func TestFileStore_SaveReplacesCorruptedFile(t *testing.T) {
	store, path := newTestFileStore(t, "token")
	ctx := context.Background()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	require.NoError(t, store.Save(ctx, models.NewCredential("fresh")))

	credential, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "fresh", credential.Value)
}

func TestFileStore_ClearRemovesCorruptedFile(t *testing.T) {
	store, path := newTestFileStore(t, "token")
	ctx := context.Background()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	require.NoError(t, store.Clear(ctx))

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}
