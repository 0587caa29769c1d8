package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"userhub/config"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) service.AssetStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobAssetStore(bucket)
}

func requireStored(t *testing.T, store service.AssetStore, name string, want bool) {
	t.Helper()

	asset, err := store.Open(context.Background(), name)
	if !want {
		require.True(t, errors.Is(err, domainerrors.ErrAssetNotFound), "asset %q should be absent", name)
		return
	}

	require.NoError(t, err)
	_ = asset.Body.Close()
}

func TestBlobAssetStore_PutOpen(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Put(ctx, "a.jpg", "image/jpeg", []byte("jpeg-bytes")))

	asset, err := store.Open(ctx, "a.jpg")
	require.NoError(t, err)
	defer asset.Body.Close()

	body, err := io.ReadAll(asset.Body)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(body))
	assert.Equal(t, "image/jpeg", asset.ContentType)
	assert.Equal(t, int64(len("jpeg-bytes")), asset.Size)
}

func TestBlobAssetStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Put(ctx, "a.jpg", "image/jpeg", []byte("x")))
	require.NoError(t, store.Delete(ctx, "a.jpg"))
	require.NoError(t, store.Delete(ctx, "a.jpg"))
	require.NoError(t, store.Delete(ctx, "never-written.png"))

	requireStored(t, store, "a.jpg", false)
}

func TestBlobAssetStore_OpenMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Open(context.Background(), "missing.jpg")

	assert.True(t, errors.Is(err, domainerrors.ErrAssetNotFound))
}

func TestBlobAssetStore_RejectsNestedNames(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, name := range []string{"", "..", "../etc/passwd", "dir/file.jpg", `dir\file.jpg`} {
		_, err := store.Open(ctx, name)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "name %q", name)

		err = store.Put(ctx, name, "image/jpeg", []byte("x"))
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "name %q", name)
	}
}

func TestNew_FileBucket(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Storage: &config.StorageConfig{BucketURL: "file://" + dir}}
	lc := fxtest.NewLifecycle(t)

	store, err := New(Params{
		Lifecycle: lc,
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "b.png", "image/png", []byte("png-bytes")))

	onDisk, err := os.ReadFile(filepath.Join(dir, "b.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), onDisk)

	require.NoError(t, store.Delete(ctx, "b.png"))
	require.NoError(t, store.Delete(ctx, "b.png"))

	lc.RequireStart()
	lc.RequireStop()
}

func TestNew_DefaultsToMemoryBucket(t *testing.T) {
	store, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	requireStored(t, store, "nothing.jpg", false)
	require.NoError(t, store.Put(context.Background(), "c.jpg", "image/jpeg", []byte("x")))
	requireStored(t, store, "c.jpg", true)
}
