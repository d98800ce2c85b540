package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/scindn/internal/common"
	"github.com/dmitrijs2005/scindn/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func ingestTempFile(t *testing.T, mime string, data []byte) models.IngestedFile {
	t.Helper()
	tmp, err := os.CreateTemp(t.TempDir(), "spool-*")
	require.NoError(t, err)
	_, err = tmp.Write(data)
	require.NoError(t, err)
	require.NoError(t, tmp.Close())

	return models.IngestedFile{
		TempPath:         tmp.Name(),
		MimeType:         mime,
		Size:             int64(len(data)),
		OriginalFilename: "original.bin",
	}
}

func TestLocalStore_StoreMovesFile(t *testing.T) {
	s := newLocalStore(t)
	ctx := context.Background()
	require.NoError(t, s.CreateBucket(ctx, "proj-1"))

	file := ingestTempFile(t, "image/png", []byte("png-bytes"))

	stored, err := s.Store(ctx, "proj-1", file)
	require.NoError(t, err)

	assert.Equal(t, int64(9), stored.Bytes)
	assert.Equal(t, "original.bin", stored.OriginalFilename)
	assert.True(t, strings.HasPrefix(stored.Link, "/proj-1/"))
	assert.True(t, strings.HasSuffix(stored.Link, ".png"))

	// Stored name is the slug, not the original filename.
	base := filepath.Base(stored.Link)
	assert.Len(t, strings.TrimSuffix(base, ".png"), common.SlugLength)

	// Source is gone, destination holds the bytes.
	_, err = os.Stat(file.TempPath)
	assert.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(filepath.Join(s.Root(), "proj-1", base))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestLocalStore_StoreUnknownMimeType(t *testing.T) {
	s := newLocalStore(t)
	ctx := context.Background()
	require.NoError(t, s.CreateBucket(ctx, "proj-1"))

	for _, mime := range []string{"", "application/x-made-up"} {
		file := ingestTempFile(t, mime, []byte("data"))
		_, err := s.Store(ctx, "proj-1", file)
		assert.ErrorIs(t, err, ErrUnknownMimeType)

		// Nothing must land in the bucket for a skipped file.
		entries, err := os.ReadDir(filepath.Join(s.Root(), "proj-1"))
		require.NoError(t, err)
		assert.Empty(t, entries)
	}
}

func TestLocalStore_Delete(t *testing.T) {
	s := newLocalStore(t)
	ctx := context.Background()
	require.NoError(t, s.CreateBucket(ctx, "proj-1"))

	file := ingestTempFile(t, "text/plain", []byte("hello"))
	stored, err := s.Store(ctx, "proj-1", file)
	require.NoError(t, err)

	name := filepath.Base(stored.Link)
	require.NoError(t, s.Delete(ctx, "proj-1", name))

	_, err = os.Stat(filepath.Join(s.Root(), "proj-1", name))
	assert.True(t, os.IsNotExist(err))

	// Second delete: the file no longer exists.
	assert.ErrorIs(t, s.Delete(ctx, "proj-1", name), common.ErrorNotFound)
}

func TestLocalStore_DeleteTraversalRefused(t *testing.T) {
	s := newLocalStore(t)
	ctx := context.Background()
	require.NoError(t, s.CreateBucket(ctx, "proj-1"))

	// Plant a file outside the bucket root to prove it survives.
	outside := filepath.Join(filepath.Dir(s.Root()), "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	// Dot-dot without separators escapes Join; the containment check stops it.
	assert.ErrorIs(t, s.Delete(ctx, "proj-1", ".."), common.ErrorInternal)

	// Separator-laden traversal is neutralized by sanitization first.
	err := s.Delete(ctx, "proj-1", "../../victim.txt")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorInternal)

	data, err := os.ReadFile(outside)
	require.NoError(t, err)
	assert.Equal(t, []byte("keep me"), data)
}

func TestLocalStore_DeleteEmptyFilename(t *testing.T) {
	s := newLocalStore(t)
	ctx := context.Background()
	require.NoError(t, s.CreateBucket(ctx, "proj-1"))

	assert.ErrorIs(t, s.Delete(ctx, "proj-1", ""), common.ErrorNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "proj-1", "///"), common.ErrorNotFound)

	// The bucket directory itself must survive.
	info, err := os.Stat(filepath.Join(s.Root(), "proj-1"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
