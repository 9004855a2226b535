package fsstore

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bnema/skillconnect-cli/internal/ports"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutWritesObjectAndReturnsPublicURL(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	store := NewStore(fs, "/srv/uploads", "https://cdn.example.com/media/")

	var progress []int64
	url, err := store.Put(context.Background(), ports.Object{
		Key:         "cover-images/1700000000000-cover.jpg",
		ContentType: "image/jpeg",
		Body:        bytes.NewReader([]byte("jpeg-bytes")),
	}, func(written int64) { progress = append(progress, written) })
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/media/cover-images/1700000000000-cover.jpg", url)

	data, err := afero.ReadFile(fs, "/srv/uploads/cover-images/1700000000000-cover.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
	require.NotEmpty(t, progress)
	assert.Equal(t, int64(len("jpeg-bytes")), progress[len(progress)-1])

	leftovers, err := afero.Glob(fs, "/srv/uploads/cover-images/.upload-*")
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestPutWithoutPublicBaseURLReturnsFileURL(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(afero.NewOsFs(), root, "")

	url, err := store.Put(context.Background(), ports.Object{
		Key:  "post-media/1-a.png",
		Body: bytes.NewReader([]byte("png")),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "file://"+filepath.ToSlash(filepath.Join(root, "post-media", "1-a.png")), url)
}

func TestPutRejectsEscapingKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(afero.NewMemMapFs(), "/srv/uploads", "")

	for _, key := range []string{"", "../etc/passwd", "/abs/key"} {
		_, err := store.Put(context.Background(), ports.Object{Key: key, Body: bytes.NewReader(nil)}, nil)
		require.Error(t, err, key)
	}
}

func TestPutStopsWhenContextCanceled(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	store := NewStore(fs, "/srv/uploads", "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Put(ctx, ports.Object{Key: "post-media/a.png", Body: bytes.NewReader([]byte("x"))}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	exists, err := afero.Exists(fs, "/srv/uploads/post-media/a.png")
	require.NoError(t, err)
	assert.False(t, exists)
}
