package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenKey = "skillconnect/session/user-1/token"

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStoreWithFs(afero.NewMemMapFs(), "/secrets")
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "secret key is empty"},
		{name: "whitespace", key: "   ", wantErr: "secret key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid secret key"},
		{name: "traversal", key: "../escape", wantErr: "invalid secret key"},
		{name: "deep traversal", key: "../../secret", wantErr: "invalid secret key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	want := "jwt-token"

	require.NoError(t, store.Put(context.Background(), tokenKey, want))

	got, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Join(root, tokenKey))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(secretFileMode), info.Mode().Perm())
}

func TestStoreGetMissingReturnsSecretNotFound(t *testing.T) {
	t.Parallel()

	store := NewStoreWithFs(afero.NewMemMapFs(), "/secrets")

	_, err := store.Get(context.Background(), tokenKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.ErrorContains(t, err, tokenKey)
}

func TestStoreDeleteIsIdempotentWhenSecretMissing(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	store := NewStoreWithFs(fs, "/secrets")

	require.NoError(t, store.Put(context.Background(), tokenKey, "jwt"))
	require.NoError(t, store.Delete(context.Background(), tokenKey))
	require.NoError(t, store.Delete(context.Background(), tokenKey))

	exists, err := afero.Exists(fs, filepath.Join("/secrets", tokenKey))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStorePutReplacesValueWithoutLeavingTempFiles(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	store := NewStoreWithFs(fs, "/secrets")

	require.NoError(t, store.Put(context.Background(), tokenKey, "old"))
	require.NoError(t, store.Put(context.Background(), tokenKey, "new"))

	got, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "new", got)

	entries, err := afero.ReadDir(fs, filepath.Dir(filepath.Join("/secrets", tokenKey)))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "token", entries[0].Name())
}
