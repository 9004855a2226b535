package application

import (
	"context"
	"path/filepath"
	"testing"

	tomlrepo "github.com/bnema/skillconnect-cli/internal/adapters/repo/toml"
	filestore "github.com/bnema/skillconnect-cli/internal/adapters/secrets/file"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

// sharedSessionStore returns a session file and secret store that several
// SessionState instances can share, the way separate sc processes do.
func sharedSessionStore(t *testing.T) (*tomlrepo.Repository, *filestore.Store) {
	t.Helper()

	cfg := viper.New()
	cfg.Set(tomlrepo.SessionPathKey, filepath.Join(t.TempDir(), "session.toml"))

	repo, err := tomlrepo.NewRepository(cfg)
	require.NoError(t, err)

	return repo, filestore.NewStoreWithFs(afero.NewMemMapFs(), "/secrets")
}

func signedInState(t *testing.T) *SessionState {
	t.Helper()

	repo, secrets := sharedSessionStore(t)
	state := NewSessionState(repo, secrets)
	require.NoError(t, state.Establish(context.Background(), "user-1", "token-1", "https://cdn.example/avatar.png"))

	return state
}
