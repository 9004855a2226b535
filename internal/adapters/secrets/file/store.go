// Package file keeps each secret in its own 0600 file under a root
// directory. sc uses it for session tokens when pass is not installed.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports"
	"github.com/spf13/afero"
)

const (
	storeDirMode   = 0o700
	secretFileMode = 0o600
)

type Store struct {
	fs   afero.Fs
	root string

	mu sync.RWMutex
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(root string) *Store {
	return NewStoreWithFs(afero.NewOsFs(), root)
}

func NewStoreWithFs(fs afero.Fs, root string) *Store {
	return &Store{fs: fs, root: filepath.Clean(root)}
}

// Put replaces the secret through a temp file so readers in other processes
// never see a partial token.
func (s *Store) Put(ctx context.Context, key string, value string) error {
	path, err := s.resolve(ctx, key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, storeDirMode); err != nil {
		return fmt.Errorf("create secret dir for %q: %w", key, err)
	}

	tmp, err := afero.TempFile(s.fs, dir, ".secret-*")
	if err != nil {
		return fmt.Errorf("store secret %q: %w", key, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = s.fs.Remove(tmpName) }()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store secret %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store secret %q: %w", key, err)
	}
	if err := s.fs.Chmod(tmpName, secretFileMode); err != nil {
		return fmt.Errorf("restrict secret %q: %w", key, err)
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("store secret %q: %w", key, err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	path, err := s.resolve(ctx, key)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	data, err := afero.ReadFile(s.fs, path)
	s.mu.RUnlock()

	switch {
	case errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("file secret %q: %w", key, domain.ErrSecretNotFound)
	case err != nil:
		return "", fmt.Errorf("load secret %q: %w", key, err)
	}
	return string(data), nil
}

// Delete succeeds when the secret is already absent.
func (s *Store) Delete(ctx context.Context, key string) error {
	path, err := s.resolve(ctx, key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove secret %q: %w", key, err)
	}
	return nil
}

// resolve maps key onto a file below root. Keys are slash-separated token
// refs and may not leave the root.
func (s *Store) resolve(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("secret key is empty")
	}

	rel := filepath.Clean(filepath.FromSlash(key))
	if rel == "." || filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid secret key %q", key)
	}

	return filepath.Join(s.root, rel), nil
}
