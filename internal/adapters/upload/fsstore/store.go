// Package fsstore keeps uploaded objects on a filesystem, typically a
// directory served by a static file server.
package fsstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/bnema/skillconnect-cli/internal/ports"
	"github.com/spf13/afero"
)

const (
	objectDirMode  = 0o755
	objectFileMode = 0o644
	tempPattern    = ".upload-*.tmp"
)

type Store struct {
	fs            afero.Fs
	root          string
	publicBaseURL string
}

var _ ports.ObjectStore = (*Store)(nil)

// NewStore stores objects below root. Returned URLs are publicBaseURL joined
// with the object key, or file:// URLs when publicBaseURL is empty.
func NewStore(fs afero.Fs, root string, publicBaseURL string) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Store{fs: fs, root: filepath.Clean(root), publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (s *Store) Put(ctx context.Context, object ports.Object, onWritten func(written int64)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target, err := s.pathForKey(object.Key)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(target)
	if err := s.fs.MkdirAll(dir, objectDirMode); err != nil {
		return "", fmt.Errorf("create object directory: %w", err)
	}

	tempFile, err := afero.TempFile(s.fs, dir, tempPattern)
	if err != nil {
		return "", fmt.Errorf("create temp object: %w", err)
	}
	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = s.fs.Remove(tempName)
		}
	}()

	writer := &countingWriter{ctx: ctx, writer: tempFile, onWrite: onWritten}
	if _, err := io.Copy(writer, object.Body); err != nil {
		_ = tempFile.Close()
		return "", fmt.Errorf("write object %q: %w", object.Key, err)
	}
	if err := tempFile.Close(); err != nil {
		return "", fmt.Errorf("close temp object: %w", err)
	}
	if err := s.fs.Chmod(tempName, objectFileMode); err != nil {
		return "", fmt.Errorf("chmod temp object: %w", err)
	}
	if err := s.fs.Rename(tempName, target); err != nil {
		return "", fmt.Errorf("store object %q: %w", object.Key, err)
	}
	cleanup = false

	return s.urlFor(object.Key, target)
}

func (s *Store) pathForKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("object key is empty")
	}

	cleaned := path.Clean(trimmed)
	if path.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") || cleaned == "." {
		return "", fmt.Errorf("invalid object key %q", key)
	}

	return filepath.Join(s.root, filepath.FromSlash(cleaned)), nil
}

func (s *Store) urlFor(key string, target string) (string, error) {
	if s.publicBaseURL == "" {
		absPath, err := filepath.Abs(target)
		if err != nil {
			return "", fmt.Errorf("resolve object path: %w", err)
		}
		return (&url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}).String(), nil
	}

	joined, err := url.JoinPath(s.publicBaseURL, strings.Split(path.Clean(key), "/")...)
	if err != nil {
		return "", fmt.Errorf("build object url: %w", err)
	}

	return joined, nil
}

type countingWriter struct {
	ctx     context.Context
	writer  io.Writer
	written int64
	onWrite func(int64)
}

func (w *countingWriter) Write(p []byte) (int, error) {
	if err := w.ctx.Err(); err != nil {
		return 0, err
	}

	n, err := w.writer.Write(p)
	if n > 0 {
		w.written += int64(n)
		if w.onWrite != nil {
			w.onWrite(w.written)
		}
	}
	return n, err
}
