// Package pass keeps secrets in the pass password manager, one entry per
// token ref.
package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports"
)

// ErrUnavailable means the pass binary is not on PATH.
var ErrUnavailable = errors.New("pass command unavailable")

var errMissingEntry = errors.New("pass entry missing")

const missingEntryText = "is not in the password store"

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

type Store struct {
	run runFunc
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: execPass}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	_, err := s.call(ctx, "put", key, value+"\n", "insert", "-m", "-f", key)
	return err
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	out, err := s.call(ctx, "get", key, "", "show", key)
	if errors.Is(err, errMissingEntry) {
		return "", fmt.Errorf("pass get %q: %w", key, domain.ErrSecretNotFound)
	}
	if err != nil {
		return "", err
	}

	return strings.TrimRight(out, "\r\n"), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.call(ctx, "delete", key, "", "rm", "-f", key)
	if errors.Is(err, errMissingEntry) {
		return nil
	}
	return err
}

// call runs one pass subcommand. A missing entry is reported as
// errMissingEntry so each operation can decide what absence means.
func (s *Store) call(ctx context.Context, op string, key string, input string, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, input, args...)
	switch {
	case err == nil:
		return stdout, nil
	case strings.Contains(stderr, missingEntryText):
		return "", errMissingEntry
	case stderr != "":
		return "", fmt.Errorf("pass %s %q: %w: %s", op, key, err, stderr)
	default:
		return "", fmt.Errorf("pass %s %q: %w", op, key, err)
	}
}

func execPass(ctx context.Context, input string, args ...string) (string, string, error) {
	bin, err := exec.LookPath("pass")
	if errors.Is(err, exec.ErrNotFound) {
		return "", "", ErrUnavailable
	}
	if err != nil {
		return "", "", fmt.Errorf("find pass: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}
