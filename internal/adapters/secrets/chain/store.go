// Package chain layers a fallback secret store behind a primary one. sc puts
// pass first and plain files second.
package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/skillconnect-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/skillconnect-cli/internal/adapters/secrets/pass"
	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports"
)

type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) *Store {
	return &Store{primary: primary, fallback: fallback}
}

func NewPassWithFileFallback(fileRoot string) *Store {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot))
}

// Put writes to the fallback only when the primary refuses the secret.
func (s *Store) Put(ctx context.Context, key string, value string) error {
	primaryErr := s.primary.Put(ctx, key, value)
	if primaryErr == nil || isContextErr(primaryErr) {
		return primaryErr
	}

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}
	return combine("put", primaryErr, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, primaryErr := s.primary.Get(ctx, key)
	if primaryErr == nil || isContextErr(primaryErr) {
		return value, primaryErr
	}

	value, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return value, nil
	}
	if errors.Is(primaryErr, domain.ErrSecretNotFound) && errors.Is(fallbackErr, domain.ErrSecretNotFound) {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}

	return "", combine("get", primaryErr, fallbackErr)
}

// Delete clears both stores: a token written while pass was missing only
// exists in the fallback.
func (s *Store) Delete(ctx context.Context, key string) error {
	primaryErr := s.primary.Delete(ctx, key)
	if isContextErr(primaryErr) {
		return primaryErr
	}
	if errors.Is(primaryErr, passstore.ErrUnavailable) {
		primaryErr = nil
	}

	return combine("delete", primaryErr, s.fallback.Delete(ctx, key))
}

// combine labels each backend failure; nil when neither failed.
func combine(op string, primaryErr, fallbackErr error) error {
	var errs []error
	if primaryErr != nil {
		errs = append(errs, fmt.Errorf("primary backend %s failed: %w", op, primaryErr))
	}
	if fallbackErr != nil {
		errs = append(errs, fmt.Errorf("fallback backend %s failed: %w", op, fallbackErr))
	}
	return errors.Join(errs...)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
