package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrRemoteFailure  = errors.New("remote failure")
	ErrUploadFailure  = errors.New("upload failed")
	ErrNoSession      = errors.New("no active session")
	ErrSecretNotFound = errors.New("secret not found")
)

type RemoteErrorKind string

const (
	RemoteNotFound     RemoteErrorKind = "not_found"
	RemoteUnauthorized RemoteErrorKind = "unauthorized"
	RemoteFailureKind  RemoteErrorKind = "remote_failure"
)

// RemoteError is returned by every Resource Client operation. Message is
// display-ready; Status is zero when no HTTP response was received.
type RemoteError struct {
	Kind    RemoteErrorKind
	Status  int
	Op      string
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.Status)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == RemoteNotFound
	case ErrUnauthorized:
		return e.Kind == RemoteUnauthorized
	case ErrRemoteFailure:
		return e.Kind == RemoteFailureKind
	default:
		return false
	}
}

func KindForStatus(status int) RemoteErrorKind {
	switch status {
	case http.StatusNotFound:
		return RemoteNotFound
	case http.StatusUnauthorized:
		return RemoteUnauthorized
	default:
		return RemoteFailureKind
	}
}

// DisplayMessage returns the message meant for the user, falling back to the
// error text for failures that did not come from the remote API.
func DisplayMessage(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Message
	}
	var upload *UploadError
	if errors.As(err, &upload) {
		return upload.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

type UploadError struct {
	Name    string
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("upload %q: %s", e.Name, e.Message)
	}
	return fmt.Sprintf("upload %q: %s: %v", e.Name, e.Message, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

func (e *UploadError) Is(target error) bool {
	return target == ErrUploadFailure
}
