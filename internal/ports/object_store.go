package ports

import (
	"context"
	"io"
)

type Object struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ObjectStore persists binary assets and returns a durable URL. onWritten is
// called with the cumulative number of bytes handed to the provider.
type ObjectStore interface {
	Put(ctx context.Context, object Object, onWritten func(written int64)) (string, error)
}
