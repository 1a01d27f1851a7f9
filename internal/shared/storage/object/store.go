package object

import (
	"context"
	"io"
)

// ObjectStore reads and writes blobs by key. Rule files are the main tenant.
type ObjectStore interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Put(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
}
