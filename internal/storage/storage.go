// Package storage holds the blob backends photo bytes are written to. Keys
// are generated server-side and never contend, so backends need no locking.
package storage

import (
	"context"
	"io"
)

type BlobStore interface {
	Put(ctx context.Context, key string, content io.Reader) error
}
