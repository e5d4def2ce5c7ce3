package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrObjectNotFound is returned when no object exists under the key.
var ErrObjectNotFound = errors.New("object not found")

// ObjectAttributes describes a stored object.
type ObjectAttributes struct {
	ContentType string
	Size        int64
}

// ObjectStorage stores the bytes of listing images.
type ObjectStorage interface {
	// Put writes data under key, replacing any existing object.
	Put(ctx context.Context, key, contentType string, data []byte) error

	// Open returns a reader for the object. The caller closes it.
	Open(ctx context.Context, key string) (io.ReadCloser, *ObjectAttributes, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
