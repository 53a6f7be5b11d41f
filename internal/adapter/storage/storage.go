// Package storage holds the blob stores used for category and tour images.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by Delete when no object exists under the key.
var ErrObjectNotFound = errors.New("storage: object not found")

// ErrInvalidKey is returned when a key is empty or escapes the store root.
var ErrInvalidKey = errors.New("storage: invalid key")

// Storage saves and deletes image blobs addressed by a slash-separated key.
type Storage interface {
	// Save writes data under key and returns its public address.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the object under key.
	Delete(ctx context.Context, key string) error

	// KeyFor maps a public address back to its key. ok is false for
	// addresses this store did not issue.
	KeyFor(url string) (key string, ok bool)
}
