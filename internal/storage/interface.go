package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Read when nothing is stored under a key
var ErrKeyNotFound = errors.New("key not found")

// DefaultNamespace prefixes every key written by the application
const DefaultNamespace = "boardgames"

// Storage defines the interface for data persistence: a flat key-value
// store of opaque JSON blobs. Backends do not interpret the data.
type Storage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

// Closer is implemented by backends holding external resources
type Closer interface {
	Close() error
}
