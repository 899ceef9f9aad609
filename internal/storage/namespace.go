package storage

import "context"

// Namespaced prefixes every key with "<namespace>:" before delegating
type Namespaced struct {
	inner     Storage
	namespace string
}

// WithNamespace wraps s so all keys live under namespace
func WithNamespace(s Storage, namespace string) *Namespaced {
	return &Namespaced{inner: s, namespace: namespace}
}

var _ Storage = (*Namespaced)(nil)

func (n *Namespaced) Read(ctx context.Context, key string) ([]byte, error) {
	return n.inner.Read(ctx, n.Key(key))
}

func (n *Namespaced) Write(ctx context.Context, key string, data []byte) error {
	return n.inner.Write(ctx, n.Key(key), data)
}

// Key returns the fully-qualified key stored in the backend
func (n *Namespaced) Key(key string) string {
	return n.namespace + ":" + key
}

// Close closes the wrapped backend if it holds resources
func (n *Namespaced) Close() error {
	if c, ok := n.inner.(Closer); ok {
		return c.Close()
	}
	return nil
}
