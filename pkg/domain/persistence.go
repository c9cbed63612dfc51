package domain

import "context"

// Substrate is the durable key-value byte store underneath the entity store.
// It is the only boundary fabcore crosses to persist data; implementations
// must make a Write durable before the next Read observes it. Keys are
// namespaced by the store under a fixed prefix so a substrate can hold
// unrelated data alongside fabcore's collections.
type Substrate interface {
	// Read returns the payload stored under key, or ok=false when absent.
	Read(ctx context.Context, key string) (payload []byte, ok bool, err error)
	// Write durably stores payload under key, overwriting any prior value.
	Write(ctx context.Context, key string, payload []byte) error
	// Delete removes key, reporting whether it existed.
	Delete(ctx context.Context, key string) (bool, error)
	// ListKeys returns all keys beginning with prefix, sorted.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}
