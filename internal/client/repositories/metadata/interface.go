// Package metadata implements the durable key-value substrate of the client.
// Values are opaque bytes; callers store JSON.
package metadata

import (
	"context"
)

// Repository is a small key-value store.
//
// Get returns (nil, nil) for an absent key. SetAll writes every pair or none.
// Delete of an absent key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetAll(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
