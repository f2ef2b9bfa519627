// Package localstore is the durable key-value store backing the session
// snapshot. It survives restarts; the session controller is its only writer.
package localstore

import (
	"context"
)

type Repository interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
