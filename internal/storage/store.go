package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// KeyValueStore is the persistence boundary of the application. Each key holds
// one opaque string value which is overwritten whole on every write.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
