// Package storage provides the object stores résumé documents are fetched
// from. A document ref is the object key within the configured backend.
package storage

import "context"

// ObjectStore fetches and stores raw document bytes by key.
type ObjectStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}
