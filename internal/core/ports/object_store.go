package ports

import "context"

// ObjectStore persists uploaded resume documents in a blob store.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
}
