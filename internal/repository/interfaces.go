package repository

import "context"

// BlobRepo is the persistent store adapter: named string blobs keyed by
// collection. Get reports ok=false when the key has never been written.
type BlobRepo interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
