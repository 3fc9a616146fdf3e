// Package cache provides the response cache the fetch layer reads before
// hitting the open-data endpoints. A miss is never an error: absent,
// expired and unreadable entries all report !ok and the caller refetches.
package cache

import "context"

// Store is the cache contract: a JSON blob per request key with a TTL
// applied by the backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte) error
}
