// Package storage implements the client's persisted store adapter: a small
// typed JSON layer over a local SQLite key/value table with change
// subscriptions and a per-value size quota.
package storage

import "context"

// Adapter loads and saves JSON records by key.
//
// Load never fails on a missing or unreadable record: the caller pre-fills
// out with the collection's default value and keeps it when nothing usable
// is stored. Save returns an error wrapping common.ErrQuotaExceeded when the
// value cannot be persisted for space reasons; the caller's in-memory state
// stays valid in that case.
type Adapter interface {
	Load(ctx context.Context, key string, out any) error
	Save(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error

	// Clear removes only the given keys. It is the remedial action offered
	// after a quota failure.
	Clear(ctx context.Context, keys ...string) error

	// Subscribe registers fn to run after every successful Save or Delete
	// of key. The returned func unsubscribes; it is safe to call twice.
	Subscribe(key string, fn func()) (unsubscribe func())
}
