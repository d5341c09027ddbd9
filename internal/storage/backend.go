// Package storage provides the persistent key-value backend the rest of the
// application stores its state in. The contract mirrors the browser
// localStorage the portfolio site originally used: flat string keys, opaque
// values, no versioning.
package storage

import "context"

// Backend is a minimal persistent key-value store.
//
// Get returns common.ErrNotFound when the key is absent, so callers can
// distinguish "never written" from "written empty" (the seeder depends on
// this distinction).
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
