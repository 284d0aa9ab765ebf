// Package kvstore provides the durable key-value scopes the storefront mirrors
// its session, filter settings and cart into.
package kvstore

import (
	"context"
	"errors"
	"io"

	"go.uber.org/multierr"
)

// ErrNotFound is returned by Get when a key has never been written or was deleted.
var ErrNotFound = errors.New("kvstore: key not found")

// Scope names the lifetime of a key-value store.
type Scope string

const (
	// ScopeSession holds values cleared on logout.
	ScopeSession Scope = "session"
	// ScopePersistent holds values that survive restarts.
	ScopePersistent Scope = "persistent"
)

// Store is a byte-oriented key-value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// CloseAll closes every closer, collecting all errors.
func CloseAll(closers ...io.Closer) error {
	var err error
	for _, c := range closers {
		if c == nil {
			continue
		}
		err = multierr.Append(err, c.Close())
	}
	return err
}
