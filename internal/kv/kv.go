// Package kv holds the string-keyed stores that petpal documents are
// persisted to. Values are opaque strings; callers own the encoding.
package kv

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("kv: store closed")

// Store is a string-keyed persistent store. Get reports found == false with
// a nil error when the key has never been set.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
