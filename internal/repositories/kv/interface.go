// Package kv is the local key/value store backing every snapshot: employee
// records, user accounts and the persisted session.
package kv

import (
	"context"
)

// Repository is a flat key/value store. Get on a missing key returns
// (nil, nil).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Transactor is implemented by repositories that can apply several writes
// as one unit. fn receives a Repository bound to the unit of work; when fn
// returns an error none of its writes are visible.
type Transactor interface {
	Atomic(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}

// Atomic runs fn through repo's Transactor when it has one, and directly
// against repo otherwise.
func Atomic(ctx context.Context, repo Repository, fn func(ctx context.Context, repo Repository) error) error {
	if t, ok := repo.(Transactor); ok {
		return t.Atomic(ctx, fn)
	}
	return fn(ctx, repo)
}
