// Package snapshot stores whole collections under a single key of the local
// key/value store. Every save replaces the previous value in one write.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/paybook/internal/logging"
	"github.com/dmitrijs2005/paybook/internal/repositories/kv"
)

// Load reads the collection stored under key. A missing, empty or corrupt
// value yields an empty collection; corruption is logged at warn level and
// never surfaces as an error. Only a failing repository returns an error.
func Load[T any](ctx context.Context, repo kv.Repository, key string, log logging.Logger) ([]T, error) {
	raw, err := repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn(ctx, "discarding unreadable snapshot", "key", key, "error", err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save replaces the collection stored under key.
func Save[T any](ctx context.Context, repo kv.Repository, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := repo.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
