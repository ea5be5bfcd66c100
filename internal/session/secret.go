package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/paybook/internal/common"
	"github.com/dmitrijs2005/paybook/internal/repositories/kv"
	"github.com/dmitrijs2005/paybook/internal/shared"
)

const secretSize = 32

// randomHex is a seam for tests.
var randomHex = shared.RandomHex

// ResolveSecret returns configured when set. Otherwise it returns the secret
// kept in repo, generating and storing one on first use.
func ResolveSecret(ctx context.Context, repo kv.Repository, configured string) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}

	stored, err := repo.Get(ctx, common.KeySessionSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to read session secret: %w", err)
	}
	if len(stored) > 0 {
		return stored, nil
	}

	s, err := randomHex(secretSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session secret: %w", err)
	}
	if err := repo.Set(ctx, common.KeySessionSecret, []byte(s)); err != nil {
		return nil, fmt.Errorf("failed to store session secret: %w", err)
	}
	return []byte(s), nil
}
