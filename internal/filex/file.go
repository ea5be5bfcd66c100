// Package filex holds filesystem helpers shared by the database and export
// code.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and any missing parents, and returns its absolute
// path. A relative dir is resolved against the working directory.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}
