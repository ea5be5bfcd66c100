// Package shared provides small helpers for random secrets and for wiping
// sensitive byte slices such as passwords read from the terminal.
package shared

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomHex returns size random bytes encoded as hex, so the result is
// 2*size characters long. It fails only if the system RNG fails.
func RandomHex(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeBytes overwrites b with zeros. A nil slice is a no-op.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
