// Package crypto provides hashing helpers for values that must be
// stored without their plaintext.
package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the SHA-256 hex digest of value.
// Used for refresh token hashes: deterministic, allows indexed lookups
// without storing the plaintext token.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
