package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// CodeKey returns the storage key for a share code: prefix plus the full
// hex SHA-256 of the code. Codes are long and caller-controlled, so they
// are hashed rather than embedded; the digest is not truncated because
// two codes aliasing one key would serve the wrong deck.
func CodeKey(prefix, code string) string {
	sum := sha256.Sum256([]byte(code))
	return prefix + ":" + hex.EncodeToString(sum[:])
}
