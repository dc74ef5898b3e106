package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// ComputeDigest returns the lowercase hex SHA-256 digest of message: 64 characters, no
// separators. It is a pure function of the message bytes, computed independently of any
// signature so sign-time and verify-time digests can be compared side by side.
func ComputeDigest(message []byte) string {
	sum := sha256.Sum256(message)
	return hex.EncodeToString(sum[:])
}
