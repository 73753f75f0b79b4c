// Package checksum computes content digests used for optimistic concurrency.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// ETag wraps the digest of data in double quotes, per the HTTP ETag format
// expected in If-Match headers.
func ETag(data []byte) string {
	return `"` + Sum(data) + `"`
}
