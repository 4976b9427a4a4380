package utils

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// ContentHash returns the hex-encoded blake3 digest of content.
// Revisions and the render cache use it to detect identical text.
func ContentHash(content string) string {
	sum := blake3.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
