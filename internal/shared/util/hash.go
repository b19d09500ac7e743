package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentHash returns a stable hex digest for document content, used to
// correlate extraction log lines without logging the content itself.
func ContentHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
