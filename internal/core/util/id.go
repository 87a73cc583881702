package util

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID generates a unique record identifier with the given prefix,
// e.g. GenerateID("item") -> "item_3f8a1c...".
func GenerateID(prefix string) string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return prefix + "_" + hex.EncodeToString(bytes)
}
