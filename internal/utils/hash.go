package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Used to fingerprint access and refresh tokens before they are stored,
// so a leaked sessions table does not leak usable credentials.
//
// Example usage:
//
//	fingerprint := utils.HashString(token.SignedString, cfg.App.HashKey)
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// Digest returns the hex-encoded SHA-256 of data. The client agent uses it
// to recognise clipboard contents it has already seen.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
