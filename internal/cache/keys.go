package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	GlobalKeyPrefix = "quizforge"
)

// GenerateCacheKey builds "quizforge:<service>:<object>:<identifier>".
func GenerateCacheKey(serviceName, objectType, identifier string) string {
	return strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
}

// Fingerprint returns a key-safe digest of free text. Case is ignored and
// whitespace is trimmed with inner runs collapsed, so "Zoning  Law " and
// "zoning law" collide.
func Fingerprint(text string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(text), " "))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
