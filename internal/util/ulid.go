package util

import (
	"crypto/rand"
	"io"
	"regexp"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   io.Reader = ulid.Monotonic(rand.Reader, 0)

	ulidPattern = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
)

// NewULID generates a new ULID string for t. IDs generated within the same
// millisecond are strictly increasing.
func NewULID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// IsValidULID checks if the string is in canonical ULID format
// (26 characters of Crockford's Base32).
func IsValidULID(s string) bool {
	return ulidPattern.MatchString(s)
}
