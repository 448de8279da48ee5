package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateID returns an opaque session identifier with 256 bits of entropy.
// The id is the only secret tying a cookie to a session record.
func GenerateID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: failed to generate id: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
