package security

import (
	"crypto/rand"
	"encoding/base64"
)

// 32 random bytes before encoding, roughly 256 bits of entropy
const verificationTokenSize = 32

// GenerateVerificationToken returns an opaque URL-safe token used to prove
// control of an email address. Uniqueness is enforced by the store's unique
// index, callers retry on a collision instead of overwriting.
func GenerateVerificationToken() (string, error) {
	b := make([]byte, verificationTokenSize)

	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
