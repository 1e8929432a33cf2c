// Package token generates and hashes single-use invitation tokens.
//
// Plaintext tokens are handed to the invitee exactly once and never
// persisted; only the keyed hash is stored, so a database leak does not
// expose redeemable tokens.
package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// plainTokenBytes is the entropy of a plaintext token (256 bits).
const plainTokenBytes = 32

// Hasher computes keyed hashes of plaintext tokens.
// The key is a server-held secret; the same key must be used for
// issuance and redemption or lookups will never match.
type Hasher struct {
	secret []byte
}

// NewHasher creates a Hasher keyed with the given secret.
func NewHasher(secret string) *Hasher {
	return &Hasher{secret: []byte(secret)}
}

// GeneratePlain returns a new URL-safe random plaintext token.
func GeneratePlain() (string, error) {
	buf := make([]byte, plainTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Hash returns the HMAC-SHA256 of the plaintext token as a hex string.
// This is the value stored and used as the invitation lookup key.
func (h *Hasher) Hash(plain string) string {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(plain))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a plaintext token against a stored hash in constant time.
func (h *Hasher) Verify(plain, storedHash string) bool {
	computed := h.Hash(plain)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
