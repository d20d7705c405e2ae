package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// kdfIterations is the iteration count used by DeriveKey. It defaults to
// KDFIterations but can be lowered for testing.
var kdfIterations = KDFIterations

// DeriveKey stretches a password and salt into a 256-bit AES key using
// PBKDF2-HMAC-SHA-256. The same password and salt always yield the same key;
// freshness comes from the per-message salt.
//
// The derivation is deliberately expensive (hundreds of thousands of hash
// iterations) and should be kept off any latency-sensitive path.
func DeriveKey(password, salt []byte) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}
	if len(salt) != SaltSize {
		return nil, ErrInvalidSaltSize
	}

	return pbkdf2.Key(password, salt, kdfIterations, KeySize, sha256.New), nil
}
