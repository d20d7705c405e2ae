package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used for salt and nonce generation.
// It defaults to crypto/rand but can be overridden for testing.
var randReader io.Reader = rand.Reader

// Encrypt turns a plaintext and password into a tamper-evident package.
//
// The encryption process:
//  1. Generate a fresh 32-byte salt and 12-byte nonce from the system CSPRNG
//  2. Derive a 256-bit key from the password and salt with PBKDF2-SHA-256
//  3. AES-256-GCM encryption with no associated data
//
// Two calls with identical inputs produce different packages: salt and nonce
// are never reused.
func Encrypt(plaintext, password []byte) (*Package, error) {
	if len(plaintext) == 0 {
		return nil, ErrEmptyPlaintext
	}
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(randReader, salt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomUnavailable, err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(randReader, nonce); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomUnavailable, err)
	}

	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer Zeroize(key)

	ciphertext, tag, err := sealAESGCM(key, nonce, plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	return &Package{
		Encrypted: ToBase64URL(ciphertext),
		Salt:      ToBase64URL(salt),
		IV:        ToBase64URL(nonce),
		Tag:       ToBase64URL(tag),
	}, nil
}

// Decrypt reverses Encrypt. The key is re-derived with identical KDF
// parameters and the GCM tag check is the sole integrity gate: every failure
// cause — wrong password, tampered ciphertext, malformed field lengths —
// surfaces as ErrDecryptionFailed. Callers must not attempt to distinguish
// them; a differentiated error would leak information to an attacker
// guessing passwords or probing ciphertext.
func Decrypt(pkg *Package, password []byte) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}

	fields, err := pkg.decode()
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	key, err := DeriveKey(password, fields.salt)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	defer Zeroize(key)

	plaintext, err := openAESGCM(key, fields.nonce, fields.ciphertext, fields.tag)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
