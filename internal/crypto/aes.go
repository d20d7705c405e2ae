package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// sealAESGCM encrypts plaintext using AES-256-GCM and returns the ciphertext
// and the 16-byte authentication tag separately. No associated data is used.
func sealAESGCM(key, nonce, plaintext []byte) (ciphertext, tag []byte, err error) {
	aesGCM, err := newGCM(key, nonce)
	if err != nil {
		return nil, nil, err
	}

	sealed := aesGCM.Seal(nil, nonce, plaintext, nil)

	// Seal appends the tag to the ciphertext; split it back out so the
	// package can carry the fields independently.
	split := len(sealed) - TagSize
	return sealed[:split], sealed[split:], nil
}

// openAESGCM verifies and decrypts ciphertext using AES-256-GCM. The tag is
// reattached to the ciphertext before the GCM open, which performs the
// authentication check.
func openAESGCM(key, nonce, ciphertext, tag []byte) ([]byte, error) {
	if len(tag) != TagSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidTagSize, len(tag), TagSize)
	}

	aesGCM, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aesGCM.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aesGCM, nil
}
