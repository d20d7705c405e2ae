package emojilock

import (
	"context"
	"fmt"

	"github.com/emojilock/emojilock-go/internal/crypto"
	"github.com/emojilock/emojilock-go/internal/emoji"
)

// Encrypt encrypts plaintext with a password and returns the result as a
// grouped emoji string.
//
// The pipeline: PBKDF2-SHA-256 key derivation and AES-256-GCM encryption
// produce a four-field package (ciphertext, salt, iv, tag); the package is
// serialized and mapped through the emoji alphabet with an embedded length
// and checksum frame; the symbols are grouped for display.
//
// The context is checked before key derivation starts. Derivation itself is
// not cancelable: once begun, the call runs to completion or fails.
func Encrypt(ctx context.Context, plaintext, password string, opts ...Option) (string, error) {
	if plaintext == "" || password == "" {
		return "", ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cfg := newEncryptConfig(opts)

	// The string conversions produce owned copies; wipe them once the
	// engine is done. Best effort only: the caller's strings are immutable
	// and stay in memory regardless.
	pt := []byte(plaintext)
	pw := []byte(password)
	defer crypto.Zeroize(pt)
	defer crypto.Zeroize(pw)

	pkg, err := crypto.Encrypt(pt, pw)
	if err != nil {
		return "", wrapCryptoError(err)
	}

	serialized, err := pkg.Marshal()
	if err != nil {
		return "", fmt.Errorf("serialize package: %w", err)
	}

	armored := emoji.Armor(emoji.Encode(serialized))
	return emoji.Format(armored, cfg.groupSize), nil
}

// Decrypt reverses Encrypt. Whitespace grouping and Unicode denormalization
// in the input are tolerated; the embedded frame checksum is verified before
// any cryptographic work, so corrupted text is rejected cheaply and
// distinctly from a wrong password.
//
// Wrong password, tampered ciphertext, and malformed package fields are
// indistinguishable: all return ErrDecryptionFailed.
func Decrypt(ctx context.Context, emojiText, password string) (string, error) {
	if emojiText == "" || password == "" {
		return "", ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := emoji.Dearmor(emoji.Unformat(emojiText))
	if err != nil {
		return "", wrapDecodeError(err)
	}

	serialized, err := emoji.Decode(data)
	if err != nil {
		return "", wrapDecodeError(err)
	}

	pkg, err := crypto.UnmarshalPackage(serialized)
	if err != nil {
		return "", wrapCryptoError(err)
	}

	pw := []byte(password)
	defer crypto.Zeroize(pw)

	plaintext, err := crypto.Decrypt(pkg, pw)
	if err != nil {
		return "", wrapCryptoError(err)
	}

	result := string(plaintext)
	crypto.Zeroize(plaintext)
	return result, nil
}

// Format regroups an emoji string with a space every groupSize symbols.
// Pure display sugar: Decrypt accepts any grouping.
func Format(emojiText string, groupSize int) string {
	return emoji.Format(emoji.Unformat(emojiText), groupSize)
}

// Unformat strips whitespace from display text and normalizes the symbols
// to the canonical form used by the codec.
func Unformat(emojiText string) string {
	return emoji.Unformat(emojiText)
}
