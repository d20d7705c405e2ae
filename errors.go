package emojilock

import (
	"errors"
	"fmt"

	"github.com/emojilock/emojilock-go/internal/crypto"
	"github.com/emojilock/emojilock-go/internal/emoji"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidInput is returned when the plaintext or password is empty.
	ErrInvalidInput = errors.New("plaintext and password must not be empty")

	// ErrCryptoUnavailable is returned when the runtime lacks a secure
	// random source.
	ErrCryptoUnavailable = errors.New("secure random source unavailable")

	// ErrDecryptionFailed is returned for every decrypt failure: wrong
	// password, tampered ciphertext, or malformed package fields. The
	// causes are deliberately undifferentiated.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidSymbol is returned when the supplied emoji text contains a
	// character outside the alphabet (after normalization).
	ErrInvalidSymbol = errors.New("invalid symbol in emoji text")

	// ErrIntegrityMismatch is returned when the embedded checksum or frame
	// metadata does not match the decoded bytes. This indicates corruption
	// of the emoji text, detected before decryption is attempted.
	ErrIntegrityMismatch = errors.New("integrity check failed")
)

// EmojiLockError is implemented by all typed errors of this package.
type EmojiLockError interface {
	error
	EmojiLockError() // marker method
}

// InvalidSymbolError reports a character that is not part of the emoji
// alphabet, with its position in the normalized symbol string.
type InvalidSymbolError struct {
	Position int
	Symbol   rune
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d", e.Symbol, e.Position)
}

// Is implements errors.Is for sentinel error matching.
func (e *InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}

// EmojiLockError implements the EmojiLockError interface.
func (e *InvalidSymbolError) EmojiLockError() {}

// IntegrityError reports a framing or checksum failure in the emoji text.
type IntegrityError struct {
	Message string
	Err     error
}

func (e *IntegrityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("integrity check failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("integrity check failed: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrityMismatch
}

// EmojiLockError implements the EmojiLockError interface.
func (e *IntegrityError) EmojiLockError() {}

// wrapDecodeError converts internal codec errors to public errors so that
// errors.Is() checks work correctly. The error never carries password or key
// material.
func wrapDecodeError(err error) error {
	if err == nil {
		return nil
	}

	var symErr *emoji.InvalidSymbolError
	if errors.As(err, &symErr) {
		return &InvalidSymbolError{Position: symErr.Position, Symbol: symErr.Symbol}
	}

	switch {
	case errors.Is(err, emoji.ErrChecksumMismatch):
		return &IntegrityError{Message: "checksum mismatch", Err: err}
	case errors.Is(err, emoji.ErrTruncated):
		return &IntegrityError{Message: "truncated frame", Err: err}
	case errors.Is(err, emoji.ErrUnsupportedVersion):
		return &IntegrityError{Message: "unsupported frame version", Err: err}
	}

	return err
}

// wrapCryptoError converts internal engine errors to public errors. Decrypt
// failures stay a single undifferentiated sentinel.
func wrapCryptoError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrEmptyPlaintext), errors.Is(err, crypto.ErrEmptyPassword):
		return ErrInvalidInput
	case errors.Is(err, crypto.ErrRandomUnavailable):
		return ErrCryptoUnavailable
	case errors.Is(err, crypto.ErrDecryptionFailed), errors.Is(err, crypto.ErrInvalidPackage):
		return ErrDecryptionFailed
	}

	return err
}
