package crypto

import "errors"

var (
	// ErrEmptyPlaintext is returned when the plaintext is empty.
	ErrEmptyPlaintext = errors.New("plaintext must not be empty")

	// ErrEmptyPassword is returned when the password is empty.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrInvalidSaltSize is returned when the decoded salt size is invalid.
	ErrInvalidSaltSize = errors.New("invalid salt size")

	// ErrInvalidNonceSize is returned when the decoded nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidTagSize is returned when the decoded tag size is invalid.
	ErrInvalidTagSize = errors.New("invalid authentication tag size")

	// ErrInvalidKeySize is returned when the derived key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidPackage is returned when the package structure is invalid.
	// This includes malformed JSON, missing fields, or invalid encoding.
	ErrInvalidPackage = errors.New("invalid encryption package")

	// ErrDecryptionFailed is returned for every decrypt failure: wrong
	// password, tampered ciphertext, or a corrupted tag. The causes are
	// deliberately not distinguished.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrRandomUnavailable is returned when the system's secure random
	// source cannot produce salt or nonce material.
	ErrRandomUnavailable = errors.New("secure random source unavailable")
)
