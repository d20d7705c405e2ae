// Package emojilock encrypts text with a password and renders the result as
// emoji, and reverses that process.
//
// Plaintext is encrypted with AES-256-GCM under a key derived from the
// password via PBKDF2-SHA-256 (600,000 iterations). The resulting package —
// ciphertext, salt, nonce, and authentication tag — is serialized and mapped
// through a fixed 256-symbol emoji alphabet, one symbol per byte, framed
// with a length and checksum so corruption is caught before decryption is
// even attempted.
//
// Basic usage:
//
//	sealed, err := emojilock.Encrypt(ctx, "Hello World!", "correct-horse-battery-staple")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := emojilock.Decrypt(ctx, sealed, "correct-horse-battery-staple")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Model
//
// A wrong password and a tampered ciphertext are indistinguishable by
// design: both return [ErrDecryptionFailed] with no further detail.
// Corruption of the emoji text itself (invalid symbols, checksum mismatch)
// is detected before any cryptographic work and reported as
// [ErrInvalidSymbol] or [ErrIntegrityMismatch].
//
// # Concurrency
//
// All operations are pure functions of their inputs aside from fresh random
// salt/nonce generation; concurrent calls need no coordination. Key
// derivation is deliberately slow — run Encrypt and Decrypt off any
// latency-sensitive path. The context is checked before derivation starts;
// a call that has begun deriving runs to completion.
package emojilock
