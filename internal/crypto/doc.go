// Package crypto implements the password-based authenticated encryption
// engine behind emojilock.
//
// # Algorithm Suite
//
// The package uses a fixed cipher suite:
//
//   - PBKDF2-SHA-256 (RFC 8018): Password-based key derivation with 600,000
//     iterations. The iteration count is a deliberate cost factor against
//     offline password guessing.
//
//   - AES-256-GCM: Authenticated encryption with associated data (AEAD)
//     providing confidentiality and integrity in one operation.
//
// # Security Model
//
// Every encryption uses a fresh 32-byte salt and a fresh 12-byte nonce from
// crypto/rand. The GCM authentication tag is the sole integrity check of the
// decrypt path: a wrong password and a tampered ciphertext are
// indistinguishable, and both surface as [ErrDecryptionFailed]. Callers must
// not differentiate decrypt failures further — doing so would hand a
// password-guessing attacker an oracle.
//
// AES-GCM nonces MUST be unique for each encryption with the same key. Nonce
// reuse completely breaks the security of AES-GCM, allowing attackers to
// recover the authentication key and forge messages. [Encrypt] guarantees
// freshness by drawing salt and nonce from the system CSPRNG on every call.
//
// # Memory Hygiene
//
// Derived keys and intermediate buffers are wiped with [Zeroize] after use.
// This is best effort only: Go's garbage collector may have copied the data,
// and string-typed inputs held by the caller cannot be cleared at all. If
// guaranteed wiping is required, keep secrets in caller-owned byte slices and
// wipe them at the call site as well.
package crypto
