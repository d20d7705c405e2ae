package crypto

const (
	// SaltSize is the size of the key-derivation salt in bytes.
	SaltSize = 32

	// NonceSize is the size of an AES-GCM nonce in bytes.
	NonceSize = 12

	// KeySize is the size of an AES-256 key in bytes.
	KeySize = 32

	// TagSize is the size of an AES-GCM authentication tag in bytes.
	TagSize = 16

	// KDFIterations is the PBKDF2 iteration count. Chosen to meet the
	// OWASP recommendation for PBKDF2-HMAC-SHA-256 (>= 600,000).
	KDFIterations = 600_000
)

// Ciphersuite is the canonical string representation of the algorithm suite.
var Ciphersuite = "PBKDF2-SHA-256:AES-256-GCM"
