package crypto

import "io"

// SetRandReaderForTesting sets the random reader used by Encrypt for salt
// and nonce generation. This is intended for testing only. Returns a
// function to restore the original reader.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}

// SetIterationsForTesting lowers the PBKDF2 iteration count so tests do not
// pay the full derivation cost on every call. Returns a function to restore
// the original count. Since this package is internal, this function cannot
// be accessed by external code.
func SetIterationsForTesting(n int) func() {
	original := kdfIterations
	kdfIterations = n
	return func() { kdfIterations = original }
}
