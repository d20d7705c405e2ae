package crypto

// Zeroize overwrites a byte slice with zeros. This is best effort: the
// garbage collector may already have copied the data, and the compiler is
// free to elide writes to memory it can prove is never read again.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
