package emoji

import (
	"errors"
	"fmt"
	"strings"
)

// EncodingVersion is the version tag recorded in encode metadata and carried
// as the first byte of the armor frame.
const EncodingVersion = "emojilock/v1"

var (
	// ErrChecksumMismatch is returned when the checksum recomputed during
	// decode does not match the stored metadata. This indicates corruption
	// of the encoded text, distinct from any cryptographic failure.
	ErrChecksumMismatch = errors.New("checksum mismatch: encoded data is corrupted")

	// ErrInvalidSymbol is returned when a character is not part of the
	// alphabet after normalization.
	ErrInvalidSymbol = errors.New("invalid symbol")
)

// InvalidSymbolError reports a character outside the alphabet, with its
// position in the normalized symbol string.
type InvalidSymbolError struct {
	// Position is the zero-based symbol index of the offending character.
	Position int
	// Symbol is the offending character.
	Symbol rune
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d", e.Symbol, e.Position)
}

// Is implements errors.Is for sentinel error matching.
func (e *InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}

// EncodedData wraps an encoded byte sequence together with its validation
// metadata. The Emojis field always holds exactly one symbol per encoded
// byte.
type EncodedData struct {
	// Emojis is the payload rendered through the alphabet.
	Emojis string
	// OriginalLength is the number of encoded bytes.
	OriginalLength int
	// Encoding is the codec version tag.
	Encoding string
	// Checksum is a 32-bit digest over the encoded bytes.
	Checksum uint32
}

// Checksum computes the 32-bit accumulated polynomial digest used by the
// framing metadata: h = h*31 + b over the byte sequence. It detects
// accidental corruption only; tamper resistance comes from the AEAD layer.
func Checksum(data []byte) uint32 {
	var h uint32
	for _, b := range data {
		h = h*31 + uint32(b)
	}
	return h
}

// Encode maps a byte sequence to its emoji form: alphabet[b] for each byte,
// by table lookup. Decode(Encode(b)) returns b exactly, for any input
// including the empty sequence.
func Encode(data []byte) *EncodedData {
	var b strings.Builder
	// Symbols in the table are 4 bytes each in UTF-8.
	b.Grow(len(data) * 4)
	for _, v := range data {
		b.WriteRune(symbols[v])
	}

	return &EncodedData{
		Emojis:         b.String(),
		OriginalLength: len(data),
		Encoding:       EncodingVersion,
		Checksum:       Checksum(data),
	}
}

// Decode reverses Encode. The symbol string is normalized before splitting,
// each symbol is resolved through the reverse table, and the checksum is
// recomputed and compared against the stored metadata.
func Decode(data *EncodedData) ([]byte, error) {
	decoded, err := symbolsToBytes(data.Emojis)
	if err != nil {
		return nil, err
	}

	if data.OriginalLength != len(decoded) {
		return nil, fmt.Errorf("%w: length %d, metadata says %d",
			ErrChecksumMismatch, len(decoded), data.OriginalLength)
	}

	if sum := Checksum(decoded); sum != data.Checksum {
		return nil, fmt.Errorf("%w: computed %08x, stored %08x",
			ErrChecksumMismatch, sum, data.Checksum)
	}

	return decoded, nil
}

// symbolsToBytes normalizes a symbol string and maps every symbol back to
// its byte value. Characters outside the alphabet are rejected with their
// position.
func symbolsToBytes(s string) ([]byte, error) {
	table := reverseTable()
	normalized := Normalize(s)

	out := make([]byte, 0, len(normalized)/4)
	pos := 0
	for _, r := range normalized {
		b, ok := table[r]
		if !ok {
			return nil, &InvalidSymbolError{Position: pos, Symbol: r}
		}
		out = append(out, b)
		pos++
	}

	return out, nil
}
