package emoji

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Armor frame layout, all fields emoji-encoded through the same alphabet:
//
//	version (1 byte) || payload length (uint32 BE) || checksum (uint32 BE) || payload
//
// The frame keeps the checksum and length metadata embedded in the text
// itself, so the armored string is self-contained: copy-paste is the only
// transport it needs.
const (
	armorVersion    = 0x01
	armorHeaderSize = 9
)

var (
	// ErrTruncated is returned when armored text is shorter than the frame
	// header.
	ErrTruncated = errors.New("armored text truncated")

	// ErrUnsupportedVersion is returned when the frame version byte is not
	// recognized.
	ErrUnsupportedVersion = errors.New("unsupported encoding version")
)

// Armor renders encoded data as a single self-describing emoji string.
func Armor(data *EncodedData) string {
	header := make([]byte, armorHeaderSize)
	header[0] = armorVersion
	binary.BigEndian.PutUint32(header[1:5], uint32(data.OriginalLength))
	binary.BigEndian.PutUint32(header[5:9], data.Checksum)

	return Encode(header).Emojis + data.Emojis
}

// Dearmor parses an armored emoji string back into encoded data. Validation
// order: symbol lookup, header size, version, payload length, checksum.
func Dearmor(text string) (*EncodedData, error) {
	raw, err := symbolsToBytes(text)
	if err != nil {
		return nil, err
	}

	if len(raw) < armorHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncated, len(raw), armorHeaderSize)
	}

	if raw[0] != armorVersion {
		return nil, fmt.Errorf("%w: %#02x", ErrUnsupportedVersion, raw[0])
	}

	length := binary.BigEndian.Uint32(raw[1:5])
	checksum := binary.BigEndian.Uint32(raw[5:9])
	payload := raw[armorHeaderSize:]

	if int(length) != len(payload) {
		return nil, fmt.Errorf("%w: payload is %d bytes, frame says %d", ErrTruncated, len(payload), length)
	}

	if sum := Checksum(payload); sum != checksum {
		return nil, fmt.Errorf("%w: computed %08x, stored %08x", ErrChecksumMismatch, sum, checksum)
	}

	return &EncodedData{
		Emojis:         Encode(payload).Emojis,
		OriginalLength: len(payload),
		Encoding:       EncodingVersion,
		Checksum:       checksum,
	}, nil
}
