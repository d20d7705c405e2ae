// Package emoji implements a lossless codec between arbitrary byte sequences
// and a fixed 256-symbol emoji alphabet.
//
// Each byte value 0-255 maps to exactly one symbol and back: the code adds no
// compression and loses no information, so a ciphertext of n bytes always
// renders as exactly n symbols. Because the mapping is a fixed bijection
// independent of any key, the emoji form leaks nothing beyond the byte length
// of its input.
//
// # Normalization
//
// Some emoji have multiple equivalent code-point sequences (most commonly a
// trailing variation selector added by a rendering platform during
// copy-paste). Every decode input is therefore normalized first: NFC, then
// stripping of the variation selectors U+FE0E and U+FE0F. The alphabet
// itself contains only NFC-stable, selector-free single runes, so encode
// output is already in normalized form and the round trip is symmetric.
//
// # Framing
//
// [Armor] wraps encoded payloads in a transport frame carrying a version
// byte, the payload length, and a 32-bit checksum — all rendered through the
// same alphabet, so the armored form is still plain emoji text suitable for
// copy-paste. [Dearmor] validates the frame and rejects truncated or
// corrupted input before any consumer sees the payload.
package emoji
