package emoji

import (
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// AlphabetSize is the number of symbols in the alphabet, one per byte value.
const AlphabetSize = 256

// symbols is the fixed alphabet: 256 distinct single-rune emoji indexed by
// byte value. Every entry is NFC-stable and free of variation selectors, so
// encoded output is always already in normalized form. The table is the
// single source of truth for both directions; it is defined once and never
// mutated.
var symbols = [AlphabetSize]rune{
	'😀', '😁', '😂', '😃', '😄', '😅', '😆', '😇', // 0x00-0x07
	'😈', '😉', '😊', '😋', '😌', '😍', '😎', '😏', // 0x08-0x0F
	'😐', '😑', '😒', '😓', '😔', '😕', '😖', '😗', // 0x10-0x17
	'😘', '😙', '😚', '😛', '😜', '😝', '😞', '😟', // 0x18-0x1F
	'😠', '😡', '😢', '😣', '😤', '😥', '😦', '😧', // 0x20-0x27
	'😨', '😩', '😪', '😫', '😬', '😭', '😮', '😯', // 0x28-0x2F
	'😰', '😱', '😲', '😳', '😴', '😵', '😶', '😷', // 0x30-0x37
	'😸', '😹', '😺', '😻', '😼', '😽', '😾', '😿', // 0x38-0x3F
	'🙀', '🙁', '🙂', '🙃', '🙄', '🙅', '🙆', '🙇', // 0x40-0x47
	'🙈', '🙉', '🙊', '🙋', '🙌', '🙍', '🙎', '🙏', // 0x48-0x4F
	'🐀', '🐁', '🐂', '🐃', '🐄', '🐅', '🐆', '🐇', // 0x50-0x57
	'🐈', '🐉', '🐊', '🐋', '🐌', '🐍', '🐎', '🐏', // 0x58-0x5F
	'🐐', '🐑', '🐒', '🐓', '🐔', '🐕', '🐖', '🐗', // 0x60-0x67
	'🐘', '🐙', '🐚', '🐛', '🐜', '🐝', '🐞', '🐟', // 0x68-0x6F
	'🐠', '🐡', '🐢', '🐣', '🐤', '🐥', '🐦', '🐧', // 0x70-0x77
	'🐨', '🐩', '🐪', '🐫', '🐬', '🐭', '🐮', '🐯', // 0x78-0x7F
	'🐰', '🐱', '🐲', '🐳', '🐴', '🐵', '🐶', '🐷', // 0x80-0x87
	'🐸', '🐹', '🐺', '🐻', '🐼', '🐽', '🐾', '🐿', // 0x88-0x8F
	'👀', '👁', '👂', '👃', '👄', '👅', '👆', '👇', // 0x90-0x97
	'👈', '👉', '👊', '👋', '👌', '👍', '👎', '👏', // 0x98-0x9F
	'🌰', '🌱', '🌲', '🌳', '🌴', '🌵', '🌶', '🌷', // 0xA0-0xA7
	'🌸', '🌹', '🌺', '🌻', '🌼', '🌽', '🌾', '🌿', // 0xA8-0xAF
	'🍀', '🍁', '🍂', '🍃', '🍄', '🍅', '🍆', '🍇', // 0xB0-0xB7
	'🍈', '🍉', '🍊', '🍋', '🍌', '🍍', '🍎', '🍏', // 0xB8-0xBF
	'🍐', '🍑', '🍒', '🍓', '🍔', '🍕', '🍖', '🍗', // 0xC0-0xC7
	'🍘', '🍙', '🍚', '🍛', '🍜', '🍝', '🍞', '🍟', // 0xC8-0xCF
	'🚀', '🚁', '🚂', '🚃', '🚄', '🚅', '🚆', '🚇', // 0xD0-0xD7
	'🚈', '🚉', '🚊', '🚋', '🚌', '🚍', '🚎', '🚏', // 0xD8-0xDF
	'🚐', '🚑', '🚒', '🚓', '🚔', '🚕', '🚖', '🚗', // 0xE0-0xE7
	'🚘', '🚙', '🚚', '🚛', '🚜', '🚝', '🚞', '🚟', // 0xE8-0xEF
	'🚠', '🚡', '🚢', '🚣', '🚤', '🚥', '🚦', '🚧', // 0xF0-0xF7
	'🚨', '🚩', '🚪', '🚫', '🚬', '🚭', '🚮', '🚯', // 0xF8-0xFF
}

// reverse maps a normalized symbol back to its byte value. Built lazily,
// read-only afterwards.
var (
	reverseOnce sync.Once
	reverse     map[rune]byte
)

func reverseTable() map[rune]byte {
	reverseOnce.Do(func() {
		reverse = make(map[rune]byte, AlphabetSize)
		for i, r := range symbols {
			// Seed from the normalized form of each symbol so lookups
			// after normalization always succeed, even if the table ever
			// carries a denormalized variant.
			for _, nr := range Normalize(string(r)) {
				reverse[nr] = byte(i)
			}
		}
	})
	return reverse
}

// Normalize converts text to the canonical form used by the codec: Unicode
// NFC followed by removal of the variation selectors U+FE0E and U+FE0F.
// NFC alone does not remove variation selectors, but platforms routinely add
// them during copy-paste, so equivalence here has to be wider than canonical
// equivalence.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	if !strings.ContainsAny(s, "\uFE0E\uFE0F") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\uFE0E' || r == '\uFE0F' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
