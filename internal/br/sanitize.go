package br

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SanitizeString trims surrounding whitespace, collapses internal runs of
// whitespace to a single space and drops control characters. Intended for
// free-text fields (names, addresses, professions) before persistence.
func SanitizeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// FixMojibake repairs UTF-8 text that was misread as Latin-1 and re-encoded,
// the classic "JoÃ£o" corruption. Every rune of a corrupted string falls in
// U+0000..U+00FF, so the original bytes can be recovered by narrowing each
// rune back to a byte; if those bytes form valid multi-byte UTF-8 the decoded
// form is returned. Strings that do not match the corruption pattern are
// returned unchanged, so the repair is safe to apply repeatedly.
func FixMojibake(s string) string {
	if !strings.ContainsRune(s, 'Ã') && !strings.ContainsRune(s, 'Â') {
		return s
	}

	raw := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			return s
		}
		raw = append(raw, byte(r))
	}

	if !utf8.Valid(raw) {
		return s
	}
	decoded := string(raw)
	// A genuine repair shortens the string; equality means it was plain ASCII.
	if decoded == s {
		return s
	}
	return decoded
}
