package subtitle

import "unicode/utf8"

// IsCJK reports whether r is a CJK unified ideograph. CJK text is
// tokenized one character at a time rather than by whitespace, and needs
// no inter-word spacing when joined. Extension blocks and CJK punctuation
// can be added here without touching any caller.
func IsCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// startsWithCJK reports whether the first rune of s is a CJK ideograph.
func startsWithCJK(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && IsCJK(r)
}

// endsWithCJK reports whether the last rune of s is a CJK ideograph.
func endsWithCJK(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r != utf8.RuneError && IsCJK(r)
}
