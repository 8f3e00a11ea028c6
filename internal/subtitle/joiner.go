package subtitle

import (
	"strings"
	"unicode/utf8"
)

// openingPunctuation contains bracket-like characters that suppress the
// space after them when joining tokens.
var openingPunctuation = map[rune]struct{}{
	'(': {}, '[': {}, '{': {},
	'（': {}, // （
	'《': {}, // 《
	'「': {}, // 「
	'『': {}, // 『
	'【': {}, // 【
	'“': {}, // “
	'‘': {}, // ‘
}

// closingPunctuation contains characters that suppress the space before
// them when joining tokens.
var closingPunctuation = map[rune]struct{}{
	'.': {}, ',': {}, ';': {}, ':': {}, '!': {}, '?': {},
	')': {}, ']': {}, '}': {},
	'）': {}, // ）
	'》': {}, // 》
	'」': {}, // 」
	'』': {}, // 』
	'】': {}, // 】
	'”': {}, // ”
	'’': {}, // ’
	'。': {}, // 。
	'，': {}, // ，
	'、': {}, // 、
	'！': {}, // ！
	'？': {}, // ？
	'；': {}, // ；
	'：': {}, // ：
	'…': {}, // …
}

// Join reassembles token texts into display text. Adjacent tokens are
// separated by a single space unless either boundary character is CJK,
// the left token ends with an opening bracket, or the right token begins
// with closing punctuation.
func Join(texts []string) string {
	if len(texts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(texts[0])
	for i := 1; i < len(texts); i++ {
		prev, cur := texts[i-1], texts[i]
		if needsSpace(prev, cur) {
			b.WriteByte(' ')
		}
		b.WriteString(cur)
	}
	return b.String()
}

func needsSpace(left, right string) bool {
	if left == "" || right == "" {
		return false
	}
	if endsWithCJK(left) || startsWithCJK(right) {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(left)
	if _, ok := openingPunctuation[last]; ok {
		return false
	}
	first, _ := utf8.DecodeRuneInString(right)
	if _, ok := closingPunctuation[first]; ok {
		return false
	}
	return true
}

// Clean trims leading/trailing whitespace and collapses internal runs of
// whitespace to a single space. Punctuation is preserved exactly.
func Clean(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
