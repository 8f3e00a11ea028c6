package subtitle

import (
	"strings"
	"testing"
	"unicode"
)

func chars(text string, step float64) []AlignedChar {
	runes := []rune(text)
	out := make([]AlignedChar, len(runes))
	for i, r := range runes {
		out[i] = AlignedChar{Text: string(r), Start: float64(i) * step, End: float64(i+1) * step}
	}
	return out
}

func TestTokenize_Empty(t *testing.T) {
	if tokens := Tokenize(nil); tokens != nil {
		t.Errorf("expected nil for empty input, got %v", tokens)
	}
}

func TestTokenize_MixedCJKAndLatin(t *testing.T) {
	// 中 and 文 are one token each; "hi" is a single whitespace-delimited run.
	input := chars("中文 hi", 0.5)

	tokens := Tokenize(input)
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}

	want := []string{"中", "文", "hi"}
	for i, w := range want {
		if tokens[i].Text != w {
			t.Errorf("token %d text = %q, want %q", i, tokens[i].Text, w)
		}
	}

	// CJK tokens carry their own timestamps.
	if tokens[0].Start != 0 || tokens[0].End != 0.5 {
		t.Errorf("token 0 timing = [%v, %v], want [0, 0.5]", tokens[0].Start, tokens[0].End)
	}
	// The latin run starts at its first character and ends at the last.
	if tokens[2].Start != 1.5 || tokens[2].End != 2.5 {
		t.Errorf("token 2 timing = [%v, %v], want [1.5, 2.5]", tokens[2].Start, tokens[2].End)
	}
}

func TestTokenize_CJKFlushEndsPendingRunAtItsStart(t *testing.T) {
	// A latin run interrupted by a CJK character ends where that
	// character begins.
	input := chars("ab中", 0.5)

	tokens := Tokenize(input)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Text != "ab" || tokens[0].End != 1.0 {
		t.Errorf("token 0 = %+v, want text ab ending at 1.0 (中's start)", tokens[0])
	}
	if tokens[1].Text != "中" {
		t.Errorf("token 1 text = %q, want 中", tokens[1].Text)
	}
}

func TestTokenize_ConsecutiveWhitespace(t *testing.T) {
	tokens := Tokenize(chars("a   b", 0.1))
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %v", len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok.Text == "" {
			t.Errorf("token %d has empty text", i)
		}
	}
}

func TestTokenize_ReassemblyPreservesNonWhitespace(t *testing.T) {
	inputs := []string{
		"hello world",
		"中文混合 latin text",
		"  leading and trailing  ",
		"你好。this is a test！",
	}

	for _, text := range inputs {
		tokens := Tokenize(chars(text, 0.1))

		var b strings.Builder
		for _, tok := range tokens {
			b.WriteString(tok.Text)
		}
		got := b.String()

		want := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, text)

		if got != want {
			t.Errorf("reassembled %q from %q, want %q", got, text, want)
		}
	}
}

func TestTokenize_TimingOrdered(t *testing.T) {
	tokens := Tokenize(chars("one two 三 four", 0.25))
	for i, tok := range tokens {
		if tok.End < tok.Start {
			t.Errorf("token %d %q has end %v before start %v", i, tok.Text, tok.End, tok.Start)
		}
		if i > 0 && tok.Start < tokens[i-1].Start {
			t.Errorf("token %d starts before token %d", i, i-1)
		}
	}
}
