package subtitle

import "strings"

// Tokenize groups a timed character stream into tokens. CJK characters
// become one token each; non-CJK runs delimited by whitespace accumulate
// into a single token. Whitespace itself never produces a token, so the
// result contains no empty-text tokens.
func Tokenize(chars []AlignedChar) []Token {
	if len(chars) == 0 {
		return nil
	}

	var tokens []Token
	var current strings.Builder
	var wordStart float64
	haveWord := false

	for i, c := range chars {
		if !haveWord {
			wordStart = c.Start
			haveWord = true
		}

		// CJK: flush the pending run, then emit the character on its own.
		// The pending run ends where this character begins.
		if startsWithCJK(c.Text) {
			if current.Len() > 0 {
				tokens = append(tokens, Token{Text: current.String(), Start: wordStart, End: c.Start})
				current.Reset()
			}
			tokens = append(tokens, Token{Text: c.Text, Start: c.Start, End: c.End})
			haveWord = false
			continue
		}

		// Whitespace delimits the current run.
		if strings.TrimSpace(c.Text) == "" {
			if current.Len() > 0 {
				tokens = append(tokens, Token{Text: current.String(), Start: wordStart, End: c.End})
				current.Reset()
			}
			haveWord = false
			continue
		}

		current.WriteString(c.Text)
		if i == len(chars)-1 {
			tokens = append(tokens, Token{Text: current.String(), Start: wordStart, End: c.End})
		}
	}

	return tokens
}
