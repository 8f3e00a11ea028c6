package subtitle

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// unit is one position in the stream the builder walks: a grapheme
// cluster in character modes, a token in word-level mode.
type unit struct {
	text  string
	start float64
	end   float64
}

// accumulation is the builder's state between boundaries: the rune and
// unit counts of the pending segment and its start time.
type accumulation struct {
	runes   int
	units   int
	start   float64
	started bool
}

func (a *accumulation) add(u unit) {
	if !a.started {
		a.start = u.start
		a.started = true
	}
	a.runes += utf8.RuneCountInString(u.text)
	a.units++
}

func (a *accumulation) reset() {
	a.runes = 0
	a.units = 0
	a.started = false
}

// boundaryRule decides whether the segment under accumulation ends at
// the current unit. Rules are evaluated in order and ORed: any firing
// rule is sufficient.
type boundaryRule func(cur unit, next *unit, acc *accumulation) bool

// Build converts an alignment into an ordered sequence of timed
// segments. It fails fast with ErrMalformedAlignment before producing
// any output; all configuration values are used as given. Segment start
// times are non-decreasing across the result, but consecutive segments
// may overlap when the alignment contains zero-width or overlapping
// boundary characters.
func Build(a Alignment, cfg Config, mode Mode) ([]Segment, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	chars := a.Clusters()
	if len(chars) == 0 {
		return nil, nil
	}

	enders := runeSet(cfg.SentenceEnders)
	delims := runeSet(cfg.Delimiters)

	sentenceEnd := func(cur unit, _ *unit, _ *accumulation) bool {
		return strings.ContainsFunc(cur.text, func(r rune) bool {
			_, ok := enders[r]
			return ok
		})
	}
	pauseAfter := func(cur unit, next *unit, _ *accumulation) bool {
		return next != nil && next.start-cur.end >= cfg.PauseThreshold
	}

	var rules []boundaryRule
	var units []unit
	joinUnits := directConcat

	switch mode.kind {
	case modeWordLevel:
		tokens := mergePunctuationTokens(Tokenize(chars), enders, delims)
		units = make([]unit, len(tokens))
		for i, t := range tokens {
			units[i] = unit{text: t.Text, start: t.Start, end: t.End}
		}
		wordCount := func(_ unit, _ *unit, acc *accumulation) bool {
			return acc.units >= mode.wordsPerLine
		}
		rules = []boundaryRule{sentenceEnd, pauseAfter, wordCount}
		joinUnits = Join
	case modeTranslation:
		units = charUnits(chars)
		rules = []boundaryRule{sentenceEnd, pauseAfter}
	default: // Standard
		units = charUnits(chars)
		lengthAtDelimiter := func(cur unit, _ *unit, acc *accumulation) bool {
			if acc.runes <= cfg.MaxCharsPerLine {
				return false
			}
			r, _ := utf8.DecodeRuneInString(cur.text)
			_, ok := delims[r]
			return ok
		}
		rules = []boundaryRule{sentenceEnd, pauseAfter, lengthAtDelimiter}
	}

	return run(units, rules, joinUnits), nil
}

// run walks the unit stream and emits a segment whenever any rule fires
// or the stream ends. Accumulations that clean to nothing are skipped;
// the next segment starts at its own first unit.
func run(units []unit, rules []boundaryRule, join func([]string) string) []Segment {
	var segments []Segment
	var acc accumulation
	var pending []string

	for i := range units {
		cur := units[i]
		var next *unit
		if i+1 < len(units) {
			next = &units[i+1]
		}

		acc.add(cur)
		pending = append(pending, cur.text)

		boundary := next == nil
		for _, rule := range rules {
			if boundary {
				break
			}
			boundary = rule(cur, next, &acc)
		}
		if !boundary {
			continue
		}

		if text := Clean(join(pending)); text != "" {
			segments = append(segments, Segment{Text: text, Start: acc.start, End: cur.end})
		}
		acc.reset()
		pending = pending[:0]
	}

	return segments
}

func charUnits(chars []AlignedChar) []unit {
	units := make([]unit, len(chars))
	for i, c := range chars {
		units[i] = unit{text: c.Text, start: c.Start, end: c.End}
	}
	return units
}

func directConcat(texts []string) string {
	return strings.Join(texts, "")
}

// mergePunctuationTokens folds tokens made purely of delimiter or
// sentence-ender runes into the preceding token, so punctuation never
// occupies a subtitle of its own. A leading punctuation token with no
// predecessor is kept as is.
func mergePunctuationTokens(tokens []Token, enders, delims map[rune]struct{}) []Token {
	if len(tokens) == 0 {
		return tokens
	}

	isPunctuation := func(text string) bool {
		seen := false
		for _, r := range text {
			if unicode.IsSpace(r) {
				continue
			}
			seen = true
			if _, ok := enders[r]; ok {
				continue
			}
			if _, ok := delims[r]; ok {
				continue
			}
			return false
		}
		return seen
	}

	merged := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if len(merged) > 0 && isPunctuation(t.Text) {
			prev := &merged[len(merged)-1]
			prev.Text += t.Text
			prev.End = t.End
			continue
		}
		merged = append(merged, t)
	}
	return merged
}
