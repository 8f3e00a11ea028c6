package subtitle

import (
	"errors"
	"fmt"

	"github.com/rivo/uniseg"
)

// ErrMalformedAlignment indicates a structural problem with the alignment
// payload (mismatched array lengths or an inverted time interval). The call
// must not be retried without fixing the input.
var ErrMalformedAlignment = errors.New("malformed alignment")

// Alignment is the character-level timing payload produced by a
// text-to-speech service. The three arrays are parallel: Characters[i]
// was spoken from StartTimes[i] to EndTimes[i].
type Alignment struct {
	Characters []string  `json:"characters"`
	StartTimes []float64 `json:"character_start_times_seconds"`
	EndTimes   []float64 `json:"character_end_times_seconds"`
}

// AlignedChar is one grapheme cluster with its timing.
type AlignedChar struct {
	Text  string
	Start float64
	End   float64
}

// Token is a word-level unit produced by Tokenize.
type Token struct {
	Text  string
	Start float64
	End   float64
}

// Segment is one timed unit of subtitle text. Segments are never mutated
// after creation; translation produces new Segments with the same timing.
type Segment struct {
	Text  string
	Start float64
	End   float64
}

// Config holds the boundary rules for one Build call. Values are used as
// given: a MaxCharsPerLine of 0 degenerates to splitting at every
// delimiter once text has accumulated, which is permitted.
type Config struct {
	Delimiters      []rune
	SentenceEnders  []rune
	MaxCharsPerLine int
	PauseThreshold  float64
}

// Mode selects which boundary rules are active and which unit stream
// feeds the segment builder.
type Mode struct {
	kind         modeKind
	wordsPerLine int
}

type modeKind int

const (
	modeStandard modeKind = iota
	modeWordLevel
	modeTranslation
)

// Standard splits on sentence enders, pauses, and the display line-length
// budget.
func Standard() Mode { return Mode{kind: modeStandard} }

// WordLevel groups tokens, at most wordsPerLine per segment. Values below
// 1 are treated as 1.
func WordLevel(wordsPerLine int) Mode {
	if wordsPerLine < 1 {
		wordsPerLine = 1
	}
	return Mode{kind: modeWordLevel, wordsPerLine: wordsPerLine}
}

// TranslationOriented splits on sentence enders and pauses only, so a
// translator always receives complete semantic units regardless of
// display width.
func TranslationOriented() Mode { return Mode{kind: modeTranslation} }

// Validate checks the structural preconditions of the alignment. It is
// the only validation performed by this package.
func (a Alignment) Validate() error {
	if len(a.Characters) != len(a.StartTimes) || len(a.Characters) != len(a.EndTimes) {
		return fmt.Errorf("%w: %d characters, %d start times, %d end times",
			ErrMalformedAlignment, len(a.Characters), len(a.StartTimes), len(a.EndTimes))
	}
	for i := range a.Characters {
		if a.EndTimes[i] < a.StartTimes[i] {
			return fmt.Errorf("%w: character %d has end %.3f before start %.3f",
				ErrMalformedAlignment, i, a.EndTimes[i], a.StartTimes[i])
		}
	}
	return nil
}

// Clusters converts the parallel arrays into grapheme clusters. A
// character that does not start a new grapheme cluster (combining marks,
// matras) is merged into the preceding cluster, extending its end time,
// so accented scripts are never split mid-grapheme.
func (a Alignment) Clusters() []AlignedChar {
	if len(a.Characters) == 0 {
		return nil
	}

	chars := make([]AlignedChar, 0, len(a.Characters))
	for i, c := range a.Characters {
		if len(chars) > 0 {
			prev := &chars[len(chars)-1]
			if uniseg.GraphemeClusterCount(prev.Text+c) == uniseg.GraphemeClusterCount(prev.Text) {
				prev.Text += c
				prev.End = a.EndTimes[i]
				continue
			}
		}
		chars = append(chars, AlignedChar{Text: c, Start: a.StartTimes[i], End: a.EndTimes[i]})
	}
	return chars
}

// runeSet builds a lookup set from a rune slice.
func runeSet(runes []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		set[r] = struct{}{}
	}
	return set
}
