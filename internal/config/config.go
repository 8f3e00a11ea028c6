package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"align2srt/internal/subtitle"
)

// Settings holds the application-level segmentation and translation
// parameters. The segmentation core takes an immutable subtitle.Config
// per call; this type is where callers (CLI, config files) assemble one.
type Settings struct {
	Delimiters        []string `toml:"delimiters"`
	SentenceEnders    []string `toml:"sentence_enders"`
	CJKCharsPerLine   int      `toml:"cjk_chars_per_line"`
	LatinCharsPerLine int      `toml:"latin_chars_per_line"`
	PauseThreshold    float64  `toml:"pause_threshold"`
	WordsPerLine      int      `toml:"words_per_line"`

	MaxConcurrent   int `toml:"max_concurrent"`
	RateLimitPerMin int `toml:"rate_limit_per_min"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Delimiters:        []string{" ", "\n", "।", "？", "?", "!", "！", ",", "，", `"`, "“", "”"},
		SentenceEnders:    []string{".", "\n", "。", "।", "？", "?", "!", "！", "…"},
		CJKCharsPerLine:   25,
		LatinCharsPerLine: 42,
		PauseThreshold:    0.2,
		WordsPerLine:      1,
		MaxConcurrent:     3,
		RateLimitPerMin:   30,
	}
}

// Load reads a TOML settings file over the defaults: only keys present
// in the file override the built-in values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	s := Default()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}

// Segmentation builds the core's immutable per-call config. The
// line-length budget follows the language: CJK scripts pack more
// information per character, so the budget is smaller.
func (s *Settings) Segmentation(langTag string) subtitle.Config {
	maxChars := s.LatinCharsPerLine
	if IsCJKLanguage(langTag) {
		maxChars = s.CJKCharsPerLine
	}
	return subtitle.Config{
		Delimiters:      firstRunes(s.Delimiters),
		SentenceEnders:  firstRunes(s.SentenceEnders),
		MaxCharsPerLine: maxChars,
		PauseThreshold:  s.PauseThreshold,
	}
}

// firstRunes maps config strings to their first rune, dropping empties.
// Settings files spell delimiters as one-character strings.
func firstRunes(values []string) []rune {
	runes := make([]rune, 0, len(values))
	for _, v := range values {
		for _, r := range v {
			runes = append(runes, r)
			break
		}
	}
	return runes
}
