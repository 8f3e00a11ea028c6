package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"align2srt/internal/config"
	"align2srt/internal/subtitle"
)

var segmentCmd = &cobra.Command{
	Use:   "segment <alignment.json>",
	Short: "Build an SRT file from a character-level alignment payload",
	Long: `Segment reads a JSON alignment payload (an ElevenLabs with-timestamps
response or a bare alignment object) and writes an SRT subtitle file.

Modes:
  standard     split on sentence enders, pauses, and line length
  words        group N tokens per subtitle (word-level timing)
  translation  split on sentence enders and pauses only, keeping
               complete semantic units for machine translation`,
	Args: cobra.ExactArgs(1),
	RunE: runSegment,
}

var (
	output       string
	langTag      string
	configPath   string
	modeName     string
	wordsPerLine int
	maxChars     int
	pause        float64
)

func init() {
	defaults := config.Default()

	segmentCmd.Flags().StringVarP(&output, "output", "o", "", "output SRT path (default: <input>.srt)")
	segmentCmd.Flags().StringVarP(&langTag, "language", "l", "", "language tag (selects the CJK or Latin line budget)")
	segmentCmd.Flags().StringVar(&configPath, "config", "", "TOML settings file")
	segmentCmd.Flags().StringVarP(&modeName, "mode", "m", "standard", "segmentation mode: standard, words, translation")
	segmentCmd.Flags().IntVar(&wordsPerLine, "words-per-line", defaults.WordsPerLine, "tokens per subtitle in words mode")
	segmentCmd.Flags().IntVar(&maxChars, "max-chars", 0, "override the characters-per-line budget")
	segmentCmd.Flags().Float64Var(&pause, "pause", defaults.PauseThreshold, "pause threshold in seconds")

	rootCmd.AddCommand(segmentCmd)
}

// alignmentPayload mirrors the with-timestamps response shape. The
// normalized alignment is preferred when present; a bare alignment
// object is also accepted.
type alignmentPayload struct {
	Characters          []string            `json:"characters"`
	StartTimes          []float64           `json:"character_start_times_seconds"`
	EndTimes            []float64           `json:"character_end_times_seconds"`
	Alignment           *subtitle.Alignment `json:"alignment"`
	NormalizedAlignment *subtitle.Alignment `json:"normalized_alignment"`
}

func (p *alignmentPayload) resolve() subtitle.Alignment {
	if p.NormalizedAlignment != nil && len(p.NormalizedAlignment.Characters) > 0 {
		return *p.NormalizedAlignment
	}
	if p.Alignment != nil && len(p.Alignment.Characters) > 0 {
		return *p.Alignment
	}
	return subtitle.Alignment{
		Characters: p.Characters,
		StartTimes: p.StartTimes,
		EndTimes:   p.EndTimes,
	}
}

func runSegment(cmd *cobra.Command, args []string) error {
	inputPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	settings := config.Default()
	if configPath != "" {
		settings, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}

	// Flags override the settings file only when set explicitly.
	if cmd.Flags().Changed("pause") {
		settings.PauseThreshold = pause
	}
	if cmd.Flags().Changed("words-per-line") {
		settings.WordsPerLine = wordsPerLine
	}

	cfg := settings.Segmentation(langTag)
	if maxChars > 0 {
		cfg.MaxCharsPerLine = maxChars
	}

	var mode subtitle.Mode
	switch modeName {
	case "standard":
		mode = subtitle.Standard()
	case "words":
		mode = subtitle.WordLevel(settings.WordsPerLine)
	case "translation":
		mode = subtitle.TranslationOriented()
	default:
		return fmt.Errorf("unknown mode: %s", modeName)
	}

	slog.Info("reading alignment", "input", filepath.Base(inputPath))

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read alignment: %w", err)
	}

	var payload alignmentPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("parse alignment JSON: %w", err)
	}
	alignment := payload.resolve()

	segments, err := subtitle.Build(alignment, cfg, mode)
	if err != nil {
		return err
	}
	if len(segments) == 0 {
		return fmt.Errorf("alignment produced no segments")
	}

	outputPath := output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".srt"
	}

	cues := subtitle.FormatCues(segments)
	if err := os.WriteFile(outputPath, []byte(renderSRT(cues)), 0644); err != nil {
		return fmt.Errorf("write SRT file: %w", err)
	}

	slog.Info("SRT file saved", "path", outputPath, "segments", len(cues))
	return nil
}

// renderSRT serializes cues in SRT form.
func renderSRT(cues []subtitle.Cue) string {
	var sb strings.Builder
	for _, cue := range cues {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n\n",
			cue.Index, formatTimecode(cue.Start), formatTimecode(cue.End), cue.Text)
	}
	return sb.String()
}

// formatTimecode converts seconds to the SRT time format HH:MM:SS,mmm.
func formatTimecode(seconds float64) string {
	total := math.Abs(seconds)
	hours := int(total / 3600)
	remainder := math.Mod(total, 3600)
	minutes := int(remainder / 60)
	secs := math.Mod(remainder, 60)
	millis := int(math.Mod(secs, 1) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, int(secs), millis)
}
