// Package translate substitutes translated text into subtitle segments
// while preserving their timing, order, and count. Translation is
// best-effort: a failed or empty translation keeps the original text and
// the batch as a whole never fails on translation errors.
package translate

import (
	"context"
	"strings"

	"align2srt/internal/subtitle"
)

// Func is the injected translation capability. The adapter is agnostic
// to the provider behind it; timeouts and retries are the capability's
// own concern and any error is treated the same way.
type Func func(ctx context.Context, text string) (string, error)

// Options tunes how the adapter dispatches per-segment calls.
type Options struct {
	// MaxConcurrent caps in-flight translation calls. Values <= 1 run
	// the batch sequentially.
	MaxConcurrent int
	// RateLimitPerMin throttles capability invocations. 0 disables
	// throttling.
	RateLimitPerMin int
}

// Segments translates each segment's text via fn and returns a new slice
// with identical timing and ordering. Every input segment appears in the
// output exactly once: failures fall back to the original text.
//
// Cancellation is cooperative: when ctx is done the remaining segments
// keep their original text and the partial result is returned together
// with ctx.Err(), so an aborted batch still yields whatever was already
// resolved.
func Segments(ctx context.Context, segments []subtitle.Segment, fn Func, opts Options) ([]subtitle.Segment, error) {
	if len(segments) == 0 {
		return nil, nil
	}

	// Pre-fill with originals so every fallback path is a no-op.
	out := make([]subtitle.Segment, len(segments))
	copy(out, segments)

	if opts.MaxConcurrent > 1 {
		return translateConcurrent(ctx, segments, out, fn, opts)
	}

	for i, seg := range segments {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}
		if text, ok := translateOne(ctx, fn, seg.Text); ok {
			out[i].Text = text
		}
	}
	return out, nil
}

// translateOne invokes the capability and reports whether the result is
// usable. Errors and blank results both mean "keep the original".
func translateOne(ctx context.Context, fn Func, text string) (string, bool) {
	translated, err := fn(ctx, text)
	if err != nil {
		return "", false
	}
	translated = strings.TrimSpace(translated)
	if translated == "" {
		return "", false
	}
	return translated, true
}
