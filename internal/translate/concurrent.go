package translate

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"align2srt/internal/subtitle"
)

// translateConcurrent fans segment translations out over an errgroup
// with bounded parallelism. Results are written into their original
// index slot, never collected by completion order, so output ordering is
// identical to the input regardless of scheduling.
func translateConcurrent(ctx context.Context, segments []subtitle.Segment, out []subtitle.Segment, fn Func, opts Options) ([]subtitle.Segment, error) {
	var limiter *rate.Limiter
	if opts.RateLimitPerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RateLimitPerMin)/60.0), 1)
	}

	// Plain Group rather than WithContext: a failed translation falls
	// back to the original text instead of cancelling its siblings.
	var g errgroup.Group
	g.SetLimit(opts.MaxConcurrent)

	cancelled := false
	for i, seg := range segments {
		select {
		case <-ctx.Done():
			cancelled = true
		default:
		}
		if cancelled {
			break
		}

		i, seg := i, seg
		g.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					return nil
				}
			}
			if text, ok := translateOne(ctx, fn, seg.Text); ok {
				out[i].Text = text
			}
			return nil
		})
	}

	// Goroutines never return errors; Wait is for completion only.
	_ = g.Wait()

	if cancelled {
		return out, ctx.Err()
	}
	return out, nil
}
