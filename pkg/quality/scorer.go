// Package quality produces the suggestive-language signal for a URL.
// Two strategies satisfy one capability: a model-backed external scorer
// and a deterministic keyword rule engine. A fallback policy selects
// between them at runtime, so the composite scorer never sees where a
// signal came from except through its Source field.
package quality

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jollyroger89816/content-analysis/models"
)

// ErrScorerUnavailable marks external scorer failures that are recovered
// locally by the rule fallback. It never surfaces as a batch failure.
var ErrScorerUnavailable = errors.New("quality scorer unavailable")

// Scorer scores one URL's paragraphs for suggestive language.
type Scorer interface {
	Score(ctx context.Context, url string, paragraphs []string) (models.QualitySignal, error)
}

// Fallback tries the primary scorer and falls back to the secondary on
// any failure. The secondary must be infallible (the rule engine is).
type Fallback struct {
	primary   Scorer
	secondary Scorer
	logger    *slog.Logger
}

// NewFallback wires the fallback policy. primary may be nil, in which
// case every score comes from the secondary.
func NewFallback(primary, secondary Scorer, logger *slog.Logger) *Fallback {
	return &Fallback{primary: primary, secondary: secondary, logger: logger}
}

func (f *Fallback) Score(ctx context.Context, url string, paragraphs []string) (models.QualitySignal, error) {
	if f.primary != nil {
		signal, err := f.primary.Score(ctx, url, paragraphs)
		if err == nil {
			return signal, nil
		}
		f.logger.Warn("external scorer failed, falling back to rules", "url", url, "error", err)
	}
	return f.secondary.Score(ctx, url, paragraphs)
}
