package scan

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/pagelens"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultConcurrency is the number of code blocks identified in parallel.
const DefaultConcurrency = 4

// Analyzer identifies the languages of a page's code blocks.
type Analyzer struct {
	Identifier pagelens.LanguageIdentifier

	// Concurrency bounds in-flight identification requests.
	// Zero means DefaultConcurrency.
	Concurrency int

	// Limiter, if set, paces identification requests.
	Limiter *rate.Limiter

	Logger *slog.Logger
}

// Analyze identifies the language of every block and aggregates the
// results. A block whose identification fails is counted under its
// normalized hint, or as plain text when it has none. Only context
// cancellation aborts the analysis.
func (a *Analyzer) Analyze(ctx context.Context, blocks []pagelens.ExtractedCodeBlock) (*pagelens.CodeAnalysis, error) {
	if len(blocks) == 0 {
		return &pagelens.CodeAnalysis{Languages: []pagelens.CodeLanguageInfo{}}, nil
	}

	logger := a.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	languages := make([]string, len(blocks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, block := range blocks {
		g.Go(func() error {
			if a.Limiter != nil {
				if err := a.Limiter.Wait(gctx); err != nil {
					return err
				}
			}
			lang, err := a.Identifier.IdentifyLanguage(gctx, block)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Warn("language identification failed", "block", i, "err", err)
				lang = fallbackLanguage(block)
			}
			languages[i] = lang
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &pagelens.CodeAnalysis{
		Languages:       pagelens.CountLanguages(languages),
		TotalCodeBlocks: len(blocks),
		HasCodeExamples: true,
	}, nil
}

func fallbackLanguage(block pagelens.ExtractedCodeBlock) string {
	if hint := pagelens.NormalizeLanguageHint(block.Hint); hint != "" {
		return hint
	}
	return pagelens.PlainText
}
