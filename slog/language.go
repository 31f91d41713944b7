package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagelens"
)

// Ensure LoggingLanguageIdentifier implements pagelens.LanguageIdentifier.
var _ pagelens.LanguageIdentifier = (*LoggingLanguageIdentifier)(nil)

// LoggingLanguageIdentifier wraps a LanguageIdentifier with debug logging.
type LoggingLanguageIdentifier struct {
	next   pagelens.LanguageIdentifier
	logger *slog.Logger
}

// NewLoggingLanguageIdentifier creates a new LoggingLanguageIdentifier.
func NewLoggingLanguageIdentifier(next pagelens.LanguageIdentifier, logger *slog.Logger) *LoggingLanguageIdentifier {
	return &LoggingLanguageIdentifier{next: next, logger: logger}
}

// IdentifyLanguage delegates to the wrapped identifier and logs the result
// at debug level.
func (l *LoggingLanguageIdentifier) IdentifyLanguage(ctx context.Context, block pagelens.ExtractedCodeBlock) (language string, err error) {
	defer func(begin time.Time) {
		l.logger.Debug("identify language",
			"hint", block.Hint,
			"chars", len(block.Code),
			"language", language,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.IdentifyLanguage(ctx, block)
}
