package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagelens"
)

var (
	_ pagelens.ContentExtractor   = (*LoggingContentExtractor)(nil)
	_ pagelens.CodeBlockExtractor = (*LoggingCodeBlockExtractor)(nil)
)

// LoggingContentExtractor wraps a ContentExtractor with logging.
type LoggingContentExtractor struct {
	next   pagelens.ContentExtractor
	name   string
	logger *slog.Logger
}

// NewLoggingContentExtractor creates a new LoggingContentExtractor. The name
// identifies the wrapped extractor in log records.
func NewLoggingContentExtractor(next pagelens.ContentExtractor, name string, logger *slog.Logger) *LoggingContentExtractor {
	return &LoggingContentExtractor{next: next, name: name, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingContentExtractor) Extract(html string, pageURL string) (result *pagelens.ExtractionResult, err error) {
	defer func(begin time.Time) {
		var chars, links int
		framework := "(unknown)"
		if result != nil {
			chars = len(result.Content)
			links = len(result.Links)
			if result.Framework != pagelens.FrameworkUnknown {
				framework = string(result.Framework)
			}
		}
		e.logger.Info("extract",
			"extractor", e.name,
			"url", pageURL,
			"framework", framework,
			"chars", chars,
			"links", links,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, pageURL)
}

// LoggingCodeBlockExtractor wraps a CodeBlockExtractor with logging.
type LoggingCodeBlockExtractor struct {
	next   pagelens.CodeBlockExtractor
	logger *slog.Logger
}

// NewLoggingCodeBlockExtractor creates a new LoggingCodeBlockExtractor.
func NewLoggingCodeBlockExtractor(next pagelens.CodeBlockExtractor, logger *slog.Logger) *LoggingCodeBlockExtractor {
	return &LoggingCodeBlockExtractor{next: next, logger: logger}
}

// ExtractCodeBlocks delegates to the wrapped extractor and logs the operation.
func (e *LoggingCodeBlockExtractor) ExtractCodeBlocks(html string) (blocks []pagelens.ExtractedCodeBlock, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract code blocks",
			"bytes", len(html),
			"blocks", len(blocks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractCodeBlocks(html)
}
