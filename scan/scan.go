// Package scan orchestrates single-page scans: fetching with retry,
// primary and fallback content extraction, code block extraction, and
// storing the outputs in a session store.
package scan

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/pagelens"
	"github.com/google/uuid"
)

// Scanner fetches a page and runs the configured extractors over it.
// Primary and Store are optional. Fallback is required by
// ExtractPageContent and ExtractPageContentWithCode, CodeBlocks by
// ExtractCodeBlocks, and Structure by ExtractOutline.
type Scanner struct {
	Fetcher     pagelens.Fetcher
	Primary     pagelens.ContentExtractor
	Fallback    pagelens.ContentExtractor
	CodeBlocks  pagelens.CodeBlockExtractor
	Structure   pagelens.StructureExtractor
	Store       pagelens.SessionStore
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// ExtractPageContent fetches pageURL and extracts its main content, trying
// the primary extractor first and the fallback extractor second. On success
// the title, content, links, navigation, and architecture are stored.
func (s *Scanner) ExtractPageContent(ctx context.Context, pageURL string) (*pagelens.ExtractionResult, error) {
	logger := s.logger("extract", pageURL)

	html, err := s.fetch(ctx, pageURL, logger)
	if err != nil {
		return nil, err
	}

	var result *pagelens.ExtractionResult
	if s.Primary != nil {
		result, err = s.Primary.Extract(html, pageURL)
		if err != nil {
			logger.Warn("primary extraction failed, trying fallback", "err", err)
			result = nil
		}
	}
	if result == nil {
		result, err = s.Fallback.Extract(html, pageURL)
		if err != nil {
			logger.Error("both extraction methods failed", "err", err)
			return nil, pagelens.Errorf(pagelens.ENOTFOUND, "could not extract readable content from this page")
		}
	}
	logger.Info("extraction successful", "links", len(result.Links), "chars", len(result.Content))

	if err := s.store(ctx, map[string]any{
		pagelens.KeyPageTitle:        result.Title,
		pagelens.KeyPageContent:      result.Content,
		pagelens.KeyPageLinks:        result.Links,
		pagelens.KeyPageNavigation:   result.Navigation,
		pagelens.KeyPageArchitecture: result.Architecture,
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// ExtractPageContentWithCode fetches pageURL and extracts its content with
// the fallback extractor only, which keeps code samples in the text. The
// content is stored under its own key so the main content is not replaced.
func (s *Scanner) ExtractPageContentWithCode(ctx context.Context, pageURL string) (*pagelens.ExtractionResult, error) {
	logger := s.logger("extract_with_code", pageURL)

	html, err := s.fetch(ctx, pageURL, logger)
	if err != nil {
		return nil, err
	}

	result, err := s.Fallback.Extract(html, pageURL)
	if err != nil {
		logger.Error("extraction failed", "err", err)
		return nil, pagelens.Errorf(pagelens.ENOTFOUND, "could not extract content from this page")
	}
	logger.Info("extraction successful", "chars", len(result.Content))

	if err := s.store(ctx, map[string]any{
		pagelens.KeyPageContentWithCode: result.Content,
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// ExtractCodeBlocks fetches pageURL and extracts its code blocks. A page
// without code stores and returns an empty list.
func (s *Scanner) ExtractCodeBlocks(ctx context.Context, pageURL string) ([]pagelens.ExtractedCodeBlock, error) {
	logger := s.logger("extract_code_blocks", pageURL)

	html, err := s.fetch(ctx, pageURL, logger)
	if err != nil {
		return nil, err
	}

	blocks, err := s.CodeBlocks.ExtractCodeBlocks(html)
	if err != nil {
		return nil, fmt.Errorf("extracting code blocks: %w", err)
	}
	if blocks == nil {
		blocks = []pagelens.ExtractedCodeBlock{}
	}
	logger.Info("code block extraction finished", "blocks", len(blocks))

	if err := s.store(ctx, map[string]any{
		pagelens.KeyExtractedCodeBlocks: blocks,
	}); err != nil {
		return nil, err
	}
	return blocks, nil
}

// Outline is the navigation and heading structure of a page.
type Outline struct {
	Navigation   *pagelens.NavigationContext `json:"navigation"`
	Architecture []pagelens.PageHeading      `json:"architecture"`
}

// ExtractOutline fetches pageURL and extracts its navigation regions and
// heading outline. Unlike ExtractPageContent it succeeds on pages without
// readable main content.
func (s *Scanner) ExtractOutline(ctx context.Context, pageURL string) (*Outline, error) {
	logger := s.logger("outline", pageURL)

	html, err := s.fetch(ctx, pageURL, logger)
	if err != nil {
		return nil, err
	}

	nav, err := s.Structure.ExtractNavigation(html, pageURL)
	if err != nil {
		return nil, fmt.Errorf("extracting navigation: %w", err)
	}
	arch, err := s.Structure.ExtractArchitecture(html)
	if err != nil {
		return nil, fmt.Errorf("extracting architecture: %w", err)
	}
	logger.Info("outline extracted", "headings", len(arch))

	if err := s.store(ctx, map[string]any{
		pagelens.KeyPageNavigation:   nav,
		pagelens.KeyPageArchitecture: arch,
	}); err != nil {
		return nil, err
	}
	return &Outline{Navigation: nav, Architecture: arch}, nil
}

func (s *Scanner) fetch(ctx context.Context, pageURL string, logger *slog.Logger) (string, error) {
	if !isWebPage(pageURL) {
		return "", pagelens.Errorf(pagelens.EINVALID, "not a valid webpage (must be http or https)")
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, pageURL, s.Fetcher.Fetch, logger, delays)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	return html, nil
}

func (s *Scanner) store(ctx context.Context, values map[string]any) error {
	if s.Store == nil {
		return nil
	}
	if err := s.Store.Set(ctx, values); err != nil {
		return fmt.Errorf("storing scan results: %w", err)
	}
	return nil
}

// logger returns a logger whose records carry a fresh scan ID.
func (s *Scanner) logger(op, pageURL string) *slog.Logger {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger.With("op", op, "scan_id", uuid.NewString(), "url", pageURL)
}

func isWebPage(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
