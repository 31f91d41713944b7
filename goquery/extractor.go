package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelens"
)

// Compile-time interface checks.
var (
	_ pagelens.ContentExtractor   = (*FallbackExtractor)(nil)
	_ pagelens.CodeBlockExtractor = (*CodeBlockExtractor)(nil)
	_ pagelens.StructureExtractor = (*StructureExtractor)(nil)
)

type options struct {
	profiles bool
}

// Option configures a FallbackExtractor or StructureExtractor.
type Option func(*options)

// WithFrameworkProfiles makes the extractor try generator-specific
// navigation selectors before the generic ones.
func WithFrameworkProfiles() Option {
	return func(o *options) {
		o.profiles = true
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// navigator returns the navigation function for a page built by
// framework, honoring the profiles option.
func (o options) navigator(framework pagelens.Framework) navigationFunc {
	if !o.profiles {
		return ExtractNavigationContext
	}
	return func(doc *goquery.Document, base *url.URL) *pagelens.NavigationContext {
		return ExtractNavigationContextFor(doc, base, framework)
	}
}

// FallbackExtractor extracts main content with selector heuristics. It is
// used when a readability-style extractor finds nothing.
type FallbackExtractor struct {
	detector *Detector
	opts     options
}

// NewFallbackExtractor creates a new FallbackExtractor.
func NewFallbackExtractor(opts ...Option) *FallbackExtractor {
	return &FallbackExtractor{detector: NewDetector(), opts: newOptions(opts)}
}

// Extract returns the main content of rawHTML fetched from pageURL.
// Returns ENOTFOUND if the content region is too short.
func (e *FallbackExtractor) Extract(rawHTML string, pageURL string) (result *pagelens.ExtractionResult, err error) {
	defer recoverInternal(&err, "content extraction")

	doc, base, err := parsePage(rawHTML, pageURL)
	if err != nil {
		return nil, err
	}

	framework := e.detector.Detect(doc)
	res, ok := extractContentFallback(doc, base, e.opts.navigator(framework))
	if !ok {
		return nil, pagelens.Errorf(pagelens.ENOTFOUND, "no readable content found")
	}
	res.Framework = framework
	return &res, nil
}

// CodeBlockExtractor finds code samples in HTML.
type CodeBlockExtractor struct{}

// NewCodeBlockExtractor creates a new CodeBlockExtractor.
func NewCodeBlockExtractor() *CodeBlockExtractor {
	return &CodeBlockExtractor{}
}

// ExtractCodeBlocks returns the deduplicated code blocks of rawHTML.
func (e *CodeBlockExtractor) ExtractCodeBlocks(rawHTML string) (blocks []pagelens.ExtractedCodeBlock, err error) {
	defer recoverInternal(&err, "code block extraction")

	doc, err := parseHTML(rawHTML)
	if err != nil {
		return nil, err
	}
	return ExtractCodeBlocks(doc), nil
}

// StructureExtractor derives links, navigation, and headings from HTML.
// With WithFrameworkProfiles, navigation follows the detected framework
// the same way FallbackExtractor does.
type StructureExtractor struct {
	detector *Detector
	opts     options
}

// NewStructureExtractor creates a new StructureExtractor.
func NewStructureExtractor(opts ...Option) *StructureExtractor {
	return &StructureExtractor{detector: NewDetector(), opts: newOptions(opts)}
}

// ExtractLinks returns every distinct link in rawHTML resolved against
// baseURL.
func (e *StructureExtractor) ExtractLinks(rawHTML string, baseURL string) (links []pagelens.PageLink, err error) {
	defer recoverInternal(&err, "link extraction")

	doc, base, err := parsePage(rawHTML, baseURL)
	if err != nil {
		return nil, err
	}
	return ExtractLinks(doc.Selection, base, 0), nil
}

// ExtractNavigation returns the navigation regions of rawHTML.
func (e *StructureExtractor) ExtractNavigation(rawHTML string, pageURL string) (nav *pagelens.NavigationContext, err error) {
	defer recoverInternal(&err, "navigation extraction")

	doc, base, err := parsePage(rawHTML, pageURL)
	if err != nil {
		return nil, err
	}
	return e.opts.navigator(e.detector.Detect(doc))(doc, base), nil
}

// DetectFramework returns the documentation generator of rawHTML, or
// FrameworkUnknown.
func (e *StructureExtractor) DetectFramework(rawHTML string) (framework pagelens.Framework, err error) {
	defer recoverInternal(&err, "framework detection")

	doc, err := parseHTML(rawHTML)
	if err != nil {
		return pagelens.FrameworkUnknown, err
	}
	return e.detector.Detect(doc), nil
}

// ExtractArchitecture returns the heading outline of rawHTML.
func (e *StructureExtractor) ExtractArchitecture(rawHTML string) (headings []pagelens.PageHeading, err error) {
	defer recoverInternal(&err, "architecture extraction")

	doc, err := parseHTML(rawHTML)
	if err != nil {
		return nil, err
	}
	return ExtractPageArchitecture(doc), nil
}

func parseHTML(rawHTML string) (*goquery.Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagelens.Errorf(pagelens.EINVALID, "empty HTML input")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

func parsePage(rawHTML string, pageURL string) (*goquery.Document, *url.URL, error) {
	base, err := url.Parse(pageURL)
	if err != nil || !base.IsAbs() {
		return nil, nil, pagelens.Errorf(pagelens.EINVALID, "invalid page URL: %q", pageURL)
	}
	doc, err := parseHTML(rawHTML)
	if err != nil {
		return nil, nil, err
	}
	return doc, base, nil
}

// recoverInternal converts a panic in the calling extractor into an
// EINTERNAL error. It must be deferred directly.
func recoverInternal(err *error, op string) {
	if r := recover(); r != nil {
		*err = pagelens.Errorf(pagelens.EINTERNAL, "%s failed: %v", op, r)
	}
}
