package trafilatura

import (
	"bytes"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pagelens"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagelens.ContentExtractor at compile time.
var _ pagelens.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	structure pagelens.StructureExtractor
}

// NewExtractor creates a new Extractor. Navigation and headings are taken
// from the full page through structure.
func NewExtractor(structure pagelens.StructureExtractor) *Extractor {
	return &Extractor{structure: structure}
}

// Extract processes raw HTML fetched from pageURL.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*pagelens.ExtractionResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagelens.Errorf(pagelens.EINVALID, "empty HTML input")
	}
	base, err := url.Parse(pageURL)
	if err != nil || !base.IsAbs() {
		return nil, pagelens.Errorf(pagelens.EINVALID, "invalid page URL: %q", pageURL)
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeLinks:   true,
		OriginalURL:    base,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, pagelens.Errorf(pagelens.ENOTFOUND, "trafilatura found no content: %v", err)
	}

	content := pagelens.NormalizeText(result.ContentText)
	if result.ContentNode == nil || utf8.RuneCountInString(content) < pagelens.MinContentLength {
		return nil, pagelens.Errorf(pagelens.ENOTFOUND, "no readable content found")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	links, err := e.structure.ExtractLinks(contentHTML, pageURL)
	if err != nil {
		return nil, err
	}
	navigation, err := e.structure.ExtractNavigation(rawHTML, pageURL)
	if err != nil {
		return nil, err
	}
	architecture, err := e.structure.ExtractArchitecture(rawHTML)
	if err != nil {
		return nil, err
	}
	framework, err := e.structure.DetectFramework(rawHTML)
	if err != nil {
		return nil, err
	}

	return &pagelens.ExtractionResult{
		Title:        result.Metadata.Title,
		Content:      content,
		ContentHTML:  contentHTML,
		Links:        links,
		Navigation:   navigation,
		Architecture: architecture,
		Framework:    framework,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
