package readability

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pagelens"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagelens.ContentExtractor at compile time.
var _ pagelens.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML. Links
// come from the article markup; navigation and headings come from the full
// page through the structure extractor.
type Extractor struct {
	structure pagelens.StructureExtractor
}

// NewExtractor creates a new Extractor.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, pagelens.Errorf(pagelens.ENOTFOUND, "readability found no article: %v", err)
	}

	content := pagelens.NormalizeText(article.TextContent)
	if utf8.RuneCountInString(content) < pagelens.MinContentLength {
		return nil, pagelens.Errorf(pagelens.ENOTFOUND, "no readable content found")
	}

	links, err := e.structure.ExtractLinks(article.Content, pageURL)
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
		Title:        article.Title,
		Content:      content,
		ContentHTML:  article.Content,
		Links:        links,
		Navigation:   navigation,
		Architecture: architecture,
		Framework:    framework,
	}, nil
}
