package mock

import "github.com/fwojciec/pagelens"

var (
	_ pagelens.ContentExtractor   = (*ContentExtractor)(nil)
	_ pagelens.StructureExtractor = (*StructureExtractor)(nil)
	_ pagelens.CodeBlockExtractor = (*CodeBlockExtractor)(nil)
)

// ContentExtractor is a mock implementation of pagelens.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string, pageURL string) (*pagelens.ExtractionResult, error)
}

func (e *ContentExtractor) Extract(html string, pageURL string) (*pagelens.ExtractionResult, error) {
	return e.ExtractFn(html, pageURL)
}

// StructureExtractor is a mock implementation of pagelens.StructureExtractor.
type StructureExtractor struct {
	ExtractLinksFn        func(html string, baseURL string) ([]pagelens.PageLink, error)
	ExtractNavigationFn   func(html string, pageURL string) (*pagelens.NavigationContext, error)
	ExtractArchitectureFn func(html string) ([]pagelens.PageHeading, error)
	DetectFrameworkFn     func(html string) (pagelens.Framework, error)
}

func (e *StructureExtractor) ExtractLinks(html string, baseURL string) ([]pagelens.PageLink, error) {
	return e.ExtractLinksFn(html, baseURL)
}

func (e *StructureExtractor) ExtractNavigation(html string, pageURL string) (*pagelens.NavigationContext, error) {
	return e.ExtractNavigationFn(html, pageURL)
}

func (e *StructureExtractor) ExtractArchitecture(html string) ([]pagelens.PageHeading, error) {
	return e.ExtractArchitectureFn(html)
}

func (e *StructureExtractor) DetectFramework(html string) (pagelens.Framework, error) {
	return e.DetectFrameworkFn(html)
}

// CodeBlockExtractor is a mock implementation of pagelens.CodeBlockExtractor.
type CodeBlockExtractor struct {
	ExtractCodeBlocksFn func(html string) ([]pagelens.ExtractedCodeBlock, error)
}

func (e *CodeBlockExtractor) ExtractCodeBlocks(html string) ([]pagelens.ExtractedCodeBlock, error) {
	return e.ExtractCodeBlocksFn(html)
}
