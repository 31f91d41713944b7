package goquery

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelens"
)

// boilerplateSelector matches page furniture removed before the content
// region is located.
const boilerplateSelector = `script, style, nav, header, footer, aside, ` +
	`.nav, .navbar, .menu, .sidebar, .advertisement, .ad, .cookie, .popup, .modal, ` +
	`[role="navigation"], [role="banner"], [role="complementary"]`

// contentSelectors lists content-region candidates in priority order.
// body always matches, so a parsed HTML document always has a region.
var contentSelectors = []string{
	`main`,
	`article`,
	`[role="main"]`,
	`.main-content`,
	`.content`,
	`#main`,
	`#content`,
	`.post-content`,
	`.article-content`,
	`.entry-content`,
	`body`,
}

// navigationFunc computes the navigation context of an original document.
type navigationFunc func(doc *goquery.Document, base *url.URL) *pagelens.NavigationContext

// ExtractContentFallback extracts the main content of doc with simple
// selector heuristics. doc is not modified: boilerplate is stripped from a
// deep copy, and the content region is the first match of the content
// selectors on that copy. Links are taken from the region and resolved
// against base; navigation and the heading outline come from the original
// document. It reports false when the normalized text of the region is
// shorter than pagelens.MinContentLength.
func ExtractContentFallback(doc *goquery.Document, base *url.URL) (pagelens.ExtractionResult, bool) {
	return extractContentFallback(doc, base, ExtractNavigationContext)
}

func extractContentFallback(doc *goquery.Document, base *url.URL, navigation navigationFunc) (pagelens.ExtractionResult, bool) {
	if doc == nil || len(doc.Nodes) == 0 {
		return pagelens.ExtractionResult{}, false
	}

	clone := goquery.NewDocumentFromNode(doc.Selection.Clone().Get(0))
	clone.Find(boilerplateSelector).Remove()

	regions := firstMatch(clone.Selection, compileCandidates(contentSelectors), func(s *goquery.Selection) []*goquery.Selection {
		return []*goquery.Selection{s}
	})
	if len(regions) == 0 {
		return pagelens.ExtractionResult{}, false
	}
	region := regions[0]

	links := ExtractLinks(region, base, 0)

	content := pagelens.NormalizeText(region.Text())
	if utf8.RuneCountInString(content) < pagelens.MinContentLength {
		return pagelens.ExtractionResult{}, false
	}

	contentHTML, err := goquery.OuterHtml(region)
	if err != nil {
		contentHTML = ""
	}

	return pagelens.ExtractionResult{
		Title:        DocumentTitle(doc),
		Content:      content,
		ContentHTML:  contentHTML,
		Links:        links,
		Navigation:   navigation(doc, base),
		Architecture: ExtractPageArchitecture(doc),
	}, true
}

// DocumentTitle returns the text of the first HTML title element with
// ASCII whitespace stripped and collapsed, or "" if there is none.
func DocumentTitle(doc *goquery.Document) string {
	title := doc.Find("title").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Get(0).Namespace == ""
	}).First().Text()
	return strings.Join(strings.FieldsFunc(title, isASCIISpace), " ")
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
