package pagelens

// MinContentLength is the minimum length, in characters, of normalized main
// content text. Shorter pages carry too little signal to be useful.
const MinContentLength = 100

// PageLink is an anchor found on a page, resolved to an absolute URL.
type PageLink struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// NavigationContext holds the links of the page's navigation regions.
type NavigationContext struct {
	Breadcrumbs     []PageLink `json:"breadcrumbs"`
	MainNav         []PageLink `json:"mainNav"`
	Sidebar         []PageLink `json:"sidebar"`
	TableOfContents []PageLink `json:"tableOfContents"`
}

// Empty reports whether no navigation region produced any links.
func (n *NavigationContext) Empty() bool {
	return n == nil || len(n.Breadcrumbs)+len(n.MainNav)+len(n.Sidebar)+len(n.TableOfContents) == 0
}

// HeadingChild is an H2 or H3 heading attached to the preceding H1.
type HeadingChild struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// PageHeading is one H1 of the page outline with its H2/H3 children.
type PageHeading struct {
	H1       string         `json:"h1"`
	Children []HeadingChild `json:"children"`
}

// ExtractionResult holds the structured content extracted from a page.
type ExtractionResult struct {
	// Title is the document title, or empty.
	Title string `json:"title"`

	// Content is the cleaned visible text of the main content region.
	Content string `json:"content"`

	// ContentHTML is the markup of the main content region, kept for
	// rendering to Markdown. It is not part of the stored payload.
	ContentHTML string `json:"-"`

	Links        []PageLink         `json:"links"`
	Navigation   *NavigationContext `json:"navigation,omitempty"`
	Architecture []PageHeading      `json:"architecture"`

	// Framework is the documentation generator detected from the markup.
	Framework Framework `json:"framework,omitempty"`
}

// ContentExtractor extracts the main content and page structure from HTML.
type ContentExtractor interface {
	// Extract processes raw HTML fetched from pageURL.
	// Returns ENOTFOUND if the page has no readable main content.
	Extract(html string, pageURL string) (*ExtractionResult, error)
}

// StructureExtractor derives links, navigation regions, and the heading
// outline from HTML, independently of main-content detection.
type StructureExtractor interface {
	// ExtractLinks returns the deduplicated links of an HTML fragment,
	// resolved against baseURL.
	ExtractLinks(html string, baseURL string) ([]PageLink, error)

	// ExtractNavigation returns the navigation regions of a full page.
	ExtractNavigation(html string, pageURL string) (*NavigationContext, error)

	// ExtractArchitecture returns the H1/H2/H3 outline of a full page.
	ExtractArchitecture(html string) ([]PageHeading, error)

	// DetectFramework returns the documentation generator of a full page,
	// or FrameworkUnknown.
	DetectFramework(html string) (Framework, error)
}
