package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelens"
)

// Per-region link limits.
const (
	BreadcrumbLimit      = 10
	MainNavLimit         = 15
	SidebarLimit         = 15
	TableOfContentsLimit = 10
)

// NavigationSelectors holds the ordered candidate selectors for each
// navigation region.
type NavigationSelectors struct {
	Breadcrumbs     []string
	MainNav         []string
	Sidebar         []string
	TableOfContents []string
}

// GenericNavigation lists candidates that work across documentation sites.
// Attribute substring matches are case-insensitive.
var GenericNavigation = NavigationSelectors{
	Breadcrumbs: []string{
		`nav[aria-label*="breadcrumb" i]`,
		`nav[aria-label*="Breadcrumb" i]`,
		`[class*="breadcrumb" i]`,
		`[id*="breadcrumb" i]`,
		`ol[itemtype*="BreadcrumbList"]`,
	},
	MainNav: []string{
		`nav[role="navigation"]`,
		`header nav`,
		`nav.navbar`,
		`nav.main-nav`,
		`nav.primary-nav`,
		`[class*="main-nav" i]`,
		`[class*="primary-nav" i]`,
		`nav:not([aria-label*="breadcrumb" i])`,
	},
	Sidebar: []string{
		`aside`,
		`[role="complementary"]`,
		`.sidebar`,
		`.side-nav`,
		`.docs-nav`,
		`.documentation-nav`,
		`[class*="sidebar" i]`,
		`[id*="sidebar" i]`,
	},
	TableOfContents: []string{
		`#toc`,
		`.toc`,
		`#table-of-contents`,
		`.table-of-contents`,
		`[class*="toc" i]`,
		`[id*="toc" i]`,
		`nav[aria-label*="table of contents" i]`,
	},
}

// frameworkNavigation holds generator-specific candidates that are tried
// before the generic ones.
var frameworkNavigation = map[pagelens.Framework]NavigationSelectors{
	pagelens.FrameworkDocusaurus: {
		Breadcrumbs:     []string{`.theme-doc-breadcrumbs`},
		MainNav:         []string{`nav.navbar`},
		Sidebar:         []string{`.theme-doc-sidebar-container`},
		TableOfContents: []string{`.theme-doc-toc-desktop`, `.table-of-contents`},
	},
	pagelens.FrameworkMkDocs: {
		MainNav:         []string{`.md-tabs`, `.md-nav--primary`, `[data-md-component="navigation"]`},
		Sidebar:         []string{`.md-sidebar--primary`},
		TableOfContents: []string{`.md-sidebar--secondary`, `[data-md-component="toc"]`},
	},
	pagelens.FrameworkSphinx: {
		Breadcrumbs:     []string{`.wy-breadcrumbs`, `[role="navigation"][aria-label="breadcrumbs navigation"]`},
		MainNav:         []string{`.wy-menu-vertical`, `.sphinxsidebar`},
		Sidebar:         []string{`.wy-nav-side`, `.sphinxsidebar`},
		TableOfContents: []string{`#localtoc`, `.toctree-wrapper`},
	},
	pagelens.FrameworkVuePress: {
		MainNav:         []string{`.navbar`},
		Sidebar:         []string{`.sidebar-links`, `.sidebar`},
		TableOfContents: []string{`.table-of-contents`},
	},
	pagelens.FrameworkVitePress: {
		MainNav:         []string{`.VPNav`},
		Sidebar:         []string{`.VPSidebar`},
		TableOfContents: []string{`.VPDocAsideOutline`},
	},
	pagelens.FrameworkGitBook: {
		MainNav:         []string{`[data-testid='space.header']`},
		Sidebar:         []string{`[data-testid='space.sidebar']`},
		TableOfContents: []string{`[data-testid='page.desktopTableOfContents']`},
	},
	pagelens.FrameworkNextra: {
		MainNav:         []string{`.nextra-navbar`},
		Sidebar:         []string{`.nextra-sidebar`},
		TableOfContents: []string{`.nextra-toc`},
	},
}

// ExtractNavigationContext finds the breadcrumb, main navigation, sidebar,
// and table-of-contents links of doc using the generic candidate lists.
// For each region, the first element matched by the first candidate that
// yields at least one link wins. Regions without links are empty.
func ExtractNavigationContext(doc *goquery.Document, base *url.URL) *pagelens.NavigationContext {
	return extractNavigation(doc, base, GenericNavigation)
}

// ExtractNavigationContextFor is like ExtractNavigationContext but tries the
// candidates specific to framework first. Unknown frameworks use the
// generic lists only.
func ExtractNavigationContextFor(doc *goquery.Document, base *url.URL, framework pagelens.Framework) *pagelens.NavigationContext {
	specific, ok := frameworkNavigation[framework]
	if !ok {
		return ExtractNavigationContext(doc, base)
	}
	return extractNavigation(doc, base, NavigationSelectors{
		Breadcrumbs:     concat(specific.Breadcrumbs, GenericNavigation.Breadcrumbs),
		MainNav:         concat(specific.MainNav, GenericNavigation.MainNav),
		Sidebar:         concat(specific.Sidebar, GenericNavigation.Sidebar),
		TableOfContents: concat(specific.TableOfContents, GenericNavigation.TableOfContents),
	})
}

func extractNavigation(doc *goquery.Document, base *url.URL, selectors NavigationSelectors) *pagelens.NavigationContext {
	return &pagelens.NavigationContext{
		Breadcrumbs:     extractRegion(doc, base, selectors.Breadcrumbs, BreadcrumbLimit),
		MainNav:         extractRegion(doc, base, selectors.MainNav, MainNavLimit),
		Sidebar:         extractRegion(doc, base, selectors.Sidebar, SidebarLimit),
		TableOfContents: extractRegion(doc, base, selectors.TableOfContents, TableOfContentsLimit),
	}
}

func extractRegion(doc *goquery.Document, base *url.URL, selectors []string, limit int) []pagelens.PageLink {
	links := firstMatch(doc.Selection, compileCandidates(selectors), func(region *goquery.Selection) []pagelens.PageLink {
		return ExtractLinks(region, base, limit)
	})
	if links == nil {
		return []pagelens.PageLink{}
	}
	return links
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
