package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelens"
)

// frameworkMarker associates a documentation generator with markup that is
// unique to it. Any matching selector identifies the framework.
type frameworkMarker struct {
	framework pagelens.Framework
	selectors []string
}

// frameworkMarkers are checked in order. VitePress precedes VuePress since
// it reuses some of its predecessor's class names.
var frameworkMarkers = []frameworkMarker{
	{pagelens.FrameworkDocusaurus, []string{
		`#__docusaurus_skipToContent_fallback`,
		`.theme-doc-sidebar-container`,
		`html[data-rh][data-theme]`,
	}},
	{pagelens.FrameworkMkDocs, []string{
		`[data-md-color-scheme]`,
		`[data-md-component]`,
		`.md-nav--primary`,
	}},
	{pagelens.FrameworkSphinx, []string{
		`.toctree-wrapper`,
		`.wy-nav-side`,
		`.wy-menu-vertical`,
		`.sphinxsidebar`,
	}},
	{pagelens.FrameworkVitePress, []string{
		`#VPContent`,
		`.VPDoc`,
		`.VPDocAsideOutline`,
	}},
	{pagelens.FrameworkVuePress, []string{
		`.theme-default-content`,
		`.sidebar-links`,
		`.vuepress-navbar`,
	}},
	{pagelens.FrameworkGitBook, []string{
		`[data-testid='space.sidebar']`,
		`[data-testid='page.desktopTableOfContents']`,
	}},
	{pagelens.FrameworkNextra, []string{
		`.nextra-navbar`,
		`.nextra-sidebar`,
		`.nextra-toc`,
	}},
}

// generatorNames maps substrings of a meta generator tag to frameworks,
// tested in order.
var generatorNames = []struct {
	name      string
	framework pagelens.Framework
}{
	{"sphinx", pagelens.FrameworkSphinx},
	{"gitbook", pagelens.FrameworkGitBook},
	{"docusaurus", pagelens.FrameworkDocusaurus},
	{"mkdocs", pagelens.FrameworkMkDocs},
	{"vitepress", pagelens.FrameworkVitePress},
	{"vuepress", pagelens.FrameworkVuePress},
	{"nextra", pagelens.FrameworkNextra},
}

// gitBookRootClasses are classes GitBook puts on the html element. Two of
// them together identify a GitBook site.
var gitBookRootClasses = []string{"circular-corners", "theme-clean", "tint"}

// Detector identifies the documentation generator that produced a page.
type Detector struct{}

// NewDetector returns a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the framework of doc, or FrameworkUnknown. A meta
// generator tag takes precedence over structural markers.
func (d *Detector) Detect(doc *goquery.Document) pagelens.Framework {
	if framework := detectGenerator(doc); framework != pagelens.FrameworkUnknown {
		return framework
	}

	for _, m := range frameworkMarkers {
		for _, sel := range m.selectors {
			if doc.Find(sel).Length() > 0 {
				return m.framework
			}
		}
		if m.framework == pagelens.FrameworkGitBook && hasGitBookRootClasses(doc) {
			return m.framework
		}
	}

	return pagelens.FrameworkUnknown
}

func detectGenerator(doc *goquery.Document) pagelens.Framework {
	generator, ok := doc.Find(`meta[name="generator"]`).Last().Attr("content")
	if !ok {
		return pagelens.FrameworkUnknown
	}
	generator = strings.ToLower(generator)

	for _, g := range generatorNames {
		if strings.Contains(generator, g.name) {
			return g.framework
		}
	}
	return pagelens.FrameworkUnknown
}

func hasGitBookRootClasses(doc *goquery.Document) bool {
	class := doc.Find("html").AttrOr("class", "")
	count := 0
	for _, c := range gitBookRootClasses {
		if strings.Contains(class, c) {
			count++
		}
	}
	return count >= 2
}
