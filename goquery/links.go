package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelens"
)

// ExtractLinks returns the links of the a[href] descendants of root in
// document order. Hrefs are resolved against base; javascript:, mailto:,
// and fragment-only hrefs, unparseable hrefs, and anchors without text are
// skipped. Links are deduplicated by absolute URL, first occurrence wins.
// A max of zero or less means no limit.
func ExtractLinks(root *goquery.Selection, base *url.URL, max int) []pagelens.PageLink {
	links := make([]pagelens.PageLink, 0)
	seen := make(map[string]bool)

	root.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if max > 0 && len(links) >= max {
			return false
		}

		href, _ := a.Attr("href")
		if isSkippedHref(href) {
			return true
		}

		resolved, ok := resolveHref(base, href)
		if !ok {
			return true
		}

		text := strings.TrimSpace(a.Text())
		if text == "" || seen[resolved] {
			return true
		}

		seen[resolved] = true
		links = append(links, pagelens.PageLink{URL: resolved, Text: text})
		return true
	})

	return links
}

// isSkippedHref reports whether an href never leads to another document:
// empty, script, mail, or same-page fragment links.
func isSkippedHref(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return href == "" ||
		strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:")
}

// resolveHref resolves href against base and returns the absolute URL in
// canonical form: lowercase scheme and host without the scheme's default
// port, and "/" for an empty hierarchical path.
func resolveHref(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}

	resolved := base.ResolveReference(ref)
	resolved.Scheme = strings.ToLower(resolved.Scheme)
	resolved.Host = stripDefaultPort(resolved.Scheme, strings.ToLower(resolved.Host))
	if resolved.Host != "" && resolved.Path == "" && resolved.Opaque == "" {
		resolved.Path = "/"
	}
	return resolved.String(), true
}

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

func stripDefaultPort(scheme, host string) string {
	if strings.HasSuffix(host, ":") {
		return strings.TrimSuffix(host, ":")
	}
	if port, ok := defaultPorts[scheme]; ok {
		return strings.TrimSuffix(host, ":"+port)
	}
	return host
}
