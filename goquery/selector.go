// Package goquery implements page content, structure, and code-block
// extraction over a parsed DOM using goquery and cascadia.
package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// compileCandidates compiles an ordered list of CSS selectors.
// Selectors that fail to compile are dropped, so an unsupported selector
// behaves like a candidate that matches nothing.
func compileCandidates(selectors []string) []goquery.Matcher {
	matchers := make([]goquery.Matcher, 0, len(selectors))
	for _, s := range selectors {
		m, err := cascadia.Compile(s)
		if err != nil {
			continue
		}
		matchers = append(matchers, m)
	}
	return matchers
}

// firstMatch tries each candidate in order against root and applies fn to
// the first element the candidate matches. The first non-empty result wins;
// nil is returned when no candidate produces anything.
func firstMatch[T any](root *goquery.Selection, candidates []goquery.Matcher, fn func(*goquery.Selection) []T) []T {
	for _, m := range candidates {
		sel := root.FindMatcher(m).First()
		if sel.Length() == 0 {
			continue
		}
		if items := fn(sel); len(items) > 0 {
			return items
		}
	}
	return nil
}
