package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/goquery"
	"github.com/stretchr/testify/assert"
)

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	base := "https://example.com/docs/guide/"

	t.Run("resolves relative hrefs against the page URL", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div>
<a href="/docs/intro">Intro</a>
<a href="install">Install</a>
<a href="../api?v=2">API</a>
<a href="https://other.org">Other</a>
</div>`)

		links := goquery.ExtractLinks(doc.Selection, parseURL(t, base), 0)

		assert.Equal(t, []pagelens.PageLink{
			{URL: "https://example.com/docs/intro", Text: "Intro"},
			{URL: "https://example.com/docs/guide/install", Text: "Install"},
			{URL: "https://example.com/docs/api?v=2", Text: "API"},
			{URL: "https://other.org/", Text: "Other"},
		}, links)
	})

	t.Run("skips fragment, script, and mail links", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div>
<a href="#">Top</a>
<a href="#section">Section</a>
<a href="javascript:void(0)">Click</a>
<a href="JavaScript:alert(1)">Shout</a>
<a href="mailto:team@example.com">Mail</a>
<a href="">Empty</a>
<a href="/kept">Kept</a>
</div>`)

		links := goquery.ExtractLinks(doc.Selection, parseURL(t, base), 0)

		assert.Equal(t, []pagelens.PageLink{{URL: "https://example.com/kept", Text: "Kept"}}, links)
	})

	t.Run("skips anchors without text", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div><a href="/icon"><img src="i.png"></a><a href="/blank">   </a><a href="/named"> Named </a></div>`)

		links := goquery.ExtractLinks(doc.Selection, parseURL(t, base), 0)

		assert.Equal(t, []pagelens.PageLink{{URL: "https://example.com/named", Text: "Named"}}, links)
	})

	t.Run("deduplicates by absolute URL keeping the first text", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div><a href="/a">First</a><a href="https://example.com/a">Second</a><a href="/b">B</a></div>`)

		links := goquery.ExtractLinks(doc.Selection, parseURL(t, base), 0)

		assert.Equal(t, []pagelens.PageLink{
			{URL: "https://example.com/a", Text: "First"},
			{URL: "https://example.com/b", Text: "B"},
		}, links)
	})

	t.Run("drops default ports before deduplicating", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div>
<a href="http://example.com:80/x">A</a>
<a href="http://example.com/x">B</a>
<a href="https://Example.com:443/y">C</a>
<a href="https://example.com/y">D</a>
<a href="http://example.com:8080/x">E</a>
<a href="https://example.com:80/z">F</a>
</div>`)

		links := goquery.ExtractLinks(doc.Selection, parseURL(t, base), 0)

		assert.Equal(t, []pagelens.PageLink{
			{URL: "http://example.com/x", Text: "A"},
			{URL: "https://example.com/y", Text: "C"},
			{URL: "http://example.com:8080/x", Text: "E"},
			{URL: "https://example.com:80/z", Text: "F"},
		}, links)
	})

	t.Run("stops at the limit", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div><a href="/1">1</a><a href="/1">dup</a><a href="/2">2</a><a href="/3">3</a></div>`)

		links := goquery.ExtractLinks(doc.Selection, parseURL(t, base), 2)

		assert.Equal(t, []pagelens.PageLink{
			{URL: "https://example.com/1", Text: "1"},
			{URL: "https://example.com/2", Text: "2"},
		}, links)
	})

	t.Run("returns an empty slice when there are no links", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<p>No anchors here.</p>`)

		links := goquery.ExtractLinks(doc.Selection, parseURL(t, base), 0)

		assert.NotNil(t, links)
		assert.Empty(t, links)
	})
}
